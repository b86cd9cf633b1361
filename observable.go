// Observable implementation for rxlite
// Observable核心实现：订阅边界、链式组合与便捷操作符入口
package rxlite

import (
	"go.uber.org/zap"
)

// ============================================================================
// Observable 核心实现
// ============================================================================

// OnSubscribe 订阅过程：负责向Observer发射数据，可返回错误
type OnSubscribe func(observer Observer) error

// Observable 冷的、可重复订阅的数据流描述
//
// 每次Subscribe都是一次独立执行，Observable不持有订阅者列表；
// Chain组合永远返回新的Observable，不修改原有实例。
type Observable struct {
	onSubscribe OnSubscribe
}

// NewObservable 从订阅过程创建Observable
func NewObservable(onSubscribe OnSubscribe) *Observable {
	return &Observable{onSubscribe: onSubscribe}
}

// Subscribe 订阅观察者
//
// 观察者先被一次性闩锁包装（保证终止信号互斥），随后在唯一的外层
// 失败边界内执行订阅过程：过程中的panic或返回的错误被恰好一次地
// 转换为OnError调用，绝不会穿透Subscribe向上抛出。
func (o *Observable) Subscribe(observer Observer) {
	safe := newSafeObserver(observer)

	defer func() {
		if r := recover(); r != nil {
			getLogger().Warn("subscription procedure panicked",
				zap.Any("panic", r),
			)
			safe.OnError(errFromRecover(r))
		}
	}()

	if err := o.onSubscribe(safe); err != nil {
		safe.OnError(err)
	}
}

// SubscribeWithCallbacks 使用回调函数订阅，nil回调默认为空操作
func (o *Observable) SubscribeWithCallbacks(onNext OnNext, onError OnError, onCompleted OnCompleted) {
	o.Subscribe(NewObserver(onNext, onError, onCompleted))
}

// ============================================================================
// 组合原语
// ============================================================================

// Chain 通用组合入口：返回新的Observable，其订阅过程先用操作符由下游
// Observer构造上游Observer，再交给原始订阅过程执行
//
// 注意这里调用的是上游的订阅过程而非Subscribe，使失败边界始终只存在
// 于最外层的那一次Subscribe调用中。
func (o *Observable) Chain(op Operator) *Observable {
	source := o.onSubscribe
	return NewObservable(func(downstream Observer) error {
		return source(op.Apply(downstream))
	})
}

// ============================================================================
// 便捷操作符
// ============================================================================

// Filter 过滤操作符，仅转发满足谓词的数据项
func (o *Observable) Filter(predicate Predicate) *Observable {
	return o.Chain(&filterOperator{predicate: predicate})
}

// Map 映射操作符，对每个数据项应用转换函数
func (o *Observable) Map(transformer Transformer) *Observable {
	return o.Chain(&mapOperator{transformer: transformer})
}

// SubscribeOn 指定订阅所在的执行上下文
//
// 返回的Observable被订阅时，将源交给SubscribeOnOperator产生的包装
// 观察者，由其在Worker上调度真正的订阅动作；此后全部发射都发生在
// 该Worker的执行上下文中。立即调度器下行为与直接订阅完全一致。
func (o *Observable) SubscribeOn(scheduler Scheduler) *Observable {
	op := NewSubscribeOnOperator(scheduler)
	source := o
	return NewObservable(func(downstream Observer) error {
		op.Apply(downstream).OnNext(source)
		return nil
	})
}
