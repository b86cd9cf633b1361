// SubscribeOn operator for rxlite
// 订阅迁移操作符：把订阅动作连同全部发射搬到Worker的执行上下文
package rxlite

import (
	"errors"
	"fmt"
)

// ErrNotObservable SubscribeOnOperator收到的数据项不是*Observable
var ErrNotObservable = errors.New("rxlite: subscribe-on observer expects an *Observable item")

// ============================================================================
// SubscribeOnOperator
// ============================================================================

// SubscribeOnOperator 订阅迁移操作符
//
// Apply返回的不是普通的逐项Observer，而是一个以源Observable为数据项
// 的包装观察者：收到源时在Worker上调度"订阅并中继"的动作。
// Observable.SubscribeOn直接把源交给该包装观察者，不经过单项元序列。
type SubscribeOnOperator struct {
	worker Worker
}

// NewSubscribeOnOperator 创建订阅迁移操作符，Worker在此刻创建
func NewSubscribeOnOperator(scheduler Scheduler) *SubscribeOnOperator {
	return &SubscribeOnOperator{worker: scheduler.CreateWorker()}
}

// Apply 构造以源Observable为数据项的包装观察者
func (op *SubscribeOnOperator) Apply(downstream Observer) Observer {
	return &subscribeOnObserver{worker: op.worker, downstream: downstream}
}

// subscribeOnObserver 包装观察者
//
// 每次OnNext都会调度一次迁移订阅，不强制恰好一次；
// 真正的终止信号只会经由中继从被迁移的订阅内部发出。
type subscribeOnObserver struct {
	worker     Worker
	downstream Observer
}

// OnNext 收到源Observable，在Worker上调度订阅动作并经中继转发全部信号
func (o *subscribeOnObserver) OnNext(value interface{}) {
	source, ok := value.(*Observable)
	if !ok {
		o.downstream.OnError(fmt.Errorf("%w, got %T", ErrNotObservable, value))
		return
	}

	downstream := o.downstream
	o.worker.Schedule(func() {
		source.Subscribe(&relayObserver{downstream: downstream})
	})
}

// OnCompleted 有意的空操作
//
// 外层序列的完成不代表被迁移的流完成；真实的完成信号由中继在
// Worker上下文内发出。
func (o *subscribeOnObserver) OnCompleted() {
}

// OnError 直接转发给下游，绕过Worker：产生源的过程出错无需调度
func (o *subscribeOnObserver) OnError(err error) {
	o.downstream.OnError(err)
}

// ============================================================================
// 中继观察者
// ============================================================================

// relayObserver 跨越迁移边界的透传观察者，三种信号原样转发
type relayObserver struct {
	downstream Observer
}

// OnNext 原样转发
func (r *relayObserver) OnNext(value interface{}) {
	r.downstream.OnNext(value)
}

// OnCompleted 原样转发
func (r *relayObserver) OnCompleted() {
	r.downstream.OnCompleted()
}

// OnError 原样转发
func (r *relayObserver) OnError(err error) {
	r.downstream.OnError(err)
}
