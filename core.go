// Package rxlite provides minimal push-based reactive stream primitives for Go
// 轻量级响应式流库：可组合的Observable、链式操作符与调度器系统
package rxlite

import (
	"fmt"
	"sync/atomic"
)

// ============================================================================
// 核心类型定义
// ============================================================================

// Observer 观察者接口，流的接收端
//
// 契约：OnNext可被调用任意次；OnCompleted与OnError互斥，合计至多调用一次；
// 终止信号之后不得再有任何调用。经Subscribe订阅时由一次性闩锁强制执行该契约。
type Observer interface {
	// OnNext 接收下一个数据项
	OnNext(value interface{})
	// OnCompleted 接收正常完成信号
	OnCompleted()
	// OnError 接收错误信号
	OnError(err error)
}

// OnNext 处理下一个值的回调函数
type OnNext func(value interface{})

// OnError 处理错误的回调函数
type OnError func(err error)

// OnCompleted 处理完成信号的回调函数
type OnCompleted func()

// Predicate 谓词函数，用于过滤
type Predicate func(value interface{}) bool

// Transformer 转换函数，用于映射；返回错误时转为OnError信号
type Transformer func(value interface{}) (interface{}, error)

// Action 调度器执行的零参数动作
type Action func()

// ============================================================================
// 操作符接口
// ============================================================================

// Operator 操作符：由下游Observer构造上游Observer的纯转换
type Operator interface {
	// Apply 给定下游Observer，返回交给上游订阅的Observer
	Apply(downstream Observer) Observer
}

// OperatorFunc 函数式操作符适配器
type OperatorFunc func(downstream Observer) Observer

// Apply 实现Operator接口
func (f OperatorFunc) Apply(downstream Observer) Observer {
	return f(downstream)
}

// ============================================================================
// 回调观察者
// ============================================================================

// callbackObserver 基于回调函数的Observer实现，nil回调视为空操作
type callbackObserver struct {
	onNext      OnNext
	onError     OnError
	onCompleted OnCompleted
}

// NewObserver 从回调函数创建Observer，未提供的回调默认为空操作
func NewObserver(onNext OnNext, onError OnError, onCompleted OnCompleted) Observer {
	return &callbackObserver{
		onNext:      onNext,
		onError:     onError,
		onCompleted: onCompleted,
	}
}

// OnNext 转发给onNext回调
func (o *callbackObserver) OnNext(value interface{}) {
	if o.onNext != nil {
		o.onNext(value)
	}
}

// OnCompleted 转发给onCompleted回调
func (o *callbackObserver) OnCompleted() {
	if o.onCompleted != nil {
		o.onCompleted()
	}
}

// OnError 转发给onError回调
func (o *callbackObserver) OnError(err error) {
	if o.onError != nil {
		o.onError(err)
	}
}

// ============================================================================
// 终止信号闩锁
// ============================================================================

// safeObserver 一次性闩锁包装器，强制终止信号互斥：
// OnCompleted/OnError合计只放行一次，终止之后丢弃一切后续信号
type safeObserver struct {
	downstream Observer
	terminated int32
}

// newSafeObserver 包装下游Observer
func newSafeObserver(downstream Observer) *safeObserver {
	return &safeObserver{downstream: downstream}
}

// OnNext 终止前转发数据项，终止后静默丢弃
func (s *safeObserver) OnNext(value interface{}) {
	if atomic.LoadInt32(&s.terminated) == 0 {
		s.downstream.OnNext(value)
	}
}

// OnCompleted 仅首个终止信号被放行
func (s *safeObserver) OnCompleted() {
	if atomic.CompareAndSwapInt32(&s.terminated, 0, 1) {
		s.downstream.OnCompleted()
	}
}

// OnError 仅首个终止信号被放行
func (s *safeObserver) OnError(err error) {
	if atomic.CompareAndSwapInt32(&s.terminated, 0, 1) {
		s.downstream.OnError(err)
	}
}

// ============================================================================
// 工具函数
// ============================================================================

// errFromRecover 将recover()的结果转换为error
func errFromRecover(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
