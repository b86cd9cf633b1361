// Factory functions for rxlite
// 工厂函数：从值、切片与channel创建冷的Observable
package rxlite

// ============================================================================
// 基础工厂函数
// ============================================================================

// Just 从给定的值创建Observable，发射完毕后立即完成
func Just(values ...interface{}) *Observable {
	return NewObservable(func(observer Observer) error {
		for _, value := range values {
			observer.OnNext(value)
		}
		observer.OnCompleted()
		return nil
	})
}

// Empty 创建一个不发射任何值、立即完成的Observable
func Empty() *Observable {
	return NewObservable(func(observer Observer) error {
		observer.OnCompleted()
		return nil
	})
}

// Never 创建一个既不发射值也不终止的Observable
func Never() *Observable {
	return NewObservable(func(observer Observer) error {
		return nil
	})
}

// Error 创建一个立即发射错误的Observable
func Error(err error) *Observable {
	return NewObservable(func(observer Observer) error {
		return err
	})
}

// Range 创建发射[start, start+count)范围整数的Observable
func Range(start, count int) *Observable {
	return NewObservable(func(observer Observer) error {
		for i := 0; i < count; i++ {
			observer.OnNext(start + i)
		}
		observer.OnCompleted()
		return nil
	})
}

// ============================================================================
// 从数据源创建
// ============================================================================

// FromSlice 从切片创建Observable
func FromSlice(slice []interface{}) *Observable {
	return NewObservable(func(observer Observer) error {
		for _, value := range slice {
			observer.OnNext(value)
		}
		observer.OnCompleted()
		return nil
	})
}

// FromChannel 从channel创建Observable，channel关闭时流完成
//
// 发射发生在订阅方的goroutine上并阻塞于channel读取；
// 如需异步订阅，配合SubscribeOn使用。
func FromChannel(ch <-chan interface{}) *Observable {
	return NewObservable(func(observer Observer) error {
		for value := range ch {
			observer.OnNext(value)
		}
		observer.OnCompleted()
		return nil
	})
}
