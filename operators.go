// Stock operators for rxlite
// 标准操作符实现：Filter与Map，以及逐项转换的失败边界
package rxlite

// ============================================================================
// Filter 操作符
// ============================================================================

// filterOperator 过滤操作符，持有谓词
type filterOperator struct {
	predicate Predicate
}

// Apply 构造过滤用的上游Observer
func (op *filterOperator) Apply(downstream Observer) Observer {
	return &filterObserver{downstream: downstream, predicate: op.predicate}
}

// filterObserver 按谓词转发数据项，终止信号无条件透传
type filterObserver struct {
	downstream Observer
	predicate  Predicate
}

// OnNext 谓词成立时转发；谓词panic转为下游OnError
func (f *filterObserver) OnNext(value interface{}) {
	defer func() {
		if r := recover(); r != nil {
			logRecovered("filter predicate", r)
			f.downstream.OnError(errFromRecover(r))
		}
	}()

	if f.predicate(value) {
		f.downstream.OnNext(value)
	}
}

// OnCompleted 无条件透传
func (f *filterObserver) OnCompleted() {
	f.downstream.OnCompleted()
}

// OnError 无条件透传
func (f *filterObserver) OnError(err error) {
	f.downstream.OnError(err)
}

// ============================================================================
// Map 操作符
// ============================================================================

// mapOperator 映射操作符，持有转换函数
type mapOperator struct {
	transformer Transformer
}

// Apply 构造映射用的上游Observer
func (op *mapOperator) Apply(downstream Observer) Observer {
	return &mapObserver{downstream: downstream, transformer: op.transformer}
}

// mapObserver 对每个数据项应用转换函数，终止信号无条件透传
type mapObserver struct {
	downstream  Observer
	transformer Transformer
}

// OnNext 转发转换结果；转换返回错误或panic时转为下游OnError
func (m *mapObserver) OnNext(value interface{}) {
	defer func() {
		if r := recover(); r != nil {
			logRecovered("map transformer", r)
			m.downstream.OnError(errFromRecover(r))
		}
	}()

	result, err := m.transformer(value)
	if err != nil {
		m.downstream.OnError(err)
		return
	}
	m.downstream.OnNext(result)
}

// OnCompleted 无条件透传
func (m *mapObserver) OnCompleted() {
	m.downstream.OnCompleted()
}

// OnError 无条件透传
func (m *mapObserver) OnError(err error) {
	m.downstream.OnError(err)
}
