// Test helpers for rxlite
// 测试辅助：记录观察者，按顺序记录收到的全部信号
package rxlite

import (
	"fmt"
	"sync"
)

// recordingObserver 记录观察者，把每个信号记为一条字符串
type recordingObserver struct {
	mu     sync.Mutex
	events []string
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{}
}

func (r *recordingObserver) OnNext(value interface{}) {
	r.record(fmt.Sprintf("next:%v", value))
}

func (r *recordingObserver) OnCompleted() {
	r.record("completed")
}

func (r *recordingObserver) OnError(err error) {
	r.record("error:" + err.Error())
}

func (r *recordingObserver) record(event string) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

// Events 信号序列快照
func (r *recordingObserver) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}
