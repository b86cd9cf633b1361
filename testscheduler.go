// Deterministic scheduler for tests
// 测试调度器：动作进入共享队列，由测试代码手动驱动执行
package rxlite

import (
	"sync"
)

// TestScheduler 确定性调度器
//
// 所有Worker共享同一个FIFO队列，Schedule只入队不执行；
// 测试代码通过Step/Drain在自己的goroutine上推进执行，
// 以替代进程级共享池获得可复现的时序。
type TestScheduler struct {
	mu    sync.Mutex
	queue []Action
}

// NewTestScheduler 创建测试调度器
func NewTestScheduler() *TestScheduler {
	return &TestScheduler{}
}

// CreateWorker 创建共享队列的Worker
func (s *TestScheduler) CreateWorker() Worker {
	return testWorker{scheduler: s}
}

// Pending 当前排队未执行的动作数
func (s *TestScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Step 执行队首的一个动作，队列为空时返回false
//
// 动作在调用方goroutine上执行；动作期间调度的新动作排到队尾。
func (s *TestScheduler) Step() bool {
	s.mu.Lock()
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return false
	}
	action := s.queue[0]
	s.queue = s.queue[1:]
	s.mu.Unlock()

	action()
	return true
}

// Drain 执行动作直到队列为空，返回执行的动作数
func (s *TestScheduler) Drain() int {
	n := 0
	for s.Step() {
		n++
	}
	return n
}

// enqueue 入队一个动作
func (s *TestScheduler) enqueue(action Action) {
	s.mu.Lock()
	s.queue = append(s.queue, action)
	s.mu.Unlock()
}

// testWorker 测试调度器的Worker，仅入队
type testWorker struct {
	scheduler *TestScheduler
}

// Schedule 将动作加入共享队列，立即返回
func (w testWorker) Schedule(action Action) {
	w.scheduler.enqueue(action)
}
