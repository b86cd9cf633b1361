// Scheduler implementations for rxlite
// 调度器系统：Scheduler产生Worker，Worker负责安排动作的执行
package rxlite

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// ============================================================================
// 调度器接口
// ============================================================================

// Scheduler 调度器接口，执行上下文的工厂
//
// CreateWorker无状态，可从任意goroutine并发调用任意多次。
type Scheduler interface {
	// CreateWorker 创建一个新的Worker
	CreateWorker() Worker
}

// Worker 执行上下文，按自身的顺序策略运行被调度的动作
//
// Schedule保证动作恰好执行一次；没有取消句柄，也没有返回值。
type Worker interface {
	// Schedule 调度一个动作
	Schedule(action Action)
}

// workerSeq Worker命名计数器，仅用于日志字段
var workerSeq int64

func nextWorkerName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, atomic.AddInt64(&workerSeq, 1))
}

// runAction 执行单个动作，panic被捕获并记录，不放倒承载goroutine
func runAction(worker string, action Action) {
	defer func() {
		if r := recover(); r != nil {
			getLogger().Error("scheduled action panicked",
				zap.String("worker", worker),
				zap.Any("panic", r),
			)
		}
	}()
	action()
}

// ============================================================================
// 立即调度器 - Immediate Scheduler
// ============================================================================

// immediateScheduler 在调用方goroutine中同步执行动作
type immediateScheduler struct{}

// Immediate 返回立即调度器：Schedule阻塞直到动作执行完毕，可重入
func Immediate() Scheduler {
	return immediateScheduler{}
}

// CreateWorker 创建立即执行的Worker
func (immediateScheduler) CreateWorker() Worker {
	return immediateWorker{}
}

// immediateWorker 立即执行的Worker
type immediateWorker struct{}

// Schedule 在当前goroutine中直接执行动作
func (immediateWorker) Schedule(action Action) {
	action()
}

// ============================================================================
// 新goroutine调度器 - New Thread Scheduler
// ============================================================================

// newThreadScheduler 每个Worker独占一个专用goroutine
type newThreadScheduler struct{}

// NewThread 返回新线程调度器：每次CreateWorker启动一个专用goroutine，
// 该Worker上被调度的动作按提交顺序串行执行，彼此绝不并发
func NewThread() Scheduler {
	return newThreadScheduler{}
}

// CreateWorker 创建带专用goroutine的Worker
func (newThreadScheduler) CreateWorker() Worker {
	return newQueueWorker(nextWorkerName("new-thread"))
}

// queueWorker 专用goroutine加FIFO队列的Worker实现
//
// 承载goroutine随Worker创建而启动，之后从不退出，
// 与Worker本身同寿命。
type queueWorker struct {
	name  string
	mu    sync.Mutex
	cond  *sync.Cond
	queue []Action
}

// newQueueWorker 创建并启动队列Worker
func newQueueWorker(name string) *queueWorker {
	w := &queueWorker{name: name}
	w.cond = sync.NewCond(&w.mu)
	go w.loop()
	return w
}

// Schedule 将动作加入队列，不阻塞等待执行
func (w *queueWorker) Schedule(action Action) {
	w.mu.Lock()
	w.queue = append(w.queue, action)
	w.mu.Unlock()
	w.cond.Signal()
}

// loop 承载goroutine：按FIFO顺序逐个执行队列中的动作
func (w *queueWorker) loop() {
	getLogger().Debug("worker started", zap.String("worker", w.name))
	for {
		w.mu.Lock()
		for len(w.queue) == 0 {
			w.cond.Wait()
		}
		action := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		runAction(w.name, action)
	}
}
