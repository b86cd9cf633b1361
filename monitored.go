// Scheduler instrumentation for rxlite
// 带计数的调度器包装器：统计已调度、已完成与失败的动作数
package rxlite

import (
	"sync/atomic"
)

// SchedulerMetrics 调度器计数快照
type SchedulerMetrics struct {
	Scheduled int64 // 已调度的动作数
	Completed int64 // 正常执行完毕的动作数
	Failed    int64 // 执行中panic的动作数
}

// MonitoredScheduler 包装任意调度器并统计动作执行情况
type MonitoredScheduler struct {
	scheduler Scheduler

	scheduled int64
	completed int64
	failed    int64
}

// NewMonitoredScheduler 创建带计数的调度器
func NewMonitoredScheduler(scheduler Scheduler) *MonitoredScheduler {
	return &MonitoredScheduler{scheduler: scheduler}
}

// CreateWorker 创建带计数的Worker，计数归属于本调度器
func (m *MonitoredScheduler) CreateWorker() Worker {
	return &monitoredWorker{owner: m, worker: m.scheduler.CreateWorker()}
}

// Metrics 获取计数快照
func (m *MonitoredScheduler) Metrics() SchedulerMetrics {
	return SchedulerMetrics{
		Scheduled: atomic.LoadInt64(&m.scheduled),
		Completed: atomic.LoadInt64(&m.completed),
		Failed:    atomic.LoadInt64(&m.failed),
	}
}

// monitoredWorker 带计数的Worker包装器
type monitoredWorker struct {
	owner  *MonitoredScheduler
	worker Worker
}

// Schedule 调度动作并在执行前后更新计数
func (w *monitoredWorker) Schedule(action Action) {
	atomic.AddInt64(&w.owner.scheduled, 1)

	w.worker.Schedule(func() {
		defer func() {
			if r := recover(); r != nil {
				atomic.AddInt64(&w.owner.failed, 1)
				panic(r)
			}
			atomic.AddInt64(&w.owner.completed, 1)
		}()

		action()
	})
}
