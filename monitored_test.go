// MonitoredScheduler tests for rxlite
// 计数调度器测试：已调度、已完成与失败计数
package rxlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitoredScheduler(t *testing.T) {
	t.Run("统计已调度与已完成的动作", func(t *testing.T) {
		inner := NewTestScheduler()
		monitored := NewMonitoredScheduler(inner)
		worker := monitored.CreateWorker()

		worker.Schedule(func() {})
		worker.Schedule(func() {})

		metrics := monitored.Metrics()
		assert.Equal(t, int64(2), metrics.Scheduled)
		assert.Equal(t, int64(0), metrics.Completed)

		inner.Drain()

		metrics = monitored.Metrics()
		assert.Equal(t, int64(2), metrics.Completed)
		assert.Equal(t, int64(0), metrics.Failed)
	})

	t.Run("panic的动作计入失败并继续向外传播", func(t *testing.T) {
		inner := NewTestScheduler()
		monitored := NewMonitoredScheduler(inner)
		monitored.CreateWorker().Schedule(func() { panic("broken action") })

		assert.Panics(t, func() { inner.Step() })

		metrics := monitored.Metrics()
		assert.Equal(t, int64(1), metrics.Scheduled)
		assert.Equal(t, int64(1), metrics.Failed)
		assert.Equal(t, int64(0), metrics.Completed)
	})

	t.Run("多个Worker的计数归属同一调度器", func(t *testing.T) {
		inner := NewTestScheduler()
		monitored := NewMonitoredScheduler(inner)

		monitored.CreateWorker().Schedule(func() {})
		monitored.CreateWorker().Schedule(func() {})
		require.Equal(t, 2, inner.Pending())
		inner.Drain()

		assert.Equal(t, int64(2), monitored.Metrics().Completed)
	})

	t.Run("可直接用于SubscribeOn", func(t *testing.T) {
		inner := NewTestScheduler()
		monitored := NewMonitoredScheduler(inner)

		rec := newRecordingObserver()
		Just(1).SubscribeOn(monitored).Subscribe(rec)
		inner.Drain()

		assert.Equal(t, []string{"next:1", "completed"}, rec.Events())
		assert.Equal(t, int64(1), monitored.Metrics().Completed)
	})
}
