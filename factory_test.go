// Factory tests for rxlite
// 工厂函数测试：各类冷数据源的发射行为
package rxlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactories(t *testing.T) {
	t.Run("Empty只发完成信号", func(t *testing.T) {
		rec := newRecordingObserver()
		Empty().Subscribe(rec)
		assert.Equal(t, []string{"completed"}, rec.Events())
	})

	t.Run("Never不发任何信号", func(t *testing.T) {
		rec := newRecordingObserver()
		Never().Subscribe(rec)
		assert.Empty(t, rec.Events())
	})

	t.Run("Range发射连续整数", func(t *testing.T) {
		rec := newRecordingObserver()
		Range(5, 3).Subscribe(rec)
		assert.Equal(t, []string{"next:5", "next:6", "next:7", "completed"}, rec.Events())
	})

	t.Run("Range计数为零时立即完成", func(t *testing.T) {
		rec := newRecordingObserver()
		Range(5, 0).Subscribe(rec)
		assert.Equal(t, []string{"completed"}, rec.Events())
	})

	t.Run("FromSlice发射切片元素", func(t *testing.T) {
		rec := newRecordingObserver()
		FromSlice([]interface{}{"a", "b"}).Subscribe(rec)
		assert.Equal(t, []string{"next:a", "next:b", "completed"}, rec.Events())
	})

	t.Run("FromChannel在channel关闭时完成", func(t *testing.T) {
		ch := make(chan interface{}, 3)
		ch <- 1
		ch <- 2
		close(ch)

		rec := newRecordingObserver()
		FromChannel(ch).Subscribe(rec)
		assert.Equal(t, []string{"next:1", "next:2", "completed"}, rec.Events())
	})

	t.Run("Just可被重复订阅", func(t *testing.T) {
		obs := Just("x")
		first := newRecordingObserver()
		second := newRecordingObserver()
		obs.Subscribe(first)
		obs.Subscribe(second)

		assert.Equal(t, first.Events(), second.Events())
	})
}
