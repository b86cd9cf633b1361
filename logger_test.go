// Logger tests for rxlite
// 日志接入测试：异常路径产生结构化日志，默认Nop
package rxlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	t.Run("订阅过程panic被记录", func(t *testing.T) {
		core, recorded := observer.New(zap.WarnLevel)
		SetLogger(zap.New(core))
		defer SetLogger(nil)

		NewObservable(func(o Observer) error {
			panic("noisy failure")
		}).SubscribeWithCallbacks(nil, func(err error) {}, nil)

		logs := recorded.FilterMessage("subscription procedure panicked").All()
		require.Len(t, logs, 1)
		assert.Equal(t, "noisy failure", logs[0].ContextMap()["panic"])
	})

	t.Run("转换函数panic被记录", func(t *testing.T) {
		core, recorded := observer.New(zap.WarnLevel)
		SetLogger(zap.New(core))
		defer SetLogger(nil)

		Just(1).
			Map(func(value interface{}) (interface{}, error) { panic("map failure") }).
			SubscribeWithCallbacks(nil, func(err error) {}, nil)

		logs := recorded.FilterMessage("recovered panic").All()
		require.Len(t, logs, 1)
		assert.Equal(t, "map transformer", logs[0].ContextMap()["where"])
	})

	t.Run("Worker上的动作panic被记录", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		SetLogger(zap.New(core))
		defer SetLogger(nil)

		done := make(chan struct{})
		worker := NewThread().CreateWorker()
		worker.Schedule(func() { panic("action failure") })
		worker.Schedule(func() { close(done) })
		<-done

		logs := recorded.FilterMessage("scheduled action panicked").All()
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].ContextMap()["worker"], "new-thread-")
	})

	t.Run("传入nil恢复为Nop", func(t *testing.T) {
		SetLogger(nil)
		assert.NotPanics(t, func() {
			NewObservable(func(o Observer) error {
				panic("silent")
			}).SubscribeWithCallbacks(nil, func(err error) {}, nil)
		})
	})
}
