// Logging plumbing for rxlite
// 日志接入：进程级zap Logger，默认为Nop，不影响发射热路径
package rxlite

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// globalLogger 进程级日志器，默认为zap.NewNop()
var globalLogger atomic.Pointer[zap.Logger]

func init() {
	globalLogger.Store(zap.NewNop())
}

// SetLogger 设置库内部使用的日志器，传入nil恢复为Nop
//
// 日志仅出现在异常路径与调度器生命周期事件上，数据项的发射与
// 转发不产生任何日志调用。
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	globalLogger.Store(logger)
}

// getLogger 获取当前日志器
func getLogger() *zap.Logger {
	return globalLogger.Load()
}

// logRecovered 记录被捕获的panic
func logRecovered(where string, r interface{}) {
	getLogger().Warn("recovered panic",
		zap.String("where", where),
		zap.Any("panic", r),
	)
}
