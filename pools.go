// Shared worker pools for rxlite
// 共享池调度器：computation固定容量池与io弹性池，进程级单例
package rxlite

import (
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ioIdleTimeout io池空闲worker的回收时限
const ioIdleTimeout = 60 * time.Second

// taskPool 池的提交面，池Worker共享同一个池
type taskPool interface {
	submit(action Action)
}

// poolScheduler 共享池调度器：所有Worker都把动作提交到同一个池，
// Worker之间没有任何顺序保证，动作可能并行执行
type poolScheduler struct {
	pool taskPool
}

// CreateWorker 创建共享池Worker
func (s poolScheduler) CreateWorker() Worker {
	return poolWorker{pool: s.pool}
}

// poolWorker 共享池Worker
type poolWorker struct {
	pool taskPool
}

// Schedule 将动作提交到共享池
func (w poolWorker) Schedule(action Action) {
	w.pool.submit(action)
}

// ============================================================================
// 固定容量池 - computation
// ============================================================================

// fixedPool 固定数量worker goroutine的池，面向CPU密集型动作
type fixedPool struct {
	name   string
	tasks  chan Action
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// newFixedPool 创建并启动固定容量池
func newFixedPool(name string, workers int) *fixedPool {
	p := &fixedPool{
		name:  name,
		tasks: make(chan Action, workers*2),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(nextWorkerName(name))
	}
	getLogger().Debug("pool started",
		zap.String("pool", name),
		zap.Int("workers", workers),
	)
	return p
}

// submit 提交动作；池关闭后丢弃并记录
func (p *fixedPool) submit(action Action) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		getLogger().Warn("schedule after shutdown, action dropped",
			zap.String("pool", p.name),
		)
		return
	}
	p.tasks <- action
}

// shutdown 关闭池并等待队列排空
func (p *fixedPool) shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
	getLogger().Debug("pool stopped", zap.String("pool", p.name))
}

// worker 池worker goroutine，队列关闭且排空后退出
func (p *fixedPool) worker(name string) {
	defer p.wg.Done()
	for action := range p.tasks {
		runAction(name, action)
	}
}

// ============================================================================
// 弹性池 - io
// ============================================================================

// cachedPool 按需增长、空闲回收的池，面向阻塞型动作
//
// 提交优先以无缓冲hand-off交给空闲worker；没有空闲worker时
// 直接为该动作启动新worker。worker空闲超过时限后自行退出。
type cachedPool struct {
	name   string
	tasks  chan Action
	idle   time.Duration
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// newCachedPool 创建弹性池
func newCachedPool(name string, idle time.Duration) *cachedPool {
	getLogger().Debug("pool started", zap.String("pool", name))
	return &cachedPool{
		name:  name,
		tasks: make(chan Action),
		idle:  idle,
	}
}

// submit 提交动作；池关闭后丢弃并记录
func (p *cachedPool) submit(action Action) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		getLogger().Warn("schedule after shutdown, action dropped",
			zap.String("pool", p.name),
		)
		return
	}

	select {
	case p.tasks <- action:
	default:
		p.wg.Add(1)
		go p.worker(nextWorkerName(p.name), action)
	}
}

// shutdown 关闭池并等待在途动作执行完毕
func (p *cachedPool) shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
	getLogger().Debug("pool stopped", zap.String("pool", p.name))
}

// worker 弹性池worker：执行首个动作后继续领取，空闲超时退出
func (p *cachedPool) worker(name string, first Action) {
	defer p.wg.Done()
	runAction(name, first)

	for {
		idle := time.NewTimer(p.idle)
		select {
		case action, ok := <-p.tasks:
			idle.Stop()
			if !ok {
				return
			}
			runAction(name, action)
		case <-idle.C:
			return
		}
	}
}

// ============================================================================
// 进程级单例
// ============================================================================

var (
	poolsMu         sync.Mutex
	computationPool *fixedPool
	ioPool          *cachedPool
)

// Computation 返回共享固定容量池调度器，容量为CPU核心数
//
// computation与io池是进程级单例，被进程内所有流水线共享，
// 不做隔离，也不做按流水线的容量预留。
func Computation() Scheduler {
	poolsMu.Lock()
	defer poolsMu.Unlock()

	if computationPool == nil {
		computationPool = newFixedPool("computation", runtime.NumCPU())
	}
	return poolScheduler{pool: computationPool}
}

// IO 返回共享弹性池调度器，按需增长并回收空闲worker
func IO() Scheduler {
	poolsMu.Lock()
	defer poolsMu.Unlock()

	if ioPool == nil {
		ioPool = newCachedPool("io", ioIdleTimeout)
	}
	return poolScheduler{pool: ioPool}
}

// ShutdownSchedulers 排空并停止共享池
//
// 已提交的动作全部执行完毕后返回；之后提交到旧池Worker的动作被
// 丢弃并记录。下次调用Computation/IO会重建新的池，测试可借此在
// 用例之间复位进程级状态。
func ShutdownSchedulers() {
	poolsMu.Lock()
	computation := computationPool
	ioP := ioPool
	computationPool = nil
	ioPool = nil
	poolsMu.Unlock()

	if computation != nil {
		computation.shutdown()
	}
	if ioP != nil {
		ioP.shutdown()
	}
}
