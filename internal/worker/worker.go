package worker

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped 表示 pool 已停止，不再接受工作
var ErrStopped = errors.New("worker pool stopped")

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	// Submit 阻塞直到有 worker 接手、ctx 結束或 pool 已停止
	Submit(ctx context.Context, t Task) error
	Stop()
}

type Option func(*pool)

// WithPanicHandler 讓單一 task 的 panic 不會拖垮 worker
func WithPanicHandler(fn func(recovered any)) Option {
	return func(p *pool) { p.onPanic = fn }
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int, opts ...Option) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task), done: make(chan struct{})}
	for _, opt := range opts {
		opt(p)
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
			}
		}()
	}
	return p
}

type pool struct {
	jobs    chan Task
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.RWMutex
	once    sync.Once
	onPanic func(any)
}

func (p *pool) run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			if p.onPanic == nil {
				panic(r)
			}
			p.onPanic(r)
		}
	}()
	job()
}

func (p *pool) Submit(ctx context.Context, t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	select {
	case <-p.done:
		return ErrStopped
	default:
	}
	select {
	case p.jobs <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop 等待所有已接手的工作完成；可重複呼叫
func (p *pool) Stop() {
	p.once.Do(func() {
		close(p.done)
		p.mu.Lock()
		close(p.jobs)
		p.mu.Unlock()
	})
	p.wg.Wait()
}
