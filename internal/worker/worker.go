package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrStopped 表示 pool 已停止，不再接受任務
var ErrStopped = errors.New("worker: pool stopped")

// Task represents a unit of work executed by the pool.
type Task func()

// Pool 限制同時執行的任務數量
type Pool interface {
	// Submit 等待空閒 worker 接手任務；ctx 取消或 pool 停止時回傳錯誤
	Submit(ctx context.Context, t Task) error
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task), quit: make(chan struct{})}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

type pool struct {
	jobs chan Task
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func (p *pool) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.quit:
			return
		case job := <-p.jobs:
			if job != nil {
				job()
			}
		}
	}
}

func (p *pool) Submit(ctx context.Context, t Task) error {
	select {
	case <-p.quit:
		return ErrStopped
	default:
	}
	select {
	case p.jobs <- t:
		return nil
	case <-p.quit:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop 等待執行中的任務結束；可重複呼叫
func (p *pool) Stop() {
	p.once.Do(func() { close(p.quit) })
	p.wg.Wait()
}

// Do 在 pool 上執行 fn 並等待結果
//
// ctx 取消時立即返回 ctx.Err()，已開始的 fn 仍會跑完；fn panic 轉為錯誤
func Do[T any](ctx context.Context, p Pool, fn func(context.Context) (T, error)) (T, error) {
	type result struct {
		val T
		err error
	}
	var zero T
	ch := make(chan result, 1)

	task := func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- result{err: fmt.Errorf("worker: task panic: %v", r)}
			}
		}()
		v, err := fn(ctx)
		ch <- result{val: v, err: err}
	}
	if err := p.Submit(ctx, task); err != nil {
		return zero, err
	}

	select {
	case r := <-ch:
		return r.val, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
