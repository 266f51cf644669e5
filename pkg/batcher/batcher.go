// Package batcher buffers items in the background and hands them to a flush callback in batches.
package batcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the Batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

// Config controls when a Batcher flushes.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	// RPS caps flushes per second; zero disables the limit.
	RPS int
}

// FlushFunc receives one batch. The slice is reused after the call returns.
type FlushFunc[T any] func(ctx context.Context, items []T) error

// Batcher buffers items and flushes them by size, by interval and on shutdown.
type Batcher[T any] struct {
	flush   FlushFunc[T]
	itemsCh chan T
	cfg     Config
	rl      ratelimit.Limiter
	logger  *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. Call Start before Add.
func New[T any](logger *zap.Logger, flush FlushFunc[T], cfg Config) (*Batcher[T], error) {
	if flush == nil {
		return nil, errors.New("flush callback is required")
	}
	if cfg.FlushSize <= 0 {
		return nil, fmt.Errorf("flush size must be positive, got %d", cfg.FlushSize)
	}
	if cfg.FlushInterval <= 0 {
		return nil, fmt.Errorf("flush interval must be positive, got %s", cfg.FlushInterval)
	}
	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Batcher[T]{
		flush:   flush,
		itemsCh: make(chan T, cfg.FlushSize*2),
		cfg:     cfg,
		rl:      rl,
		logger:  logger,
		stop:    make(chan struct{}),
	}, nil
}

// Start begins the background flushing loop. The loop ends when ctx is done or Stop is called.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes buffered items and waits for the loop to exit. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item, blocking while the buffer is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("Batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("Batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}
	// drain moves queued items into buf and flushes them once the loop is ending.
	drain := func() {
		final := context.WithoutCancel(ctx)
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.cfg.FlushSize {
					flush(final)
				}
			default:
				flush(final)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return
		case <-b.stop:
			drain()
			return
		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}
