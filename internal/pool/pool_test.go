package pool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDoReturnsTaskResult(t *testing.T) {
	p := New(2, zap.NewNop().Sugar())

	err := p.Do(context.Background(), func() error { return nil })
	require.NoError(t, err)

	boom := errors.New("task failed")
	err = p.Do(context.Background(), func() error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestDoBoundsConcurrency(t *testing.T) {
	const size = 2
	const tasks = 10

	p := New(size, zap.NewNop().Sugar())

	var running, peak int64
	var wg sync.WaitGroup
	for i := 0; i < tasks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func() error {
				n := atomic.AddInt64(&running, 1)
				for {
					old := atomic.LoadInt64(&peak)
					if n <= old || atomic.CompareAndSwapInt64(&peak, old, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt64(&running, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(size))
	assert.Greater(t, atomic.LoadInt64(&peak), int64(0))
}

func TestDoRespectsContextWhileWaiting(t *testing.T) {
	p := New(1, zap.NewNop().Sugar())

	release := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), func() error {
			<-release
			return nil
		})
	}()

	// Wait until the only slot is taken.
	for len(p.sem) == 0 {
		time.Sleep(time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Do(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
}
