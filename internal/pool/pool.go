// Package pool bounds the number of outbound provider calls running at once.
package pool

import (
	"context"

	"tracegate-api/internal/metrics"

	"go.uber.org/zap"
)

type Pool struct {
	sem chan struct{}
	log *zap.SugaredLogger
}

func New(size int, log *zap.SugaredLogger) *Pool {
	return &Pool{
		sem: make(chan struct{}, size),
		log: log,
	}
}

// Do runs task on a worker slot and waits for it to finish. Acquisition
// blocks until a slot frees up or ctx is done. Request identity must travel
// as explicit task arguments; the pool carries nothing across the boundary.
func (p *Pool) Do(ctx context.Context, task func() error) error {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	metrics.InflightWorkers.Inc()

	done := make(chan error, 1)
	go func() {
		defer func() {
			metrics.InflightWorkers.Dec()
			<-p.sem
		}()
		done <- task()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// The worker keeps its slot until the task returns.
		return ctx.Err()
	}
}
