package service

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSubmitterClosed is returned when scheduling after shutdown started.
var ErrSubmitterClosed = errors.New("submitter is closed")

// Submitter runs the completion of an accepted submission later.
type Submitter interface {
	Schedule(job func()) error
	Close(ctx context.Context) error
}

// DelayedSubmitter runs each job after a fixed delay, simulating an
// asynchronous submission. Close runs pending jobs immediately and waits
// for them.
type DelayedSubmitter struct {
	delay time.Duration

	mu     sync.Mutex
	closed bool
	flush  chan struct{}
	wg     sync.WaitGroup
}

// NewDelayedSubmitter creates a submitter with the given delay.
func NewDelayedSubmitter(delay time.Duration) *DelayedSubmitter {
	return &DelayedSubmitter{
		delay: delay,
		flush: make(chan struct{}),
	}
}

// Delay returns the configured delay.
func (s *DelayedSubmitter) Delay() time.Duration {
	return s.delay
}

func (s *DelayedSubmitter) Schedule(job func()) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSubmitterClosed
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-s.flush:
		}
		job()
	}()
	return nil
}

// Close stops accepting jobs, flushes the pending ones and waits until they
// finish or ctx is done.
func (s *DelayedSubmitter) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.flush)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
