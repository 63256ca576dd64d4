// Package scheduler drives the one-second cadence that re-renders
// countdowns and feeds the notification dispatcher. It is the only
// wall-clock dependency in the app; everything downstream takes an
// explicit instant, so tests tick the consumers directly.
package scheduler

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrInvalidInterval = errors.New("scheduler: invalid tick interval")

type TickEvent struct {
	At time.Time
}

type Engine struct {
	mu       sync.Mutex
	interval time.Duration
	out      chan TickEvent
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
	dropped  uint64
}

func NewEngine(interval time.Duration, bufferSize int) (*Engine, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		interval: interval,
		out:      make(chan TickEvent, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

func (e *Engine) C() <-chan TickEvent {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

// Stop tears the tick loop down and waits for it to exit. No further
// events are emitted afterwards.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Dropped counts ticks discarded because the consumer lagged behind
// the buffer. Dropping is harmless: the next tick carries a fresher
// instant anyway.
func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case at := <-ticker.C:
			select {
			case e.out <- TickEvent{At: at.UTC()}:
			default:
				atomic.AddUint64(&e.dropped, 1)
			}
		case <-e.stopCh:
			return
		}
	}
}
