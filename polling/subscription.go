// Package polling keeps a local mirror of a server resource fresh. The
// default transport is interval polling; a websocket feed can replace it
// without the subscriber noticing (see feed.go).
package polling

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Source fetches the current server state of some resource.
type Source[T any] func(ctx context.Context) (T, error)

// Subscription re-fetches a Source on a fixed interval and hands each
// fresh snapshot to apply. Guarantees:
//
//   - apply is never called concurrently;
//   - a slow response that arrives after a newer one is dropped, so
//     stale data can never overwrite fresh data;
//   - Cancel stops the ticker and aborts every in-flight request.
//
// Fetch errors are logged and swallowed; the subscriber keeps showing
// the last good snapshot.
type Subscription[T any] struct {
	source   Source[T]
	interval time.Duration
	apply    func(T)
	log      *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	issued  uint64
	applied uint64
	wg      sync.WaitGroup
}

// Subscribe starts polling immediately (first fetch happens before the
// first tick). Overlapping fetches are allowed when the server is slower
// than the interval; the sequence guard keeps them safe.
func Subscribe[T any](parent context.Context, source Source[T], interval time.Duration, apply func(T), log *zap.Logger) *Subscription[T] {
	ctx, cancel := context.WithCancel(parent)
	s := &Subscription[T]{
		source:   source,
		interval: interval,
		apply:    apply,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}

	s.fetch()
	s.wg.Add(1)
	go s.loop()
	return s
}

func (s *Subscription[T]) loop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.fetch()
		}
	}
}

// Refresh forces an immediate re-fetch; portals call this after a
// mutation instead of patching local state.
func (s *Subscription[T]) Refresh() {
	if s.ctx.Err() != nil {
		return
	}
	s.fetch()
}

func (s *Subscription[T]) fetch() {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		value, err := s.source(s.ctx)
		if err != nil {
			if s.ctx.Err() == nil {
				s.log.Warn("poll failed", zap.Uint64("seq", seq), zap.Error(err))
			}
			return
		}

		s.mu.Lock()
		if seq <= s.applied {
			// a newer response already landed
			s.mu.Unlock()
			s.log.Debug("dropping stale poll response", zap.Uint64("seq", seq))
			return
		}
		s.applied = seq
		s.apply(value)
		s.mu.Unlock()
	}()
}

// Cancel aborts in-flight requests and waits until no more apply calls
// can happen.
func (s *Subscription[T]) Cancel() {
	s.cancel()
	s.wg.Wait()
}
