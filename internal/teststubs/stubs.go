package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
)

// StubFetcher is a test double for providers.Fetcher.
type StubFetcher[T any] struct {
	Items  []T
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// Fetch returns configured items and error while tracking calls.
func (s *StubFetcher[T]) Fetch(ctx context.Context) ([]T, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// SequenceFetcher returns a different result on each call, repeating the last
// one once the sequence is exhausted.
type SequenceFetcher[T any] struct {
	mu      sync.Mutex
	Results []Result[T]
	calls   int
}

// Result is one scripted response of a SequenceFetcher.
type Result[T any] struct {
	Items []T
	Err   error
}

// Fetch returns the next scripted result.
func (s *SequenceFetcher[T]) Fetch(ctx context.Context) ([]T, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Results) == 0 {
		s.calls++
		return nil, nil
	}
	idx := s.calls
	if idx >= len(s.Results) {
		idx = len(s.Results) - 1
	}
	s.calls++
	r := s.Results[idx]
	return r.Items, r.Err
}

// Calls reports how many times Fetch ran.
func (s *SequenceFetcher[T]) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// StubReader is a test double for the cached record readers app services consume.
type StubReader[T any] struct {
	Items []T
	Err   error
	Calls atomic.Int32
}

// All returns configured items and error while tracking calls.
func (s *StubReader[T]) All(ctx context.Context) ([]T, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}
