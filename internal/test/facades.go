package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dakarmarket/backend/internal/domain/model"
)

// DispatcherFacadeStub mimics dispatcher interactions with the outbox.
type DispatcherFacadeStub struct {
	Batches   [][]model.Event
	BatchesFn func(context.Context, int) ([]model.Event, error)
	Err       error

	callCount int32
}

// EventsForPublishing returns batches from the configured queue.
func (s *DispatcherFacadeStub) EventsForPublishing(ctx context.Context, limit int) ([]model.Event, error) {
	if s.BatchesFn != nil {
		return s.BatchesFn(ctx, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	call := atomic.AddInt32(&s.callCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// PublisherStub records publish attempts.
type PublisherStub struct {
	Err    error
	Events []model.Event
	mu     sync.Mutex
}

// Lock exposes internal mutex for external synchronization.
func (s *PublisherStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *PublisherStub) Unlock() { s.mu.Unlock() }

// Publish records the event and returns the configured error.
func (s *PublisherStub) Publish(ctx context.Context, event model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, event)
	return s.Err
}

// ProductCacheStub implements the catalog cache contract for tests.
type ProductCacheStub struct {
	Catalog []model.Product
	Hit     bool

	SetCalls        int
	InvalidateCalls int
	LastSet         []model.Product
}

// GetCatalog returns the configured catalog when Hit is set.
func (s *ProductCacheStub) GetCatalog(ctx context.Context) ([]model.Product, bool) {
	if !s.Hit {
		return nil, false
	}
	return s.Catalog, true
}

// SetCatalog records the cached listing.
func (s *ProductCacheStub) SetCatalog(ctx context.Context, products []model.Product) {
	s.SetCalls++
	s.LastSet = products
}

// Invalidate counts invalidations.
func (s *ProductCacheStub) Invalidate(ctx context.Context) {
	s.InvalidateCalls++
}
