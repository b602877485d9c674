package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dakarmarket/backend/internal/domain/model"
)

// MarketFacade exposes the subset of application functionality required by the dispatcher.
type MarketFacade interface {
	EventsForPublishing(ctx context.Context, limit int) ([]model.Event, error)
}

// EventPublisher delivers a claimed event to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, event model.Event) error
}

// EventDispatcher polls the outbox table and publishes claimed events concurrently.
// Events are marked published when claimed, so delivery is at-most-once; consumers
// treat the stream as advisory.
type EventDispatcher struct {
	facade       MarketFacade
	publisher    EventPublisher
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Event
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewEventDispatcher constructs the outbox dispatcher worker pool.
func NewEventDispatcher(facade MarketFacade, publisher EventPublisher, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *EventDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &EventDispatcher{
		facade:       facade,
		publisher:    publisher,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Event, batchSize*workers),
	}
}

// Start launches background publishing.
func (d *EventDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}

	d.wg.Add(1)
	go d.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (d *EventDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *EventDispatcher) dispatch(ctx context.Context) {
	defer d.wg.Done()
	defer close(d.jobs)
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.fetchAndDispatch(ctx)
		}
	}
}

func (d *EventDispatcher) fetchAndDispatch(ctx context.Context) {
	events, err := d.facade.EventsForPublishing(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("fetch events for publishing failed", slog.String("error", err.Error()))
		return
	}
	for _, event := range events {
		select {
		case <-ctx.Done():
			return
		case d.jobs <- event:
		}
	}
}

func (d *EventDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-d.jobs:
			if !ok {
				return
			}
			d.handleEvent(ctx, event)
		}
	}
}

func (d *EventDispatcher) handleEvent(ctx context.Context, event model.Event) {
	if err := d.publisher.Publish(ctx, event); err != nil {
		d.logger.Error("publish event failed",
			slog.String("event_id", event.ID),
			slog.String("topic", event.Topic),
			slog.String("error", err.Error()),
		)
	}
}
