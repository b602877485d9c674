package repository

import (
	"context"

	"github.com/dakarmarket/backend/internal/domain/model"
)

// EventRepository provides access to the outbox.
type EventRepository interface {
	// SelectBatchForPublishing claims up to limit unpublished events,
	// marking them published within the claiming transaction. Concurrent
	// dispatchers skip each other's locked rows.
	SelectBatchForPublishing(ctx context.Context, limit int) ([]model.Event, error)
}
