package repository

import (
	"context"

	"github.com/dakarmarket/backend/internal/domain/model"
)

// MessageRepository describes persistence operations for direct messages.
type MessageRepository interface {
	Create(ctx context.Context, fromUser, toUser, content string) (*model.Message, error)
	// ListInvolving returns every message sent or received by the user,
	// newest first. Thread aggregation depends on this ordering.
	ListInvolving(ctx context.Context, userID string) ([]model.Message, error)
	// Conversation returns the full exchange between two users, oldest
	// first.
	Conversation(ctx context.Context, userA, userB string) ([]model.Message, error)
	// MarkRead flips read=true on unread messages from counterpart to
	// self and returns the number of rows affected. Idempotent.
	MarkRead(ctx context.Context, counterpartID, selfID string) (int64, error)
}
