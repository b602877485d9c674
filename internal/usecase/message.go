package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
	"github.com/dakarmarket/backend/internal/domain/repository"
)

// MessageUseCase handles direct messages and thread aggregation.
type MessageUseCase struct {
	messages repository.MessageRepository
	profiles repository.ProfileRepository
}

// NewMessageUseCase constructs MessageUseCase.
func NewMessageUseCase(messages repository.MessageRepository, profiles repository.ProfileRepository) *MessageUseCase {
	return &MessageUseCase{messages: messages, profiles: profiles}
}

// Send delivers a message from the actor to another user. Whitespace-only
// content is rejected; the trimmed text is what gets stored.
func (u *MessageUseCase) Send(ctx context.Context, actor *model.Profile, toUser, content string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainErrors.ErrEmptyMessage
	}
	if toUser == actor.ID {
		return nil, domainErrors.ErrForbidden
	}
	if _, err := u.profiles.GetByID(ctx, toUser); err != nil {
		return nil, err
	}
	return u.messages.Create(ctx, actor.ID, toUser, content)
}

// Conversation returns the full exchange between the actor and a
// counterpart, oldest first.
func (u *MessageUseCase) Conversation(ctx context.Context, actor *model.Profile, counterpartID string) ([]model.Message, error) {
	return u.messages.Conversation(ctx, actor.ID, counterpartID)
}

// MarkThreadRead flags every unread message from the counterpart to the
// actor as read. Calling it twice is harmless; the second call reports zero.
func (u *MessageUseCase) MarkThreadRead(ctx context.Context, actor *model.Profile, counterpartID string) (int64, error) {
	return u.messages.MarkRead(ctx, counterpartID, actor.ID)
}

// Threads aggregates the actor's messages into per-counterpart summaries
// with unread counts, decorated with counterpart profiles where available.
func (u *MessageUseCase) Threads(ctx context.Context, actor *model.Profile) ([]model.ThreadSummary, error) {
	messages, err := u.messages.ListInvolving(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	threads := BuildThreads(actor.ID, messages)
	if len(threads) == 0 {
		return threads, nil
	}

	ids := make([]string, 0, len(threads))
	for _, t := range threads {
		ids = append(ids, t.CounterpartID)
	}
	profiles, err := u.profiles.GetManyByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range threads {
		threads[i].Counterpart = profiles[threads[i].CounterpartID]
	}
	return threads, nil
}
