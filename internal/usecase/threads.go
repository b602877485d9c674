package usecase

import (
	"sort"

	"github.com/dakarmarket/backend/internal/domain/model"
)

// BuildThreads folds a user's messages into one summary per counterpart.
// The newest message wins as the thread head, and the unread count tallies
// incoming messages not yet read. Threads come back ordered by recency.
func BuildThreads(userID string, messages []model.Message) []model.ThreadSummary {
	ordered := make([]model.Message, len(messages))
	copy(ordered, messages)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	var threads []model.ThreadSummary
	index := make(map[string]int)

	for _, msg := range ordered {
		counterpart := msg.Counterpart(userID)
		pos, seen := index[counterpart]
		if !seen {
			index[counterpart] = len(threads)
			threads = append(threads, model.ThreadSummary{
				CounterpartID: counterpart,
				LastMessage:   msg,
			})
			pos = index[counterpart]
		}
		if msg.FromUser == counterpart && msg.ToUser == userID && !msg.Read {
			threads[pos].UnreadCount++
		}
	}

	return threads
}
