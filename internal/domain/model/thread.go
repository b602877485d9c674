package model

// ThreadSummary is the derived per-counterpart view of a conversation:
// the latest message exchanged plus the number of unread incoming ones.
// It is never persisted.
type ThreadSummary struct {
	CounterpartID string
	Counterpart   *Profile
	LastMessage   Message
	UnreadCount   int
}
