package storage

import (
	"context"

	"passgen/pkg/domain"
)

// HistoryStorage persists generated passwords as an ordered list. Entries are
// ordered by insertion; the most recently appended entry is listed first.
type HistoryStorage interface {
	// AppendEntries stores entries in the given order, so the last element
	// becomes the most recent one. It returns the stored entries.
	AppendEntries(ctx context.Context, entries ...domain.HistoryEntry) ([]domain.HistoryEntry, error)
	// RecentEntries returns at most limit entries, most recent first.
	RecentEntries(ctx context.Context, limit uint) ([]domain.HistoryEntry, error)
	// TrimEntries deletes everything but the keep most recent entries and
	// returns the number of deleted rows.
	TrimEntries(ctx context.Context, keep uint) (int64, error)
	// ClearEntries deletes all entries and returns the number of deleted rows.
	ClearEntries(ctx context.Context) (int64, error)
}
