package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"passgen/pkg/domain"
)

const (
	historyTable = "password_history"
)

// AppendEntries inserts entries in order. Zero IDs and timestamps are filled
// in before the insert.
func (s *Store) AppendEntries(ctx context.Context, entries ...domain.HistoryEntry) ([]domain.HistoryEntry, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	out := make([]domain.HistoryEntry, len(entries))
	rows := make([]HistoryRow, len(entries))
	for i, e := range entries {
		if e.ID == (domain.EntryID{}) {
			e.ID = domain.NewEntryID()
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		// match the precision that survives a round trip
		e.CreatedAt = e.CreatedAt.Truncate(time.Microsecond)
		out[i] = e
		rows[i].FromDomain(e)
	}

	if _, err := s.Builder.Insert(historyTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not store history entries: %w", err)
	}

	return out, nil
}

// RecentEntries returns at most limit entries ordered by insertion, newest first.
func (s *Store) RecentEntries(ctx context.Context, limit uint) ([]domain.HistoryEntry, error) {
	if limit == 0 {
		return []domain.HistoryEntry{}, nil
	}

	var rows []HistoryRow
	if err := s.Builder.From(historyTable).
		Order(goqu.I("seq").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch history entries: %w", err)
	}

	return historyRowsToDomain(rows)
}

// TrimEntries deletes all but the keep most recent entries.
func (s *Store) TrimEntries(ctx context.Context, keep uint) (int64, error) {
	if keep == 0 {
		// goqu treats LIMIT 0 as "no limit"
		return s.ClearEntries(ctx)
	}

	newest := s.Builder.From(historyTable).
		Select(goqu.I("seq")).
		Order(goqu.I("seq").Desc()).
		Limit(keep)

	res, err := s.Builder.Delete(historyTable).
		Where(goqu.I("seq").NotIn(newest)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not trim history: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count trimmed history entries: %w", err)
	}

	return n, nil
}

// ClearEntries deletes every entry.
func (s *Store) ClearEntries(ctx context.Context) (int64, error) {
	res, err := s.Builder.Delete(historyTable).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not clear history: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count cleared history entries: %w", err)
	}

	return n, nil
}
