package sqlstore

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"passgen/pkg/domain"
	"passgen/pkg/password"
)

// HistoryRow is the database representation of a domain.HistoryEntry.
// CreatedAt is stored as unix microseconds so both dialects share one mapping.
type HistoryRow struct {
	Seq       int64  `db:"seq"        goqu:"skipinsert"`
	ID        string `db:"id"`
	Password  string `db:"password"`
	Strength  string `db:"strength"`
	CreatedAt int64  `db:"created_at"`
}

func (r *HistoryRow) ToDomain() (*domain.HistoryEntry, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("could not parse history entry id %q: %w", r.ID, err)
	}

	return &domain.HistoryEntry{
		ID:        domain.EntryID(id),
		Password:  r.Password,
		Strength:  password.Strength(r.Strength),
		CreatedAt: time.UnixMicro(r.CreatedAt).UTC(),
	}, nil
}

func (r *HistoryRow) FromDomain(e domain.HistoryEntry) {
	*r = HistoryRow{
		ID:        e.ID.String(),
		Password:  e.Password,
		Strength:  string(e.Strength),
		CreatedAt: e.CreatedAt.UnixMicro(),
	}
}

func historyRowsToDomain(rows []HistoryRow) ([]domain.HistoryEntry, error) {
	out := make([]domain.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		e, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *e)
	}

	return out, nil
}
