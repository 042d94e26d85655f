// Package presenter renders generated passwords and history for a human or a
// script: styled terminal output, JSON, or the system clipboard.
package presenter

import (
	"context"

	"passgen/pkg/domain"
)

// Presenter receives the result of a generation request.
type Presenter interface {
	Present(ctx context.Context, passwords []domain.GeneratedPassword) error
}

// HistoryPresenter receives history entries, most recent first.
type HistoryPresenter interface {
	PresentHistory(ctx context.Context, entries []domain.HistoryEntry) error
}

// StrengthPresenter receives a strength report.
type StrengthPresenter interface {
	PresentStrength(ctx context.Context, report domain.StrengthReport) error
}
