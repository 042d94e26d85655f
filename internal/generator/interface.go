package generator

import (
	"context"

	"passgen/pkg/domain"
)

//go:generate mockgen -package mockgenerator -source=interface.go -destination=mock/mockgenerator.go *
type Service interface {
	Generate(ctx context.Context, req Request) ([]domain.GeneratedPassword, error)
	Score(ctx context.Context, pw string) domain.StrengthReport
	History(ctx context.Context, limit uint) ([]domain.HistoryEntry, error)
	ClearHistory(ctx context.Context) (int64, error)
}
