// Package generator is the service layer around pkg/password. It validates
// requests, scores results, records them in the history store and maps core
// errors to semantic kinds understood by the transports.
package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"passgen/internal/config"
	"passgen/pkg/domain"
	"passgen/pkg/logger"
	"passgen/pkg/metrics"
	"passgen/pkg/password"
	"passgen/pkg/serrors"
	"passgen/pkg/storage"
)

// Options configure generation and history retention. These settings are
// typically derived from application configuration.
type Options struct {
	// MaxAttempts bounds the samples drawn per password.
	MaxAttempts int
	// HistoryLimit is the number of most recent entries kept in the history.
	HistoryLimit uint
	// Source overrides the random source. Nil uses password.NewSource.
	Source password.Source
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:  cfg.Generator.MaxAttempts,
		HistoryLimit: cfg.History.Limit,
	}
}

// service is the concrete implementation of the Service interface.
type service struct {
	options   Options
	generator *password.Generator
	// storage persists history. Nil disables history.
	storage storage.Storage
	metrics *metrics.Instruments
}

var _ Service = (*service)(nil)

// New creates a Service. strg may be nil, in which case generated passwords
// are not recorded and history calls fail with serrors.ErrUnavailable. A nil
// instruments value records nothing.
func New(strg storage.Storage, instruments *metrics.Instruments, options Options) Service {
	if options.HistoryLimit == 0 {
		options.HistoryLimit = domain.DefaultHistoryLimit
	}
	if instruments == nil {
		// the noop provider never fails
		instruments, _ = metrics.NewInstruments(nil)
	}

	return &service{
		options:   options,
		generator: password.NewGenerator(options.Source, password.WithMaxAttempts(options.MaxAttempts)),
		storage:   strg,
		metrics:   instruments,
	}
}

// Generate validates req, generates req.Count passwords and records them in
// the history. History failures are logged and do not fail the call.
func (s *service) Generate(ctx context.Context, req Request) ([]domain.GeneratedPassword, error) {
	defer s.metrics.ObserveDuration(ctx, "generate", time.Now())

	if reason, err := req.validate(); err != nil {
		s.metrics.GenerationFailed(ctx, reason)

		return nil, err
	}

	samples, err := s.generator.SampleBatch(req.Count, req.Length, req.Classes)
	if err != nil {
		reason, mapped := mapGeneratorError(err)
		s.metrics.GenerationFailed(ctx, reason)

		return nil, mapped
	}

	out := make([]domain.GeneratedPassword, len(samples))
	entries := make([]domain.HistoryEntry, len(samples))
	now := time.Now().UTC()
	for i, sample := range samples {
		strength := password.Score(sample.Password)
		s.metrics.PasswordGenerated(ctx, string(strength), sample.Attempts)

		out[i] = domain.GeneratedPassword{Value: sample.Password, Attempts: sample.Attempts}
		if req.Score {
			out[i].Strength = strength
		}
		entries[i] = domain.HistoryEntry{Password: sample.Password, Strength: strength, CreatedAt: now}
	}

	if err := s.record(ctx, entries); err != nil {
		logger.Warn(ctx, "could not record password history", zap.Error(err))
	}

	return out, nil
}

// record appends entries and trims the history to the configured limit in a
// single transaction.
func (s *service) record(ctx context.Context, entries []domain.HistoryEntry) error {
	if s.storage == nil {
		return nil
	}

	return s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.AppendEntries(ctx, entries...); err != nil {
			return fmt.Errorf("could not append history entries: %w", err)
		}

		trimmed, err := tx.TrimEntries(ctx, s.options.HistoryLimit)
		if err != nil {
			return fmt.Errorf("could not trim history: %w", err)
		}
		if trimmed > 0 {
			logger.Debug(ctx, "trimmed password history", zap.Int64("deleted", trimmed))
		}

		return nil
	})
}

// Score rates pw.
func (s *service) Score(_ context.Context, pw string) domain.StrengthReport {
	return domain.StrengthReport{
		Strength: password.Score(pw),
		Points:   password.Points(pw),
	}
}

// History returns the most recent entries, newest first. A limit of 0 or one
// above the configured cap returns up to the cap.
func (s *service) History(ctx context.Context, limit uint) ([]domain.HistoryEntry, error) {
	if s.storage == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "password history is disabled")
	}
	if limit == 0 || limit > s.options.HistoryLimit {
		limit = s.options.HistoryLimit
	}

	entries, err := s.storage.RecentEntries(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get password history: %w", err)
	}

	return entries, nil
}

// ClearHistory deletes every history entry and returns how many were removed.
func (s *service) ClearHistory(ctx context.Context) (int64, error) {
	if s.storage == nil {
		return 0, serrors.With(serrors.ErrUnavailable, "password history is disabled")
	}

	n, err := s.storage.ClearEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not clear password history: %w", err)
	}
	logger.Info(ctx, "cleared password history", zap.Int64("deleted", n))

	return n, nil
}

// mapGeneratorError translates core generator errors into semantic kinds and
// returns a metric reason alongside.
func mapGeneratorError(err error) (string, error) {
	switch {
	case errors.Is(err, password.ErrEmptyPool):
		return "no_classes", serrors.Wrap(serrors.ErrBadRequest, err, MsgNoClasses)
	case errors.Is(err, password.ErrInvalidLength):
		return "invalid_length", serrors.Wrap(serrors.ErrBadRequest, err, MsgInvalidLength)
	case errors.Is(err, password.ErrInvalidCount):
		return "invalid_count", serrors.Wrap(serrors.ErrBadRequest, err, MsgInvalidCount)
	case errors.Is(err, password.ErrRetryLimitExceeded):
		return "retry_limit", serrors.Wrap(serrors.ErrUnprocessable, err,
			"could not generate a password containing every selected character type")
	default:
		return "internal", fmt.Errorf("could not generate passwords: %w", err)
	}
}
