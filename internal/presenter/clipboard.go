package presenter

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"passgen/pkg/domain"
	"passgen/pkg/logger"
	"passgen/pkg/serrors"
)

// Clipboard copies all passwords to the system clipboard, one per line.
type Clipboard struct {
	write  func(string) error
	system bool
}

var _ Presenter = (*Clipboard)(nil)

// NewClipboard returns a presenter backed by the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll, system: true}
}

// NewClipboardWriter returns a presenter that hands the joined passwords to
// write instead of the system clipboard.
func NewClipboardWriter(write func(string) error) *Clipboard {
	return &Clipboard{write: write}
}

func (c *Clipboard) Present(ctx context.Context, passwords []domain.GeneratedPassword) error {
	if len(passwords) == 0 {
		return nil
	}
	if c.write == nil || (c.system && clipboard.Unsupported) {
		return serrors.With(serrors.ErrUnavailable, "clipboard is not supported on this system")
	}

	values := make([]string, len(passwords))
	for i, p := range passwords {
		values[i] = p.Value
	}

	if err := c.write(strings.Join(values, "\n")); err != nil {
		return fmt.Errorf("could not copy passwords to clipboard: %w", err)
	}
	logger.Debug(ctx, "copied passwords to clipboard", zap.Int("count", len(values)))

	return nil
}
