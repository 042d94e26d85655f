package presenter

import (
	"context"
	"fmt"
	"io"

	"github.com/go-faster/jx"

	"passgen/pkg/domain"
)

// JSON writes results as a single JSON document per call, using the same
// shapes as the HTTP API.
type JSON struct {
	out io.Writer
}

var (
	_ Presenter         = (*JSON)(nil)
	_ HistoryPresenter  = (*JSON)(nil)
	_ StrengthPresenter = (*JSON)(nil)
)

// NewJSON creates a JSON presenter writing to out.
func NewJSON(out io.Writer) *JSON {
	return &JSON{out: out}
}

func (j *JSON) Present(_ context.Context, passwords []domain.GeneratedPassword) error {
	return j.write(func(e *jx.Encoder) { domain.EncodePasswords(e, passwords) })
}

func (j *JSON) PresentHistory(_ context.Context, entries []domain.HistoryEntry) error {
	return j.write(func(e *jx.Encoder) { domain.EncodeHistory(e, entries) })
}

// PresentStrength writes a single strength report.
func (j *JSON) PresentStrength(_ context.Context, report domain.StrengthReport) error {
	return j.write(report.Encode)
}

func (j *JSON) write(f func(e *jx.Encoder)) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	f(e)
	_, _ = e.Write([]byte{'\n'})
	if _, err := e.WriteTo(j.out); err != nil {
		return fmt.Errorf("could not write json: %w", err)
	}

	return nil
}
