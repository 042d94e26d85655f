package presenter

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"passgen/pkg/domain"
	"passgen/pkg/password"
)

// Colors
var (
	colorWeak   = lipgloss.Color("#EF4444")
	colorMedium = lipgloss.Color("#F59E0B")
	colorStrong = lipgloss.Color("#10B981")
	colorMuted  = lipgloss.Color("#6B7280")
)

type styles struct {
	weak, medium, strong lipgloss.Style
	muted                lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		weak:   r.NewStyle().Foreground(colorWeak).Bold(true),
		medium: r.NewStyle().Foreground(colorMedium).Bold(true),
		strong: r.NewStyle().Foreground(colorStrong).Bold(true),
		muted:  r.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

func (s styles) strength(v password.Strength) string {
	label := fmt.Sprintf("%-6s", v)
	switch v {
	case password.StrengthStrong:
		return s.strong.Render(label)
	case password.StrengthMedium:
		return s.medium.Render(label)
	default:
		return s.weak.Render(label)
	}
}

// Terminal writes one password per line. Colors are only emitted when out is
// a terminal that supports them.
type Terminal struct {
	out    io.Writer
	styles styles
}

var (
	_ Presenter         = (*Terminal)(nil)
	_ HistoryPresenter  = (*Terminal)(nil)
	_ StrengthPresenter = (*Terminal)(nil)
)

// NewTerminal creates a Terminal presenter writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// Present prints every password, followed by its strength label when the
// password was scored.
func (t *Terminal) Present(_ context.Context, passwords []domain.GeneratedPassword) error {
	for _, p := range passwords {
		var err error
		if p.Strength == "" {
			_, err = fmt.Fprintln(t.out, p.Value)
		} else {
			_, err = fmt.Fprintf(t.out, "%s  %s\n", t.styles.strength(p.Strength), p.Value)
		}
		if err != nil {
			return fmt.Errorf("could not write password: %w", err)
		}
	}

	return nil
}

// PresentHistory prints entries as "<time>  <strength>  <password>".
func (t *Terminal) PresentHistory(_ context.Context, entries []domain.HistoryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(t.out, t.styles.muted.Render("history is empty"))

		return err
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(t.out, "%s  %s  %s\n",
			t.styles.muted.Render(e.CreatedAt.Local().Format(time.DateTime)),
			t.styles.strength(e.Strength),
			e.Password); err != nil {
			return fmt.Errorf("could not write history entry: %w", err)
		}
	}

	return nil
}

// PresentStrength prints a single strength report.
func (t *Terminal) PresentStrength(_ context.Context, report domain.StrengthReport) error {
	_, err := fmt.Fprintf(t.out, "%s  %d/%d\n", t.styles.strength(report.Strength), report.Points, password.MaxPoints)

	return err
}
