package presenter_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"passgen/internal/presenter"
	"passgen/pkg/domain"
	"passgen/pkg/password"
	"passgen/pkg/serrors"
)

var results = []domain.GeneratedPassword{ //nolint: gochecknoglobals
	{Value: "aB3$eF6&", Strength: password.StrengthMedium},
	{Value: "Zz9!Zz9!Zz9!Zz9!", Strength: password.StrengthStrong},
}

func TestTerminal_Present(t *testing.T) {
	var buf bytes.Buffer
	term := presenter.NewTerminal(&buf)

	require.NoError(t, term.Present(context.Background(), results))
	require.Equal(t, "medium  aB3$eF6&\nstrong  Zz9!Zz9!Zz9!Zz9!\n", buf.String())

	buf.Reset()
	require.NoError(t, term.Present(context.Background(), []domain.GeneratedPassword{{Value: "plain"}}))
	require.Equal(t, "plain\n", buf.String())
}

func TestTerminal_PresentHistory(t *testing.T) {
	var buf bytes.Buffer
	term := presenter.NewTerminal(&buf)

	require.NoError(t, term.PresentHistory(context.Background(), nil))
	require.Equal(t, "history is empty\n", buf.String())

	buf.Reset()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, term.PresentHistory(context.Background(), []domain.HistoryEntry{
		{Password: "newest", Strength: password.StrengthWeak, CreatedAt: at},
		{Password: "older", Strength: password.StrengthStrong, CreatedAt: at.Add(-time.Minute)},
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], "weak    newest"))
	require.True(t, strings.HasSuffix(lines[1], "strong  older"))
	require.Contains(t, lines[0], at.Local().Format(time.DateTime))
}

func TestTerminal_PresentStrength(t *testing.T) {
	var buf bytes.Buffer
	term := presenter.NewTerminal(&buf)

	require.NoError(t, term.PresentStrength(context.Background(),
		domain.StrengthReport{Strength: password.StrengthMedium, Points: 5}))
	require.Equal(t, "medium  5/7\n", buf.String())
}

func TestJSON_Present(t *testing.T) {
	var buf bytes.Buffer
	j := presenter.NewJSON(&buf)

	require.NoError(t, j.Present(context.Background(), results))
	require.JSONEq(t,
		`{"passwords":[{"password":"aB3$eF6&","strength":"medium"},{"password":"Zz9!Zz9!Zz9!Zz9!","strength":"strong"}]}`,
		buf.String())
	require.True(t, strings.HasSuffix(buf.String(), "\n"))

	buf.Reset()
	require.NoError(t, j.PresentStrength(context.Background(),
		domain.StrengthReport{Strength: password.StrengthWeak, Points: 1}))
	require.JSONEq(t, `{"strength":"weak","points":1}`, buf.String())
}

func TestClipboard_Present(t *testing.T) {
	var copied string
	c := presenter.NewClipboardWriter(func(s string) error {
		copied = s

		return nil
	})

	require.NoError(t, c.Present(context.Background(), results))
	require.Equal(t, "aB3$eF6&\nZz9!Zz9!Zz9!Zz9!", copied)

	copied = "untouched"
	require.NoError(t, c.Present(context.Background(), nil))
	require.Equal(t, "untouched", copied)
}

func TestClipboard_PresentErrors(t *testing.T) {
	c := presenter.NewClipboardWriter(func(string) error { return errors.New("no display") })
	require.ErrorContains(t, c.Present(context.Background(), results), "no display")

	c = presenter.NewClipboardWriter(nil)
	require.ErrorIs(t, c.Present(context.Background(), results), serrors.ErrUnavailable)
}
