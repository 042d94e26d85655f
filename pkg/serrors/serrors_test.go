package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"passgen/pkg/serrors"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrUnprocessable,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.NotEqual(t, serrors.ErrBadRequest, serrors.ErrUnprocessable)
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("disk full")

	e1 := serrors.With(serrors.ErrBadRequest, "length %d out of range", 200)
	require.Equal(t, "length 200 out of range", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrUnavailable, base, "appending history")
	require.Equal(t, "appending history: disk full", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrBadRequest, base, "validating")

	require.ErrorIs(t, e, serrors.ErrBadRequest)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("generating: %w", serrors.With(serrors.ErrUnprocessable, "retry limit"))
	require.Equal(t, serrors.ErrUnprocessable, serrors.KindOf(wrapped, serrors.ErrInternal))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.ErrNotFound, serrors.ErrInternal))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain"), serrors.ErrInternal))
}

func TestMessageOf(t *testing.T) {
	msg, ok := serrors.MessageOf(fmt.Errorf("handling: %w",
		serrors.Wrap(serrors.ErrBadRequest, errors.New("strconv"), "invalid limit")))
	require.True(t, ok)
	require.Equal(t, "invalid limit", msg)

	_, ok = serrors.MessageOf(serrors.KindOnly(serrors.ErrTimeout))
	require.False(t, ok)

	_, ok = serrors.MessageOf(errors.New("plain"))
	require.False(t, ok)
}

func TestIsDoesNotMatchOtherErrors(t *testing.T) {
	e := serrors.With(serrors.ErrBadRequest, "bad")
	require.NotErrorIs(t, e, errors.New("BAD_REQUEST"))
	require.NotErrorIs(t, e, serrors.NewKind("OTHER"))
	require.ErrorIs(t, e, serrors.NewKind("BAD_REQUEST"))
}
