package v1handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"passgen/internal/api/handler/v1handler"
	"passgen/internal/generator"
	mockgenerator "passgen/internal/generator/mock"
	"passgen/pkg/domain"
	"passgen/pkg/password"
	"passgen/pkg/serrors"
)

var defaults = generator.Request{ //nolint: gochecknoglobals
	Length:  16,
	Count:   1,
	Classes: password.AllClasses,
	Score:   true,
}

func newTestRoutes(t *testing.T) (*mockgenerator.MockService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gen := mockgenerator.NewMockService(ctrl)
	h := v1handler.New(v1handler.Deps{Generator: gen}, v1handler.Options{Defaults: defaults, MaxBodyBytes: 256})

	return gen, h.Routes(nil)
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestCreatePasswords(t *testing.T) {
	gen, h := newTestRoutes(t)

	gen.EXPECT().Generate(gomock.Any(), generator.Request{
		Length:  20,
		Count:   2,
		Classes: password.NewClasses(password.Lowercase, password.Digit),
		Score:   true,
	}).Return([]domain.GeneratedPassword{
		{Value: "abc123abc123abc123ab", Strength: password.StrengthMedium},
		{Value: "zzz999zzz999zzz999zz", Strength: password.StrengthMedium},
	}, nil)

	rec := serve(h, http.MethodPost, "/v1/passwords",
		`{"length":20,"count":2,"lowercase":true,"digits":true,"symbols":false,"extra":{"ignored":[1,2]}}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"passwords":[
		{"password":"abc123abc123abc123ab","strength":"medium"},
		{"password":"zzz999zzz999zzz999zz","strength":"medium"}
	]}`, rec.Body.String())
}

func TestCreatePasswords_Defaults(t *testing.T) {
	gen, h := newTestRoutes(t)

	gen.EXPECT().Generate(gomock.Any(), defaults).Return([]domain.GeneratedPassword{{Value: "x"}}, nil).Times(2)

	rec := serve(h, http.MethodPost, "/v1/passwords", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(h, http.MethodPost, "/v1/passwords", "{}")
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"passwords":[{"password":"x"}]}`, rec.Body.String())
}

func TestCreatePasswords_NoScore(t *testing.T) {
	gen, h := newTestRoutes(t)

	want := defaults
	want.Score = false
	gen.EXPECT().Generate(gomock.Any(), want).Return([]domain.GeneratedPassword{{Value: "x"}}, nil)

	rec := serve(h, http.MethodPost, "/v1/passwords", `{"score":false}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreatePasswords_ValidationError(t *testing.T) {
	gen, h := newTestRoutes(t)

	want := defaults
	want.Classes = 0
	gen.EXPECT().Generate(gomock.Any(), want).
		Return(nil, serrors.With(serrors.ErrBadRequest, generator.MsgNoClasses))

	rec := serve(h, http.MethodPost, "/v1/passwords", `{"lowercase":false}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"Error: Select at least one character type."}`, rec.Body.String())
}

func TestCreatePasswords_BadBody(t *testing.T) {
	_, h := newTestRoutes(t)

	for _, body := range []string{
		`{"length":"sixteen"}`,
		`[1,2,3]`,
		`{"lowercase":1}`,
		`{"length":16`,
	} {
		rec := serve(h, http.MethodPost, "/v1/passwords", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.Contains(t, rec.Body.String(), `"code":"BAD_REQUEST"`, body)
	}

	rec := serve(h, http.MethodPost, "/v1/passwords", `{"pad":"`+strings.Repeat("a", 512)+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "request body too large")
}

func TestCreatePasswords_RetryLimit(t *testing.T) {
	gen, h := newTestRoutes(t)

	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(nil, serrors.Wrap(serrors.ErrUnprocessable, password.ErrRetryLimitExceeded, "could not cover classes"))

	rec := serve(h, http.MethodPost, "/v1/passwords", `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.JSONEq(t, `{"code":"UNPROCESSABLE","message":"could not cover classes"}`, rec.Body.String())
}

func TestScoreStrength(t *testing.T) {
	gen, h := newTestRoutes(t)

	gen.EXPECT().Score(gomock.Any(), "Abcdefgh12!@").
		Return(domain.StrengthReport{Strength: password.StrengthStrong, Points: 6})

	rec := serve(h, http.MethodPost, "/v1/strength", `{"password":"Abcdefgh12!@"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"strength":"strong","points":6}`, rec.Body.String())

	rec = serve(h, http.MethodPost, "/v1/strength", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"password is required"}`, rec.Body.String())
}

func TestListHistory(t *testing.T) {
	gen, h := newTestRoutes(t)

	id := uuid.MustParse("0b8e4d0c-54a5-4bb3-9f55-0d7f6e2b7a10")
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	gen.EXPECT().History(gomock.Any(), uint(5)).Return([]domain.HistoryEntry{
		{ID: domain.EntryID(id), Password: "pw", Strength: password.StrengthWeak, CreatedAt: at},
	}, nil)
	gen.EXPECT().History(gomock.Any(), uint(0)).Return(nil, nil)

	rec := serve(h, http.MethodGet, "/v1/history?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"entries":[
		{"id":"0b8e4d0c-54a5-4bb3-9f55-0d7f6e2b7a10","password":"pw","strength":"weak","createdAt":"2024-01-02T03:04:05Z"}
	]}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/v1/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"entries":[]}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/v1/history?limit=-1", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListHistory_Disabled(t *testing.T) {
	gen, h := newTestRoutes(t)

	gen.EXPECT().History(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnavailable, "password history is disabled"))

	rec := serve(h, http.MethodGet, "/v1/history", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"code":"UNAVAILABLE","message":"password history is disabled"}`, rec.Body.String())
}

func TestClearHistory(t *testing.T) {
	gen, h := newTestRoutes(t)

	gen.EXPECT().ClearHistory(gomock.Any()).Return(int64(12), nil)
	gen.EXPECT().ClearHistory(gomock.Any()).Return(int64(0), errors.New("db down"))

	rec := serve(h, http.MethodDelete, "/v1/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"deleted":12}`, rec.Body.String())

	rec = serve(h, http.MethodDelete, "/v1/history", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"code":"INTERNAL","message":"internal error"}`, rec.Body.String())
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	_, h := newTestRoutes(t)

	rec := serve(h, http.MethodGet, "/v1/passwords", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRoutes_WithAuth(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	ctrl := gomock.NewController(t)
	gen := mockgenerator.NewMockService(ctrl)
	h := v1handler.New(v1handler.Deps{Generator: gen}, v1handler.Options{Defaults: defaults}).Routes(sh)

	rec := serve(h, http.MethodDelete, "/v1/history", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	gen.EXPECT().ClearHistory(gomock.Any()).DoAndReturn(func(ctx context.Context) (int64, error) {
		subject, ok := v1handler.SubjectFromContext(ctx)
		require.True(t, ok)
		require.Equal(t, "ops", subject)

		return 1, nil
	})

	now := time.Now()
	req := httptest.NewRequest(http.MethodDelete, "/v1/history", nil)
	req.Header.Set("Authorization", "Bearer "+signJWTRS256(t, priv, "ops", now, now.Add(time.Minute)))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
