// Package v1handler implements the v1 JSON API on top of the generator
// service.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"passgen/internal/generator"
	"passgen/pkg/logger"
	"passgen/pkg/serrors"
)

// Operation names, used for logging and authorization decisions.
const (
	OperationCreatePasswords = "CreatePasswords"
	OperationScoreStrength   = "ScoreStrength"
	OperationListHistory     = "ListHistory"
	OperationClearHistory    = "ClearHistory"
)

// DefaultMaxBodyBytes caps request bodies.
const DefaultMaxBodyBytes = 64 << 10

// Deps are the services the handler delegates to.
type Deps struct {
	Generator generator.Service
}

// Options tune request handling.
type Options struct {
	// Defaults fill in values a generation request leaves out.
	Defaults generator.Request
	// MaxBodyBytes caps request bodies. Zero uses DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	if options.MaxBodyBytes <= 0 {
		options.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return &Handler{deps: deps, options: options}
}

// Routes returns the v1 API mounted at its absolute paths, guarded by sec.
// A nil sec leaves every route open.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	mux := http.NewServeMux()

	route := func(pattern, operation string, fn http.HandlerFunc) {
		var handler http.Handler = fn
		if sec != nil {
			handler = sec.Middleware(h, operation, handler)
		}
		mux.Handle(pattern, withOperation(operation, handler))
	}

	route("POST /v1/passwords", OperationCreatePasswords, h.CreatePasswords)
	route("POST /v1/strength", OperationScoreStrength, h.ScoreStrength)
	route("GET /v1/history", OperationListHistory, h.ListHistory)
	route("DELETE /v1/history", OperationClearHistory, h.ClearHistory)

	return mux
}

func withOperation(operation string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithFields(r.Context(), zap.String("operation", operation))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// kindStatus maps semantic kinds to a status and the message used when the
// error carries none.
var kindStatus = []struct { //nolint: gochecknoglobals
	kind    serrors.Kind
	status  int
	message string
}{
	{serrors.ErrBadRequest, http.StatusBadRequest, "invalid request"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrUnprocessable, http.StatusUnprocessableEntity, "request could not be processed"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
}

// NewError maps err to a status code and response body. Unexpected errors are
// logged and hidden behind a generic message.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err, serrors.ErrInternal)

	for _, ks := range kindStatus {
		if !errors.Is(kind, ks.kind) {
			continue
		}

		message, ok := serrors.MessageOf(err)
		if !ok {
			message = ks.message
		}
		logger.Debug(ctx, "request failed", zap.Error(err), zap.Int("status", ks.status))

		return &ErrorStatusCode{
			StatusCode: ks.status,
			Response:   ErrorResponse{Code: kind.Error(), Message: message},
		}
	}

	logger.Error(ctx, "could not handle request", zap.Error(err))

	return &ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response: ErrorResponse{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response.Encode)
}
