package v1handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/jx"

	"passgen/pkg/domain"
	"passgen/pkg/serrors"
)

// ListHistory handles GET /v1/history. The optional limit query parameter
// caps the number of entries; the service clamps it to the history size.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	var limit uint
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit"))

			return
		}
		limit = uint(v)
	}

	entries, err := h.deps.Generator.History(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, func(e *jx.Encoder) {
		domain.EncodeHistory(e, entries)
	})
}

// ClearHistory handles DELETE /v1/history.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	n, err := h.deps.Generator.ClearHistory(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("deleted")
		e.Int64(n)
		e.ObjEnd()
	})
}
