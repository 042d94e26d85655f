package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"passgen/pkg/domain"
)

// CreatePasswords handles POST /v1/passwords.
func (h *Handler) CreatePasswords(w http.ResponseWriter, r *http.Request) {
	buf, err := readBody(w, r, h.options.MaxBodyBytes)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	req, err := decodeGenerateRequest(buf, h.options.Defaults)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	passwords, err := h.deps.Generator.Generate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, func(e *jx.Encoder) {
		domain.EncodePasswords(e, passwords)
	})
}
