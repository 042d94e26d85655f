package v1handler

import (
	"net/http"
)

// ScoreStrength handles POST /v1/strength.
func (h *Handler) ScoreStrength(w http.ResponseWriter, r *http.Request) {
	buf, err := readBody(w, r, h.options.MaxBodyBytes)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	pw, err := decodeStrengthRequest(buf)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	report := h.deps.Generator.Score(r.Context(), pw)
	writeJSON(r.Context(), w, http.StatusOK, report.Encode)
}
