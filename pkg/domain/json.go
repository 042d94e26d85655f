package domain

import (
	"time"

	"github.com/go-faster/jx"
)

// Encode writes p as a JSON object. The strength field is omitted when empty.
func (p GeneratedPassword) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("password")
	e.Str(p.Value)
	if p.Strength != "" {
		e.FieldStart("strength")
		e.Str(string(p.Strength))
	}
	e.ObjEnd()
}

// Encode writes r as a JSON object.
func (r StrengthReport) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("strength")
	e.Str(string(r.Strength))
	e.FieldStart("points")
	e.Int(r.Points)
	e.ObjEnd()
}

// Encode writes h as a JSON object with an RFC 3339 createdAt.
func (h HistoryEntry) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(h.ID.String())
	e.FieldStart("password")
	e.Str(h.Password)
	e.FieldStart("strength")
	e.Str(string(h.Strength))
	e.FieldStart("createdAt")
	e.Str(h.CreatedAt.UTC().Format(time.RFC3339Nano))
	e.ObjEnd()
}

// EncodePasswords writes {"passwords":[...]}.
func EncodePasswords(e *jx.Encoder, passwords []GeneratedPassword) {
	e.ObjStart()
	e.FieldStart("passwords")
	e.ArrStart()
	for _, p := range passwords {
		p.Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}

// EncodeHistory writes {"entries":[...]}.
func EncodeHistory(e *jx.Encoder, entries []HistoryEntry) {
	e.ObjStart()
	e.FieldStart("entries")
	e.ArrStart()
	for _, h := range entries {
		h.Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}
