package domain

import "passgen/pkg/password"

// GeneratedPassword is one result of a generation request.
type GeneratedPassword struct {
	Value    string            `json:"password"`
	Strength password.Strength `json:"strength,omitempty"`
	// Attempts is the number of samples drawn to satisfy class coverage.
	Attempts int `json:"-"`
}

// StrengthReport is the outcome of scoring a password.
type StrengthReport struct {
	Strength password.Strength `json:"strength"`
	Points   int               `json:"points"`
}
