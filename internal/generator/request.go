package generator

import (
	"fmt"

	"passgen/internal/config"
	"passgen/pkg/password"
	"passgen/pkg/serrors"
)

// Accepted request bounds.
const (
	MinLength = 4
	MaxLength = 128
	MinCount  = 1
	MaxCount  = 20
)

// User facing validation messages.
const (
	MsgNoClasses     = "Error: Select at least one character type."
	MsgInvalidLength = "Error: Password length must be between 4 and 128."
	MsgInvalidCount  = "Error: Number of passwords must be between 1 and 20."
)

// Request describes one generation call.
type Request struct {
	// Length is the number of characters of every password.
	Length int
	// Count is the number of passwords to generate.
	Count int
	// Classes are the character classes passwords are drawn from.
	Classes password.Classes
	// Score attaches a strength label to every generated password.
	Score bool
}

// Validate checks req against the accepted bounds. Classes are checked
// first, then length, then count.
func (r Request) Validate() error {
	_, err := r.validate()

	return err
}

// validate returns the failed check as a metric reason together with the error.
func (r Request) validate() (string, error) {
	switch {
	case r.Classes.Empty():
		return "no_classes", serrors.With(serrors.ErrBadRequest, MsgNoClasses)
	case r.Length < MinLength || r.Length > MaxLength:
		return "invalid_length", serrors.With(serrors.ErrBadRequest, MsgInvalidLength)
	case r.Count < MinCount || r.Count > MaxCount:
		return "invalid_count", serrors.With(serrors.ErrBadRequest, MsgInvalidCount)
	}

	return "", nil
}

// ParseClasses builds a class set from class names such as "lowercase" or
// "digits".
func ParseClasses(names []string) (password.Classes, error) {
	var classes password.Classes
	for _, name := range names {
		c, err := password.ParseClass(name)
		if err != nil {
			return 0, serrors.With(serrors.ErrBadRequest, "%s", err)
		}
		classes = classes.With(c)
	}

	return classes, nil
}

// DefaultRequest returns the request used when a caller leaves values out.
func DefaultRequest(cfg *config.Config) (Request, error) {
	classes, err := ParseClasses(cfg.Generator.Classes)
	if err != nil {
		return Request{}, fmt.Errorf("could not parse default classes: %w", err)
	}

	return Request{
		Length:  cfg.Generator.Length,
		Count:   cfg.Generator.Count,
		Classes: classes,
		Score:   true,
	}, nil
}
