// Package password implements the password generation core: character class
// alphabets, uniform sampling from the selected pool with a bounded
// mandatory-class retry, batch generation and a coarse strength heuristic.
//
// The package has no knowledge of storage, transport or presentation. Callers
// validate their own input ranges and render whatever is returned.
package password

import (
	"fmt"
	"strings"
)

// Class is a named category of characters with a fixed alphabet.
type Class uint8

const (
	// Lowercase selects the letters a-z.
	Lowercase Class = 1 << iota
	// Uppercase selects the letters A-Z.
	Uppercase
	// Digit selects the digits 0-9.
	Digit
	// Symbol selects the fixed punctuation set.
	Symbol
)

// Alphabets of every class. They never change at runtime.
const (
	LowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"
	UppercaseAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitAlphabet     = "0123456789"
	SymbolAlphabet    = "!@#$%^&*()_+[]{}|;:,.<>?"
)

// poolOrder is the order in which alphabets are concatenated into a pool.
var poolOrder = [...]Class{Lowercase, Uppercase, Digit, Symbol} //nolint: gochecknoglobals

// Alphabet returns the characters belonging to c, or "" for an unknown class.
func (c Class) Alphabet() string {
	switch c {
	case Lowercase:
		return LowercaseAlphabet
	case Uppercase:
		return UppercaseAlphabet
	case Digit:
		return DigitAlphabet
	case Symbol:
		return SymbolAlphabet
	default:
		return ""
	}
}

func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// ParseClass converts a user supplied class name into a Class. Matching is
// case-insensitive and accepts a few common aliases.
func ParseClass(name string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lowercase", "lower":
		return Lowercase, nil
	case "uppercase", "upper":
		return Uppercase, nil
	case "digit", "digits", "number", "numbers":
		return Digit, nil
	case "symbol", "symbols":
		return Symbol, nil
	default:
		return 0, fmt.Errorf("unknown character class %q", name)
	}
}

// Classes is a set of character classes.
type Classes uint8

// AllClasses selects every class.
const AllClasses = Classes(Lowercase | Uppercase | Digit | Symbol)

// NewClasses builds a set from the given classes.
func NewClasses(cs ...Class) Classes {
	var s Classes
	for _, c := range cs {
		s = s.With(c)
	}

	return s
}

// With returns a copy of s that also contains c.
func (s Classes) With(c Class) Classes { return s | Classes(c) }

// Has reports whether c is a member of s.
func (s Classes) Has(c Class) bool { return c != 0 && s&Classes(c) == Classes(c) }

// Empty reports whether no class is selected.
func (s Classes) Empty() bool { return s&AllClasses == 0 }

// Members returns the selected classes in pool order.
func (s Classes) Members() []Class {
	out := make([]Class, 0, len(poolOrder))
	for _, c := range poolOrder {
		if s.Has(c) {
			out = append(out, c)
		}
	}

	return out
}

// Len returns the number of selected classes.
func (s Classes) Len() int { return len(s.Members()) }

// Pool concatenates the alphabets of the selected classes in the fixed order
// lowercase, uppercase, digit, symbol.
func (s Classes) Pool() string {
	var sb strings.Builder
	for _, c := range s.Members() {
		sb.WriteString(c.Alphabet())
	}

	return sb.String()
}

func (s Classes) String() string {
	members := s.Members()
	names := make([]string, len(members))
	for i, c := range members {
		names[i] = c.String()
	}

	return "{" + strings.Join(names, ",") + "}"
}
