package password

import (
	"fmt"
	"strings"
	"sync"
)

const (
	// DefaultMaxAttempts bounds the mandatory-class retry loop.
	DefaultMaxAttempts = 100
	// MinCoverageLength is the shortest length for which every selected class
	// is required to appear in the output. Shorter passwords are returned as
	// sampled.
	MinCoverageLength = 4
)

// Option customizes a Generator.
type Option func(*Generator)

// WithMaxAttempts sets the number of samples tried before giving up with
// ErrRetryLimitExceeded. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// Sample is the outcome of one generation together with the number of
// samples it took to satisfy the mandatory-class policy.
type Sample struct {
	Password string
	Attempts int
}

// Generator produces passwords from an injected random source. It is safe for
// concurrent use; calls are serialized on the source.
type Generator struct {
	mu          sync.Mutex
	src         Source
	maxAttempts int
}

// NewGenerator creates a Generator drawing randomness from src. A nil src
// falls back to NewSource.
func NewGenerator(src Source, opts ...Option) *Generator {
	if src == nil {
		src = NewSource()
	}
	g := &Generator{
		src:         src,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// MaxAttempts returns the retry cap in effect.
func (g *Generator) MaxAttempts() int { return g.maxAttempts }

// Generate returns a password of exactly length characters drawn uniformly,
// with replacement, from the pool of the selected classes.
//
// For length >= MinCoverageLength every selected class appears at least once;
// samples missing a class are discarded and redrawn up to MaxAttempts times.
// Below MinCoverageLength the first sample is returned without the check.
func (g *Generator) Generate(length int, classes Classes) (string, error) {
	s, err := g.Sample(length, classes)
	if err != nil {
		return "", err
	}

	return s.Password, nil
}

// Sample behaves like Generate and also reports how many samples were drawn.
func (g *Generator) Sample(length int, classes Classes) (Sample, error) {
	pool := classes.Pool()
	if pool == "" {
		return Sample{}, fmt.Errorf("could not build pool from %s: %w", classes, ErrEmptyPool)
	}
	if length < 1 {
		return Sample{}, fmt.Errorf("length %d: %w", length, ErrInvalidLength)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		pw := g.draw(pool, length)
		if length < MinCoverageLength || covers(pw, classes) {
			return Sample{Password: pw, Attempts: attempt}, nil
		}
	}

	return Sample{}, fmt.Errorf("no password of length %d covering %s after %d attempts: %w",
		length, classes, g.maxAttempts, ErrRetryLimitExceeded)
}

// GenerateBatch runs Generate count times with the same parameters. Results
// are independent and may repeat. The first failure aborts the batch.
func (g *Generator) GenerateBatch(count, length int, classes Classes) ([]string, error) {
	samples, err := g.SampleBatch(count, length, classes)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(samples))
	for i, s := range samples {
		out[i] = s.Password
	}

	return out, nil
}

// SampleBatch is the Sample counterpart of GenerateBatch.
func (g *Generator) SampleBatch(count, length int, classes Classes) ([]Sample, error) {
	if count < 1 {
		return nil, fmt.Errorf("count %d: %w", count, ErrInvalidCount)
	}

	out := make([]Sample, 0, count)
	for i := 0; i < count; i++ {
		s, err := g.Sample(length, classes)
		if err != nil {
			return nil, fmt.Errorf("password %d of %d: %w", i+1, count, err)
		}
		out = append(out, s)
	}

	return out, nil
}

// draw samples length characters from pool. Callers hold g.mu.
func (g *Generator) draw(pool string, length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(pool[g.src.IntN(len(pool))])
	}

	return sb.String()
}

// covers reports whether pw holds at least one character of every class in
// classes.
func covers(pw string, classes Classes) bool {
	for _, c := range classes.Members() {
		if !strings.ContainsAny(pw, c.Alphabet()) {
			return false
		}
	}

	return true
}
