// Package eval measures how well predicted spans recover reference spans.
package eval

import (
	"errors"

	"github.com/aspectlab/go-aspect/span"
)

// ErrDivisionUndefined indicates a coverage ratio was requested before any
// reference span was observed. The ratio has no value in that case; it is
// never coerced to zero.
var ErrDivisionUndefined = errors.New("eval: division undefined: no reference spans observed")

// Intersection counts predicted spans that exactly match a reference span.
// Both sides carry set semantics: duplicates collapse, and only exact
// (start, end) equality counts. Partial overlap does not.
func Intersection(predicted, reference []span.Span) int {
	if len(predicted) == 0 || len(reference) == 0 {
		return 0
	}

	ref := make(map[span.Span]struct{}, len(reference))
	for _, sp := range reference {
		ref[sp] = struct{}{}
	}

	count := 0
	seen := make(map[span.Span]struct{}, len(predicted))
	for _, sp := range predicted {
		if _, dup := seen[sp]; dup {
			continue
		}
		seen[sp] = struct{}{}
		if _, ok := ref[sp]; ok {
			count++
		}
	}
	return count
}

// Coverage accumulates exact-match span coverage across samples. The zero
// value is ready to use. Not safe for concurrent use; observe samples from
// a single goroutine.
type Coverage struct {
	correct    int
	references int
	predicted  int
}

// Observe records one sample's predicted spans against its reference set.
func (c *Coverage) Observe(predicted, reference []span.Span) {
	c.correct += Intersection(predicted, reference)
	c.references += uniqueCount(reference)
	c.predicted += len(predicted)
}

// Ratio returns the fraction of observed reference spans exactly recovered
// by predictions. It fails with ErrDivisionUndefined when no reference
// spans were observed.
func (c *Coverage) Ratio() (float64, error) {
	if c.references == 0 {
		return 0, ErrDivisionUndefined
	}
	return float64(c.correct) / float64(c.references), nil
}

// Correct returns the accumulated exact-match count.
func (c *Coverage) Correct() int { return c.correct }

// References returns the accumulated count of distinct reference spans.
func (c *Coverage) References() int { return c.references }

// Predicted returns the accumulated predicted span count. Diagnostic only;
// no quality judgment is attached to it.
func (c *Coverage) Predicted() int { return c.predicted }

func uniqueCount(spans []span.Span) int {
	if len(spans) < 2 {
		return len(spans)
	}
	set := make(map[span.Span]struct{}, len(spans))
	for _, sp := range spans {
		set[sp] = struct{}{}
	}
	return len(set)
}
