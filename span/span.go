// Package span builds, decodes, and represents contiguous token spans.
//
// A span is an inclusive token-index range covering one unit: a word when
// built from a ground-truth word-start mask, or a candidate aspect/opinion
// phrase when decoded from per-token split scores. Boundary positions mark
// where a split occurs immediately before a token, so adjacent boundaries
// close a unit one index early.
package span

import "fmt"

// Span is an inclusive [Start, End] range of token indices covering one
// contiguous unit.
type Span struct {
	Start int
	End   int
}

// Len returns the number of tokens the span covers.
func (s Span) Len() int {
	return s.End - s.Start + 1
}

// String formats the span as "(start, end)".
func (s Span) String() string {
	return fmt.Sprintf("(%d, %d)", s.Start, s.End)
}

// Build converts an ordered boundary sequence into spans. Each adjacent
// boundary pair (b, next) yields the span [b, next-1]: a boundary value
// marks the split immediately before its index, so the unit ending there
// stops one index earlier. Pairs whose start would exceed their end, such
// as coincident sentinels at the sequence edges, are dropped rather than
// emitted as empty ranges. Fewer than two boundaries yield no spans.
func Build(bounds []int) []Span {
	if len(bounds) < 2 {
		return nil
	}

	var spans []Span
	for i := 0; i < len(bounds)-1; i++ {
		start := bounds[i]
		end := bounds[i+1] - 1
		if start > end {
			continue
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans
}
