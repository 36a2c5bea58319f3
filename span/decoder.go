package span

import "fmt"

// DefaultThreshold is the split probability at or above which a token is
// decoded as starting a new unit.
const DefaultThreshold = 0.5

// DecoderConfig holds decoding parameters.
type DecoderConfig struct {
	// Threshold is the minimum split score at which a word-start token
	// opens a new unit. Zero means DefaultThreshold.
	Threshold float32
}

// Decoder turns noisy per-token class scores into an ordered sequence of
// non-overlapping spans.
type Decoder struct {
	threshold float32
}

// NewDecoder creates a Decoder from cfg.
func NewDecoder(cfg DecoderConfig) *Decoder {
	t := cfg.Threshold
	if t == 0 {
		t = DefaultThreshold
	}
	return &Decoder{threshold: t}
}

// Threshold returns the decoder's split threshold.
func (d *Decoder) Threshold() float32 {
	return d.threshold
}

// Codes labels every score position: Split where the split score reaches
// threshold at a word start, NotSplit elsewhere inside the content, and
// NotRelevant at padding positions from n onward. A continuation sub-token
// (mask entry false) can never split, whatever its score; a word may only
// be split at its first sub-token.
//
// starts must hold at least n entries; scores beyond the mask's length are
// labeled NotRelevant only when they lie at or past n.
func Codes(scores [][2]float32, starts []bool, n int, threshold float32) []ChunkCode {
	codes := make([]ChunkCode, len(scores))
	for i := range scores {
		switch {
		case i >= n:
			codes[i] = NotRelevant
		case !starts[i]:
			codes[i] = NotSplit
		case scores[i][1] >= threshold:
			codes[i] = Split
		default:
			codes[i] = NotSplit
		}
	}
	return codes
}

// Decode converts one sample's per-token (not-split, split) scores into
// predicted spans. Positions [0, offset) are leading reserved tokens and
// content runs through n-1; everything past n-1 is padding and never
// reaches boundary construction. Split labels strictly inside (offset, n)
// become boundaries between the offset on the left and the content length
// on the right, then Build closes the units and drops any collapse at the
// padding seam.
//
// Fails with ErrInvalidInput when n < 1, offset lies outside [0, n), the
// score and mask lengths differ, or they are shorter than n.
func (d *Decoder) Decode(scores [][2]float32, starts []bool, n, offset int) ([]Span, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: content length %d", ErrInvalidInput, n)
	}
	if offset < 0 || offset >= n {
		return nil, fmt.Errorf("%w: offset %d outside [0, %d)", ErrInvalidInput, offset, n)
	}
	if len(scores) != len(starts) {
		return nil, fmt.Errorf("%w: %d scores for %d mask entries", ErrInvalidInput, len(scores), len(starts))
	}
	if len(scores) < n {
		return nil, fmt.Errorf("%w: %d scores for content length %d", ErrInvalidInput, len(scores), n)
	}

	codes := Codes(scores, starts, n, d.threshold)

	bounds := make([]int, 0, n-offset+1)
	bounds = append(bounds, offset)
	for i := offset + 1; i < n; i++ {
		if codes[i] == Split {
			bounds = append(bounds, i)
		}
	}
	bounds = append(bounds, n)

	return Build(bounds), nil
}
