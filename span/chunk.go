package span

import "fmt"

// ChunkCode labels one token position for split decoding.
type ChunkCode int8

const (
	// NotSplit marks a token that continues the current unit.
	NotSplit ChunkCode = iota

	// Split marks a token that starts a new unit.
	Split

	// NotRelevant marks a position excluded from decoding, such as padding
	// beyond the sample's content length.
	NotRelevant
)

// String returns the label name.
func (c ChunkCode) String() string {
	switch c {
	case NotSplit:
		return "not-split"
	case Split:
		return "split"
	case NotRelevant:
		return "not-relevant"
	default:
		return fmt.Sprintf("ChunkCode(%d)", int8(c))
	}
}
