package span

import "fmt"

// Boundaries converts a word-start mask into unit boundary positions over
// the first n tokens. The result holds every index in [0, n) whose mask
// entry is true, followed by the closing sentinels n-1 and n, so the final
// unit is closed even when the mask carries no interior marks. Coincident
// values collapse into degenerate pairs that Build drops.
//
// The mask's first element must be true: position 0 always starts a unit.
func Boundaries(starts []bool, n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: content length %d", ErrInvalidInput, n)
	}
	if len(starts) < n {
		return nil, fmt.Errorf("%w: mask has %d entries for content length %d", ErrInvalidInput, len(starts), n)
	}
	if !starts[0] {
		return nil, fmt.Errorf("%w: first mask entry must be true", ErrInvalidInput)
	}

	bounds := make([]int, 0, n+2)
	for i := 0; i < n; i++ {
		if starts[i] {
			bounds = append(bounds, i)
		}
	}
	bounds = append(bounds, n-1, n)
	return bounds, nil
}
