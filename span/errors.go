package span

import "errors"

// ErrInvalidInput indicates a caller broke an input contract: mismatched
// array lengths, an offset outside the content range, a zero content
// length, or a word-start mask whose first element is not true. These are
// contract violations, not transient conditions; callers must fix the
// input rather than retry.
var ErrInvalidInput = errors.New("span: invalid input")
