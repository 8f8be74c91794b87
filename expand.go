package bondbook

import (
	"errors"
	"fmt"
)

// ErrRangeTooLarge reports a range whose span exceeds the configured cap.
// The whole range is rejected; no identifier from it is ever expanded.
var ErrRangeTooLarge = errors.New("range too large")

// ErrInvertedRange reports an inverted range under a policy that rejects them.
var ErrInvertedRange = errors.New("inverted range")

// Expand produces the ordered sequence of identifiers from lo to hi
// inclusive, each rendered in canonical zero-padded form.
//
// An inverted range (lo > hi) has its bounds swapped when the options accept
// inverted ranges, and fails with ErrInvertedRange otherwise. When the span
// exceeds opts.MaxSpan the whole range fails with ErrRangeTooLarge: rejection
// is all-or-nothing.
func Expand(lo, hi int, opts Options) ([]Identifier, error) {
	if lo > hi {
		if !opts.AcceptInverted {
			return nil, fmt.Errorf("%w: %d-%d", ErrInvertedRange, lo, hi)
		}
		lo, hi = hi, lo
	}
	if hi-lo > opts.MaxSpan {
		return nil, fmt.Errorf("%w: span %d exceeds %d", ErrRangeTooLarge, hi-lo, opts.MaxSpan)
	}
	ids := make([]Identifier, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		ids = append(ids, Format(n))
	}
	return ids, nil
}
