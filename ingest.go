package bondbook

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultDelimiters are the token separators accepted in raw input.
const DefaultDelimiters = ", \t\n\r"

// DefaultMaxSpan is the largest accepted range span (end minus start).
const DefaultMaxSpan = 50000

// Options are the named configuration points of the ingestion engine.
type Options struct {
	// Delimiters is the set of runes that split raw input into tokens.
	Delimiters string
	// MaxSpan is the maximum accepted range span. A range whose span
	// exceeds it is rejected whole.
	MaxSpan int
	// AcceptInverted swaps the bounds of an inverted range instead of
	// rejecting it.
	AcceptInverted bool
}

// DefaultOptions returns the most permissive parameterization: comma, space
// and newline delimiters, a 50000 span cap, and inverted ranges accepted.
func DefaultOptions() Options {
	return Options{
		Delimiters:     DefaultDelimiters,
		MaxSpan:        DefaultMaxSpan,
		AcceptInverted: true,
	}
}

// Outcome is the structured result of one ingestion call.
type Outcome struct {
	// Accepted holds the new identifiers in the order they were accepted.
	Accepted []Identifier `json:"accepted"`
	// Duplicates counts identifiers already present in the collection or
	// already accepted earlier in the same call.
	Duplicates int `json:"duplicates"`
	// RangesTooLarge counts ranges rejected by the span cap.
	RangesTooLarge int `json:"rangesTooLarge"`
	// RangesMalformed counts hyphenated tokens that are not strict ranges.
	RangesMalformed int `json:"rangesMalformed"`
	// SinglesMalformed counts non-hyphenated tokens that are not identifiers.
	SinglesMalformed int `json:"singlesMalformed"`
}

// FormatErrors is the total count of malformed or rejected tokens,
// duplicates excluded.
func (o Outcome) FormatErrors() int {
	return o.RangesTooLarge + o.RangesMalformed + o.SinglesMalformed
}

// Disposition is the three-way branch an ingestion outcome falls into.
type Disposition int

const (
	// Added: at least one new identifier was accepted.
	Added Disposition = iota
	// NothingNew: nothing accepted and only duplicates found.
	NothingNew
	// Invalid: nothing accepted and at least one formatting error found.
	Invalid
)

// Disposition classifies the outcome. The decision table is deliberate and
// must not be collapsed: accepted>0 is Added, accepted==0 with zero
// formatting errors is NothingNew, accepted==0 with errors is Invalid.
func (o Outcome) Disposition() Disposition {
	switch {
	case len(o.Accepted) > 0:
		return Added
	case o.FormatErrors() == 0:
		return NothingNew
	default:
		return Invalid
	}
}

// ClearInput reports whether the caller should clear its input field.
// Only the Invalid disposition keeps the input, so the user can correct it.
func (o Outcome) ClearInput() bool { return o.Disposition() != Invalid }

// Severity maps the disposition onto a notification severity.
func (o Outcome) Severity() Severity {
	switch o.Disposition() {
	case Added:
		return SeveritySuccess
	case NothingNew:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// Message renders the user-facing summary of the outcome.
func (o Outcome) Message() string {
	switch o.Disposition() {
	case Added:
		msg := fmt.Sprintf("added %d bonds", len(o.Accepted))
		if o.Duplicates > 0 {
			msg += fmt.Sprintf(", skipped %d duplicates", o.Duplicates)
		}
		return msg
	case NothingNew:
		return fmt.Sprintf("nothing new: %d duplicates already in the collection", o.Duplicates)
	}
	// Invalid: report every non-zero category.
	var parts []string
	if o.SinglesMalformed > 0 {
		parts = append(parts, fmt.Sprintf("%d invalid bonds (must be %d digits)", o.SinglesMalformed, IdentifierWidth))
	}
	if o.RangesMalformed > 0 {
		parts = append(parts, fmt.Sprintf("%d malformed ranges", o.RangesMalformed))
	}
	if o.RangesTooLarge > 0 {
		parts = append(parts, fmt.Sprintf("%d ranges too large", o.RangesTooLarge))
	}
	if o.Duplicates > 0 {
		parts = append(parts, fmt.Sprintf("%d duplicates", o.Duplicates))
	}
	return "nothing added: " + strings.Join(parts, ", ")
}

// Ingest parses raw free-form input into validated identifiers, expands
// ranges, and deduplicates against both the existing collection and the
// identifiers already accepted earlier in the same call.
//
// Ingest does not mutate the collection; the caller inserts o.Accepted when
// the outcome warrants it.
func Ingest(input string, existing *Collection, opts Options) (o Outcome) {
	seen := make(map[Identifier]struct{})

	accept := func(id Identifier) {
		if _, dup := seen[id]; dup || existing.Has(id) {
			o.Duplicates++
			return
		}
		seen[id] = struct{}{}
		o.Accepted = append(o.Accepted, id)
	}

	for _, token := range tokenize(input, opts.Delimiters) {
		switch Classify(token) {
		case TokenSingle:
			accept(Identifier(token))
		case TokenRange:
			lo, hi, err := Bounds(token)
			if err != nil {
				o.RangesMalformed++
				continue
			}
			ids, err := Expand(lo, hi, opts)
			switch {
			case errors.Is(err, ErrRangeTooLarge):
				o.RangesTooLarge++
			case err != nil:
				o.RangesMalformed++
			default:
				// Ascending order makes intra-call duplicate detection
				// deterministic across overlapping ranges.
				for _, id := range ids {
					accept(id)
				}
			}
		case TokenRangeMalformed:
			o.RangesMalformed++
		case TokenSingleMalformed:
			o.SinglesMalformed++
		}
	}
	return o
}

// tokenize splits raw input on the configured delimiter runes, trims each
// token, and drops empty ones. The hyphen is never a delimiter: it belongs
// to range tokens.
func tokenize(input, delimiters string) []string {
	if delimiters == "" {
		delimiters = DefaultDelimiters
	}
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
