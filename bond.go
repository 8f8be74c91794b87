package bondbook

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// IdentifierWidth is the fixed number of decimal digits in a bond identifier.
const IdentifierWidth = 7

// Identifier is a bond number in canonical form: exactly 7 decimal digits,
// zero-padded. Identifiers are immutable and compared by string equality.
type Identifier string

// Format renders a numeric bond value in canonical zero-padded form.
// Format(42) is "0000042".
func Format(n int) Identifier {
	return Identifier(fmt.Sprintf("%0*d", IdentifierWidth, n))
}

// Int returns the numeric value of the identifier.
// The identifier is trusted to be canonical; a zero value is returned otherwise.
func (id Identifier) Int() int {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0
	}
	return n
}

var (
	singlePattern = regexp.MustCompile(`^\d{7}$`)
	rangePattern  = regexp.MustCompile(`^(\d{7})\s*-\s*(\d{7})$`)
)

// TokenKind is the shape of a single input token.
type TokenKind int

const (
	// TokenSingle is a lone bond identifier, exactly 7 digits.
	TokenSingle TokenKind = iota
	// TokenRange is two 7-digit bounds separated by a hyphen.
	TokenRange
	// TokenRangeMalformed is a hyphenated token that is not a strict range.
	TokenRangeMalformed
	// TokenSingleMalformed is a non-hyphenated token that is not a strict identifier.
	TokenSingleMalformed
)

func (k TokenKind) String() string {
	switch k {
	case TokenSingle:
		return "single"
	case TokenRange:
		return "range"
	case TokenRangeMalformed:
		return "range-malformed"
	case TokenSingleMalformed:
		return "single-malformed"
	default:
		return "unknown"
	}
}

// Classify reports the shape of a trimmed, non-empty token.
//
// The precedence is significant: the strict range pattern is tried first,
// then any remaining hyphenated token is range-malformed, and only then is
// the strict single pattern tried. So "12-3456789" is range-malformed,
// never single-malformed.
func Classify(token string) TokenKind {
	switch {
	case rangePattern.MatchString(token):
		return TokenRange
	case strings.Contains(token, "-"):
		return TokenRangeMalformed
	case singlePattern.MatchString(token):
		return TokenSingle
	default:
		return TokenSingleMalformed
	}
}

// Bounds extracts the two numeric bounds of a token classified as TokenRange.
// Leading zeros are stripped by the numeric conversion.
func Bounds(token string) (lo, hi int, err error) {
	m := rangePattern.FindStringSubmatch(token)
	if m == nil {
		return 0, 0, fmt.Errorf("not a range token: %q", token)
	}
	// The pattern guarantees both sides parse.
	lo, _ = strconv.Atoi(m[1])
	hi, _ = strconv.Atoi(m[2])
	return lo, hi, nil
}
