package bondbook

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultDrawPath is the JSONPath selecting the winning numbers in the
// draw-results document.
const DefaultDrawPath = "$.winners[*]"

// FetchDraw downloads the published draw results and extracts the winning
// bond identifiers with the given JSONPath expression. Values that are not
// canonical identifiers are rejected: a malformed feed must not silently
// shrink the winner list.
func FetchDraw(client *http.Client, addr, path string) ([]Identifier, error) {
	if client == nil {
		client = daily()
	}
	if path == "" {
		path = DefaultDrawPath
	}

	var doc any
	if err := jwget(client, addr, &doc); err != nil {
		return nil, fmt.Errorf("cannot fetch draw results: %w", err)
	}

	picked, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select winners with %q: %w", path, err)
	}
	values, ok := picked.([]any)
	if !ok {
		return nil, fmt.Errorf("winners selection %q is not a list", path)
	}

	winners := make([]Identifier, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("winner %v is not a string", v)
		}
		if !singlePattern.MatchString(s) {
			return nil, fmt.Errorf("winner %q is not a %d-digit bond number", s, IdentifierWidth)
		}
		winners = append(winners, Identifier(s))
	}
	return winners, nil
}

// CheckDraw returns the held identifiers that appear in the winner list,
// in collection order.
func CheckDraw(c *Collection, winners []Identifier) []Identifier {
	won := make(map[Identifier]struct{}, len(winners))
	for _, id := range winners {
		won[id] = struct{}{}
	}
	var hits []Identifier
	for id := range c.All() {
		if _, ok := won[id]; ok {
			hits = append(hits, id)
		}
	}
	return hits
}
