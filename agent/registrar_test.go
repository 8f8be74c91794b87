package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/bondbook"
	"google.golang.org/genai"
)

func testCollection() *bondbook.Collection {
	col := bondbook.NewCollection()
	col.Insert([]bondbook.Identifier{"0000001", "1234567", "1234568"})
	return col
}

func output(t *testing.T, resp *genai.FunctionResponse) string {
	t.Helper()
	if err, ok := resp.Response["error"]; ok {
		t.Fatalf("tool returned error: %v", err)
	}
	out, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("tool returned no output: %+v", resp.Response)
	}
	return out
}

func TestCountBonds(t *testing.T) {
	f := countBonds(testCollection())
	resp := f.Call(context.Background(), "1", nil)
	if got := output(t, resp); got != "3 bonds held" {
		t.Errorf("CountBonds = %q", got)
	}
}

func TestSearchBonds(t *testing.T) {
	f := searchBonds(testCollection())

	resp := f.Call(context.Background(), "1", map[string]any{"query": "1234"})
	got := output(t, resp)
	if !strings.Contains(got, "1234567") || !strings.Contains(got, "1234568") {
		t.Errorf("SearchBonds = %q", got)
	}

	resp = f.Call(context.Background(), "2", map[string]any{"query": "9"})
	if got := output(t, resp); got != "no matching bonds" {
		t.Errorf("SearchBonds without match = %q", got)
	}
}

func TestPreviewIngest_DoesNotMutate(t *testing.T) {
	col := testCollection()
	f := previewIngest(col, bondbook.DefaultOptions())

	resp := f.Call(context.Background(), "1", map[string]any{"input": "0000005-0000007,1234567"})
	got := output(t, resp)
	if !strings.Contains(got, "added 3 bonds") || !strings.Contains(got, "1 duplicates") {
		t.Errorf("PreviewIngest = %q", got)
	}
	if col.Len() != 3 {
		t.Errorf("dry run mutated the collection: %d bonds", col.Len())
	}
}

func TestLibraryRoutesUnknownFunction(t *testing.T) {
	lib := NewLibrary([]Function{countBonds(testCollection())})
	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: "Nope"})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("unknown function should produce an error response: %+v", resp.Response)
	}
}
