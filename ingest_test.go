package bondbook

import (
	"reflect"
	"strings"
	"testing"
)

func TestIngest(t *testing.T) {
	opts := DefaultOptions()

	testCases := []struct {
		name     string
		input    string
		existing []Identifier
		want     Outcome
	}{
		{
			name:  "single bond",
			input: "1234567",
			want:  Outcome{Accepted: []Identifier{"1234567"}},
		},
		{
			name:  "comma separated",
			input: "1234567,0000042",
			want:  Outcome{Accepted: []Identifier{"1234567", "0000042"}},
		},
		{
			name:  "newline and space separated",
			input: "1234567\n0000042 0000043",
			want:  Outcome{Accepted: []Identifier{"1234567", "0000042", "0000043"}},
		},
		{
			name:  "range expands ascending",
			input: "0000005-0000008",
			want:  Outcome{Accepted: []Identifier{"0000005", "0000006", "0000007", "0000008"}},
		},
		{
			name:  "inverted range expands ascending too",
			input: "0000008-0000005",
			want:  Outcome{Accepted: []Identifier{"0000005", "0000006", "0000007", "0000008"}},
		},
		{
			name:  "duplicate within the same input",
			input: "0000001,0000001",
			want:  Outcome{Accepted: []Identifier{"0000001"}, Duplicates: 1},
		},
		{
			name:     "duplicate against the existing collection",
			input:    "0000001,0000002",
			existing: []Identifier{"0000001"},
			want:     Outcome{Accepted: []Identifier{"0000002"}, Duplicates: 1},
		},
		{
			name:  "overlapping ranges in the same input",
			input: "0000001-0000003,0000002-0000004",
			want: Outcome{
				Accepted:   []Identifier{"0000001", "0000002", "0000003", "0000004"},
				Duplicates: 2,
			},
		},
		{
			name:  "over-cap range contributes nothing",
			input: "0000001-9999999",
			want:  Outcome{RangesTooLarge: 1},
		},
		{
			name:  "over-cap range does not block other tokens",
			input: "0000001-9999999,0000042",
			want:  Outcome{Accepted: []Identifier{"0000042"}, RangesTooLarge: 1},
		},
		{
			name:  "malformed buckets",
			input: "12-3456789,123,1234567",
			want: Outcome{
				Accepted:         []Identifier{"1234567"},
				RangesMalformed:  1,
				SinglesMalformed: 1,
			},
		},
		{
			name:  "empty input",
			input: "  \n ,,  ",
			want:  Outcome{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			existing := NewCollection()
			existing.Insert(tc.existing)

			got := Ingest(tc.input, existing, opts)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Ingest(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}

func TestOutcome_Disposition(t *testing.T) {
	testCases := []struct {
		name      string
		o         Outcome
		want      Disposition
		wantClear bool
		severity  Severity
	}{
		{
			name:      "accepted some",
			o:         Outcome{Accepted: []Identifier{"0000001"}, Duplicates: 3, SinglesMalformed: 1},
			want:      Added,
			wantClear: true,
			severity:  SeveritySuccess,
		},
		{
			name:      "pure duplicates clear the input",
			o:         Outcome{Duplicates: 2},
			want:      NothingNew,
			wantClear: true,
			severity:  SeverityWarning,
		},
		{
			name:      "errors keep the input",
			o:         Outcome{Duplicates: 2, SinglesMalformed: 1},
			want:      Invalid,
			wantClear: false,
			severity:  SeverityError,
		},
		{
			name:      "empty input is nothing new",
			o:         Outcome{},
			want:      NothingNew,
			wantClear: true,
			severity:  SeverityWarning,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.o.Disposition(); got != tc.want {
				t.Errorf("Disposition() = %v, want %v", got, tc.want)
			}
			if got := tc.o.ClearInput(); got != tc.wantClear {
				t.Errorf("ClearInput() = %v, want %v", got, tc.wantClear)
			}
			if got := tc.o.Severity(); got != tc.severity {
				t.Errorf("Severity() = %v, want %v", got, tc.severity)
			}
		})
	}
}

func TestOutcome_Message(t *testing.T) {
	testCases := []struct {
		name string
		o    Outcome
		want []string // fragments the message must contain
	}{
		{
			name: "success reports accepted and duplicates",
			o:    Outcome{Accepted: []Identifier{"0000001", "0000002"}, Duplicates: 1},
			want: []string{"added 2 bonds", "1 duplicates"},
		},
		{
			name: "pure duplicate warning",
			o:    Outcome{Duplicates: 3},
			want: []string{"nothing new", "3 duplicates"},
		},
		{
			name: "every non-zero error category is reported",
			o:    Outcome{SinglesMalformed: 2, RangesMalformed: 1, RangesTooLarge: 1, Duplicates: 1},
			want: []string{"2 invalid bonds", "1 malformed ranges", "1 ranges too large", "1 duplicates"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := tc.o.Message()
			for _, fragment := range tc.want {
				if !strings.Contains(msg, fragment) {
					t.Errorf("Message() = %q, missing %q", msg, fragment)
				}
			}
		})
	}
}

func TestIngest_CustomDelimiters(t *testing.T) {
	// Comma-only delimiters keep in-token spaces, so a spaced range stays
	// one token.
	opts := Options{Delimiters: ",\n", MaxSpan: DefaultMaxSpan, AcceptInverted: true}

	got := Ingest("0000005 - 0000007,0000042", NewCollection(), opts)
	want := Outcome{Accepted: []Identifier{"0000005", "0000006", "0000007", "0000042"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ingest() = %+v, want %+v", got, want)
	}
}

func TestIngest_TrimsTokens(t *testing.T) {
	got := Ingest("  1234567  ", NewCollection(), DefaultOptions())
	want := Outcome{Accepted: []Identifier{"1234567"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ingest() = %+v, want %+v", got, want)
	}
}
