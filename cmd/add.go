package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/bondbook"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add bond numbers or ranges to the collection" }
func (*addCmd) Usage() string {
	return `bb add <bonds...>
bb add -

  Parses the arguments (or stdin with "-") as bond numbers and ranges,
  separated by commas, spaces or newlines, and adds every new bond to the
  collection. Duplicates are skipped and counted; malformed tokens and
  over-sized ranges are reported without blocking the valid ones.

Usage Examples:
# Add two bonds and a range of a hundred.
$ bb add 1234567 0000042 1111101-1111200

# Paste free-form text from a statement.
$ pbpaste | bb add -
`
}

func (*addCmd) SetFlags(_ *flag.FlagSet) {}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input := strings.Join(f.Args(), " ")
	if input == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			return subcommands.ExitFailure
		}
		input = string(raw)
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	col := bondbook.LoadCollection(store)
	outcome := bondbook.Ingest(input, col, IngestOptions())

	if len(outcome.Accepted) > 0 {
		col.Insert(outcome.Accepted)
		saveOrWarn(store, col)
	}

	notifier{}.Post(outcome.Severity(), outcome.Message())
	if !outcome.ClearInput() {
		// The formatting-error branch: hand the input back for correction.
		fmt.Fprintf(os.Stderr, "Input kept for correction: %q\n", strings.TrimSpace(input))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
