package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bondbook"
	"github.com/etnz/bondbook/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	query string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the collection, optionally filtered" }
func (*listCmd) Usage() string {
	return `bb list [-q <digits>]

  Displays the collection in order, most recently added first. With -q only
  the bonds containing the given digits are shown.

Usage Examples:
# Show everything.
$ bb list

# Show the bonds containing 1234.
$ bb list -q 1234
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "Substring filter on the bond numbers.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	col := bondbook.LoadCollection(store)
	printMarkdown(renderer.ListMarkdown(&renderer.List{
		Query: p.query,
		Bonds: col.Filter(p.query),
		Total: col.Len(),
	}))
	return subcommands.ExitSuccess
}
