package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/etnz/bondbook"
	"github.com/google/subcommands"
)

type copyCmd struct {
	query string
}

func (*copyCmd) Name() string     { return "copy" }
func (*copyCmd) Synopsis() string { return "copy the visible bonds to the system clipboard" }
func (*copyCmd) Usage() string {
	return `bb copy [-q <digits>]

  Copies exactly the bonds that "bb list" with the same filter would show,
  one per line, to the system clipboard. An empty view copies nothing and
  reports a warning. A clipboard failure is reported, never fatal.
`
}

func (p *copyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "Substring filter on the bond numbers.")
}

// systemClipboard adapts the atotto/clipboard package to the core boundary.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

func (p *copyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	col := bondbook.LoadCollection(store)
	bondbook.CopyVisible(col, p.query, systemClipboard{}, notifier{})
	return subcommands.ExitSuccess
}
