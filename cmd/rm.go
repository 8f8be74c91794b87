package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bondbook"
	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove bond numbers from the collection" }
func (*rmCmd) Usage() string {
	return `bb rm <bond...>

  Removes the given bonds from the collection. Removing a bond that is not
  in the collection is a no-op, not an error.

Usage Examples:
$ bb rm 1234567
`
}

func (*rmCmd) SetFlags(_ *flag.FlagSet) {}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no bond number given")
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	col := bondbook.LoadCollection(store)
	removed := 0
	for _, arg := range f.Args() {
		if col.Delete(bondbook.Identifier(arg)) {
			removed++
		} else {
			notifier{}.Post(bondbook.SeverityWarning, "bond "+arg+" is not in the collection")
		}
	}
	if removed > 0 {
		saveOrWarn(store, col)
		notifier{}.Post(bondbook.SeveritySuccess, fmt.Sprintf("removed %d bonds", removed))
	}
	return subcommands.ExitSuccess
}
