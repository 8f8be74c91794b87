package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/bondbook"
	"github.com/google/subcommands"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete every bond in the collection" }
func (*clearCmd) Usage() string {
	return `bb clear [-f]

  Empties the whole collection. Asks for confirmation first, unless -f is
  given. Clearing an already empty collection is a no-op.
`
}

func (p *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "f", false, "Clear without asking for confirmation.")
}

func (p *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	col := bondbook.LoadCollection(store)
	if col.Len() == 0 {
		notifier{}.Post(bondbook.SeverityWarning, "the collection is already empty")
		return subcommands.ExitSuccess
	}

	// Clearing is never silent: the confirmation gate is here, at the
	// boundary, not in the store.
	if !p.force && !confirm(fmt.Sprintf("This will delete all %d bonds. Continue?", col.Len())) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	col.Clear()
	saveOrWarn(store, col)
	notifier{}.Post(bondbook.SeverityWarning, "collection cleared")
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on the terminal, defaulting to no.
func confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
