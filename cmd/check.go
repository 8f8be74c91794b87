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

type checkCmd struct {
	url  string
	path string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "check the collection against published draw results" }
func (*checkCmd) Usage() string {
	return `bb check [-url <results_url>] [-path <jsonpath>]

  Fetches the published draw results (cached for a day), extracts the
  winning numbers with a JSONPath expression, and reports which of your
  bonds won. The URL and path default to the [draw] section of the config
  file.
`
}

func (p *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.url, "url", "", "Draw results URL. Overrides the config file.")
	f.StringVar(&p.path, "path", "", "JSONPath selecting the winner list. Overrides the config file.")
}

func (p *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	url, path := cfg.Draw.URL, cfg.Draw.Path
	if p.url != "" {
		url = p.url
	}
	if p.path != "" {
		path = p.path
	}
	if url == "" {
		fmt.Fprintln(os.Stderr, "Error: no draw results URL configured (set [draw] url or pass -url)")
		return subcommands.ExitUsageError
	}

	winners, err := bondbook.FetchDraw(nil, url, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	col := bondbook.LoadCollection(store)
	printMarkdown(renderer.DrawMarkdown(&renderer.DrawReport{
		Source:  url,
		Winners: winners,
		Hits:    bondbook.CheckDraw(col, winners),
		Held:    col.Len(),
	}))
	return subcommands.ExitSuccess
}
