// Package cmd implements the CLI application to manage a bond collection.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bondbook"
	"github.com/etnz/bondbook/kvstore"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "collection")
	c.Register(&rmCmd{}, "collection")
	c.Register(&clearCmd{}, "collection")
	c.Register(&listCmd{}, "collection")
	c.Register(&copyCmd{}, "collection")

	c.Register(&checkCmd{}, "draws")

	c.Register(&serveCmd{}, "frontends")
	c.Register(&assistCmd{}, "frontends")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the TOML configuration file (default .bondbook.toml when present)")
var storeBackend = flag.String("store", "", "Store backend: file, sqlite or memory. Overrides the config file.")
var storePath = flag.String("store-path", "", "Path to the store folder or database file. Overrides the config file.")

// OpenStore opens the persistence backend selected by config and flags.
func OpenStore() (kvstore.Store, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	backend, path := cfg.Store.Backend, cfg.Store.Path
	if *storeBackend != "" {
		backend = *storeBackend
	}
	if *storePath != "" {
		path = *storePath
	}
	return kvstore.Open(backend, path)
}

// IngestOptions returns the ingestion configuration points from the config file.
func IngestOptions() bondbook.Options {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		// A broken config file should not change parsing behavior silently.
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		return bondbook.DefaultOptions()
	}
	return cfg.Options()
}

// notifier is the terminal notification sink: one line per notification on
// stderr, so report output stays clean on stdout.
type notifier struct{}

func (notifier) Post(sev bondbook.Severity, msg string) bondbook.Notification {
	icon := "✅"
	switch sev {
	case bondbook.SeverityError:
		icon = "❌"
	case bondbook.SeverityWarning:
		icon = "⚠️"
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", icon, msg)
	return bondbook.Notification{ID: uuid.NewString(), Severity: sev, Message: msg}
}

// saveOrWarn persists the collection, reporting a failure as a notification.
// The in-memory state already changed; a failed write is transient, not fatal.
func saveOrWarn(store kvstore.Store, col *bondbook.Collection) {
	if err := bondbook.SaveCollection(store, col); err != nil {
		notifier{}.Post(bondbook.SeverityError, fmt.Sprintf("could not save your collection: %v", err))
	}
}
