// lineup fetches a festival's artists from Contentful and shows them, either
// as a filterable web page or on the command line.
//
// Credentials are kept in a sqlite3 settings file (lineup.db, or $LINEUP_DB);
// set them with 'lineup config set' or 'lineup config import'.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/amonks/lineup/config"
	"github.com/amonks/lineup/contentful"
	"github.com/amonks/lineup/data"
	"github.com/amonks/lineup/db"
	"github.com/amonks/lineup/failure"
	"github.com/amonks/lineup/sigctx"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, failure.Message(err))
		os.Exit(1)
	}
}

var usage = strings.TrimSpace(`
usage: lineup $cmd
valid $cmd are 'serve', 'list', 'catalog', 'config'
for help: lineup $cmd -help
`)

func run() error {
	ctx := sigctx.New()

	if len(os.Args) < 2 {
		return errors.New(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	store, err := db.Open(dbFilename())
	if err != nil {
		return err
	}
	defer store.Close()

	switch cmd {
	case "serve":
		return serve(ctx, store, args)

	case "list":
		return list(ctx, store, args)

	case "catalog":
		return catalog(ctx, store, args)

	case "config":
		return configure(store, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}

func dbFilename() string {
	if filename := os.Getenv("LINEUP_DB"); filename != "" {
		return filename
	}
	return "lineup.db"
}

// fetch loads credentials and does the one request.
func fetch(ctx context.Context, store config.Getter) (*data.Payload, error) {
	creds, err := config.Load(store)
	if err != nil {
		return nil, err
	}
	return contentful.New(creds).FetchArtists(ctx)
}
