package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amonks/lineup/data"
	"github.com/amonks/lineup/db"
	"github.com/amonks/lineup/lineup"
	"github.com/amonks/lineup/subcmd"
)

func catalog(ctx context.Context, store *db.DB, args []string) error {
	subcmd := subcmd.New("catalog", "list the values each filter accepts")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	payload, err := fetch(ctx, store)
	if err != nil {
		return err
	}

	writeCatalog(os.Stdout, lineup.BuildCatalog(payload.Includes))
	return nil
}

func writeCatalog(w io.Writer, catalog data.Catalog) {
	days := make([]string, len(catalog.Days))
	for i, day := range catalog.Days {
		days[i] = fmt.Sprintf("%s\t%s", day.Value, day.Label)
	}
	printSection(w, "genres", catalog.Genres)
	printSection(w, "days", days)
	printSection(w, "stages", catalog.Stages)
}

func printSection(w io.Writer, name string, values []string) {
	humanPrinter.Fprintf(w, "%s (%d)\n", strings.ToUpper(name), len(values))
	for _, v := range values {
		fmt.Fprintf(w, "  %s\n", v)
	}
}
