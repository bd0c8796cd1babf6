package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/amonks/lineup/data"
	"github.com/amonks/lineup/db"
	"github.com/amonks/lineup/lineup"
	"github.com/amonks/lineup/setflag"
	"github.com/amonks/lineup/subcmd"
)

var columns = []string{"name", "genre", "day", "stage", "description"}

func list(ctx context.Context, store *db.DB, args []string) error {
	subcmd := subcmd.New("list", "list artists, optionally filtered")
	var (
		genre   = subcmd.String("genre", "", "only artists with this genre")
		day     = subcmd.String("day", "", "only artists playing this day, in English (like 'Friday')")
		stage   = subcmd.String("stage", "", "only artists on this stage")
		asJSON  = subcmd.Bool("json", false, "print json instead of a table")
		showing = setflag.New(columns, "name", "genre", "day", "stage")
	)
	subcmd.Var(showing, "columns", "comma-separated columns to print: "+strings.Join(columns, ", "))
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	payload, err := fetch(ctx, store)
	if err != nil {
		return err
	}

	listing := lineup.NewListing(payload)
	recs := listing.Artists(data.Criteria{Genre: *genre, Day: *day, Stage: *stage})

	if *asJSON {
		return writeJSON(os.Stdout, recs)
	}
	return writeTable(os.Stdout, recs, showing.List(), listing.Len())
}

func writeJSON(w io.Writer, recs []data.DisplayRecord) error {
	bs, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bs))
	return err
}

var humanPrinter = message.NewPrinter(language.English)

func writeTable(w io.Writer, recs []data.DisplayRecord, cols []string, total int) error {
	if len(recs) == 0 {
		fmt.Fprintln(w, lineup.NoArtistsFound)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
	for _, rec := range recs {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = column(rec, col)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	humanPrinter.Fprintf(w, "\n%d of %d artists\n", len(recs), total)
	return nil
}

func column(rec data.DisplayRecord, col string) string {
	switch col {
	case "name":
		return rec.Name
	case "genre":
		return rec.Genre
	case "day":
		return rec.Day
	case "stage":
		return rec.Stage
	case "description":
		return rec.Description
	default:
		return ""
	}
}
