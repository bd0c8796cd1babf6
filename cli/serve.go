package main

import (
	"context"
	"fmt"

	"github.com/amonks/lineup/data"
	"github.com/amonks/lineup/db"
	"github.com/amonks/lineup/server"
	"github.com/amonks/lineup/subcmd"
)

func serve(ctx context.Context, store *db.DB, args []string) error {
	subcmd := subcmd.New("serve", "fetch the lineup once, then serve it as a filterable web page")
	var (
		port = subcmd.Int("port", 9999, "http port")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	srv, err := server.New()
	if err != nil {
		return err
	}
	srv.Load(ctx, func(ctx context.Context) (*data.Payload, error) {
		return fetch(ctx, store)
	})

	addr := fmt.Sprintf(":%d", *port)
	return server.Run(ctx, srv.Handler(), addr)
}
