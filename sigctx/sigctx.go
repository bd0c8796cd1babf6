// Package sigctx provides a context that's canceled on interrupt.
package sigctx

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// New returns a context that's canceled the first time the process gets
// SIGINT or SIGTERM. A second signal kills the process as usual.
func New() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Printf("got %s, shutting down", sig)
		signal.Stop(sigs)
		cancel()
	}()
	return ctx
}
