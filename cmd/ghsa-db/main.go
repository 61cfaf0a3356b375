package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/gookit/color"

	"github.com/ghsa-tools/ghsa-db/cmd/ghsa-db/cli"
	"github.com/ghsa-tools/ghsa-db/internal/log"
)

func main() {
	cmd := cli.New()

	// drive application control from a single context which can be cancelled.
	// The store writer commits all rows in one transaction, so an interrupted
	// run leaves the destination either untouched or fully updated.
	ctx, cancel := context.WithCancel(context.Background())
	cmd.SetContext(ctx)

	signals := make(chan os.Signal, 10)
	signal.Notify(signals, os.Interrupt)

	defer func() {
		signal.Stop(signals)
		cancel()
	}()

	go func() {
		select {
		case <-signals: // first signal, cancel context
			log.Trace("signal interrupt, stop requested")
			cancel()
		case <-ctx.Done():
		}
		<-signals // second signal, hard exit
		log.Trace("signal interrupt, killing")
		os.Exit(1)
	}()

	if err := cmd.Execute(); err != nil {
		color.Red.Printf("error: %v\n", err)
		defer os.Exit(1)
	}
}
