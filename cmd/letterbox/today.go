package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/letterbox/blobstore"
	"github.com/hupe1980/letterbox/puzzle"
)

func runToday(args []string) error {
	fs := flag.NewFlagSet("today", flag.ExitOnError)

	var (
		archiveDir = fs.String("archive", "", "record the puzzle in this archive directory")
		url        = fs.String("url", puzzle.DefaultURL, "puzzle page URL")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := puzzle.NewFetcher(puzzle.WithURL(*url))

	p, err := f.Today(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", p.Date.Format(puzzle.DateLayout), p.Input)

	if *archiveDir != "" {
		a := puzzle.NewArchive(blobstore.NewLocalStore(*archiveDir))
		if err := a.Record(ctx, p); err != nil {
			return fmt.Errorf("record puzzle: %w", err)
		}
	}

	return nil
}
