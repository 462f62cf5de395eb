package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"

	letterbox "github.com/hupe1980/letterbox"
	"github.com/hupe1980/letterbox/board"
	"github.com/hupe1980/letterbox/dictionary"
)

func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)

	var (
		wordsPath  = fs.String("words", "", "word list file (.zst and .lz4 are decompressed transparently)")
		workers    = fs.Int("workers", letterbox.DefaultWorkers(), "solve parallelism")
		logLevel   = fs.String("log", "", "log level (debug, info, warn, error); empty disables logging")
		cpuProfile = fs.String("cpuprofile", "", "write cpu profile to file")
		memProfile = fs.String("memprofile", "", "write memory profile to file")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *wordsPath == "" || fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected -words and exactly one board input")
	}

	input := fs.Arg(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			return fmt.Errorf("create cpu profile: %w", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	opts := []letterbox.Option{letterbox.WithWorkers(*workers)}

	if *logLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		opts = append(opts, letterbox.WithLogLevel(level))
	}

	e := letterbox.New(opts...)
	defer e.Close()

	b, err := board.New(input)
	if err != nil {
		return err
	}

	f, err := os.Open(*wordsPath)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	r, err := dictionary.NewReader(*wordsPath, f)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer r.Close()

	encoded, err := e.Prepare(ctx, b, r)
	if err != nil {
		return err
	}

	ch, err := e.Solve(ctx, input, encoded)
	if err != nil {
		return err
	}

	var last letterbox.Snapshot
	for snap := range ch {
		last = snap
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for _, bucket := range last.Buckets {
		for _, solution := range bucket {
			fmt.Println(solution)
		}
	}

	fmt.Printf("\n%d solutions\n", last.Solutions())

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			return fmt.Errorf("create memory profile: %w", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("write memory profile: %w", err)
		}
	}

	return nil
}
