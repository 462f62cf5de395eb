package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/hupe1980/letterbox/dictionary"
)

func runPrefilter(args []string) error {
	fs := flag.NewFlagSet("prefilter", flag.ExitOnError)

	out := fs.String("o", "", "output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one word list file")
	}

	in, err := os.Open(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer in.Close()

	r, err := dictionary.NewReader(fs.Arg(0), in)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer r.Close()

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	if err := dictionary.Prefilter(r, bw); err != nil {
		return err
	}

	return bw.Flush()
}
