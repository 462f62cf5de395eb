// Command letterbox solves Letter Boxed puzzles from the command line
// and fetches the current daily puzzle.
//
// Usage:
//
//	letterbox solve -words words.txt[.zst|.lz4] [-workers N] ABCDEFGHIJKL
//	letterbox today [-archive dir]
//	letterbox prefilter [-o out.txt] words.txt[.zst|.lz4]
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error

	switch os.Args[1] {
	case "solve":
		err = runSolve(os.Args[2:])
	case "today":
		err = runToday(os.Args[2:])
	case "prefilter":
		err = runPrefilter(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <solve|today|prefilter> [options]\n", os.Args[0])
}
