package dictionary

import (
	"bufio"
	"io"
	"strings"

	"github.com/hupe1980/letterbox/letters"
)

// Prefilter copies the words from r to w that could ever be played on
// some board: length 3 to 10 or exactly 12, ASCII letters only, no
// letter repeated. Output words are uppercased, one per line, in input
// order. Other lines are dropped. Above ten letters only the full
// twelve-letter form is kept.
func Prefilter(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		n := len(line)
		if n < MinWordLen || n == 11 || n > letters.Capacity {
			continue
		}

		seq, err := letters.ParseSequence(line)
		if err != nil {
			continue
		}

		if seq.Mask().Len() != n {
			continue
		}

		if _, err := bw.WriteString(seq.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	return bw.Flush()
}
