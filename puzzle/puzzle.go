package puzzle

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/hupe1980/letterbox/board"
)

// DateLayout is the wire format for puzzle publication dates.
const DateLayout = "2006-01-02"

// ErrNoGameData is returned when a page contains no embedded game data.
var ErrNoGameData = errors.New("no game data found in page")

// SideError reports an invalid side in embedded game data.
type SideError struct {
	Side   string
	Reason string
}

func (e *SideError) Error() string {
	return fmt.Sprintf("invalid side %q: %s", e.Side, e.Reason)
}

// Puzzle is a single published puzzle: its publication date and the
// twelve-letter input, four sides of three letters in page order.
type Puzzle struct {
	Date  time.Time
	Input string
}

// Normalized returns the input with the letters of each side sorted.
// Two puzzles with the same sides in a different order normalize to the
// same string, which makes it the archive lookup key.
func (p Puzzle) Normalized() string {
	return Normalize(p.Input)
}

// Normalize sorts the letters within each three-letter side of input.
// Lowercase letters are folded up first.
func Normalize(input string) string {
	up := strings.ToUpper(input)

	var sb strings.Builder
	sb.Grow(len(up))

	for i := 0; i < len(up); i += 3 {
		end := min(i+3, len(up))

		side := []byte(up[i:end])
		sort.Slice(side, func(a, b int) bool { return side[a] < side[b] })
		sb.Write(side)
	}

	return sb.String()
}

var gameDataRE = regexp.MustCompile(`window\.gameData\s*?=\s*?(\{.*?\})`)

type gameData struct {
	Sides     []string `json:"sides"`
	PrintDate string   `json:"printDate"`
}

// ParseGameData extracts the puzzle embedded in the page body as
// "window.gameData = {...}". The sides must be four groups of three
// uppercase ASCII letters forming a valid board, and printDate must be
// a YYYY-MM-DD date.
func ParseGameData(body []byte) (Puzzle, error) {
	m := gameDataRE.FindSubmatch(body)
	if m == nil {
		return Puzzle{}, ErrNoGameData
	}

	var gd gameData
	if err := json.Unmarshal(m[1], &gd); err != nil {
		return Puzzle{}, fmt.Errorf("decode game data: %w", err)
	}

	if len(gd.Sides) != 4 {
		return Puzzle{}, fmt.Errorf("expected 4 sides, got %d", len(gd.Sides))
	}

	var input strings.Builder
	for _, side := range gd.Sides {
		if err := validateSide(side); err != nil {
			return Puzzle{}, err
		}
		input.WriteString(side)
	}

	if _, err := board.New(input.String()); err != nil {
		return Puzzle{}, fmt.Errorf("game data board: %w", err)
	}

	date, err := time.Parse(DateLayout, gd.PrintDate)
	if err != nil {
		return Puzzle{}, fmt.Errorf("parse printDate %q: %w", gd.PrintDate, err)
	}

	return Puzzle{Date: date, Input: input.String()}, nil
}

func validateSide(side string) error {
	if len(side) != 3 {
		return &SideError{Side: side, Reason: "must have exactly 3 letters"}
	}

	for i := 0; i < len(side); i++ {
		if side[i] < 'A' || side[i] > 'Z' {
			return &SideError{Side: side, Reason: "letters must be uppercase ASCII"}
		}
	}

	return nil
}
