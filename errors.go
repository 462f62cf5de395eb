package letterbox

import (
	"errors"
	"fmt"

	"github.com/hupe1980/letterbox/board"
)

var (
	// ErrClosed is returned when the engine is used after Close.
	ErrClosed = errors.New("engine is closed")
)

// ErrMalformedBoard unifies board validation failures surfaced by the
// engine. Board package errors keep their detail via errors.Unwrap.
var ErrMalformedBoard = board.ErrMalformedBoard

func translateBoardError(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("parse board: %w", err)
}
