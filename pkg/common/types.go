package common

import "fmt"

const (
	Width     = 7
	Height    = 6
	BoardSize = Width * Height
)

// Stones on the board. The first player always moves first.
const (
	Empty        int8 = 0
	FirstPlayer  int8 = 1
	SecondPlayer int8 = -1
)

type Position struct {
	Board        [Height][Width]int8
	ColumnHeight [Width]int
	MovesCount   int
	SideToMove   int8
}

// InvalidMoveError is returned when a move sequence names no playable column.
type InvalidMoveError struct {
	Moves  string
	Index  int
	Reason string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %q at %v in %q: %v",
		e.Moves[e.Index], e.Index+1, e.Moves, e.Reason)
}
