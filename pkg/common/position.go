package common

import (
	"bytes"
	"strconv"
)

// Directions of a four-in-a-row. Each one is scanned both ways from the landing cell.
var alignments = [...]struct{ dx, dy int }{
	{0, 1},  // vertical
	{1, 0},  // horizontal
	{1, 1},  // up-right / down-left
	{1, -1}, // down-right / up-left
}

func NewPosition() Position {
	return Position{
		SideToMove: FirstPlayer,
	}
}

// NewPositionFromSequence replays 1-indexed column digits from the empty board.
func NewPositionFromSequence(moves string) (Position, error) {
	var p = NewPosition()
	for i := 0; i < len(moves); i++ {
		var col, ok = ParseColumn(moves[i])
		if !ok {
			return Position{}, &InvalidMoveError{Moves: moves, Index: i, Reason: "not a column"}
		}
		if !p.CanPlay(col) {
			return Position{}, &InvalidMoveError{Moves: moves, Index: i, Reason: "column full"}
		}
		p.Play(col)
	}
	return p, nil
}

// ParseColumn maps '1'..'7' to a 0-indexed column.
func ParseColumn(ch byte) (int, bool) {
	if ch < '1' || ch >= '1'+Width {
		return 0, false
	}
	return int(ch - '1'), true
}

func ColumnToChar(col int) byte {
	return byte('1' + col)
}

func (p *Position) CanPlay(col int) bool {
	return p.ColumnHeight[col] < Height
}

// Play drops a stone of the side to move into col. Caller must check CanPlay.
func (p *Position) Play(col int) {
	p.Board[p.ColumnHeight[col]][col] = p.SideToMove
	p.ColumnHeight[col]++
	p.MovesCount++
	p.SideToMove = -p.SideToMove
}

// MakeMove writes the position after col into result. The receiver is not changed.
func (src *Position) MakeMove(col int, result *Position) {
	*result = *src
	result.Play(col)
}

// IsWinningMove reports whether the side to move completes four by playing col.
// It must be asked before the move is played.
func (p *Position) IsWinningMove(col int) bool {
	var row = p.ColumnHeight[col]
	for _, dir := range alignments {
		var count = p.countStones(col, row, dir.dx, dir.dy) +
			p.countStones(col, row, -dir.dx, -dir.dy)
		if count >= 3 {
			return true
		}
	}
	return false
}

// countStones counts contiguous stones of the side to move starting next to (col, row).
func (p *Position) countStones(col, row, dx, dy int) int {
	var count = 0
	for x, y := col+dx, row+dy; x >= 0 && x < Width && y >= 0 && y < Height; x, y = x+dx, y+dy {
		if p.Board[y][x] != p.SideToMove {
			break
		}
		count++
	}
	return count
}

func (p *Position) IsFull() bool {
	return p.MovesCount == BoardSize
}

func MirrorPosition(p *Position) Position {
	var result = *p
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			result.Board[row][col] = p.Board[row][Width-1-col]
		}
	}
	for col := 0; col < Width; col++ {
		result.ColumnHeight[col] = p.ColumnHeight[Width-1-col]
	}
	return result
}

// MirrorSequence mirrors every column digit. Other characters are kept as is.
func MirrorSequence(moves string) string {
	var result = []byte(moves)
	for i := range result {
		if col, ok := ParseColumn(result[i]); ok {
			result[i] = ColumnToChar(Width - 1 - col)
		}
	}
	return string(result)
}

func (p *Position) String() string {
	var sb bytes.Buffer
	for row := Height - 1; row >= 0; row-- {
		for col := 0; col < Width; col++ {
			sb.WriteByte(stoneToChar(p.Board[row][col]))
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < Width; col++ {
		sb.WriteByte(ColumnToChar(col))
	}
	sb.WriteString(" moves ")
	sb.WriteString(strconv.Itoa(p.MovesCount))
	sb.WriteString(" side ")
	sb.WriteByte(stoneToChar(p.SideToMove))
	return sb.String()
}
