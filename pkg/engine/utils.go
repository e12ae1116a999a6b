package engine

import (
	. "github.com/ChizhovVadim/Connect4Go/pkg/common"
)

const (
	stackSize     = BoardSize + 1
	valueDraw     = 0
	MaxScore      = (BoardSize + 1) / 2
	MinScore      = -BoardSize / 2
	ScoreInfinity = BoardSize/2 + 1
)

// winIn is the score of the side to move when it completes four with its next stone.
func winIn(movesCount int) int {
	return (BoardSize + 1 - movesCount) / 2
}

// scoreCeiling bounds the score of a position without an immediate win:
// the side to move cannot win before its second stone from now.
func scoreCeiling(movesCount int) int {
	return (BoardSize - 1 - movesCount) / 2
}

// MovesToWin converts a score into the number of plies until the decisive stone lands,
// counted from a position with movesCount stones. Zero for a draw.
func MovesToWin(score, movesCount int) int {
	if score == valueDraw {
		return 0
	}
	var winnerMoves int
	if score > 0 {
		winnerMoves = BoardSize + 1 - 2*score
		if winnerMoves%2 != movesCount%2 {
			winnerMoves--
		}
	} else {
		winnerMoves = BoardSize + 1 + 2*score
		if winnerMoves%2 == movesCount%2 {
			winnerMoves--
		}
	}
	return winnerMoves - movesCount + 1
}
