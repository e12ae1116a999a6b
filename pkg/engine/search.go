package engine

import (
	. "github.com/ChizhovVadim/Connect4Go/pkg/common"
)

// negamax returns a fail-soft score of the position at stack[height].
func (e *Engine) negamax(alpha, beta, height int) int {
	e.nodes++
	var position = &e.stack[height].position

	if position.IsFull() {
		return valueDraw
	}

	for col := 0; col < Width; col++ {
		if position.CanPlay(col) && position.IsWinningMove(col) {
			return winIn(position.MovesCount)
		}
	}

	var ceiling = scoreCeiling(position.MovesCount)
	if beta > ceiling {
		beta = ceiling
	}
	if alpha >= beta {
		return beta
	}

	var child = &e.stack[height+1].position
	var mi = moveIterator{
		position: position,
		order:    &e.Options.MoveOrder,
	}
	for mi.Reset(); ; {
		var col = mi.Next()
		if col == columnNone {
			break
		}
		position.MakeMove(col, child)
		var score = -e.negamax(-beta, -alpha, height+1)
		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
