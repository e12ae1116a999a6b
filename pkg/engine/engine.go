package engine

import (
	"errors"
	"time"

	. "github.com/ChizhovVadim/Connect4Go/pkg/common"
)

var errBadMoveOrder = errors.New("move order is not a permutation of columns")

// Engine solves positions exactly. An Engine is not safe for concurrent use;
// run one Engine per goroutine.
type Engine struct {
	Options Options
	nodes   int64
	stack   [stackSize]struct {
		position Position
	}
}

type SearchInfo struct {
	Score int
	Nodes int64
	Time  time.Duration
}

// NewEngine panics if options.MoveOrder is not a permutation of the columns.
func NewEngine(options Options) *Engine {
	if !options.validate() {
		panic(errBadMoveOrder)
	}
	return &Engine{
		Options: options,
	}
}

// Search returns the exact score of p for the side to move.
func (e *Engine) Search(p *Position) SearchInfo {
	return e.SearchWindow(p, -ScoreInfinity, ScoreInfinity)
}

// SearchWindow searches p with the initial window [alpha, beta].
// The score is exact when it lies strictly inside the window, otherwise it is a bound.
func (e *Engine) SearchWindow(p *Position, alpha, beta int) SearchInfo {
	var start = time.Now()
	e.nodes = 0
	e.stack[0].position = *p
	var score = e.negamax(alpha, beta, 0)
	return SearchInfo{
		Score: score,
		Nodes: e.nodes,
		Time:  time.Since(start),
	}
}
