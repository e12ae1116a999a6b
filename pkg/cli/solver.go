package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ChizhovVadim/Connect4Go/pkg/common"
	"github.com/ChizhovVadim/Connect4Go/pkg/engine"
)

// Solver answers each move sequence with "<moves> <score> <nodes> <microseconds>".
type Solver struct {
	engine *engine.Engine
	output io.Writer
}

func NewSolver(eng *engine.Engine, output io.Writer) *Solver {
	return &Solver{
		engine: eng,
		output: output,
	}
}

func (s *Solver) Handle(ctx context.Context, command string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var moves = strings.TrimSpace(command)
	var p, err = common.NewPositionFromSequence(moves)
	if err != nil {
		return err
	}
	var si = s.engine.Search(&p)
	_, err = fmt.Fprintln(s.output, moves, si.Score, si.Nodes, si.Time.Microseconds())
	return err
}
