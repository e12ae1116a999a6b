package main

import (
	"fmt"

	"github.com/ChizhovVadim/Connect4Go/pkg/common"
	"github.com/ChizhovVadim/Connect4Go/pkg/engine"
)

func solveHandler(args []string) error {
	var eng = engine.NewEngine(engine.NewOptions())
	for _, moves := range args {
		var p, err = common.NewPositionFromSequence(moves)
		if err != nil {
			return err
		}
		var si = eng.Search(&p)
		fmt.Println(moves, si.Score)
		logger.Println("solved",
			"moves", moves,
			"plies", engine.MovesToWin(si.Score, p.MovesCount),
			"nodes", si.Nodes,
			"time", si.Time)
	}
	return nil
}
