package main

import (
	"os"

	"github.com/ChizhovVadim/Connect4Go/pkg/cli"
	"github.com/ChizhovVadim/Connect4Go/pkg/engine"
)

func shellHandler(args []string) error {
	var solver = cli.NewSolver(engine.NewEngine(engine.NewOptions()), os.Stdout)
	return cli.RunCli(logger, os.Stdin, solver)
}
