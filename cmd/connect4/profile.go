package main

import (
	"flag"
	"os"
	"runtime/pprof"

	"github.com/ChizhovVadim/Connect4Go/pkg/common"
	"github.com/ChizhovVadim/Connect4Go/pkg/engine"
)

//go tool pprof cpu.prof
func profileHandler(args []string) error {
	var (
		cpuprofile = "cpu.prof"
		moves      = "2252576253462244111563365343"
	)
	var flagset = flag.NewFlagSet("profile", flag.ContinueOnError)
	flagset.StringVar(&cpuprofile, "cpuprofile", cpuprofile, "")
	flagset.StringVar(&moves, "moves", moves, "position to solve")
	if err := flagset.Parse(args); err != nil {
		return err
	}

	logger.Println("profile started",
		"cpuprofile", cpuprofile,
		"moves", moves)
	defer logger.Println("profile finished")

	var p, err = common.NewPositionFromSequence(moves)
	if err != nil {
		return err
	}
	f, err := os.Create(cpuprofile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		return err
	}
	defer pprof.StopCPUProfile()

	var si = engine.NewEngine(engine.NewOptions()).Search(&p)
	logger.Println("score", si.Score,
		"nodes", si.Nodes,
		"time", si.Time)
	return nil
}
