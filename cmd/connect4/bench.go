package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"

	"github.com/ChizhovVadim/Connect4Go/internal/benchmark"
	"github.com/ChizhovVadim/Connect4Go/internal/report"
	"github.com/ChizhovVadim/Connect4Go/pkg/engine"
)

func benchHandler(args []string) error {
	var (
		dir        = "~/connect4/benchmark"
		levelName  = "1"
		threads    = runtime.NumCPU()
		outputPath = ""
	)

	var flagset = flag.NewFlagSet("bench", flag.ContinueOnError)
	flagset.StringVar(&dir, "dir", dir, "folder with Test_L*_R* files")
	flagset.StringVar(&levelName, "level", levelName, "level number 1..6 or name")
	flagset.IntVar(&threads, "threads", threads, "positions solved in parallel")
	flagset.StringVar(&outputPath, "out", outputPath, "optional parquet file for per-position results")
	if err := flagset.Parse(args); err != nil {
		return err
	}

	var level, err = benchmark.FindLevel(levelName)
	if err != nil {
		return err
	}
	var path = benchmarkPath(dir, level)

	logger.Println("bench started",
		"level", level,
		"path", path,
		"threads", threads)
	defer logger.Println("bench finished")

	items, err := benchmark.Load(path)
	if err != nil {
		return err
	}
	summary, results, err := benchmark.Run(context.Background(), items, threads, engine.NewOptions())
	if err != nil {
		return err
	}
	fmt.Println(summary)
	if outputPath != "" {
		if err := report.WriteParquet(outputPath, results); err != nil {
			return err
		}
		logger.Println("results saved", "path", outputPath)
	}
	if summary.Failures != 0 {
		return fmt.Errorf("wrong scores %v of %v", summary.Failures, summary.Positions)
	}
	return nil
}
