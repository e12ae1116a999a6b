package benchmark

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ChizhovVadim/Connect4Go/pkg/engine"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Item  Item
	Score int
	Nodes int64
	Time  time.Duration
}

func (r *Result) OK() bool {
	return r.Score == r.Item.Expected
}

type task struct {
	index int
	item  Item
}

type taskResult struct {
	index  int
	result Result
}

// Run solves every item. Each of the threads workers owns its engine.
// Results are returned in the order of items.
func Run(
	ctx context.Context,
	items []Item,
	threads int,
	options engine.Options,
) (Summary, []Result, error) {
	log.Println("benchmark started",
		"positions", len(items),
		"threads", threads)
	defer log.Println("benchmark finished")

	if threads < 1 {
		threads = 1
	}

	g, ctx := errgroup.WithContext(ctx)

	var tasks = make(chan task)
	var taskResults = make(chan taskResult)
	var results = make([]Result, len(items))
	var summary Summary
	var start = time.Now()

	g.Go(func() error {
		defer close(tasks)
		return loadTasks(ctx, items, tasks)
	})

	g.Go(func() error {
		summary = collectResults(taskResults, results)
		return nil
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < threads; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return solveTasks(ctx, engine.NewEngine(options), tasks, taskResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(taskResults)
		return nil
	})

	var err = g.Wait()
	if err != nil {
		return Summary{}, nil, err
	}
	summary.Elapsed = time.Since(start)
	return summary, results, nil
}

func loadTasks(
	ctx context.Context,
	items []Item,
	tasks chan<- task,
) error {
	for i := range items {
		// select picks randomly when both cases are ready
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case tasks <- task{index: i, item: items[i]}:
		}
	}
	return nil
}

func solveTasks(
	ctx context.Context,
	eng *engine.Engine,
	tasks <-chan task,
	taskResults chan<- taskResult,
) error {
	for t := range tasks {
		var si = eng.Search(&t.item.Position)
		var res = taskResult{
			index: t.index,
			result: Result{
				Item:  t.item,
				Score: si.Score,
				Nodes: si.Nodes,
				Time:  si.Time,
			},
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case taskResults <- res:
		}
	}
	return nil
}

func collectResults(
	taskResults <-chan taskResult,
	results []Result,
) Summary {
	var summary Summary
	for tr := range taskResults {
		results[tr.index] = tr.result
		summary.add(&tr.result)
		if !tr.result.OK() {
			log.Println("wrong score",
				"moves", tr.result.Item.Moves,
				"expected", tr.result.Item.Expected,
				"score", tr.result.Score)
		}
	}
	return summary
}
