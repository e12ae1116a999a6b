package benchmark

import (
	"context"
	"testing"

	"github.com/ChizhovVadim/Connect4Go/pkg/engine"
)

func TestRun(t *testing.T) {
	var items, err = Load("testdata/Test_sample")
	if err != nil {
		t.Fatal(err)
	}
	for _, threads := range []int{1, 3} {
		var summary, results, err = Run(context.Background(), items, threads, engine.NewOptions())
		if err != nil {
			t.Fatal(err)
		}
		if summary.Positions != len(items) || summary.Failures != 0 {
			t.Error(threads, summary)
		}
		if len(results) != len(items) {
			t.Fatal(threads, len(results))
		}
		for i := range results {
			var r = &results[i]
			if r.Item.Moves != items[i].Moves || !r.OK() || r.Nodes <= 0 {
				t.Error(threads, i, r.Item.Moves, r.Score, r.Nodes)
			}
		}
	}
}

func TestRunWrongScore(t *testing.T) {
	var items, err = Load("testdata/Test_sample")
	if err != nil {
		t.Fatal(err)
	}
	items[2].Expected = 0
	var summary, results, err2 = Run(context.Background(), items, 2, engine.NewOptions())
	if err2 != nil {
		t.Fatal(err2)
	}
	if summary.Failures != 1 || results[2].OK() {
		t.Error(summary)
	}
}

func TestRunCanceled(t *testing.T) {
	var items, err = Load("testdata/Test_sample")
	if err != nil {
		t.Fatal(err)
	}
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	_, _, err = Run(ctx, items, 2, engine.NewOptions())
	if err != context.Canceled {
		t.Error(err)
	}
}

func TestSummary(t *testing.T) {
	var s Summary
	if s.MeanTime() != 0 || s.MeanNodes() != 0 || s.KNodesPerSecond() != 0 {
		t.Error(s)
	}
	s.add(&Result{Item: Item{Expected: 1}, Score: 1, Nodes: 10, Time: 2000})
	s.add(&Result{Item: Item{Expected: 1}, Score: 0, Nodes: 30, Time: 4000})
	if s.Positions != 2 || s.Failures != 1 || s.MeanNodes() != 20 || s.MeanTime() != 3000 {
		t.Error(s)
	}
}
