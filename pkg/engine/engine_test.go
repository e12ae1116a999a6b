package engine

import (
	"flag"
	"testing"

	. "github.com/ChizhovVadim/Connect4Go/pkg/common"
)

var flagLong = flag.Bool("long", false, "run searches from the opening")

// Fills the board without any four-in-a-row.
const drawSequence = "111111" + "233333322222" + "544444455555" + "677777766666"

func mustPosition(t *testing.T, moves string) Position {
	t.Helper()
	var p, err = NewPositionFromSequence(moves)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSearch(t *testing.T) {
	var tests = []struct {
		moves string
		score int
	}{
		{"121212", 18},
		{"1212121", 18},
		{"112233", 18},
		{"112244", 18},
		{"1223433447", 16},
		{"22334", -18},
		{drawSequence[:41], 0},
		{drawSequence, 0},
	}
	var eng = NewEngine(NewOptions())
	for i, test := range tests {
		for _, moves := range []string{test.moves, MirrorSequence(test.moves)} {
			var p = mustPosition(t, moves)
			var si = eng.Search(&p)
			if si.Score != test.score {
				t.Error(i, moves, test.score, si.Score)
			}
		}
	}
}

func TestSearchFullBoard(t *testing.T) {
	var p = mustPosition(t, drawSequence)
	var si = NewEngine(NewOptions()).Search(&p)
	if si.Score != 0 || si.Nodes != 1 {
		t.Error(si)
	}
}

func TestSearchImmediateWin(t *testing.T) {
	var tests = []string{"121212", "1212121", "112233", "776655", "1223433447", "7665455441"}
	var eng = NewEngine(NewOptions())
	for i, moves := range tests {
		var p = mustPosition(t, moves)
		var si = eng.Search(&p)
		if si.Score != (BoardSize+1-p.MovesCount)/2 {
			t.Error(i, moves, si.Score)
		}
		if si.Nodes != 1 {
			t.Error("children searched", i, moves, si.Nodes)
		}
		if MovesToWin(si.Score, p.MovesCount) != 1 {
			t.Error(i, moves, MovesToWin(si.Score, p.MovesCount))
		}
	}
}

func TestMovesToWin(t *testing.T) {
	var tests = []struct {
		score, movesCount, plies int
	}{
		{0, 10, 0},
		{18, 6, 1},
		{18, 7, 1},
		{-18, 5, 2},
		{1, 0, 41},
		{-1, 1, 40},
		{16, 10, 1},
		{15, 10, 3},
		{-15, 11, 2},
	}
	for i, test := range tests {
		var plies = MovesToWin(test.score, test.movesCount)
		if plies != test.plies {
			t.Error(i, test, plies)
		}
	}
}

func TestCenterOutOrder(t *testing.T) {
	var expected = [Width]int{3, 2, 4, 1, 5, 0, 6}
	if CenterOutOrder() != expected {
		t.Error(CenterOutOrder())
	}
	var options = NewOptions()
	if !options.validate() {
		t.Error(options)
	}
	options.MoveOrder[0] = 2
	if options.validate() {
		t.Error(options)
	}
}

func TestNewEngineBadMoveOrder(t *testing.T) {
	defer func() {
		if r := recover(); r != errBadMoveOrder {
			t.Error(r)
		}
	}()
	var options = NewOptions()
	options.MoveOrder[6] = 3
	NewEngine(options)
	t.Error("no panic")
}

// Scores must not depend on the move order, only node counts may.
func TestMoveOrderDoesNotChangeScore(t *testing.T) {
	var leftToRight = NewOptions()
	for i := range leftToRight.MoveOrder {
		leftToRight.MoveOrder[i] = i
	}
	var eng1 = NewEngine(NewOptions())
	var eng2 = NewEngine(leftToRight)
	for _, moves := range lateGamePositions() {
		var p = mustPosition(t, moves)
		var si1 = eng1.Search(&p)
		var si2 = eng2.Search(&p)
		if si1.Score != si2.Score {
			t.Error(moves, si1.Score, si2.Score)
		}
	}
}

func TestEmptyPosition(t *testing.T) {
	if !*flagLong {
		t.Skip("pass -long to solve the opening")
	}
	var p = NewPosition()
	var si = NewEngine(NewOptions()).Search(&p)
	if si.Score != 1 {
		t.Error(si)
	}
}
