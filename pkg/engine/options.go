package engine

import (
	. "github.com/ChizhovVadim/Connect4Go/pkg/common"
)

type Options struct {
	// Columns in the order they are searched. Must be a permutation of 0..Width-1.
	MoveOrder [Width]int
}

func NewOptions() Options {
	return Options{
		MoveOrder: CenterOutOrder(),
	}
}

// CenterOutOrder returns columns by distance from the center: 3, 2, 4, 1, 5, 0, 6.
func CenterOutOrder() [Width]int {
	var result [Width]int
	for i := range result {
		result[i] = Width/2 + (1-2*(i%2))*(i+1)/2
	}
	return result
}

func (o *Options) validate() bool {
	var seen [Width]bool
	for _, col := range o.MoveOrder {
		if col < 0 || col >= Width || seen[col] {
			return false
		}
		seen[col] = true
	}
	return true
}
