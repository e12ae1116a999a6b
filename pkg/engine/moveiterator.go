package engine

import . "github.com/ChizhovVadim/Connect4Go/pkg/common"

const columnNone = -1

// moveIterator yields the playable columns of a position in search order.
type moveIterator struct {
	position *Position
	order    *[Width]int
	index    int
}

func (mi *moveIterator) Reset() {
	mi.index = 0
}

func (mi *moveIterator) Next() int {
	for mi.index < len(mi.order) {
		var col = mi.order[mi.index]
		mi.index++
		if mi.position.CanPlay(col) {
			return col
		}
	}
	return columnNone
}
