package common

func Min(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

func stoneToChar(stone int8) byte {
	switch stone {
	case FirstPlayer:
		return 'X'
	case SecondPlayer:
		return 'O'
	}
	return '.'
}
