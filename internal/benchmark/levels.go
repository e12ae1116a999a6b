package benchmark

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Level is one file of the benchmark corpus.
// L is the game stage (3 end, 2 middle, 1 beginning), R the difficulty rating.
type Level struct {
	Number int
	Name   string
	File   string
}

var Levels = []Level{
	{1, "End-Easy", "Test_L3_R1"},
	{2, "Middle-Easy", "Test_L2_R1"},
	{3, "Middle-Medium", "Test_L2_R2"},
	{4, "Begin-Easy", "Test_L1_R1"},
	{5, "Begin-Medium", "Test_L1_R2"},
	{6, "Begin-Hard", "Test_L1_R3"},
}

// FindLevel accepts a level number, name or file name, ignoring case.
func FindLevel(s string) (Level, error) {
	if n, err := strconv.Atoi(s); err == nil {
		for _, level := range Levels {
			if level.Number == n {
				return level, nil
			}
		}
		return Level{}, fmt.Errorf("level not found %v", s)
	}
	for _, level := range Levels {
		if strings.EqualFold(level.Name, s) || strings.EqualFold(level.File, s) {
			return level, nil
		}
	}
	return Level{}, fmt.Errorf("level not found %v", s)
}

func (l Level) Path(dir string) string {
	return filepath.Join(dir, l.File)
}

func (l Level) String() string {
	return fmt.Sprintf("%v %v (%v)", l.Number, l.Name, l.File)
}
