package benchmark

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ChizhovVadim/Connect4Go/pkg/common"
)

// Item is one benchmark record: a move sequence and the exact score of the position it reaches.
type Item struct {
	Moves    string
	Position common.Position
	Expected int
}

func Load(filePath string) ([]Item, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

func Parse(r io.Reader) ([]Item, error) {
	var result []Item
	var scanner = bufio.NewScanner(r)
	var lineNumber = 0
	for scanner.Scan() {
		lineNumber++
		var line = strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var item, err = parseItem(line)
		if err != nil {
			return nil, fmt.Errorf("parse benchmark failed line %v: %w", lineNumber, err)
		}
		result = append(result, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func parseItem(s string) (Item, error) {
	var fields = strings.Fields(s)
	if len(fields) != 2 {
		return Item{}, fmt.Errorf("expected <moves> <score> %q", s)
	}
	var p, err = common.NewPositionFromSequence(fields[0])
	if err != nil {
		return Item{}, err
	}
	expected, err := strconv.Atoi(fields[1])
	if err != nil {
		return Item{}, fmt.Errorf("bad score %q", s)
	}
	return Item{
		Moves:    fields[0],
		Position: p,
		Expected: expected,
	}, nil
}
