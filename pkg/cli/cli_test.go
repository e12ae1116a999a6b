package cli

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/ChizhovVadim/Connect4Go/pkg/engine"
)

func TestRunCli(t *testing.T) {
	var input = strings.NewReader("121212\n\n12x\n22334\nquit\n1212\n")
	var output, logs bytes.Buffer
	var logger = log.New(&logs, "", 0)
	var solver = NewSolver(engine.NewEngine(engine.NewOptions()), &output)

	if err := RunCli(logger, input, solver); err != nil {
		t.Fatal(err)
	}

	var lines = strings.Split(strings.TrimSpace(output.String()), "\n")
	if len(lines) != 2 {
		t.Fatal(output.String())
	}
	var expected = []string{"121212 18 1 ", "22334 -18 "}
	for i := range expected {
		if !strings.HasPrefix(lines[i], expected[i]) {
			t.Error(i, lines[i])
		}
	}
	if !strings.Contains(logs.String(), "invalid move") {
		t.Error(logs.String())
	}
}
