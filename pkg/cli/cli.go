package cli

import (
	"bufio"
	"context"
	"io"
	"log"
)

type CommandHandler interface {
	Handle(ctx context.Context, command string) error
}

// RunCli passes every line of input to handler until "quit" or end of input.
// Handler errors are logged and do not stop the loop.
func RunCli(logger *log.Logger, input io.Reader, handler CommandHandler) error {
	var ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	var scanner = bufio.NewScanner(input)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return nil
		}
		if commandLine == "" {
			continue
		}
		var err = handler.Handle(ctx, commandLine)
		if err != nil {
			logger.Println(err)
		}
	}
	return scanner.Err()
}
