package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
)

const name = "Connect4Go"

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

func main() {
	var err = run(os.Args[1:])
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %v bench|solve|shell|profile [flags]", name)
	}
	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"NumCPU", runtime.NumCPU(),
	)

	var ch = NewCommandHandler()
	ch.Add("bench", benchHandler)
	ch.Add("solve", solveHandler)
	ch.Add("shell", shellHandler)
	ch.Add("profile", profileHandler)
	return ch.Execute(args[0], args[1:])
}

type CommandHandler struct {
	items map[string]func(args []string) error
}

func NewCommandHandler() *CommandHandler {
	return &CommandHandler{
		items: make(map[string]func(args []string) error),
	}
}

func (ch *CommandHandler) Add(name string, handler func(args []string) error) {
	ch.items[name] = handler
}

func (ch *CommandHandler) Execute(commandName string, args []string) error {
	handler, found := ch.items[commandName]
	if !found {
		return fmt.Errorf("command not found %v", commandName)
	}
	return handler(args)
}
