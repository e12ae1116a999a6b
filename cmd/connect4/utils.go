package main

import (
	"os/user"
	"path/filepath"
	"strings"

	"github.com/ChizhovVadim/Connect4Go/internal/benchmark"
)

// benchmarkPath locates the file of level inside dir. A leading "~/" means the home folder.
func benchmarkPath(dir string, level benchmark.Level) string {
	if strings.HasPrefix(dir, "~/") {
		if curUser, err := user.Current(); err == nil {
			dir = filepath.Join(curUser.HomeDir, strings.TrimPrefix(dir, "~/"))
		}
	}
	return level.Path(dir)
}
