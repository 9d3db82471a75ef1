// Command run-exercise builds the named exercise from examples/ and runs it.
//
//	go run ./cmd/run-exercise exo3-either
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ib-77/fpkata/internal/runner"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	r := runner.New(runner.ExecCommander{}, os.Stdout, os.Stderr, logger)

	os.Exit(r.Main(context.Background(), os.Args[1:]))
}
