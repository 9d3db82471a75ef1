package runner

import (
	"bytes"
	"context"

	"golang.org/x/sys/execabs"
)

// Output is what a command wrote to its standard streams.
type Output struct {
	Stdout []byte
	Stderr []byte
}

// Commander runs an external program to completion.
type Commander interface {
	Run(ctx context.Context, name string, args ...string) (Output, error)
}

// ExecCommander runs programs as child processes. Dir is the working
// directory; empty means the current one.
type ExecCommander struct {
	Dir string
}

func (c ExecCommander) Run(ctx context.Context, name string, args ...string) (Output, error) {
	cmd := execabs.CommandContext(ctx, name, args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, err
}
