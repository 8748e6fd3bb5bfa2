package cmd

import (
	"context"
	"os/exec"
)

// Runner executes an external command and returns its combined output.
// Code that shells out takes a Runner so tests can substitute recorded
// output without spawning processes.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Run is the default Runner backed by os/exec. The command is killed when
// the context deadline is exceeded.
func Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
