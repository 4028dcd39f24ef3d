// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package docenv

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Command is an external command to run.
type Command struct {
	// Dir is the working directory of the command.
	Dir string
	// Name is the program to run.
	Name string
	// Args are the program arguments.
	Args []string
}

// String returns the command line as it would be typed in a shell, without
// quoting.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner runs external commands. Run blocks until the command exits and
// returns a non-nil error if it failed to start or exited with a nonzero
// status.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner is a Runner that uses os/exec.
type ExecRunner struct {
	// Stdout and Stderr receive command output. If nil, os.Stdout and
	// os.Stderr are used.
	Stdout io.Writer
	Stderr io.Writer
}

// interruptGrace is how long a command has to exit after being interrupted
// before it is killed.
const interruptGrace = 5 * time.Second

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	cmd.Cancel = func() error { return interrupt(cmd.Process) }
	cmd.WaitDelay = interruptGrace
	return cmd.Run()
}
