// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package docenv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"go.astrophena.name/base/logger"
)

// Delegation describes how a project hands off to the bootstrapper.
type Delegation struct {
	// Self is the directory of the delegating program. It is also the docs
	// directory passed to the bootstrapper.
	Self string
	// Bootstrapper is the path to the bootstrapper, relative to Self.
	Bootstrapper string
	// ProjectName is passed to the bootstrapper.
	ProjectName string
	// Runner runs the bootstrapper. If nil, ExecRunner is used.
	Runner Runner
}

// Command returns the command that runs the bootstrapper.
func (d *Delegation) Command() Command {
	return Command{
		Dir:  d.Self,
		Name: filepath.Join(d.Self, d.Bootstrapper),
		Args: []string{"-docs-dir", d.Self, "-project-name", d.ProjectName},
	}
}

// Delegate runs the bootstrapper described by d and waits for it to exit.
// If the bootstrapper doesn't exist, Delegate returns an error wrapping
// ErrBootstrapperNotFound without running anything.
func Delegate(ctx context.Context, d *Delegation) error {
	if d.Runner == nil {
		d.Runner = ExecRunner{}
	}

	cmd := d.Command()
	if _, err := os.Stat(cmd.Name); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w at %s", ErrBootstrapperNotFound, cmd.Name)
	} else if err != nil {
		return err
	}

	logger.Info(ctx, "starting bootstrapper", slog.String("project", d.ProjectName))
	err := run(ctx, d.Runner, cmd)
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
