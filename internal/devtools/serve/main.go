// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/logger"
	"go.astrophena.name/docenv/internal/devtools"
	"go.astrophena.name/docenv/internal/docenv"
)

func main() { cli.Main(new(app)) }

type app struct {
	docsDir     string
	projectName string
	python      string
	dryRun      bool

	// used in tests
	scriptDir string
	runner    docenv.Runner
	dry       dryRunner
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.docsDir, "docs-dir", "", "Documentation `dir` containing mkdocs.yml and docs/ subfolder (default: executable directory).")
	fs.StringVar(&a.projectName, "project-name", docenv.DefaultProjectName, "Project `name` for messages.")
	fs.StringVar(&a.python, "python", "", "Python `interpreter` that creates the virtual environment (default: python3 or python on PATH).")
	fs.BoolVar(&a.dryRun, "dry-run", false, "Print the commands without running them.")
}

func (a *app) Run(ctx context.Context) error {
	return a.run(ctx, cli.GetEnv(ctx).Args)
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, args)
	}

	if a.scriptDir == "" {
		dir, err := devtools.ExecutableDir()
		if err != nil {
			return err
		}
		// The docs dir defaults to the executable directory, which is
		// useless when the go command built us into a temporary one.
		if a.docsDir == "" {
			if err := devtools.CheckInstalled(dir); err != nil {
				return fmt.Errorf("%w, or pass -docs-dir", err)
			}
		}
		a.scriptDir = dir
	}

	return docenv.Run(ctx, a.config())
}

func (a *app) config() *docenv.Config {
	c := &docenv.Config{
		DocsDir:     a.docsDir,
		ScriptDir:   a.scriptDir,
		ProjectName: a.projectName,
		Python:      a.python,
		Runner:      a.runner,
	}
	if a.dryRun {
		c.Runner = &a.dry
	}
	return c
}

// dryRunner logs commands instead of running them.
type dryRunner struct {
	cmds []docenv.Command
}

func (r *dryRunner) Run(ctx context.Context, cmd docenv.Command) error {
	logger.Info(ctx, "would run",
		slog.String("dir", cmd.Dir),
		slog.String("cmd", cmd.String()),
	)
	r.cmds = append(r.cmds, cmd)
	return nil
}
