// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package docenv prepares a Python virtual environment for an MkDocs
documentation project and runs the MkDocs live server from it.

# Directory Structure

docenv works with the following layout:

	<docs dir>/mkdocs.yml               MkDocs configuration (optional).
	<docs dir>/docs/requirements.txt    Python requirements (optional).
	<docs dir>/venv                     Virtual environment, created on the
	                                    first run and reused afterwards.
	<script dir>/docs/requirements.txt  Requirements shipped next to the
	                                    tool itself (optional).

Both requirements files are installed if present, script dir first. If the
script dir and the docs dir are the same, the file is installed twice.

# Sequence

Run creates the virtual environment unless it exists, installs the
requirements into it, and then runs

	<venv>/bin/python -m mkdocs serve --livereload

in the docs dir until it exits or the context is cancelled. Any failing
command stops the sequence.
*/
package docenv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.astrophena.name/base/logger"
)

// DefaultProjectName is used in messages when Config.ProjectName is empty.
const DefaultProjectName = "documentation"

var (
	// ErrPythonNotFound is returned when the virtual environment has to be
	// created, but no Python interpreter was given or found on PATH.
	ErrPythonNotFound = errors.New("python interpreter not found")
	// ErrBootstrapperNotFound is returned by Delegate when the bootstrapper
	// isn't where it is expected to be.
	ErrBootstrapperNotFound = errors.New("bootstrapper not found")

	errInvalidPlan = errors.New("plan doesn't end with a serve step")
)

// pythonNames are looked up on PATH, in order, when Config.Python is empty.
var pythonNames = []string{"python3", "python"}

// Config configures a documentation environment.
type Config struct {
	// DocsDir is the documentation directory containing mkdocs.yml and the
	// docs subdirectory. If empty, ScriptDir is used.
	DocsDir string
	// ScriptDir is the directory of the bootstrapper itself. Its
	// docs/requirements.txt is installed first, if present. If empty, the
	// current directory is used.
	ScriptDir string
	// ProjectName is the name of the project used in messages. If empty,
	// DefaultProjectName is used.
	ProjectName string
	// Python is the interpreter that creates the virtual environment. If
	// empty, it's looked up on PATH.
	Python string
	// GOOS selects the virtual environment layout. If empty, runtime.GOOS is
	// used.
	GOOS string
	// Runner runs external commands. If nil, ExecRunner is used.
	Runner Runner

	lookPath func(string) (string, error) // used in tests
}

func (c *Config) setDefaults() {
	if c.DocsDir == "" {
		c.DocsDir = c.ScriptDir
	}
	if c.ProjectName == "" {
		c.ProjectName = DefaultProjectName
	}
	if c.GOOS == "" {
		c.GOOS = runtime.GOOS
	}
	if c.Runner == nil {
		c.Runner = ExecRunner{}
	}
	if c.lookPath == nil {
		c.lookPath = exec.LookPath
	}
}

// StepKind identifies what a step does.
type StepKind string

// Kinds of steps, in the order they appear in a plan.
const (
	StepCreateVenv StepKind = "create-venv"
	StepInstall    StepKind = "install"
	StepServe      StepKind = "serve"
)

// Step is a single external command of a plan.
type Step struct {
	Kind StepKind
	// Requirements is the requirements file installed by a StepInstall step.
	Requirements string
	Command      Command
}

// Plan is the sequence of steps that sets up and serves the documentation.
type Plan struct {
	// DocsDir is the resolved documentation directory.
	DocsDir string
	// VenvDir is the virtual environment directory.
	VenvDir string
	// VenvExists reports whether VenvDir existed when the plan was made.
	VenvExists bool
	// MkDocs is the MkDocs configuration found in DocsDir.
	MkDocs *MkDocsConfig
	// Steps are the steps to run, in order. The last one always serves.
	Steps []Step
}

// SetupSteps returns the steps that come before serving.
func (p *Plan) SetupSteps() []Step {
	if len(p.Steps) == 0 {
		return nil
	}
	return p.Steps[:len(p.Steps)-1]
}

// ServeStep returns the step that runs the live server. It reports false if
// the plan doesn't end with one.
func (p *Plan) ServeStep() (Step, bool) {
	if len(p.Steps) == 0 || p.Steps[len(p.Steps)-1].Kind != StepServe {
		return Step{}, false
	}
	return p.Steps[len(p.Steps)-1], true
}

// URL returns the address where the documentation will be served.
func (p *Plan) URL() string { return "http://" + p.MkDocs.Addr() }

func (p *Plan) validate() error {
	if _, ok := p.ServeStep(); !ok {
		return errInvalidPlan
	}
	return nil
}

// MakePlan inspects the filesystem and returns the steps Run would perform.
// It doesn't run anything.
func MakePlan(ctx context.Context, c *Config) (*Plan, error) {
	c.setDefaults()

	docsDir, err := filepath.Abs(c.DocsDir)
	if err != nil {
		return nil, err
	}
	p := &Plan{
		DocsDir: docsDir,
		VenvDir: filepath.Join(docsDir, VenvDirName),
	}

	mc, err := ReadMkDocsConfig(docsDir)
	if err != nil {
		logger.Error(ctx, "ignoring MkDocs configuration", slog.Any("err", err))
	}
	p.MkDocs = mc

	switch _, err := os.Stat(p.VenvDir); {
	case err == nil:
		p.VenvExists = true
	case errors.Is(err, fs.ErrNotExist):
		python, err := c.hostPython()
		if err != nil {
			return nil, err
		}
		p.Steps = append(p.Steps, Step{
			Kind:    StepCreateVenv,
			Command: Command{Dir: docsDir, Name: python, Args: []string{"-m", "venv", VenvDirName}},
		})
	default:
		return nil, err
	}

	python, pip := VenvExecutables(p.VenvDir, c.GOOS)

	for _, req := range RequirementsCandidates(c.ScriptDir, docsDir) {
		req, err := filepath.Abs(req)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(req); errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, err
		}
		p.Steps = append(p.Steps, Step{
			Kind:         StepInstall,
			Requirements: req,
			Command:      Command{Dir: docsDir, Name: pip, Args: []string{"install", "-r", req}},
		})
	}

	p.Steps = append(p.Steps, Step{
		Kind:    StepServe,
		Command: Command{Dir: docsDir, Name: python, Args: []string{"-m", "mkdocs", "serve", "--livereload"}},
	})

	return p, nil
}

func (c *Config) hostPython() (string, error) {
	if c.Python != "" {
		return c.Python, nil
	}
	for _, name := range pythonNames {
		if path, err := c.lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %v on PATH", ErrPythonNotFound, pythonNames)
}

// Run sets up the virtual environment and serves the documentation until
// MkDocs exits or ctx is cancelled.
func Run(ctx context.Context, c *Config) error {
	p, err := MakePlan(ctx, c)
	if err != nil {
		return err
	}
	if err := Setup(ctx, c, p); err != nil {
		return err
	}
	return Serve(ctx, c, p)
}

// Setup runs the steps of p that come before serving, stopping at the first
// failure.
func Setup(ctx context.Context, c *Config, p *Plan) error {
	if err := p.validate(); err != nil {
		return err
	}
	c.setDefaults()

	logger.Info(ctx, "setting up environment", slog.String("project", c.ProjectName))

	if p.VenvExists {
		logger.Info(ctx, "virtual environment already exists", slog.String("dir", p.VenvDir))
	}

	installing := false
	for _, step := range p.SetupSteps() {
		switch step.Kind {
		case StepCreateVenv:
			logger.Info(ctx, "creating virtual environment", slog.String("dir", p.VenvDir))
		case StepInstall:
			if !installing {
				logger.Info(ctx, "installing required packages")
				installing = true
			}
			logger.Info(ctx, "installing from requirements file", slog.String("file", step.Requirements))
		}
		if err := run(ctx, c.Runner, step.Command); err != nil {
			return err
		}
	}
	return nil
}

// Serve runs the MkDocs live server of p in the foreground. Cancelling ctx
// stops the server and isn't treated as a failure.
func Serve(ctx context.Context, c *Config, p *Plan) error {
	step, ok := p.ServeStep()
	if !ok {
		return errInvalidPlan
	}
	c.setDefaults()

	logger.Info(ctx, "starting MkDocs live server",
		slog.String("url", p.URL()),
		slog.String("hint", "paste the URL into the browser address bar, press Ctrl+C to stop the server"),
	)
	if p.MkDocs != nil && p.MkDocs.SiteName != "" {
		logger.Info(ctx, "serving site", slog.String("name", p.MkDocs.SiteName))
	}

	err := run(ctx, c.Runner, step.Command)
	if err != nil && ctx.Err() != nil {
		logger.Info(ctx, "live server stopped")
		return nil
	}
	return err
}

func run(ctx context.Context, r Runner, cmd Command) error {
	logger.Info(ctx, "running command", slog.String("cmd", cmd.String()))
	if err := r.Run(ctx, cmd); err != nil {
		return fmt.Errorf("running %q: %w", cmd, err)
	}
	return nil
}
