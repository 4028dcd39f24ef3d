// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/docenv/internal/devtools"
	"go.astrophena.name/docenv/internal/docenv"
)

const projectName = "docenv"

func main() { cli.Main(cli.AppFunc(run)) }

func run(ctx context.Context) error {
	if err := checkArgs(cli.GetEnv(ctx).Args); err != nil {
		return err
	}

	self, err := devtools.ExecutableDir()
	if err != nil {
		return err
	}
	if err := devtools.CheckInstalled(self); err != nil {
		return err
	}

	return docenv.Delegate(ctx, delegation(self, runtime.GOOS))
}

func checkArgs(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: start-docs takes no arguments", cli.ErrInvalidArgs)
	}
	return nil
}

func delegation(self, goos string) *docenv.Delegation {
	return &docenv.Delegation{
		Self:         self,
		Bootstrapper: devtools.ExecutableName(filepath.FromSlash(devtools.BootstrapperPath), goos),
		ProjectName:  projectName,
	}
}
