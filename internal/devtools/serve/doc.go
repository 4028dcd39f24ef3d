// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Serve sets up a Python virtual environment for MkDocs documentation and runs
the MkDocs live server.

# Usage

	$ go build -o bin/serve ./internal/devtools/serve
	$ bin/serve [flags]

Serve creates a virtual environment in the venv subdirectory of the docs
directory (default: the directory of the serve executable) unless it already
exists, installs docs/requirements.txt found next to the executable and in the
docs directory, and then runs "mkdocs serve --livereload" until interrupted.

Use -dry-run to print the commands without running them.

Serve refuses to start from go run without -docs-dir, since the executable
directory is then a temporary build directory.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
