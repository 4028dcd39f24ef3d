// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Start-docs starts the documentation live server for the project it is
installed in.

# Usage

	$ go build -o start-docs ./internal/devtools/start-docs
	$ go build -o bin/serve ./internal/devtools/serve
	$ ./start-docs

Start-docs takes no flags. It runs bin/serve (bin/serve.exe on Windows)
relative to its own location, with its own directory as the docs directory,
and fails if the serve tool isn't there.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
