// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package ci

//go:generate go tool addcopyright

import (
	"bytes"
	"os"
	"testing"

	"go.astrophena.name/docenv/internal/docenv"
)

func TestGenerate(t *testing.T) {
	if os.Getenv("CI") != "true" {
		t.Skip("this test is only run in CI")
	}
	var w bytes.Buffer
	run(t, &w, "go", "generate")
	run(t, &w, "git", "diff", "--exit-code")
}

func TestGofmt(t *testing.T) {
	var w bytes.Buffer
	run(t, &w, "gofmt", "-d", "-l", "internal")
	if diff := w.String(); diff != "" {
		t.Fatalf("run gofmt on these files:\n\t%v", diff)
	}
}

func TestStaticcheck(t *testing.T) {
	var w bytes.Buffer
	run(t, &w, "go", "tool", "staticcheck", "./...")
}

func run(t *testing.T, buf *bytes.Buffer, name string, args ...string) {
	buf.Reset()
	r := docenv.ExecRunner{Stdout: buf, Stderr: buf}
	if err := r.Run(t.Context(), docenv.Command{Name: name, Args: args}); err != nil {
		t.Fatalf("%s failed: %v:\n%v", name, err, buf.String())
	}
}
