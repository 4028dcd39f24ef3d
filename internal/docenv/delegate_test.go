// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package docenv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestDelegate(t *testing.T) {
	self := t.TempDir()
	bootstrapper := filepath.Join("bin", "serve")
	if err := os.MkdirAll(filepath.Join(self, "bin"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(self, bootstrapper), nil, 0o755); err != nil {
		t.Fatal(err)
	}

	r := &recorder{}
	if err := Delegate(t.Context(), &Delegation{
		Self:         self,
		Bootstrapper: bootstrapper,
		ProjectName:  "example",
		Runner:       r,
	}); err != nil {
		t.Fatal(err)
	}

	testutil.AssertEqual(t, r.cmds, []Command{{
		Dir:  self,
		Name: filepath.Join(self, bootstrapper),
		Args: []string{"-docs-dir", self, "-project-name", "example"},
	}})
}

func TestDelegateBootstrapperNotFound(t *testing.T) {
	r := &recorder{}
	err := Delegate(t.Context(), &Delegation{
		Self:         t.TempDir(),
		Bootstrapper: filepath.Join("bin", "serve"),
		ProjectName:  "example",
		Runner:       r,
	})
	if !errors.Is(err, ErrBootstrapperNotFound) {
		t.Fatalf("want %v, got %v", ErrBootstrapperNotFound, err)
	}
	testutil.AssertEqual(t, len(r.cmds), 0)
}

func TestDelegateFailure(t *testing.T) {
	self := t.TempDir()
	if err := os.WriteFile(filepath.Join(self, "serve"), nil, 0o755); err != nil {
		t.Fatal(err)
	}
	r := &recorder{hook: func(_ context.Context, _ int, _ Command) error { return errCommand }}
	err := Delegate(t.Context(), &Delegation{Self: self, Bootstrapper: "serve", Runner: r})
	if !errors.Is(err, errCommand) {
		t.Fatalf("want %v, got %v", errCommand, err)
	}
}
