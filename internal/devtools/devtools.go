// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for development tools.
package devtools

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrTemporaryExecutable is returned by CheckInstalled for executables built
// by go run or go tool, whose directory is a throwaway build directory.
var ErrTemporaryExecutable = errors.New("executable is in a temporary build directory")

// BootstrapperPath is where start-docs expects the serve tool, relative to
// its own directory, without the executable suffix.
const BootstrapperPath = "bin/serve"

// ExecutableDir returns the directory of the running executable, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// ExecutableName returns name with the executable suffix of goos.
func ExecutableName(name, goos string) string {
	if goos == "windows" {
		return name + ".exe"
	}
	return name
}

// CheckInstalled returns an error wrapping ErrTemporaryExecutable if dir looks
// like a directory created by the go command for go run or go tool. Tools
// that resolve paths relative to themselves must be installed with go build
// -o instead.
func CheckInstalled(dir string) error {
	for _, elem := range strings.Split(filepath.ToSlash(dir), "/") {
		if isBuildDir(elem) {
			return fmt.Errorf("%w (%s): build it with go build -o", ErrTemporaryExecutable, dir)
		}
	}
	return nil
}

// isBuildDir reports whether name looks like go-build1234567890.
func isBuildDir(name string) bool {
	suffix, ok := strings.CutPrefix(name, "go-build")
	if !ok || suffix == "" {
		return false
	}
	return strings.Trim(suffix, "0123456789") == ""
}
