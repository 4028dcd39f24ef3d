// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package docenv

import "path/filepath"

// VenvDirName is the name of the virtual environment directory created inside
// the docs directory.
const VenvDirName = "venv"

// VenvExecutables returns paths to the Python interpreter and pip inside the
// virtual environment at venvDir, laid out as the venv module does on goos.
func VenvExecutables(venvDir, goos string) (python, pip string) {
	if goos == "windows" {
		return filepath.Join(venvDir, "Scripts", "python.exe"), filepath.Join(venvDir, "Scripts", "pip.exe")
	}
	return filepath.Join(venvDir, "bin", "python"), filepath.Join(venvDir, "bin", "pip")
}

// RequirementsCandidates returns the requirements files that are installed
// when present, in installation order.
func RequirementsCandidates(scriptDir, docsDir string) []string {
	return []string{
		filepath.Join(scriptDir, "docs", "requirements.txt"),
		filepath.Join(docsDir, "docs", "requirements.txt"),
	}
}
