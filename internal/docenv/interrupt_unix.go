// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build !windows

package docenv

import "os"

func interrupt(p *os.Process) error { return p.Signal(os.Interrupt) }
