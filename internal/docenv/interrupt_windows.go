// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package docenv

import "os"

// Windows can't deliver os.Interrupt to another process. The console already
// sent Ctrl+C to the whole process group, so just kill what is left.
func interrupt(p *os.Process) error { return p.Kill() }
