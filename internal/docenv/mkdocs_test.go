// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package docenv

import (
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestReadMkDocsConfig(t *testing.T) {
	cases := map[string]struct {
		docs     string
		wantName string
		wantAddr string
		wantErr  bool
	}{
		"missing": {
			wantAddr: DefaultDevAddr,
		},
		"without dev_addr": {
			docs:     "empty",
			wantName: "Example",
			wantAddr: DefaultDevAddr,
		},
		"with python tags": {
			docs:     "requirements",
			wantName: "Example",
			wantAddr: "127.0.0.1:8001",
		},
		"malformed": {
			docs:     "malformed",
			wantAddr: DefaultDevAddr,
			wantErr:  true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := ReadMkDocsConfig(layout(t, tc.docs))
			if tc.wantErr && err == nil {
				t.Fatal("must fail")
			}
			if !tc.wantErr && err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, c.SiteName, tc.wantName)
			testutil.AssertEqual(t, c.Addr(), tc.wantAddr)
		})
	}
}

func TestReadMkDocsConfigYAMLExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mkdocs.yaml"), []byte("site_name: Other\ndocs_dir: content\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := ReadMkDocsConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, c.Path, filepath.Join(dir, "mkdocs.yaml"))
	testutil.AssertEqual(t, c.SiteName, "Other")
	testutil.AssertEqual(t, c.DocsDir, "content")
}

func TestMkDocsConfigAddrNil(t *testing.T) {
	var c *MkDocsConfig
	testutil.AssertEqual(t, c.Addr(), DefaultDevAddr)
}
