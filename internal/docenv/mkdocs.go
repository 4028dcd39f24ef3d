// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package docenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultDevAddr is the address MkDocs serves on when mkdocs.yml doesn't set
// dev_addr.
const DefaultDevAddr = "127.0.0.1:8000"

// MkDocsConfig holds the parts of mkdocs.yml that docenv reports on.
type MkDocsConfig struct {
	// Path is the file the config was read from. Empty if there is none.
	Path     string `yaml:"-"`
	SiteName string `yaml:"site_name"`
	DevAddr  string `yaml:"dev_addr"`
	DocsDir  string `yaml:"docs_dir"`
}

// Addr returns the address the live server listens on.
func (c *MkDocsConfig) Addr() string {
	if c == nil || c.DevAddr == "" {
		return DefaultDevAddr
	}
	return c.DevAddr
}

// ReadMkDocsConfig reads mkdocs.yml (or mkdocs.yaml) from dir. If neither
// exists, it returns an empty config and no error.
//
// Only the fields of MkDocsConfig are decoded, so Python-specific tags used
// elsewhere in the file (like !!python/name) are left alone.
func ReadMkDocsConfig(dir string) (*MkDocsConfig, error) {
	for _, name := range []string{"mkdocs.yml", "mkdocs.yaml"} {
		path := filepath.Join(dir, name)
		b, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return &MkDocsConfig{}, err
		}
		c := &MkDocsConfig{}
		if err := yaml.Unmarshal(b, c); err != nil {
			return &MkDocsConfig{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		c.Path = path
		return c, nil
	}
	return &MkDocsConfig{}, nil
}
