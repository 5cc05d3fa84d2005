package crawler

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Crawler scans a directory for TypeScript source files.
type Crawler struct {
	ignored []string
}

// New creates a crawler. Extra directory names to skip can be passed on top
// of the built-in ignore list.
func New(extraIgnored ...string) *Crawler {
	return &Crawler{
		ignored: append([]string{".git", "node_modules", "dist", "vendor"}, extraIgnored...),
	}
}

// ScanProject walks the root directory and streams every .ts/.tsx path
// through the callback, keeping memory flat for large trees.
func (c *Crawler) ScanProject(root string, onFile func(path string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// Never skip the walk root itself, even if its name is ignored.
			if path != root {
				for _, ign := range c.ignored {
					if d.Name() == ign {
						return filepath.SkipDir
					}
				}
			}
			return nil
		}

		switch strings.ToLower(filepath.Ext(d.Name())) {
		case ".ts", ".tsx":
			onFile(path)
		}
		return nil
	})
}
