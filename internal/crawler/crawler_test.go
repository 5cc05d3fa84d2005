package crawler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("// stub\n"), 0o644))
}

func TestScanProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ts"))
	writeFile(t, filepath.Join(dir, "sub", "b.tsx"))
	writeFile(t, filepath.Join(dir, "c.js"))
	writeFile(t, filepath.Join(dir, "node_modules", "dep.ts"))
	writeFile(t, filepath.Join(dir, "dist", "bundle.ts"))

	var found []string
	c := New()
	require.NoError(t, c.ScanProject(dir, func(path string) {
		rel, err := filepath.Rel(dir, path)
		require.NoError(t, err)
		found = append(found, filepath.ToSlash(rel))
	}))

	assert.ElementsMatch(t, []string{"a.ts", "sub/b.tsx"}, found)
}

func TestScanProjectExtraIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ts"))
	writeFile(t, filepath.Join(dir, "generated", "g.ts"))

	var found []string
	c := New("generated")
	require.NoError(t, c.ScanProject(dir, func(path string) {
		found = append(found, filepath.Base(path))
	}))

	assert.Equal(t, []string{"a.ts"}, found)
}
