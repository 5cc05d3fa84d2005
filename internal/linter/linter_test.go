package linter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tslint/internal/config"
	"tslint/internal/rules"
)

const brokenOverloads = `function foo(s: string);
function foo(n: number);
function bar(): void {}
function foo(sn: string | number) {}
`

func TestLintSource(t *testing.T) {
	l := New(config.Default())

	t.Run("clean source", func(t *testing.T) {
		bag, err := l.LintSource("clean.ts", []byte("function foo(): void {}\n"))
		require.NoError(t, err)
		assert.Zero(t, bag.Len())
	})

	t.Run("findings from multiple rules", func(t *testing.T) {
		src := brokenOverloads + "const x = 07;\n"
		bag, err := l.LintSource("mixed.ts", []byte(src))
		require.NoError(t, err)

		var codes []string
		for _, d := range bag.Items() {
			assert.Equal(t, "mixed.ts", d.Filepath)
			codes = append(codes, d.Code)
		}
		assert.ElementsMatch(t, []string{"adjacent-overload-signatures", "no-octal"}, codes)
	})
}

func TestLintFiles(t *testing.T) {
	dir := t.TempDir()
	dirty := filepath.Join(dir, "dirty.ts")
	clean := filepath.Join(dir, "clean.ts")
	require.NoError(t, os.WriteFile(dirty, []byte(brokenOverloads), 0o644))
	require.NoError(t, os.WriteFile(clean, []byte("function foo(): void {}\n"), 0o644))

	l := New(config.Default())
	bag, err := l.LintFiles(context.Background(), []string{dirty, clean})
	require.NoError(t, err)

	items := bag.Items()
	require.Len(t, items, 1)
	assert.Equal(t, dirty, items[0].Filepath)
	assert.Equal(t, "adjacent-overload-signatures", items[0].Code)
	assert.Equal(t, 4, items[0].Range.Start.Line)
}

func TestLintFilesMissingFile(t *testing.T) {
	l := New(config.Default())
	_, err := l.LintFiles(context.Background(), []string{filepath.Join(t.TempDir(), "nope.ts")})
	assert.Error(t, err)
}

func TestNewWithRules(t *testing.T) {
	l := NewWithRules(rules.Filter([]string{"no-throw-literal"}, nil, []string{"none"}))
	require.Len(t, l.Rules(), 1)

	bag, err := l.LintSource("t.ts", []byte("throw 'boom';\nconst x = 07;\n"))
	require.NoError(t, err)
	require.Equal(t, 1, bag.Len())
	assert.Equal(t, "no-throw-literal", bag.Items()[0].Code)
}
