package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tslint/internal/diag"
	"tslint/internal/parser"
)

// finding is the expected shape of one diagnostic. Line is 1-based, col is a
// 0-based byte column. Empty message/hint are not checked.
type finding struct {
	line    int
	col     int
	message string
	hint    string
}

func lintSource(t *testing.T, r Rule, src string) []diag.Diagnostic {
	t.Helper()
	file, err := parser.Parse("test.ts", []byte(src))
	require.NoError(t, err)
	bag := diag.NewBag()
	r.Lint(NewContext(file, bag))
	return bag.Items()
}

func assertLintOK(t *testing.T, r Rule, sources ...string) {
	t.Helper()
	for _, src := range sources {
		assert.Empty(t, lintSource(t, r, src), "expected no findings for:\n%s", src)
	}
}

func assertLintErr(t *testing.T, r Rule, src string, want ...finding) {
	t.Helper()
	got := lintSource(t, r, src)
	require.Len(t, got, len(want), "findings for:\n%s", src)
	for i, w := range want {
		d := got[i]
		assert.Equal(t, r.Code(), d.Code, "code of finding %d", i)
		assert.Equal(t, w.line, d.Range.Start.Line, "line of finding %d", i)
		assert.Equal(t, w.col, d.Range.Start.Col, "col of finding %d", i)
		if w.message != "" {
			assert.Equal(t, w.message, d.Message, "message of finding %d", i)
		}
		if w.hint != "" {
			assert.Equal(t, w.hint, d.Hint, "hint of finding %d", i)
		}
	}
}
