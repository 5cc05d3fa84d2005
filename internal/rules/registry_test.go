package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func codes(rs []Rule) []string {
	var out []string
	for _, r := range rs {
		out = append(out, r.Code())
	}
	return out
}

func TestAll(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range All() {
		assert.False(t, seen[r.Code()], "duplicate rule code %s", r.Code())
		seen[r.Code()] = true
		assert.NotEmpty(t, r.Docs(), "rule %s has no docs", r.Code())
	}
}

func TestFilter(t *testing.T) {
	t.Run("defaults to recommended", func(t *testing.T) {
		got := codes(Filter(nil, nil, nil))
		assert.Equal(t, []string{
			"adjacent-overload-signatures",
			"no-explicit-any",
			"no-octal",
		}, got)
	})

	t.Run("include adds specific rules", func(t *testing.T) {
		got := codes(Filter([]string{"no-throw-literal"}, nil, []string{"recommended"}))
		assert.Contains(t, got, "no-throw-literal")
		assert.Contains(t, got, "no-octal")
	})

	t.Run("exclude removes rules", func(t *testing.T) {
		got := codes(Filter(nil, []string{"no-octal"}, nil))
		assert.NotContains(t, got, "no-octal")
		assert.Contains(t, got, "adjacent-overload-signatures")
	})

	t.Run("include alone selects only those rules", func(t *testing.T) {
		got := codes(Filter([]string{"single-var-declarator"}, nil, []string{"none"}))
		assert.Equal(t, []string{"single-var-declarator"}, got)
	})
}
