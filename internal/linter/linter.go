// Package linter runs the configured rule set over TypeScript sources.
package linter

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"tslint/internal/config"
	"tslint/internal/diag"
	"tslint/internal/parser"
	"tslint/internal/rules"
)

// Linter holds the active rule set. Rules are stateless, so one Linter can
// lint any number of files, concurrently.
type Linter struct {
	rules []rules.Rule
}

// New builds a linter with the rule set selected by cfg.
func New(cfg *config.Config) *Linter {
	return &Linter{rules: rules.Filter(cfg.Rules.Include, cfg.Rules.Exclude, cfg.Rules.Tags)}
}

// NewWithRules builds a linter over an explicit rule set.
func NewWithRules(rs []rules.Rule) *Linter {
	return &Linter{rules: rs}
}

// Rules returns the active rule set.
func (l *Linter) Rules() []rules.Rule {
	return l.rules
}

// LintSource parses src and runs every active rule over it. Rule findings go
// into the returned bag; only a parse failure is an error.
func (l *Linter) LintSource(path string, src []byte) (*diag.Bag, error) {
	file, err := parser.Parse(path, src)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag()
	l.lintFile(file, bag)
	return bag, nil
}

func (l *Linter) lintFile(file *parser.File, bag *diag.Bag) {
	for _, r := range l.rules {
		r.Lint(rules.NewContext(file, bag))
	}
}

// LintFiles lints all paths concurrently and returns the merged, sorted
// diagnostics. Scans share no state, so each file gets its own bag and the
// merge happens under a lock.
func (l *Linter) LintFiles(ctx context.Context, paths []string) (*diag.Bag, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	var mu sync.Mutex
	total := diag.NewBag()

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file, err := parser.ParseFile(path)
			if err != nil {
				return err
			}
			bag := diag.NewBag()
			l.lintFile(file, bag)
			mu.Lock()
			total.Merge(bag)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	total.Sort()
	return total, nil
}
