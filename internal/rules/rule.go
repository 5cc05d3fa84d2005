// Package rules holds the lint rules and the context they run against.
package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"tslint/internal/diag"
	"tslint/internal/parser"
)

// Rule is a single lint check. Lint walks the file handed to it through the
// context and reports findings through the context's sink; it never fails.
type Rule interface {
	Code() string
	Tags() []string
	Docs() string
	Lint(ctx *Context)
}

// Context carries one parsed file and the diagnostic sink for one rule run.
type Context struct {
	file *parser.File
	sink diag.Sink
}

func NewContext(file *parser.File, sink diag.Sink) *Context {
	return &Context{file: file, sink: sink}
}

// Root returns the file's syntax tree root.
func (c *Context) Root() *sitter.Node {
	return c.file.Root()
}

// Text returns the source text covered by n.
func (c *Context) Text(n *sitter.Node) string {
	return c.file.Text(n)
}

// Add reports a diagnostic anchored at n.
func (c *Context) Add(n *sitter.Node, code, message string) {
	c.AddWithHint(n, code, message, "")
}

// AddWithHint reports a diagnostic anchored at n with a remediation hint.
func (c *Context) AddWithHint(n *sitter.Node, code, message, hint string) {
	c.sink.Add(diag.Diagnostic{
		Filepath: c.file.Path,
		Range:    c.file.RangeOf(n),
		Code:     code,
		Message:  message,
		Hint:     hint,
	})
}
