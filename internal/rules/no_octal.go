package rules

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"

	"tslint/internal/parser"
)

const (
	noOctalCode    = "no-octal"
	noOctalMessage = "`Octal number` is not allowed"
)

// Legacy octal syntax: a leading zero followed by digits. 0o... is fine.
var octalPattern = regexp.MustCompile(`^0[0-9]`)

// NoOctal disallows legacy octal number literals.
type NoOctal struct{}

func (r *NoOctal) Code() string {
	return noOctalCode
}

func (r *NoOctal) Tags() []string {
	return []string{"recommended"}
}

func (r *NoOctal) Docs() string {
	return `Disallows expressing octal numbers via a numeric literal beginning with 0.

Invalid:

    const x = 07;

Valid:

    const x = 0o7;`
}

func (r *NoOctal) Lint(ctx *Context) {
	parser.Walk(ctx.Root(), func(n *sitter.Node) bool {
		if n.Type() == "number" && octalPattern.MatchString(ctx.Text(n)) {
			ctx.Add(n, noOctalCode, noOctalMessage)
		}
		return true
	})
}
