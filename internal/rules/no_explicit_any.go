package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"tslint/internal/parser"
)

const (
	noExplicitAnyCode    = "no-explicit-any"
	noExplicitAnyMessage = "`any` type is not allowed"
	noExplicitAnyHint    = "Use a specific type other than `any`"
)

// NoExplicitAny disallows use of the `any` type.
type NoExplicitAny struct{}

func (r *NoExplicitAny) Code() string {
	return noExplicitAnyCode
}

func (r *NoExplicitAny) Tags() []string {
	return []string{"recommended"}
}

func (r *NoExplicitAny) Docs() string {
	return `Disallows use of the any type.

Use of the any type disables the type check system around that variable,
defeating the purpose of Typescript which is to provide type safe code. For a
more type-safe alternative to any, use unknown if you are unable to choose a
more specific type.

Invalid:

    const someNumber: any = "two";
    function foo(): any { return undefined; }

Valid:

    const someNumber: string = "two";
    function foo(): undefined { return undefined; }`
}

func (r *NoExplicitAny) Lint(ctx *Context) {
	parser.Walk(ctx.Root(), func(n *sitter.Node) bool {
		if n.Type() == "predefined_type" && ctx.Text(n) == "any" {
			ctx.AddWithHint(n, noExplicitAnyCode, noExplicitAnyMessage, noExplicitAnyHint)
		}
		return true
	})
}
