package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"tslint/internal/parser"
)

const noThrowLiteralCode = "no-throw-literal"

// NoThrowLiteral disallows throwing literals or undefined instead of an
// error object.
type NoThrowLiteral struct{}

func (r *NoThrowLiteral) Code() string {
	return noThrowLiteralCode
}

func (r *NoThrowLiteral) Tags() []string {
	return nil
}

func (r *NoThrowLiteral) Docs() string {
	return `Disallows throwing literals or other values which are not an instance of Error.

Invalid:

    throw 'error';
    throw 1096;
    throw undefined;

Valid:

    throw new Error("error");`
}

func (r *NoThrowLiteral) Lint(ctx *Context) {
	parser.Walk(ctx.Root(), func(n *sitter.Node) bool {
		if n.Type() != "throw_statement" {
			return true
		}
		arg := n.NamedChild(0)
		if arg == nil {
			return true
		}
		switch arg.Type() {
		case "string", "number", "true", "false", "null", "regex":
			ctx.Add(n, noThrowLiteralCode, "expected an error object to be thrown")
		case "undefined":
			ctx.Add(n, noThrowLiteralCode, "do not throw undefined")
		}
		return true
	})
}
