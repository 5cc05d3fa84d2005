package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"tslint/internal/parser"
)

const explicitReturnTypeCode = "explicit-function-return-type"

// ExplicitFunctionReturnType requires all functions to have explicit return
// types. Arrow functions and constructors are exempt.
type ExplicitFunctionReturnType struct{}

func (r *ExplicitFunctionReturnType) Code() string {
	return explicitReturnTypeCode
}

func (r *ExplicitFunctionReturnType) Tags() []string {
	return nil
}

func (r *ExplicitFunctionReturnType) Docs() string {
	return `Requires all functions to have explicit return types.

Explicit return types have a number of advantages including easier to
understand code and better type safety. It is clear from the signature what
the return type of the function (if any) will be.

Invalid:

    function someCalc() { return 2 * 2; }

Valid:

    function someCalc(): number { return 2 * 2; }`
}

func (r *ExplicitFunctionReturnType) Lint(ctx *Context) {
	parser.Walk(ctx.Root(), func(n *sitter.Node) bool {
		if !isAnnotatableFunction(n, ctx) {
			return true
		}
		if n.ChildByFieldName("return_type") == nil {
			ctx.AddWithHint(n, explicitReturnTypeCode,
				"Missing return type on function",
				"Add a return type to the function signature")
		}
		return true
	})
}

func isAnnotatableFunction(n *sitter.Node, ctx *Context) bool {
	switch n.Type() {
	case "function_declaration", "function_expression", "function",
		"generator_function", "generator_function_declaration", "function_signature":
		return true
	case "method_definition":
		// Constructors cannot carry a return annotation.
		name := n.ChildByFieldName("name")
		return name == nil || ctx.Text(name) != "constructor"
	case "method_signature":
		// Only class method signatures; interface and type-literal members
		// are type declarations, not functions.
		p := n.Parent()
		return p != nil && p.Type() == "class_body"
	}
	return false
}
