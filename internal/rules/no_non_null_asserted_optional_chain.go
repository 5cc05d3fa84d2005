package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"tslint/internal/parser"
)

const (
	noNonNullOptChainCode    = "no-non-null-asserted-optional-chain"
	noNonNullOptChainMessage = "Optional chain expressions can return undefined by design - using a non-null assertion is unsafe and wrong."
)

// NoNonNullAssertedOptionalChain disallows the non-null assertion operator
// directly after an optional chain.
type NoNonNullAssertedOptionalChain struct{}

func (r *NoNonNullAssertedOptionalChain) Code() string {
	return noNonNullOptChainCode
}

func (r *NoNonNullAssertedOptionalChain) Tags() []string {
	return nil
}

func (r *NoNonNullAssertedOptionalChain) Docs() string {
	return `Disallows the use of non-null assertions after an optional chain expression.

Invalid:

    foo?.bar!;
    foo?.bar()!;

Valid:

    foo?.bar;
    (foo?.bar).baz!;`
}

func (r *NoNonNullAssertedOptionalChain) Lint(ctx *Context) {
	parser.Walk(ctx.Root(), func(n *sitter.Node) bool {
		if n.Type() != "non_null_expression" {
			return true
		}
		inner := n.NamedChild(0)
		if inner == nil {
			return true
		}
		flag := chainHasOptional(inner)
		// One parenthesized wrapper still pins the assertion to the chain:
		// (foo?.bar)! asserts the chain itself, while (foo?.bar).baz! does
		// not and stays valid.
		if !flag && inner.Type() == "parenthesized_expression" {
			flag = chainHasOptional(inner.NamedChild(0))
		}
		if flag {
			ctx.Add(n, noNonNullOptChainCode, noNonNullOptChainMessage)
		}
		return true
	})
}

// chainHasOptional walks the member/call spine of n looking for a `?.` link.
// Parentheses end the spine: whatever is inside them is a separate chain.
func chainHasOptional(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case "member_expression", "subscript_expression", "call_expression":
		if hasOptionalChainLink(n) {
			return true
		}
		if obj := n.ChildByFieldName("object"); obj != nil {
			return chainHasOptional(obj)
		}
		if fn := n.ChildByFieldName("function"); fn != nil {
			return chainHasOptional(fn)
		}
	}
	return false
}

func hasOptionalChainLink(n *sitter.Node) bool {
	if n.ChildByFieldName("optional_chain") != nil {
		return true
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		switch n.Child(i).Type() {
		case "optional_chain", "?.":
			return true
		}
	}
	return false
}
