package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"tslint/internal/parser"
)

const singleVarDeclaratorCode = "single-var-declarator"

// SingleVarDeclarator disallows declaring multiple variables in one
// var/let/const statement.
type SingleVarDeclarator struct{}

func (r *SingleVarDeclarator) Code() string {
	return singleVarDeclaratorCode
}

func (r *SingleVarDeclarator) Tags() []string {
	return nil
}

func (r *SingleVarDeclarator) Docs() string {
	return `Disallows multiple variable definitions in the same declaration statement.

Invalid:

    const foo = 1, bar = '2';

Valid:

    const foo = 1;
    const bar = '2';`
}

func (r *SingleVarDeclarator) Lint(ctx *Context) {
	parser.Walk(ctx.Root(), func(n *sitter.Node) bool {
		switch n.Type() {
		case "variable_declaration", "lexical_declaration":
			if countDeclarators(n) > 1 {
				ctx.Add(n, singleVarDeclaratorCode, "Multiple variable declarators are not allowed")
			}
		}
		return true
	})
}

func countDeclarators(n *sitter.Node) int {
	count := 0
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() == "variable_declarator" {
			count++
		}
	}
	return count
}
