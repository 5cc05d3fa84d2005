// Package parser turns TypeScript sources into tree-sitter syntax trees and
// gives rules a small navigation surface over them.
package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"tslint/internal/diag"
)

// File is one parsed source file. The tree is kept alive for the lifetime of
// the File; nodes handed out by Root remain valid until then.
type File struct {
	Path string
	Src  []byte
	tree *sitter.Tree
}

// ParseFile reads and parses path.
func ParseFile(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Parse(path, src)
}

// Parse parses src. The path selects the grammar (.tsx uses the TSX variant)
// and is carried into diagnostics.
func Parse(path string, src []byte) (*File, error) {
	p := sitter.NewParser()
	p.SetLanguage(languageFor(path))
	tree, err := p.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return &File{Path: path, Src: src, tree: tree}, nil
}

func languageFor(path string) *sitter.Language {
	if strings.EqualFold(filepath.Ext(path), ".tsx") {
		return tsx.GetLanguage()
	}
	return typescript.GetLanguage()
}

// Root returns the root node of the syntax tree.
func (f *File) Root() *sitter.Node {
	return f.tree.RootNode()
}

// Text returns the source text covered by n.
func (f *File) Text(n *sitter.Node) string {
	return n.Content(f.Src)
}

// RangeOf converts a node's span into a diagnostic range.
func (f *File) RangeOf(n *sitter.Node) diag.Range {
	start := n.StartPoint()
	end := n.EndPoint()
	return diag.Range{
		Start: diag.Position{Line: int(start.Row) + 1, Col: int(start.Column)},
		End:   diag.Position{Line: int(end.Row) + 1, Col: int(end.Column)},
	}
}

// Walk visits n and every named descendant in preorder. If visit returns
// false the node's subtree is skipped.
func Walk(n *sitter.Node, visit func(*sitter.Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		Walk(n.NamedChild(i), visit)
	}
}
