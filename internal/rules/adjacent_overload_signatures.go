package rules

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"tslint/internal/parser"
)

const (
	adjacentOverloadCode = "adjacent-overload-signatures"
	adjacentOverloadHint = "Make sure all overloaded signatures are grouped together"
)

// AdjacentOverloadSignatures requires all declarations of one overloaded name
// inside a container to appear consecutively.
type AdjacentOverloadSignatures struct{}

func (r *AdjacentOverloadSignatures) Code() string {
	return adjacentOverloadCode
}

func (r *AdjacentOverloadSignatures) Tags() []string {
	return []string{"recommended"}
}

func (r *AdjacentOverloadSignatures) Docs() string {
	return `Requires overload signatures to be adjacent to each other.

Overloaded signatures which are not next to each other can lead to code which
is hard to read and maintain.

Invalid (bar is declared in-between foo overloads):

    interface FooInterface {
      foo(s: string): void;
      foo(n: number): void;
      bar(): void;
      foo(sn: string | number): void;
    }

Valid (bar is declared after foo):

    interface FooInterface {
      foo(s: string): void;
      foo(n: number): void;
      foo(sn: string | number): void;
      bar(): void;
    }`
}

func (r *AdjacentOverloadSignatures) Lint(ctx *Context) {
	parser.Walk(ctx.Root(), func(n *sitter.Node) bool {
		if isOverloadContainer(n) {
			r.checkContainer(ctx, n)
		}
		return true
	})
}

// overloadKind distinguishes the identity classes members group under.
// A static and an instance member of the same name are separate groups, and
// call/construct signatures group by shape alone.
type overloadKind uint8

const (
	overloadMethod overloadKind = iota
	overloadStatic
	overloadCall
	overloadConstruct
)

// overload is the identity of one member; comparable, so it keys the seen set
// directly.
type overload struct {
	kind overloadKind
	name string
}

func (o overload) displayName() string {
	switch o.kind {
	case overloadCall:
		return "call"
	case overloadConstruct:
		return "new"
	default:
		return o.name
	}
}

// isOverloadContainer reports whether n holds an ordered member list that is
// scanned as its own scope. Statement blocks count only as namespace, module
// or declare-global bodies; plain function bodies are not scanned.
func isOverloadContainer(n *sitter.Node) bool {
	switch n.Type() {
	case "program", "class_body", "object_type", "interface_body":
		return true
	case "statement_block":
		p := n.Parent()
		if p == nil {
			return false
		}
		switch p.Type() {
		case "internal_module", "module", "ambient_declaration":
			return true
		}
	}
	return false
}

// checkContainer runs the linear adjacency scan over one container's member
// list. State never leaves this call, so nested containers always start
// fresh. A member with no identity breaks the current run but does not erase
// what was already seen; comments are not members at all.
func (r *AdjacentOverloadSignatures) checkContainer(ctx *Context, container *sitter.Node) {
	seen := make(map[overload]struct{})
	var last *overload
	for i := 0; i < int(container.NamedChildCount()); i++ {
		member := container.NamedChild(i)
		if member.Type() == "comment" {
			continue
		}
		cur := extractOverload(member, ctx)
		if cur == nil {
			last = nil
			continue
		}
		if _, ok := seen[*cur]; ok && (last == nil || *last != *cur) {
			ctx.AddWithHint(member, adjacentOverloadCode,
				fmt.Sprintf("All '%s' signatures should be adjacent", cur.displayName()),
				adjacentOverloadHint)
		}
		seen[*cur] = struct{}{}
		last = cur
	}
}

// extractOverload maps one member node to its overload identity, or nil when
// the member does not participate in grouping (fields, statements, nested
// declarations, non-literal computed keys). The switch is the closed set of
// member shapes across all supported containers; anything unrecognized is a
// gap, never an error.
func extractOverload(member *sitter.Node, ctx *Context) *overload {
	switch member.Type() {
	case "function_declaration", "generator_function_declaration", "function_signature":
		if name := member.ChildByFieldName("name"); name != nil {
			return &overload{kind: overloadMethod, name: ctx.Text(name)}
		}
		return nil
	case "export_statement":
		// The identity comes from the wrapped declaration; export default
		// with no name yields nothing.
		if decl := member.ChildByFieldName("declaration"); decl != nil {
			return extractOverload(decl, ctx)
		}
		return nil
	case "ambient_declaration":
		// declare function foo: unwrap to the declaration.
		if member.NamedChildCount() > 0 {
			return extractOverload(member.NamedChild(0), ctx)
		}
		return nil
	case "method_definition", "method_signature", "abstract_method_signature":
		name, ok := propertyName(member.ChildByFieldName("name"), ctx)
		if !ok {
			return nil
		}
		kind := overloadMethod
		if hasStaticModifier(member) {
			kind = overloadStatic
		}
		return &overload{kind: kind, name: name}
	case "call_signature":
		return &overload{kind: overloadCall}
	case "construct_signature":
		return &overload{kind: overloadConstruct}
	}
	return nil
}

// propertyName resolves a member key to its string form. Identifier keys,
// quoted string keys and computed keys holding a string or substitution-free
// template literal all resolve; any other computed key does not, so
// [Symbol.iterator] and friends stay out of grouping.
func propertyName(key *sitter.Node, ctx *Context) (string, bool) {
	if key == nil {
		return "", false
	}
	switch key.Type() {
	case "property_identifier", "identifier":
		return ctx.Text(key), true
	case "string":
		return unquote(ctx.Text(key)), true
	case "number":
		return ctx.Text(key), true
	case "computed_property_name":
		inner := key.NamedChild(0)
		if inner == nil {
			return "", false
		}
		switch inner.Type() {
		case "string":
			return unquote(ctx.Text(inner)), true
		case "template_string":
			for i := 0; i < int(inner.NamedChildCount()); i++ {
				if inner.NamedChild(i).Type() == "template_substitution" {
					return "", false
				}
			}
			return strings.Trim(ctx.Text(inner), "`"), true
		}
	}
	return "", false
}

func hasStaticModifier(member *sitter.Node) bool {
	for i := 0; i < int(member.ChildCount()); i++ {
		if member.Child(i).Type() == "static" {
			return true
		}
	}
	return false
}

func unquote(s string) string {
	if len(s) >= 2 {
		if c := s[0]; (c == '"' || c == '\'' || c == '`') && s[len(s)-1] == c {
			return s[1 : len(s)-1]
		}
	}
	return s
}
