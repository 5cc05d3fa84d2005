package rules

import "slices"

// All returns every rule in stable order.
func All() []Rule {
	return []Rule{
		&AdjacentOverloadSignatures{},
		&ExplicitFunctionReturnType{},
		&NoExplicitAny{},
		&NoNonNullAssertedOptionalChain{},
		&NoOctal{},
		&NoThrowLiteral{},
		&SingleVarDeclarator{},
	}
}

// Filter selects the active rule set. Rules carrying one of the tags are
// selected, include adds specific codes, exclude removes them. An empty
// selection (no tags, no includes) falls back to the "recommended" tag.
func Filter(include, exclude, tags []string) []Rule {
	if len(tags) == 0 && len(include) == 0 {
		tags = []string{"recommended"}
	}
	var out []Rule
	for _, r := range All() {
		if slices.Contains(exclude, r.Code()) {
			continue
		}
		if slices.Contains(include, r.Code()) || hasAnyTag(r, tags) {
			out = append(out, r)
		}
	}
	return out
}

func hasAnyTag(r Rule, tags []string) bool {
	for _, t := range r.Tags() {
		if slices.Contains(tags, t) {
			return true
		}
	}
	return false
}
