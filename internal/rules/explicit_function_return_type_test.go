package rules

import "testing"

func TestExplicitFunctionReturnType(t *testing.T) {
	rule := &ExplicitFunctionReturnType{}

	t.Run("valid", func(t *testing.T) {
		assertLintOK(t, rule,
			"function fooTyped(): void { }",
			"const bar = (a: string) => { }",
			"const barTyped = (a: string): Promise<void> => { }",
			`class Foo {
  constructor(s: string) {}
}`,
		)
	})

	t.Run("invalid", func(t *testing.T) {
		msg := "Missing return type on function"
		hint := "Add a return type to the function signature"
		assertLintErr(t, rule, "function foo() { }",
			finding{line: 1, col: 0, message: msg, hint: hint})
		assertLintErr(t, rule, `function a() {
  function b() {}
}`,
			finding{line: 1, col: 0, message: msg},
			finding{line: 2, col: 2, message: msg})
		assertLintErr(t, rule, `class Foo {
  bar() {}
}`,
			finding{line: 2, col: 2, message: msg})
	})
}
