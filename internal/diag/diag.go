package diag

import "fmt"

// Position is a location inside a source file. Line is 1-based,
// Col is a 0-based byte column, matching editor conventions.
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Range covers the source text of the node a diagnostic is anchored at.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Diagnostic is a single lint finding.
type Diagnostic struct {
	Filepath string `json:"filepath"`
	Range    Range  `json:"range"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Hint     string `json:"hint,omitempty"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: (%s) %s", d.Filepath, d.Range.Start.Line, d.Range.Start.Col, d.Code, d.Message)
}

// Sink receives diagnostics from rules. Implementations must preserve
// insertion order; Add never fails from the caller's point of view.
type Sink interface {
	Add(d Diagnostic)
}
