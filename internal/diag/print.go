package diag

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	codeColor = color.New(color.FgRed, color.Bold)
	msgColor  = color.New(color.Bold)
	dimColor  = color.New(color.Faint)
)

// Print renders diagnostics for terminals, one block per finding.
func Print(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(w, "%s %s\n", codeColor.Sprintf("(%s)", d.Code), msgColor.Sprint(d.Message))
		fmt.Fprintf(w, " %s %s:%d:%d\n", dimColor.Sprint("-->"), d.Filepath, d.Range.Start.Line, d.Range.Start.Col)
		if d.Hint != "" {
			fmt.Fprintf(w, " %s %s\n", dimColor.Sprint("hint:"), d.Hint)
		}
		fmt.Fprintln(w)
	}
	switch n := len(diags); n {
	case 0:
	case 1:
		fmt.Fprintln(w, "Found 1 problem")
	default:
		fmt.Fprintf(w, "Found %d problems\n", n)
	}
}

// PrintJSON renders diagnostics as a JSON array.
func PrintJSON(w io.Writer, diags []Diagnostic) error {
	if diags == nil {
		diags = []Diagnostic{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}
