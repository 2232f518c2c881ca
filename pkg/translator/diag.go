package translator

import "fmt"

// Diagnostic records an advisory, non-fatal condition noticed while lexing
// or generating. Diagnostics never stop the pipeline; callers decide whether
// and how to surface them.
type Diagnostic struct {
	Stage   string // pipeline stage that noticed it: "lex" or "gen"
	Line    int    // 1-based source line, 0 when not tied to a line
	Message string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", d.Stage, d.Line, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Stage, d.Message)
}
