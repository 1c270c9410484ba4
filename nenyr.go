// Package nenyr parses Nenyr source units — the declarative DSL describing
// modular, context-aware CSS — into a validated AST plus a diagnostic list.
// It is the only entry point consumers outside pkgs/ need: Parse lexes and
// parses a single .nyr source unit in one synchronous, allocation-owning
// call; a Parser is never reused across invocations and holds no
// package-level state.
package nenyr

import (
	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
	"github.com/nenyr-lang/nenyr-go/pkgs/diagnostics"
	"github.com/nenyr-lang/nenyr-go/pkgs/parser"
)

// Re-exported so callers never need to import the sub-packages directly for
// the common cases.
type (
	Context    = ast.Context
	Diagnostic = diagnostics.Diagnostic
	Config     = parser.Config
)

// DefaultConfig returns the recommended parser limits (nesting cap 64).
func DefaultConfig() Config { return parser.DefaultConfig() }

// Parse reads a single .nyr source unit and returns its context node plus
// every diagnostic collected along the way. A nil Context means the
// Construct header itself could not be resolved; otherwise check
// diagnostics for Error severity before treating the Context as usable: any
// Error-severity diagnostic means the AST must not be consumed further.
//
// cfg is optional; omitting it uses DefaultConfig().
func Parse(input string, cfg ...Config) (*Context, []Diagnostic) {
	c := DefaultConfig()
	if len(cfg) > 0 {
		c = cfg[0]
	}
	return parser.Parse(input, c)
}

// HasErrors reports whether diags contains any Error-severity diagnostic.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == diagnostics.Error {
			return true
		}
	}
	return false
}
