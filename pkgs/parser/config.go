package parser

import "io"

// Config threads parser-wide limits and an optional debug sink through every
// sub-parser instead of hard-coding constants.
type Config struct {
	// MaxDepth caps recursive descent (Class → PanoramicViewer → state
	// blocks → properties) before an ExcessiveNesting diagnostic aborts
	// further descent into the offending production.
	MaxDepth int

	// MaxStuckAttempts bounds how many consecutive zero-progress passes of
	// the entry-list loop are tolerated before the parser skips one token
	// and carries on, guarding against a recovery path that advances no
	// tokens.
	MaxStuckAttempts int

	// Debug, when non-nil, receives a trace line each time the parser enters
	// or leaves a context-stack frame. Never a package-global logger; the
	// caller owns the writer.
	Debug io.Writer
}

// DefaultConfig returns the recommended limits (nesting cap 64).
func DefaultConfig() Config {
	return Config{MaxDepth: 64, MaxStuckAttempts: 3}
}
