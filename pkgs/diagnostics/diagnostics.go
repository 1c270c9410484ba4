// Package diagnostics is the central factory for every parse failure and
// warning. No sub-parser builds an ad-hoc error string; every failure path
// funnels through a Builder so that rendered output is deterministic for
// identical inputs and always carries a span, a context stack, and (where
// applicable) a suggestion.
package diagnostics

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
)

// Severity distinguishes a fatal diagnostic from an advisory one.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Kind is the exhaustive diagnostic taxonomy.
type Kind string

const (
	// Lexical
	KindUnterminatedString       Kind = "UnterminatedString"
	KindUnterminatedBlockComment Kind = "UnterminatedBlockComment"
	KindUnknownEscape            Kind = "UnknownEscape"
	KindInvalidNumber            Kind = "InvalidNumber"
	KindUnexpectedChar           Kind = "UnexpectedChar"

	// Structural
	KindMultipleContexts   Kind = "MultipleContexts"
	KindMissingContext     Kind = "MissingContext"
	KindUnknownDeclaration Kind = "UnknownDeclaration"
	KindUnexpectedToken    Kind = "UnexpectedToken"
	KindUnexpectedEOF      Kind = "UnexpectedEndOfFile"

	// Syntactic
	KindExpectedKeyword    Kind = "ExpectedKeyword"
	KindExpectedIdentifier Kind = "ExpectedIdentifier"
	KindExpectedString     Kind = "ExpectedString"
	KindExpectedNumber     Kind = "ExpectedNumber"
	KindExpectedPunct      Kind = "ExpectedPunct"
	KindExpectedComma      Kind = "ExpectedComma"
	KindExpectedColon      Kind = "ExpectedColon"
	KindExpectedOpenBrace  Kind = "ExpectedOpenBrace"
	KindExpectedCloseBrace Kind = "ExpectedCloseBrace"

	// Semantic (parser-enforced)
	KindInvalidAnimationStop     Kind = "InvalidAnimationStop"
	KindFractionOutOfRange       Kind = "FractionOutOfRange"
	KindNonPositiveProgressive   Kind = "NonPositiveProgressive"
	KindMalformedInterpolation   Kind = "MalformedInterpolation"
	KindEmptyInterpolationTarget Kind = "EmptyInterpolationTarget"
	KindInvalidIdentifierShape   Kind = "InvalidIdentifierShape"
	KindDuplicateSectionInScope  Kind = "DuplicateSectionInScope"
	KindExcessiveNesting         Kind = "ExcessiveNesting"

	// Warnings
	KindDuplicateProperty Kind = "DuplicateProperty"
	KindDuplicateKey      Kind = "DuplicateKey"
)

// defaultSeverity maps a Kind to its baseline severity. Call sites never
// need to pick a severity themselves for the common cases.
var defaultSeverity = map[Kind]Severity{
	KindDuplicateProperty:       Warning,
	KindDuplicateKey:            Warning,
	KindDuplicateSectionInScope: Warning,
}

func severityFor(kind Kind) Severity {
	if s, ok := defaultSeverity[kind]; ok {
		return s
	}
	return Error
}

// Diagnostic is a single structured error or warning.
type Diagnostic struct {
	Kind       Kind
	Severity   Severity
	Message    string
	Span       lexer.SourceSpan
	Context    []string // frames, topmost (most recently pushed) first
	Suggestion string
}

// Error satisfies the error interface so a Diagnostic can be returned or
// wrapped like any other Go error.
func (d Diagnostic) Error() string { return d.Render() }

// Render produces the human-readable rendering format:
//
//	<severity>: <message>
//	  at line <L>, column <C>
//	  context: <frame 0> › <frame 1> › …
//	  suggestion: <suggestion>
func (d Diagnostic) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", d.Severity, d.Message)
	fmt.Fprintf(&b, "  at line %d, column %d\n", d.Span.Start.Line, d.Span.Start.Column)
	if len(d.Context) > 0 {
		fmt.Fprintf(&b, "  context: %s\n", strings.Join(d.Context, " › "))
	}
	if d.Suggestion != "" {
		fmt.Fprintf(&b, "  suggestion: %s\n", d.Suggestion)
	}
	return strings.TrimRight(b.String(), "\n")
}

// jsonDiagnostic is the machine-readable rendering: the same fields plus the
// byte-offset span, marshaled with encoding/json struct tags since the
// shape is small and fixed.
type jsonDiagnostic struct {
	Severity   string           `json:"severity"`
	Kind       Kind             `json:"kind"`
	Message    string           `json:"message"`
	Span       lexer.SourceSpan `json:"span"`
	Context    []string         `json:"context,omitempty"`
	Suggestion string           `json:"suggestion,omitempty"`
}

func (d Diagnostic) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonDiagnostic{
		Severity:   d.Severity.String(),
		Kind:       d.Kind,
		Message:    d.Message,
		Span:       d.Span,
		Context:    d.Context,
		Suggestion: d.Suggestion,
	})
}

// Builder constructs diagnostics, tracking a context stack that declaration
// parsers push to and pop from as they enter and leave productions (e.g.
// "inside Declare Variables of Central context").
type Builder struct {
	contextStack []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Push enters a named production. Callers must Pop on every exit path,
// typically via defer.
func (b *Builder) Push(frame string) { b.contextStack = append(b.contextStack, frame) }

// Pop leaves the most recently pushed production.
func (b *Builder) Pop() {
	if len(b.contextStack) > 0 {
		b.contextStack = b.contextStack[:len(b.contextStack)-1]
	}
}

// Depth reports how many productions are currently nested, used by callers
// enforcing a recursion depth cap.
func (b *Builder) Depth() int { return len(b.contextStack) }

// contextFrames returns the stack topmost-first, matching Render's order.
func (b *Builder) contextFrames() []string {
	if len(b.contextStack) == 0 {
		return nil
	}
	out := make([]string, len(b.contextStack))
	for i := range b.contextStack {
		out[i] = b.contextStack[len(b.contextStack)-1-i]
	}
	return out
}

// New builds a Diagnostic of the given kind at span, with message formatted
// printf-style, tagged with the builder's current context stack.
func (b *Builder) New(kind Kind, span lexer.SourceSpan, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Kind:     kind,
		Severity: severityFor(kind),
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
		Context:  b.contextFrames(),
	}
}

// NewWithSuggestion is New plus an explicit suggestion string.
func (b *Builder) NewWithSuggestion(kind Kind, span lexer.SourceSpan, suggestion, format string, args ...interface{}) Diagnostic {
	d := b.New(kind, span, format, args...)
	d.Suggestion = suggestion
	return d
}

// SuggestKeyword fuzzy-matches got against the grammar's keyword table and
// returns a "did you mean ...?" suggestion, or "" when nothing is close
// enough to be useful.
func SuggestKeyword(got string) string {
	ranks := fuzzy.RankFindFold(got, lexer.KeywordNames)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	// A distance of more than half the word's length plus one is too loose
	// to be a useful correction.
	if best.Distance > (len(got)/2)+1 {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", best.Target)
}
