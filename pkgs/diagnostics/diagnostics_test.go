package diagnostics

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
)

func span(line, col, offset int) lexer.SourceSpan {
	pos := lexer.SourcePosition{Line: line, Column: col, Offset: offset}
	return lexer.SourceSpan{Start: pos, End: pos}
}

func TestBuilderContextStackOrder(t *testing.T) {
	b := NewBuilder()
	b.Push("context Central")
	b.Push("Declare Variables")

	d := b.New(KindExpectedColon, span(1, 1, 0), "expected :")
	require.Equal(t, []string{"Declare Variables", "context Central"}, d.Context)

	b.Pop()
	require.Equal(t, 1, b.Depth())
}

func TestSeverityDefaults(t *testing.T) {
	b := NewBuilder()
	require.Equal(t, Error, b.New(KindUnexpectedToken, span(1, 1, 0), "x").Severity)
	require.Equal(t, Warning, b.New(KindDuplicateProperty, span(1, 1, 0), "x").Severity)
	require.Equal(t, Warning, b.New(KindDuplicateKey, span(1, 1, 0), "x").Severity)
	require.Equal(t, Warning, b.New(KindDuplicateSectionInScope, span(1, 1, 0), "x").Severity)
}

func TestRenderFormat(t *testing.T) {
	b := NewBuilder()
	b.Push("context Central")
	d := b.NewWithSuggestion(KindExpectedKeyword, span(3, 5, 20), `did you mean "Declare"?`, "expected keyword %q", "Declare")

	rendered := d.Render()
	require.True(t, strings.HasPrefix(rendered, "error: expected keyword \"Declare\""))
	require.Contains(t, rendered, "at line 3, column 5")
	require.Contains(t, rendered, "context: context Central")
	require.Contains(t, rendered, `suggestion: did you mean "Declare"?`)
}

func TestMarshalJSON(t *testing.T) {
	b := NewBuilder()
	d := b.New(KindMissingContext, span(1, 1, 0), "no Construct header found")

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"kind":"MissingContext"`)
	require.Contains(t, string(raw), `"severity":"error"`)
}

func TestSuggestKeyword(t *testing.T) {
	require.Equal(t, `did you mean "Declare"?`, SuggestKeyword("Declar"))
	require.Equal(t, "", SuggestKeyword("xyz_totally_unrelated_token"))
}
