package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// comparableToken strips spans for tests that only care about the token
// type/value/fragment sequence, not exact positions.
type comparableToken struct {
	Type  TokenType
	Value string
}

func tokenizeTypes(t *testing.T, input string) []comparableToken {
	t.Helper()
	toks := New(input).TokenizeToSlice()
	out := make([]comparableToken, 0, len(toks))
	for _, tok := range toks {
		out = append(out, comparableToken{Type: tok.Type, Value: tok.Value})
	}
	return out
}

func TestKeywordsCaseSensitive(t *testing.T) {
	got := tokenizeTypes(t, "Construct construct CONSTRUCT")
	want := []comparableToken{
		{CONSTRUCT, "Construct"},
		{IDENTIFIER, "construct"},
		{IDENTIFIER, "CONSTRUCT"},
		{EOF, ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestPunctuationAndNumbers(t *testing.T) {
	got := tokenizeTypes(t, "{ } ( ) , : ; . $ 4 1.5")
	want := []comparableToken{
		{LBRACE, "{"}, {RBRACE, "}"}, {LPAREN, "("}, {RPAREN, ")"},
		{COMMA, ","}, {COLON, ":"}, {SEMI, ";"}, {DOT, "."}, {DOLLAR, "$"},
		{NUMBER, "4"}, {NUMBER, "1.5"},
		{EOF, ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLineCommentSkipped(t *testing.T) {
	got := tokenizeTypes(t, "Central // trailing comment\nLayout")
	want := []comparableToken{{CENTRAL, "Central"}, {LAYOUT, "Layout"}, {EOF, ""}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockCommentNonNesting(t *testing.T) {
	// First "*/" closes the comment even though "/* inner" looks like it
	// opens a nested one, so the next token is Central rather than more
	// comment text.
	l := New("/* outer /* inner */ Central")
	tok := l.NextToken()
	if tok.Type != CENTRAL {
		t.Fatalf("expected CENTRAL after block comment, got %v", tok.Type)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	l := New("/* never closes")
	l.NextToken()
	if err := l.LastError(); err == nil || err.Kind != ErrUnterminatedBlockComment {
		t.Fatalf("expected ErrUnterminatedBlockComment, got %v", err)
	}
}

func TestStringWithEscapes(t *testing.T) {
	l := New(`"a\"b\\c\nd\te"`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("expected STRING, got %v", tok.Type)
	}
	want := "a\"b\\c\nd\te"
	if tok.Value != want {
		t.Errorf("value = %q, want %q", tok.Value, want)
	}
}

func TestUnknownEscape(t *testing.T) {
	l := New(`"bad \q escape"`)
	l.NextToken()
	if err := l.LastError(); err == nil || err.Kind != ErrUnknownEscape {
		t.Fatalf("expected ErrUnknownEscape, got %v", err)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New("\"no closing quote")
	l.NextToken()
	if err := l.LastError(); err == nil || err.Kind != ErrUnterminatedString {
		t.Fatalf("expected ErrUnterminatedString, got %v", err)
	}
}

func TestInterpolationFragments(t *testing.T) {
	l := New(`"color: ${primary}!"`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("expected STRING, got %v", tok.Type)
	}
	if len(tok.Fragments) != 3 {
		t.Fatalf("expected 3 fragments (text, interpolation, text), got %d: %+v", len(tok.Fragments), tok.Fragments)
	}
	if tok.Fragments[0].IsInterpolation || tok.Fragments[0].Text != "color: " {
		t.Errorf("fragment 0 = %+v", tok.Fragments[0])
	}
	if !tok.Fragments[1].IsInterpolation || tok.Fragments[1].Name != "primary" {
		t.Errorf("fragment 1 = %+v", tok.Fragments[1])
	}
	if tok.Fragments[2].IsInterpolation || tok.Fragments[2].Text != "!" {
		t.Errorf("fragment 2 = %+v", tok.Fragments[2])
	}
}

func TestEmptyInterpolationTarget(t *testing.T) {
	l := New(`"${}"`)
	l.NextToken()
	if err := l.LastError(); err == nil || err.Kind != ErrEmptyInterpolationTarget {
		t.Fatalf("expected ErrEmptyInterpolationTarget, got %v", err)
	}
}

func TestMalformedInterpolation(t *testing.T) {
	l := New(`"${name"`)
	l.NextToken()
	if err := l.LastError(); err == nil {
		t.Fatalf("expected an error for an unterminated interpolation")
	}
}

func TestIdentifierShape(t *testing.T) {
	got := tokenizeTypes(t, "primary Primary2 a")
	for _, tok := range got {
		if tok.Type == ILLEGAL {
			t.Errorf("unexpected ILLEGAL token: %+v", tok)
		}
	}
}

func TestCRLFAdvancesLineOnce(t *testing.T) {
	l := New("Central\r\nLayout")
	l.NextToken()
	tok := l.NextToken()
	if tok.Span.Start.Line != 2 {
		t.Errorf("expected line 2 after CRLF, got %d", tok.Span.Start.Line)
	}
}

func TestSpanContainsAndJoin(t *testing.T) {
	outer := SourceSpan{Start: SourcePosition{Offset: 0}, End: SourcePosition{Offset: 10}}
	inner := SourceSpan{Start: SourcePosition{Offset: 2}, End: SourcePosition{Offset: 5}}
	if !outer.Contains(inner) {
		t.Errorf("expected outer to contain inner")
	}
	joined := inner.Join(SourceSpan{Start: SourcePosition{Offset: 8}, End: SourcePosition{Offset: 20}})
	if joined.Start.Offset != 2 || joined.End.Offset != 20 {
		t.Errorf("unexpected join result: %+v", joined)
	}
}
