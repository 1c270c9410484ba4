// Package parser implements the Nenyr recursive-descent parser: a context
// parser dispatching to eight declaration-family sub-parsers, all built on a
// shared token-stream helper set (consume/advance/check/addError/
// synchronize).
package parser

import (
	"fmt"

	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
	"github.com/nenyr-lang/nenyr-go/pkgs/diagnostics"
	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
)

// Parser walks a pre-lexed token slice, building an AST and a diagnostic
// list. It never mutates package-level state; every invocation is
// independent, with its own token slice, cursor, and diagnostic builder.
type Parser struct {
	tokens []lexer.Token
	pos    int

	cfg   Config
	diags *diagnostics.Builder
	errs  []diagnostics.Diagnostic

	depth int
}

func newParser(tokens []lexer.Token, cfg Config) *Parser {
	return &Parser{tokens: tokens, cfg: cfg, diags: diagnostics.NewBuilder()}
}

// Parse lexes input and parses it into a single Context, returning the
// collected diagnostics alongside it. A nil Context means the Construct
// header was missing or unrecognizable; the diagnostic list always explains
// why. After other fatal errors (MultipleContexts, UnterminatedBlockComment)
// the Context is still returned, alongside an Error-severity diagnostic.
func Parse(input string, cfg Config) (*ast.Context, []diagnostics.Diagnostic) {
	tokens, lexErrs := tokenize(input)
	p := newParser(tokens, cfg)
	p.errs = append(p.errs, lexErrs...)
	ctx := p.parseUnit()
	return ctx, p.errs
}

// tokenize drains the lexer into a token slice, converting each newly
// observed LexError into a diagnostic. LastError is sticky (it is never
// cleared by the lexer), so a new error is detected by pointer identity
// changing, not by nilness.
func tokenize(input string) ([]lexer.Token, []diagnostics.Diagnostic) {
	lx := lexer.New(input)
	b := diagnostics.NewBuilder()

	var tokens []lexer.Token
	var diags []diagnostics.Diagnostic
	var lastSeen *lexer.LexError

	for {
		tok := lx.NextToken()
		tokens = append(tokens, tok)
		if err := lx.LastError(); err != nil && err != lastSeen {
			lastSeen = err
			diags = append(diags, b.New(lexKindToDiagKind(err.Kind), err.Span, lexErrorMessage(err)))
		}
		if tok.Type == lexer.EOF {
			break
		}
	}
	return tokens, diags
}

func lexKindToDiagKind(kind string) diagnostics.Kind {
	switch kind {
	case lexer.ErrUnterminatedString:
		return diagnostics.KindUnterminatedString
	case lexer.ErrUnterminatedBlockComment:
		return diagnostics.KindUnterminatedBlockComment
	case lexer.ErrUnknownEscape:
		return diagnostics.KindUnknownEscape
	case lexer.ErrInvalidNumber:
		return diagnostics.KindInvalidNumber
	case lexer.ErrUnexpectedChar:
		return diagnostics.KindUnexpectedChar
	case lexer.ErrMalformedInterpolation:
		return diagnostics.KindMalformedInterpolation
	case lexer.ErrEmptyInterpolationTarget:
		return diagnostics.KindEmptyInterpolationTarget
	default:
		return diagnostics.KindUnexpectedChar
	}
}

func lexErrorMessage(err *lexer.LexError) string {
	if err.Value != "" {
		return fmt.Sprintf("%s: %q", err.Kind, err.Value)
	}
	return err.Kind
}

// --- token stream helpers -------------------------------------------------

func (p *Parser) peek() lexer.Token { return p.tokens[p.pos] }

func (p *Parser) atEnd() bool { return p.peek().Type == lexer.EOF }

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) check(t lexer.TokenType) bool { return p.peek().Type == t }

// consume advances past a required token type or records a diagnostic and
// leaves the cursor in place.
func (p *Parser) consume(t lexer.TokenType, kind diagnostics.Kind, format string, args ...interface{}) (lexer.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	got := p.peek()
	p.addError(kind, got.Span, format, args...)
	return got, false
}

// describe renders a token for use inside "found %s"-style messages.
func (p *Parser) describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.IDENTIFIER, lexer.STRING, lexer.NUMBER:
		return fmt.Sprintf("%q", tok.Value)
	case lexer.EOF:
		return "end of file"
	default:
		return tok.Type.String()
	}
}

func (p *Parser) addError(kind diagnostics.Kind, span lexer.SourceSpan, format string, args ...interface{}) {
	p.errs = append(p.errs, p.diags.New(kind, span, format, args...))
}

func (p *Parser) addErrorSuggest(kind diagnostics.Kind, span lexer.SourceSpan, suggestion, format string, args ...interface{}) {
	p.errs = append(p.errs, p.diags.NewWithSuggestion(kind, span, suggestion, format, args...))
}

// expectKeyword consumes a specific keyword token type or records an
// ExpectedKeyword diagnostic, fuzzy-suggesting a correction when the found
// token looks like a miscased or misspelled attempt at it.
func (p *Parser) expectKeyword(t lexer.TokenType, name string) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	got := p.peek()
	suggestion := ""
	if got.Type == lexer.IDENTIFIER {
		suggestion = diagnostics.SuggestKeyword(got.Value)
	}
	p.addErrorSuggest(diagnostics.KindExpectedKeyword, got.Span, suggestion,
		"expected keyword %q, found %s", name, p.describe(got))
	return false
}

// --- context-stack / depth tracking ---------------------------------------

func (p *Parser) enter(frame string) {
	p.diags.Push(frame)
	p.depth++
	if p.cfg.Debug != nil {
		fmt.Fprintf(p.cfg.Debug, "enter %s (depth %d)\n", frame, p.depth)
	}
}

func (p *Parser) leave() {
	if p.cfg.Debug != nil {
		fmt.Fprintf(p.cfg.Debug, "leave (depth %d)\n", p.depth)
	}
	p.depth--
	p.diags.Pop()
}

// tooDeep reports whether the current nesting level exceeds Config.MaxDepth,
// recording ExcessiveNesting exactly once per offending descent.
func (p *Parser) tooDeep() bool {
	if p.depth <= p.cfg.MaxDepth {
		return false
	}
	p.addError(diagnostics.KindExcessiveNesting, p.peek().Span,
		"nesting depth exceeded maximum of %d", p.cfg.MaxDepth)
	return true
}

// --- recovery --------------------------------------------------------------

// synchronize advances past tokens until it finds a comma or closing
// brace/paren at the current nesting level, tracking brace/paren depth so
// recovery never escapes the enclosing production. It does not consume the
// terminating token; callers inspect it afterward.
func (p *Parser) synchronize() {
	depth := 0
	for !p.atEnd() {
		switch p.peek().Type {
		case lexer.LBRACE, lexer.LPAREN:
			depth++
		case lexer.RBRACE, lexer.RPAREN:
			if depth == 0 {
				return
			}
			depth--
		case lexer.COMMA:
			if depth == 0 {
				return
			}
		}
		p.advance()
	}
}

// parseEntryList drives the shared comma-separated-entries shape:
// zero or more entries, a single trailing comma permitted, leading or
// consecutive commas rejected as UnexpectedToken, missing commas between
// entries rejected as ExpectedComma. parseEntry is expected to consume
// exactly one entry and report its own errors; parseEntryList stops calling
// it once RBRACE or EOF is reached.
func (p *Parser) parseEntryList(parseEntry func()) {
	if p.check(lexer.RBRACE) {
		return
	}
	stuck := 0
	for !p.atEnd() && !p.check(lexer.RBRACE) {
		startPos := p.pos

		if p.check(lexer.COMMA) {
			p.addError(diagnostics.KindUnexpectedToken, p.peek().Span, "unexpected ,")
			p.advance()
		} else {
			parseEntry()
			if !p.check(lexer.RBRACE) && !p.check(lexer.COMMA) && !p.atEnd() {
				p.addError(diagnostics.KindExpectedComma, p.peek().Span,
					"expected , or }, found %s", p.describe(p.peek()))
				p.synchronize()
			}
			if p.check(lexer.COMMA) {
				p.advance()
			}
		}

		if p.pos == startPos {
			stuck++
			if stuck >= p.cfg.MaxStuckAttempts {
				p.advance()
				stuck = 0
			}
		} else {
			stuck = 0
		}
	}
}

// expectCallOpen consumes the "(" "{" pair that opens every declaration
// family body and every named sub-entry (Declare Family(...), ident({...})).
func (p *Parser) expectCallOpen() bool {
	_, ok1 := p.consume(lexer.LPAREN, diagnostics.KindExpectedPunct, "expected (, found %s", p.describe(p.peek()))
	_, ok2 := p.consume(lexer.LBRACE, diagnostics.KindExpectedOpenBrace, "expected {, found %s", p.describe(p.peek()))
	return ok1 && ok2
}

// expectCallClose consumes the matching "}" ")" pair.
func (p *Parser) expectCallClose() bool {
	_, ok1 := p.consume(lexer.RBRACE, diagnostics.KindExpectedCloseBrace, "expected }, found %s", p.describe(p.peek()))
	_, ok2 := p.consume(lexer.RPAREN, diagnostics.KindExpectedPunct, "expected ), found %s", p.describe(p.peek()))
	return ok1 && ok2
}

func toSpan(s lexer.SourceSpan) ast.Span {
	return ast.Span{
		Start: ast.Position{Line: s.Start.Line, Column: s.Start.Column, Offset: s.Start.Offset},
		End:   ast.Position{Line: s.End.Line, Column: s.End.Column, Offset: s.End.Offset},
	}
}

// spanSince returns the span from start's beginning to the token just
// consumed (p.pos-1), used to cover a whole production once it finishes.
func (p *Parser) spanSince(start lexer.SourceSpan) ast.Span {
	end := start
	if p.pos > 0 {
		end = p.tokens[p.pos-1].Span
	}
	return ast.Span{
		Start: ast.Position{Line: start.Start.Line, Column: start.Start.Column, Offset: start.Start.Offset},
		End:   ast.Position{Line: end.End.Line, Column: end.End.Column, Offset: end.End.Offset},
	}
}
