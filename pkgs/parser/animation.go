package parser

import (
	"strconv"

	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
	"github.com/nenyr-lang/nenyr-go/pkgs/diagnostics"
	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
)

// parseAnimations parses `Animation({ ident({ <stop>, ... }), ... })`: zero
// or more named animations, each a sequence of keyframe stops.
func (p *Parser) parseAnimations() *ast.AnimationsDecl {
	start := p.peek().Span
	p.enter("Declare Animation")
	defer p.leave()

	decl := ast.NewAnimations(ast.Span{})
	if p.expectCallOpen() {
		p.parseEntryList(func() {
			name, ok := p.consume(lexer.IDENTIFIER, diagnostics.KindExpectedIdentifier, "expected an animation name, found %s", p.describe(p.peek()))
			if !ok {
				return
			}
			body := p.parseAnimationBody(name.Value)
			if _, exists := decl.Entries[name.Value]; exists {
				p.addError(diagnostics.KindDuplicateKey, name.Span, "duplicate animation %q", name.Value)
			}
			decl.Set(name.Value, body)
		})
		p.expectCallClose()
	}
	decl.Span = p.spanSince(start)
	return decl
}

func (p *Parser) parseAnimationBody(name string) *ast.AnimationBody {
	start := p.peek().Span
	p.enter("animation " + name)
	defer p.leave()

	body := &ast.AnimationBody{Name: name}
	seenFrom, seenHalfway, seenTo := false, false, false

	if p.expectCallOpen() {
		p.parseEntryList(func() {
			stopTok := p.peek()
			stop, ok := p.parseAnimationStop()
			if !ok {
				return
			}
			switch stop.Kind {
			case ast.StopFrom:
				if seenFrom {
					p.addError(diagnostics.KindInvalidAnimationStop, stopTok.Span, "at most one From stop is permitted")
					return
				}
				seenFrom = true
			case ast.StopHalfway:
				if seenHalfway {
					p.addError(diagnostics.KindInvalidAnimationStop, stopTok.Span, "at most one Halfway stop is permitted")
					return
				}
				seenHalfway = true
			case ast.StopTo:
				if seenTo {
					p.addError(diagnostics.KindInvalidAnimationStop, stopTok.Span, "at most one To stop is permitted")
					return
				}
				seenTo = true
			}
			body.Stops = append(body.Stops, stop)
		})
		p.expectCallClose()
	}
	body.Span = p.spanSince(start)
	return body
}

func (p *Parser) parseAnimationStop() (ast.AnimationStop, bool) {
	tok := p.peek()
	switch tok.Type {
	case lexer.FROM:
		p.advance()
		return p.parseSimpleStop(ast.StopFrom), true
	case lexer.HALFWAY:
		p.advance()
		return p.parseSimpleStop(ast.StopHalfway), true
	case lexer.TO:
		p.advance()
		return p.parseSimpleStop(ast.StopTo), true
	case lexer.FRACTION:
		p.advance()
		return p.parseArgStop(ast.StopFraction)
	case lexer.PROGRESSIVE:
		p.advance()
		return p.parseArgStop(ast.StopProgressive)
	default:
		p.addError(diagnostics.KindUnexpectedToken, tok.Span,
			"expected From, Halfway, To, Fraction, or Progressive, found %s", p.describe(tok))
		p.synchronize()
		return ast.AnimationStop{}, false
	}
}

// parseSimpleStop parses `From({ props })` / `Halfway({ props })` / `To({ props })`.
func (p *Parser) parseSimpleStop(kind ast.StopKind) ast.AnimationStop {
	start := p.peek().Span
	stop := ast.NewAnimationStop(kind, ast.Span{})
	if p.expectCallOpen() {
		p.parseProperties(
			func(name string) bool { _, ok := stop.Properties[name]; return ok },
			func(name string, pa *ast.PropertyAssignment) { stop.Set(name, pa) },
		)
		p.expectCallClose()
	}
	stop.Span = p.spanSince(start)
	return stop
}

// parseArgStop parses `Fraction(f, { props })` / `Progressive(n, { props })`,
// which carry a leading numeric argument before the brace body.
func (p *Parser) parseArgStop(kind ast.StopKind) (ast.AnimationStop, bool) {
	start := p.peek().Span
	stop := ast.NewAnimationStop(kind, ast.Span{})

	if _, ok := p.consume(lexer.LPAREN, diagnostics.KindExpectedPunct, "expected (, found %s", p.describe(p.peek())); !ok {
		return stop, false
	}
	numTok, ok := p.consume(lexer.NUMBER, diagnostics.KindExpectedNumber, "expected a number, found %s", p.describe(p.peek()))
	if !ok {
		return stop, false
	}
	switch kind {
	case ast.StopFraction:
		f, err := strconv.ParseFloat(numTok.Value, 64)
		if err != nil {
			f = 0
		}
		stop.Fraction = f
		if f < 0 || f > 1 {
			p.addError(diagnostics.KindFractionOutOfRange, numTok.Span, "fraction %s is out of range [0, 1]", numTok.Value)
		}
	case ast.StopProgressive:
		n, err := strconv.Atoi(numTok.Value)
		if err != nil {
			n = 0
		}
		stop.Progressive = n
		if n < 1 {
			p.addError(diagnostics.KindNonPositiveProgressive, numTok.Span, "progressive count %s must be >= 1", numTok.Value)
		}
	}
	if _, ok := p.consume(lexer.COMMA, diagnostics.KindExpectedComma, "expected ,, found %s", p.describe(p.peek())); !ok {
		return stop, false
	}
	if _, ok := p.consume(lexer.LBRACE, diagnostics.KindExpectedOpenBrace, "expected {, found %s", p.describe(p.peek())); !ok {
		return stop, false
	}
	p.parseProperties(
		func(name string) bool { _, ok := stop.Properties[name]; return ok },
		func(name string, pa *ast.PropertyAssignment) { stop.Set(name, pa) },
	)
	p.consume(lexer.RBRACE, diagnostics.KindExpectedCloseBrace, "expected }, found %s", p.describe(p.peek()))
	p.consume(lexer.RPAREN, diagnostics.KindExpectedPunct, "expected ), found %s", p.describe(p.peek()))

	stop.Span = p.spanSince(start)
	return stop, true
}

func mergeAnimations(dst, src *ast.AnimationsDecl, span lexer.SourceSpan, p *Parser) *ast.AnimationsDecl {
	if dst == nil {
		return src
	}
	p.addError(diagnostics.KindDuplicateSectionInScope, span, "Animation already declared in this scope")
	for _, name := range src.Order {
		if _, exists := dst.Entries[name]; exists {
			p.addError(diagnostics.KindDuplicateKey, src.Span, "duplicate animation %q", name)
		}
		dst.Set(name, src.Entries[name])
	}
	return dst
}
