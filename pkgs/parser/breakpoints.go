package parser

import (
	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
	"github.com/nenyr-lang/nenyr-go/pkgs/diagnostics"
	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
)

// parseBreakpoints parses `Breakpoints({ MobileFirst({...}), DesktopFirst({...}) })`,
// each variant permitted at most once.
func (p *Parser) parseBreakpoints() *ast.BreakpointsDecl {
	start := p.peek().Span
	p.enter("Declare Breakpoints")
	defer p.leave()

	decl := ast.NewBreakpoints(ast.Span{})
	if p.expectCallOpen() {
		p.parseEntryList(func() {
			tok := p.peek()
			switch tok.Type {
			case lexer.MOBILEFIRST:
				p.advance()
				group := p.parseBreakpointGroup()
				if decl.MobileFirst != nil {
					p.addError(diagnostics.KindDuplicateSectionInScope, tok.Span, "MobileFirst already declared in this scope")
				}
				decl.MobileFirst = group
			case lexer.DESKTOPFIRST:
				p.advance()
				group := p.parseBreakpointGroup()
				if decl.DesktopFirst != nil {
					p.addError(diagnostics.KindDuplicateSectionInScope, tok.Span, "DesktopFirst already declared in this scope")
				}
				decl.DesktopFirst = group
			default:
				p.addError(diagnostics.KindUnexpectedToken, tok.Span,
					"expected MobileFirst or DesktopFirst, found %s", p.describe(tok))
				p.synchronize()
			}
		})
		p.expectCallClose()
	}
	decl.Span = p.spanSince(start)
	return decl
}

func (p *Parser) parseBreakpointGroup() *ast.BreakpointGroup {
	start := p.peek().Span
	group := ast.NewBreakpointGroup(ast.Span{})
	if p.expectCallOpen() {
		p.parseEntryList(func() {
			ident, ok := p.consume(lexer.IDENTIFIER, diagnostics.KindExpectedIdentifier, "expected an identifier, found %s", p.describe(p.peek()))
			if !ok {
				return
			}
			if !p.expectColon() {
				return
			}
			size, ok := p.consume(lexer.STRING, diagnostics.KindExpectedString, "expected a string size, found %s", p.describe(p.peek()))
			if !ok {
				return
			}
			if _, exists := group.Entries[ident.Value]; exists {
				p.addError(diagnostics.KindDuplicateKey, ident.Span, "duplicate breakpoint %q", ident.Value)
			}
			group.Set(ident.Value, size.Value)
		})
		p.expectCallClose()
	}
	group.Span = p.spanSince(start)
	return group
}

func mergeBreakpoints(dst, src *ast.BreakpointsDecl, span lexer.SourceSpan, p *Parser) *ast.BreakpointsDecl {
	if dst == nil {
		return src
	}
	p.addError(diagnostics.KindDuplicateSectionInScope, span, "Breakpoints already declared in this scope")
	if src.MobileFirst != nil {
		dst.MobileFirst = src.MobileFirst
	}
	if src.DesktopFirst != nil {
		dst.DesktopFirst = src.DesktopFirst
	}
	return dst
}
