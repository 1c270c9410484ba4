package parser

import (
	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
	"github.com/nenyr-lang/nenyr-go/pkgs/diagnostics"
	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
)

// parseThemes parses `Themes({ Light({ Declare Variables({...}) }), Dark({...}) })`,
// each variant permitted at most once.
func (p *Parser) parseThemes() *ast.ThemesDecl {
	start := p.peek().Span
	p.enter("Declare Themes")
	defer p.leave()

	decl := ast.NewThemes(ast.Span{})
	if p.expectCallOpen() {
		p.parseEntryList(func() {
			tok := p.peek()
			switch tok.Type {
			case lexer.LIGHT:
				p.advance()
				variant := p.parseThemeVariant("Light")
				if decl.Light != nil {
					p.addError(diagnostics.KindDuplicateSectionInScope, tok.Span, "Light already declared in this scope")
				}
				decl.Light = variant
			case lexer.DARK:
				p.advance()
				variant := p.parseThemeVariant("Dark")
				if decl.Dark != nil {
					p.addError(diagnostics.KindDuplicateSectionInScope, tok.Span, "Dark already declared in this scope")
				}
				decl.Dark = variant
			default:
				p.addError(diagnostics.KindUnexpectedToken, tok.Span,
					"expected Light or Dark, found %s", p.describe(tok))
				p.synchronize()
			}
		})
		p.expectCallClose()
	}
	decl.Span = p.spanSince(start)
	return decl
}

func (p *Parser) parseThemeVariant(frame string) *ast.ThemeVariant {
	start := p.peek().Span
	p.enter(frame)
	defer p.leave()

	variant := &ast.ThemeVariant{}
	if p.expectCallOpen() {
		p.parseEntryList(func() {
			if !p.expectKeyword(lexer.DECLARE, "Declare") {
				p.synchronize()
				return
			}
			if !p.expectKeyword(lexer.VARIABLES, "Variables") {
				p.synchronize()
				return
			}
			body := p.parseVariables()
			if variant.Variables != nil {
				p.addError(diagnostics.KindDuplicateSectionInScope, body.Span, "Variables already declared in this scope")
				for _, k := range body.Order {
					variant.Variables.Set(k, body.Entries[k])
				}
			} else {
				variant.Variables = body
			}
		})
		p.expectCallClose()
	}
	variant.Span = p.spanSince(start)
	return variant
}

func mergeThemes(dst, src *ast.ThemesDecl, span lexer.SourceSpan, p *Parser) *ast.ThemesDecl {
	if dst == nil {
		return src
	}
	p.addError(diagnostics.KindDuplicateSectionInScope, span, "Themes already declared in this scope")
	if src.Light != nil {
		dst.Light = src.Light
	}
	if src.Dark != nil {
		dst.Dark = src.Dark
	}
	return dst
}
