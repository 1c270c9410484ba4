package parser

import (
	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
	"github.com/nenyr-lang/nenyr-go/pkgs/diagnostics"
	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
)

// parseTypefaces parses `Typefaces({ ident: "path", ... })`.
func (p *Parser) parseTypefaces() *ast.TypefacesDecl {
	start := p.peek().Span
	p.enter("Declare Typefaces")
	defer p.leave()

	decl := ast.NewTypefaces(ast.Span{})
	if p.expectCallOpen() {
		p.parseEntryList(func() {
			ident, ok := p.consume(lexer.IDENTIFIER, diagnostics.KindExpectedIdentifier, "expected an identifier, found %s", p.describe(p.peek()))
			if !ok {
				return
			}
			if !p.expectColon() {
				return
			}
			path, ok := p.consume(lexer.STRING, diagnostics.KindExpectedString, "expected a string path, found %s", p.describe(p.peek()))
			if !ok {
				return
			}
			if _, exists := decl.Entries[ident.Value]; exists {
				p.addError(diagnostics.KindDuplicateKey, ident.Span, "duplicate typeface %q", ident.Value)
			}
			decl.Set(ident.Value, path.Value)
		})
		p.expectCallClose()
	}
	decl.Span = p.spanSince(start)
	return decl
}

// expectColon consumes the ":" that separates an entry's key from its
// value, shared by every ident: value family.
func (p *Parser) expectColon() bool {
	_, ok := p.consume(lexer.COLON, diagnostics.KindExpectedColon, "expected :, found %s", p.describe(p.peek()))
	return ok
}
