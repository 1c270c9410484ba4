package parser

import (
	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
	"github.com/nenyr-lang/nenyr-go/pkgs/diagnostics"
	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
)

// parseAliases parses `Aliases({ ident: ident, ... })`.
func (p *Parser) parseAliases() *ast.AliasesDecl {
	start := p.peek().Span
	p.enter("Declare Aliases")
	defer p.leave()

	decl := ast.NewAliases(ast.Span{})
	if p.expectCallOpen() {
		p.parseEntryList(func() {
			ident, ok := p.consume(lexer.IDENTIFIER, diagnostics.KindExpectedIdentifier, "expected an identifier, found %s", p.describe(p.peek()))
			if !ok {
				return
			}
			if !p.expectColon() {
				return
			}
			target, ok := p.consume(lexer.IDENTIFIER, diagnostics.KindExpectedIdentifier, "expected an identifier, found %s", p.describe(p.peek()))
			if !ok {
				return
			}
			if _, exists := decl.Entries[ident.Value]; exists {
				p.addError(diagnostics.KindDuplicateKey, ident.Span, "duplicate alias %q", ident.Value)
			}
			decl.Set(ident.Value, target.Value)
		})
		p.expectCallClose()
	}
	decl.Span = p.spanSince(start)
	return decl
}
