package parser

import (
	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
	"github.com/nenyr-lang/nenyr-go/pkgs/diagnostics"
	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
)

// parseVariables parses `Variables({ ident: value, ... })`. The value's
// enclosing property name is "" here: a Declare Variables entry has no
// enclosing property, so any ${name} interpolation always tags VariableRef.
func (p *Parser) parseVariables() *ast.VariablesDecl {
	start := p.peek().Span
	p.enter("Declare Variables")
	defer p.leave()

	decl := ast.NewVariables(ast.Span{})
	if p.expectCallOpen() {
		p.parseEntryList(func() {
			ident, ok := p.consume(lexer.IDENTIFIER, diagnostics.KindExpectedIdentifier, "expected an identifier, found %s", p.describe(p.peek()))
			if !ok {
				return
			}
			if !p.expectColon() {
				return
			}
			value, ok := p.parseValue("")
			if !ok {
				return
			}
			if _, exists := decl.Entries[ident.Value]; exists {
				p.addError(diagnostics.KindDuplicateKey, ident.Span, "duplicate variable %q", ident.Value)
			}
			decl.Set(ident.Value, value)
		})
		p.expectCallClose()
	}
	decl.Span = p.spanSince(start)
	return decl
}
