package parser

import (
	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
	"github.com/nenyr-lang/nenyr-go/pkgs/diagnostics"
	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
)

// parseProperties drives the shared `property-name: value, ...` shape used
// inside animation stops, Stylesheet/pseudo-state blocks, and PanoramicViewer
// state blocks. exists reports whether name was already assigned, in which
// case the new assignment still replaces it (last wins) but a
// DuplicateProperty warning is recorded first.
func (p *Parser) parseProperties(exists func(name string) bool, set func(name string, pa *ast.PropertyAssignment)) {
	p.parseEntryList(func() {
		start := p.peek().Span
		ident, ok := p.consume(lexer.IDENTIFIER, diagnostics.KindExpectedIdentifier, "expected a property name, found %s", p.describe(p.peek()))
		if !ok {
			return
		}
		if !p.expectColon() {
			return
		}
		value, ok := p.parseValue(ident.Value)
		if !ok {
			return
		}
		if exists(ident.Value) {
			p.addError(diagnostics.KindDuplicateProperty, ident.Span, "duplicate property %q", ident.Value)
		}
		set(ident.Value, &ast.PropertyAssignment{Name: ident.Value, Value: value, Span: p.spanSince(start)})
	})
}
