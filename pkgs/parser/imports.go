package parser

import (
	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
	"github.com/nenyr-lang/nenyr-go/pkgs/diagnostics"
	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
)

// parseImports parses `Imports({ "path", ... })`: an ordered list of string
// literals, no keys.
func (p *Parser) parseImports() *ast.ImportsDecl {
	start := p.peek().Span
	p.enter("Declare Imports")
	defer p.leave()

	var items []string
	if p.expectCallOpen() {
		p.parseEntryList(func() {
			tok, ok := p.consume(lexer.STRING, diagnostics.KindExpectedString, "expected a string path, found %s", p.describe(p.peek()))
			if ok {
				items = append(items, tok.Value)
			}
		})
		p.expectCallClose()
	}
	return ast.NewImports(items, p.spanSince(start))
}
