package parser

import (
	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
	"github.com/nenyr-lang/nenyr-go/pkgs/diagnostics"
	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
)

// parseClasses parses `Class({ ident({ ... }), ... })`: zero or more named
// classes.
func (p *Parser) parseClasses() *ast.ClassesDecl {
	start := p.peek().Span
	p.enter("Declare Class")
	defer p.leave()

	decl := ast.NewClasses(ast.Span{})
	if p.expectCallOpen() {
		p.parseEntryList(func() {
			name, ok := p.consume(lexer.IDENTIFIER, diagnostics.KindExpectedIdentifier, "expected a class name, found %s", p.describe(p.peek()))
			if !ok {
				return
			}
			body := p.parseClassBody(name.Value)
			if _, exists := decl.Entries[name.Value]; exists {
				p.addError(diagnostics.KindDuplicateKey, name.Span, "duplicate class %q", name.Value)
			}
			decl.Set(name.Value, body)
		})
		p.expectCallClose()
	}
	decl.Span = p.spanSince(start)
	return decl
}

// parseClassBody parses one class's `({ Extending(...), Important(...),
// Stylesheet({...}), Hover({...}), ..., PanoramicViewer({...}), ... })`
// body: an order-insensitive mix of an optional preamble, an optional
// primary stylesheet, zero or more pseudo-state blocks, and zero or more
// PanoramicViewer entries.
func (p *Parser) parseClassBody(name string) *ast.ClassBody {
	start := p.peek().Span
	p.enter("class " + name)
	defer p.leave()

	body := ast.NewClassBody(name, ast.Span{})
	if p.tooDeep() {
		p.synchronize()
		return body
	}

	if p.expectCallOpen() {
		p.parseEntryList(func() {
			tok := p.peek()
			switch tok.Type {
			case lexer.EXTENDING:
				p.advance()
				parent, ok := p.parseParenString()
				if ok {
					if body.HasExtending {
						p.addError(diagnostics.KindDuplicateSectionInScope, tok.Span, "Extending already declared in this scope")
					}
					body.Extending = parent
					body.HasExtending = true
				}
			case lexer.IMPORTANT:
				p.advance()
				flag, ok := p.parseParenBool()
				if ok {
					if body.HasImportance {
						p.addError(diagnostics.KindDuplicateSectionInScope, tok.Span, "Important already declared in this scope")
					}
					body.Importance = flag
					body.HasImportance = true
				}
			case lexer.STYLESHEET:
				p.advance()
				block := p.parseStateBlock("Stylesheet")
				if body.Stylesheet != nil {
					p.addError(diagnostics.KindDuplicateSectionInScope, tok.Span, "Stylesheet already declared in this scope")
				}
				body.Stylesheet = block
			case lexer.HOVER, lexer.ACTIVE, lexer.FOCUS:
				p.advance()
				selector := tok.Type.String()
				block := p.parseStateBlock(selector)
				if _, exists := body.PseudoStates[selector]; exists {
					p.addError(diagnostics.KindDuplicateSectionInScope, tok.Span, "%s already declared in this scope", selector)
				}
				body.SetPseudo(selector, block)
			case lexer.PANORAMICVIEWER:
				p.advance()
				block := p.parsePanoramicBlock()
				body.Panoramic = append(body.Panoramic, block)
			default:
				p.addError(diagnostics.KindUnexpectedToken, tok.Span,
					"expected Extending, Important, Stylesheet, a pseudo-state, or PanoramicViewer, found %s", p.describe(tok))
				p.synchronize()
			}
		})
		p.expectCallClose()
	}
	body.Span = p.spanSince(start)
	return body
}

// parseParenString parses `("text")`.
func (p *Parser) parseParenString() (string, bool) {
	if _, ok := p.consume(lexer.LPAREN, diagnostics.KindExpectedPunct, "expected (, found %s", p.describe(p.peek())); !ok {
		return "", false
	}
	tok, ok := p.consume(lexer.STRING, diagnostics.KindExpectedString, "expected a string, found %s", p.describe(p.peek()))
	if !ok {
		return "", false
	}
	p.consume(lexer.RPAREN, diagnostics.KindExpectedPunct, "expected ), found %s", p.describe(p.peek()))
	return tok.Value, true
}

// parseParenBool parses `(true)` or `(false)` — the only values Important
// accepts.
func (p *Parser) parseParenBool() (bool, bool) {
	if _, ok := p.consume(lexer.LPAREN, diagnostics.KindExpectedPunct, "expected (, found %s", p.describe(p.peek())); !ok {
		return false, false
	}
	tok := p.peek()
	if tok.Type != lexer.IDENTIFIER || (tok.Value != "true" && tok.Value != "false") {
		p.addError(diagnostics.KindUnexpectedToken, tok.Span, "expected true or false, found %s", p.describe(tok))
		p.consume(lexer.RPAREN, diagnostics.KindExpectedPunct, "expected ), found %s", p.describe(p.peek()))
		return false, false
	}
	p.advance()
	p.consume(lexer.RPAREN, diagnostics.KindExpectedPunct, "expected ), found %s", p.describe(p.peek()))
	return tok.Value == "true", true
}

// parseStateBlock parses `Selector({ property: value, ... })`.
func (p *Parser) parseStateBlock(selector string) *ast.StateBlock {
	start := p.peek().Span
	block := ast.NewStateBlock(selector, ast.Span{})
	if p.expectCallOpen() {
		p.parseProperties(
			func(name string) bool { _, ok := block.Properties[name]; return ok },
			func(name string, pa *ast.PropertyAssignment) { block.Set(name, pa) },
		)
		p.expectCallClose()
	}
	block.Span = p.spanSince(start)
	return block
}

// parsePanoramicBlock parses one `PanoramicViewer({ breakpoint-ident({ ... }), ... })`.
func (p *Parser) parsePanoramicBlock() *ast.PanoramicBlock {
	start := p.peek().Span
	block := ast.NewPanoramicBlock(ast.Span{})
	if p.expectCallOpen() {
		p.parseEntryList(func() {
			id, ok := p.consume(lexer.IDENTIFIER, diagnostics.KindExpectedIdentifier, "expected a breakpoint identifier, found %s", p.describe(p.peek()))
			if !ok {
				return
			}
			entry := p.parsePanoramicEntry(id.Value)
			if _, exists := block.Entries[id.Value]; exists {
				p.addError(diagnostics.KindDuplicateKey, id.Span, "duplicate breakpoint reference %q", id.Value)
			}
			block.Set(id.Value, entry)
		})
		p.expectCallClose()
	}
	block.Span = p.spanSince(start)
	return block
}

// parsePanoramicEntry parses one breakpoint's nested state-selector mapping.
func (p *Parser) parsePanoramicEntry(breakpointID string) *ast.PanoramicEntry {
	start := p.peek().Span
	p.enter("PanoramicViewer " + breakpointID)
	defer p.leave()

	entry := ast.NewPanoramicEntry(breakpointID, ast.Span{})
	if p.tooDeep() {
		p.synchronize()
		return entry
	}

	if p.expectCallOpen() {
		p.parseEntryList(func() {
			tok := p.peek()
			switch tok.Type {
			case lexer.STYLESHEET:
				p.advance()
				block := p.parseStateBlock("Stylesheet")
				if _, exists := entry.States["Stylesheet"]; exists {
					p.addError(diagnostics.KindDuplicateSectionInScope, tok.Span, "Stylesheet already declared in this scope")
				}
				entry.Set("Stylesheet", block)
			case lexer.HOVER, lexer.ACTIVE, lexer.FOCUS:
				p.advance()
				selector := tok.Type.String()
				block := p.parseStateBlock(selector)
				if _, exists := entry.States[selector]; exists {
					p.addError(diagnostics.KindDuplicateSectionInScope, tok.Span, "%s already declared in this scope", selector)
				}
				entry.Set(selector, block)
			default:
				p.addError(diagnostics.KindUnexpectedToken, tok.Span,
					"expected Stylesheet or a pseudo-state, found %s", p.describe(tok))
				p.synchronize()
			}
		})
		p.expectCallClose()
	}
	entry.Span = p.spanSince(start)
	return entry
}

func mergeClasses(dst, src *ast.ClassesDecl, span lexer.SourceSpan, p *Parser) *ast.ClassesDecl {
	if dst == nil {
		return src
	}
	p.addError(diagnostics.KindDuplicateSectionInScope, span, "Class already declared in this scope")
	for _, name := range src.Order {
		if _, exists := dst.Entries[name]; exists {
			p.addError(diagnostics.KindDuplicateKey, src.Span, "duplicate class %q", name)
		}
		dst.Set(name, src.Entries[name])
	}
	return dst
}
