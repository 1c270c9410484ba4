package parser

import (
	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
	"github.com/nenyr-lang/nenyr-go/pkgs/diagnostics"
	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
)

// parseUnit parses a single source unit down to its one Context node. It
// returns nil only when the Construct header itself could not be resolved
// to a context kind; a context returned after a later fatal error (a
// second Construct header) is still the fully-built first context, left
// for the caller to reject via the accompanying Error-severity diagnostic.
func (p *Parser) parseUnit() *ast.Context {
	start := p.peek().Span

	if !p.expectKeyword(lexer.CONSTRUCT, "Construct") {
		p.addError(diagnostics.KindMissingContext, p.peek().Span, "no Construct header found")
		return nil
	}

	kind, name, ok := p.parseContextHeader()
	if !ok {
		return nil
	}

	p.enter("context " + name)
	defer p.leave()

	decls := Declarations{}
	if _, ok := p.consume(lexer.LBRACE, diagnostics.KindExpectedOpenBrace, "expected {, found %s", p.describe(p.peek())); ok {
		p.parseEntryList(func() { p.parseDeclareEntry(&decls) })
		p.consume(lexer.RBRACE, diagnostics.KindExpectedCloseBrace, "expected }, found %s", p.describe(p.peek()))
	}

	ctx := ast.NewContext(kind, name, decls.toAST(), p.spanSince(start))

	if p.check(lexer.CONSTRUCT) {
		p.addError(diagnostics.KindMultipleContexts, p.peek().Span, "a source unit may declare only one Construct")
		return ctx
	}
	if !p.atEnd() {
		p.addError(diagnostics.KindUnexpectedToken, p.peek().Span,
			"unexpected %s after context body", p.describe(p.peek()))
	}
	return ctx
}

// parseContextHeader parses the {Central | Layout("Name") | Module("Name")}
// portion after Construct.
func (p *Parser) parseContextHeader() (ast.ContextKind, string, bool) {
	tok := p.peek()
	switch tok.Type {
	case lexer.CENTRAL:
		p.advance()
		return ast.Central, "", true
	case lexer.LAYOUT:
		p.advance()
		name, ok := p.parseContextName()
		return ast.Layout, name, ok
	case lexer.MODULE:
		p.advance()
		name, ok := p.parseContextName()
		return ast.Module, name, ok
	default:
		suggestion := ""
		if tok.Type == lexer.IDENTIFIER {
			suggestion = diagnostics.SuggestKeyword(tok.Value)
		}
		p.addErrorSuggest(diagnostics.KindUnexpectedToken, tok.Span, suggestion,
			"expected Central, Layout, or Module, found %s", p.describe(tok))
		return 0, "", false
	}
}

func (p *Parser) parseContextName() (string, bool) {
	if _, ok := p.consume(lexer.LPAREN, diagnostics.KindExpectedPunct, "expected (, found %s", p.describe(p.peek())); !ok {
		return "", false
	}
	tok, ok := p.consume(lexer.STRING, diagnostics.KindExpectedString, "expected a string name, found %s", p.describe(p.peek()))
	if !ok {
		return "", false
	}
	_, ok2 := p.consume(lexer.RPAREN, diagnostics.KindExpectedPunct, "expected ), found %s", p.describe(p.peek()))
	return tok.Value, ok2
}

// Declarations accumulates merged declaration bodies across the top-level
// entry list, tracking which families have already been seen so a second
// occurrence of the same family emits DuplicateSectionInScope and merges
// rather than overwrites.
type Declarations struct {
	imports     *ast.ImportsDecl
	typefaces   *ast.TypefacesDecl
	breakpoints *ast.BreakpointsDecl
	themes      *ast.ThemesDecl
	aliases     *ast.AliasesDecl
	variables   *ast.VariablesDecl
	animations  *ast.AnimationsDecl
	classes     *ast.ClassesDecl
}

func (d *Declarations) toAST() ast.Declarations {
	return ast.Declarations{
		Imports:     d.imports,
		Typefaces:   d.typefaces,
		Breakpoints: d.breakpoints,
		Themes:      d.themes,
		Aliases:     d.aliases,
		Variables:   d.variables,
		Animations:  d.animations,
		Classes:     d.classes,
	}
}

// parseDeclareEntry parses one `Declare <Family>(...)` entry, merging its
// result into decls.
func (p *Parser) parseDeclareEntry(decls *Declarations) {
	if !p.expectKeyword(lexer.DECLARE, "Declare") {
		p.synchronize()
		return
	}

	tok := p.peek()
	switch tok.Type {
	case lexer.IMPORTS:
		p.advance()
		body := p.parseImports()
		if decls.imports != nil {
			p.addError(diagnostics.KindDuplicateSectionInScope, tok.Span, "Imports already declared in this scope")
			decls.imports.Items = append(decls.imports.Items, body.Items...)
		} else {
			decls.imports = body
		}
	case lexer.TYPEFACES:
		p.advance()
		body := p.parseTypefaces()
		decls.typefaces = mergeMapDecl(decls.typefaces, body, tok.Span, p, func(dst, src *ast.TypefacesDecl) {
			for _, k := range src.Order {
				dst.Set(k, src.Entries[k])
			}
		})
	case lexer.BREAKPOINTS:
		p.advance()
		body := p.parseBreakpoints()
		decls.breakpoints = mergeBreakpoints(decls.breakpoints, body, tok.Span, p)
	case lexer.THEMES:
		p.advance()
		body := p.parseThemes()
		decls.themes = mergeThemes(decls.themes, body, tok.Span, p)
	case lexer.ALIASES:
		p.advance()
		body := p.parseAliases()
		decls.aliases = mergeMapDecl(decls.aliases, body, tok.Span, p, func(dst, src *ast.AliasesDecl) {
			for _, k := range src.Order {
				dst.Set(k, src.Entries[k])
			}
		})
	case lexer.VARIABLES:
		p.advance()
		body := p.parseVariables()
		decls.variables = mergeMapDecl(decls.variables, body, tok.Span, p, func(dst, src *ast.VariablesDecl) {
			for _, k := range src.Order {
				dst.Set(k, src.Entries[k])
			}
		})
	case lexer.ANIMATION:
		p.advance()
		body := p.parseAnimations()
		decls.animations = mergeAnimations(decls.animations, body, tok.Span, p)
	case lexer.CLASS:
		p.advance()
		body := p.parseClasses()
		decls.classes = mergeClasses(decls.classes, body, tok.Span, p)
	default:
		suggestion := ""
		if tok.Type == lexer.IDENTIFIER {
			suggestion = diagnostics.SuggestKeyword(tok.Value)
		}
		p.addErrorSuggest(diagnostics.KindUnknownDeclaration, tok.Span, suggestion,
			"unknown declaration family %s", p.describe(tok))
		p.synchronize()
	}
}

func mergeMapDecl[T any](dst, src *T, span lexer.SourceSpan, p *Parser, merge func(dst, src *T)) *T {
	if dst == nil {
		return src
	}
	p.addError(diagnostics.KindDuplicateSectionInScope, span, "declaration family already declared in this scope")
	merge(dst, src)
	return dst
}
