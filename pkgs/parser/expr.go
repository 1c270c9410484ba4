package parser

import (
	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
	"github.com/nenyr-lang/nenyr-go/pkgs/diagnostics"
	"github.com/nenyr-lang/nenyr-go/pkgs/lexer"
	"github.com/nenyr-lang/nenyr-go/pkgs/proptable"
)

// parseValue implements the value-expression grammar: a string
// literal (possibly interpolated), a bare number, or a bare identifier
// shorthand for a variable reference. propertyName is the enclosing
// property name, consulted against proptable to decide whether a ${name}
// interpolation tags as a VariableRef or an AnimationRef; pass "" when
// there is no enclosing property (e.g. directly inside Declare Variables).
func (p *Parser) parseValue(propertyName string) (ast.Value, bool) {
	switch p.peek().Type {
	case lexer.STRING:
		return p.parseStringValue(propertyName), true
	case lexer.NUMBER:
		tok := p.advance()
		return ast.Num(tok.Value, toSpan(tok.Span)), true
	case lexer.IDENTIFIER:
		tok := p.advance()
		return ast.VarRef(tok.Value, toSpan(tok.Span)), true
	default:
		got := p.peek()
		p.addError(diagnostics.KindUnexpectedToken, got.Span,
			"expected a value (string, number, or identifier), found %s", p.describe(got))
		return ast.Value{}, false
	}
}

// parseStringValue decomposes a STRING token's fragments into a plain
// Literal or, when it carries ${name} interpolations, an InterpolatedStr
// whose parts are tagged VariableRef or AnimationRef per propertyName.
func (p *Parser) parseStringValue(propertyName string) ast.Value {
	tok := p.advance()
	span := toSpan(tok.Span)

	hasInterpolation := false
	for _, f := range tok.Fragments {
		if f.IsInterpolation {
			hasInterpolation = true
			break
		}
	}
	if !hasInterpolation {
		return ast.Str(tok.Value, span)
	}

	refKind := proptable.ReferenceKindFor(propertyName)
	parts := make([]ast.ValuePart, 0, len(tok.Fragments))
	var rendered string
	for _, f := range tok.Fragments {
		fspan := toSpan(f.Span)
		if !f.IsInterpolation {
			parts = append(parts, ast.TextPart(f.Text, fspan))
			rendered += f.Text
			continue
		}
		if f.Name == "" {
			p.addError(diagnostics.KindEmptyInterpolationTarget, f.Span, "empty interpolation target")
			continue
		}
		if refKind == ast.ValueAnimationRef {
			parts = append(parts, ast.AnimRefPart(f.Name, fspan))
		} else {
			parts = append(parts, ast.VarRefPart(f.Name, fspan))
		}
		rendered += f.Name
	}
	return ast.InterpolatedStr(rendered, parts, span)
}
