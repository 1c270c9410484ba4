// Package proptable is the small static registry the expression parser
// consults to decide what kind of reference a ${name} interpolation denotes:
// a read-only map built once, with a lookup method instead of global
// dispatch state threaded through the parser.
package proptable

import "github.com/nenyr-lang/nenyr-go/pkgs/ast"

// animationProperties lists the property names (and their aliases) whose
// value interpolations are tagged AnimationRef rather than VariableRef.
// Every other property name defaults to VariableRef.
var animationProperties = map[string]bool{
	"animationName": true,
	"animation":     true,
	"anim":          true,
}

// ReferenceKindFor reports the ast.ValueKind a ${name} interpolation should
// be tagged with when it appears inside the value of the given property.
// An empty propertyName (interpolation inside a Declare Variables entry,
// which has no enclosing property) always yields VariableRef.
func ReferenceKindFor(propertyName string) ast.ValueKind {
	if animationProperties[propertyName] {
		return ast.ValueAnimationRef
	}
	return ast.ValueVariableRef
}
