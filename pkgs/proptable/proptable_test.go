package proptable

import (
	"testing"

	"github.com/nenyr-lang/nenyr-go/pkgs/ast"
)

func TestReferenceKindForAnimationProperties(t *testing.T) {
	for _, name := range []string{"animationName", "animation", "anim"} {
		if got := ReferenceKindFor(name); got != ast.ValueAnimationRef {
			t.Errorf("ReferenceKindFor(%q) = %v, want AnimationRef", name, got)
		}
	}
}

func TestReferenceKindForDefaultsToVariableRef(t *testing.T) {
	for _, name := range []string{"color", "backgroundColor", "", "animationDuration"} {
		if got := ReferenceKindFor(name); got != ast.ValueVariableRef {
			t.Errorf("ReferenceKindFor(%q) = %v, want VariableRef", name, got)
		}
	}
}
