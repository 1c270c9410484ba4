package ast

// ContextKind identifies which of the three top-level contexts a source unit
// declares.
type ContextKind int

const (
	Central ContextKind = iota
	Layout
	Module
)

func (k ContextKind) String() string {
	switch k {
	case Central:
		return "Central"
	case Layout:
		return "Layout"
	case Module:
		return "Module"
	default:
		return "unknown"
	}
}

// Context is the AST root: exactly one per source unit.
type Context struct {
	Kind ContextKind
	// Name is the Layout/Module identifier argument; empty for Central.
	Name         string
	Declarations Declarations
	Span         Span
}

// Declarations holds at most one merged body per family, plus the ordered
// named collections (Animation, Class) that are themselves maps.
type Declarations struct {
	Imports     *ImportsDecl
	Typefaces   *TypefacesDecl
	Breakpoints *BreakpointsDecl
	Themes      *ThemesDecl
	Aliases     *AliasesDecl
	Variables   *VariablesDecl
	Animations  *AnimationsDecl
	Classes     *ClassesDecl
}

// ValueKind tags a Value's variant.
type ValueKind int

const (
	ValueLiteral ValueKind = iota
	ValueNumber
	ValueVariableRef
	ValueAnimationRef
)

func (k ValueKind) String() string {
	switch k {
	case ValueLiteral:
		return "Literal"
	case ValueNumber:
		return "Number"
	case ValueVariableRef:
		return "VariableRef"
	case ValueAnimationRef:
		return "AnimationRef"
	default:
		return "unknown"
	}
}

// PartKind tags one piece of an interpolated string Literal.
type PartKind int

const (
	PartText PartKind = iota
	PartVariableRef
	PartAnimationRef
)

// ValuePart is one fragment of a Literal value that contains one or more
// ${name} interpolations: either a run of plain text or a tagged reference.
type ValuePart struct {
	Kind PartKind
	Text string // set when Kind == PartText
	Name string // set when Kind == PartVariableRef or PartAnimationRef
	Span Span
}

// Value is the Value Expression variant from the data model: a Literal
// string (possibly carrying embedded interpolation Parts), a Number, or a
// bare identifier shorthand tagged as a VariableRef or AnimationRef.
type Value struct {
	Kind ValueKind
	// Text holds the raw lexeme for Number, the unescaped string for a
	// plain Literal, and for an interpolated Literal the fully concatenated
	// string with each ${name} reference rendered as its name.
	Text string
	// Name holds the referenced identifier for VariableRef/AnimationRef.
	Name string
	// Parts is set only for a Literal that contains one or more ${name}
	// interpolations; nil for every other Value.
	Parts []ValuePart
	Span  Span
}

// ImportsDecl is an ordered list of imported paths/URLs.
type ImportsDecl struct {
	Items []string
	Span  Span
}

// TypefacesDecl maps a font alias identifier to its path/URL literal.
type TypefacesDecl struct {
	Entries map[string]string
	Order   []string
	Span    Span
}

// BreakpointGroup is the body of a single MobileFirst or DesktopFirst block.
type BreakpointGroup struct {
	Entries map[string]string
	Order   []string
	Span    Span
}

// BreakpointsDecl holds the at-most-one-each MobileFirst/DesktopFirst groups.
type BreakpointsDecl struct {
	MobileFirst  *BreakpointGroup
	DesktopFirst *BreakpointGroup
	Span         Span
}

// ThemeVariant is the body of a single Light or Dark block: a nested
// Declare Variables.
type ThemeVariant struct {
	Variables *VariablesDecl
	Span      Span
}

// ThemesDecl holds the at-most-one-each Light/Dark variants.
type ThemesDecl struct {
	Light *ThemeVariant
	Dark  *ThemeVariant
	Span  Span
}

// AliasesDecl maps an identifier to the canonical property identifier it
// stands for.
type AliasesDecl struct {
	Entries map[string]string
	Order   []string
	Span    Span
}

// VariablesDecl maps an identifier to its value expression.
type VariablesDecl struct {
	Entries map[string]Value
	Order   []string
	Span    Span
}

// StopKind tags one Animation keyframe.
type StopKind int

const (
	StopFrom StopKind = iota
	StopHalfway
	StopTo
	StopFraction
	StopProgressive
)

func (k StopKind) String() string {
	switch k {
	case StopFrom:
		return "From"
	case StopHalfway:
		return "Halfway"
	case StopTo:
		return "To"
	case StopFraction:
		return "Fraction"
	case StopProgressive:
		return "Progressive"
	default:
		return "unknown"
	}
}

// PropertyAssignment is a single `property-name: value` pair, used inside
// animation stops and state blocks alike.
type PropertyAssignment struct {
	Name  string
	Value Value
	Span  Span
}

// AnimationStop is one keyframe: From/Halfway/To carry no argument,
// Fraction carries a 0..1 float, Progressive carries a positive int.
type AnimationStop struct {
	Kind        StopKind
	Fraction    float64
	Progressive int
	Properties  map[string]*PropertyAssignment
	Order       []string
	Span        Span
}

// AnimationBody is one named entry inside a Declare Animation block.
type AnimationBody struct {
	Name  string
	Stops []AnimationStop
	Span  Span
}

// AnimationsDecl maps animation name to its body.
type AnimationsDecl struct {
	Entries map[string]*AnimationBody
	Order   []string
	Span    Span
}

// StateBlock is the `property: value` mapping inside Stylesheet, a pseudo
// state (Hover/Active/Focus/…), or a PanoramicViewer entry's nested state.
type StateBlock struct {
	Selector   string
	Properties map[string]*PropertyAssignment
	Order      []string
	Span       Span
}

// PanoramicEntry is one `breakpoint-ident({ ... })` inside a PanoramicViewer
// block: a breakpoint reference plus its own nested state-selector mapping.
type PanoramicEntry struct {
	BreakpointID string
	States       map[string]*StateBlock
	StateOrder   []string
	Span         Span
}

// PanoramicBlock is one `PanoramicViewer({ … })` occurrence inside a class.
type PanoramicBlock struct {
	Entries map[string]*PanoramicEntry
	Order   []string
	Span    Span
}

// ClassBody is one named entry inside a Declare Class block.
type ClassBody struct {
	Name string

	Extending    string
	HasExtending bool
	Importance   bool
	HasImportance bool

	Stylesheet   *StateBlock
	PseudoStates map[string]*StateBlock
	PseudoOrder  []string
	Panoramic    []*PanoramicBlock

	Span Span
}

// ClassesDecl maps class name to its body.
type ClassesDecl struct {
	Entries map[string]*ClassBody
	Order   []string
	Span    Span
}
