package ast

// This file collects small factory functions for building AST nodes, kept
// separate from the type definitions themselves so parser code reads as a
// sequence of node constructions rather than struct literals.

// NewContext builds a context node.
func NewContext(kind ContextKind, name string, decls Declarations, span Span) *Context {
	return &Context{Kind: kind, Name: name, Declarations: decls, Span: span}
}

// Str builds a plain Literal value with no interpolation.
func Str(text string, span Span) Value {
	return Value{Kind: ValueLiteral, Text: text, Span: span}
}

// InterpolatedStr builds a Literal value whose parts contain one or more
// interpolations. text is the fully concatenated rendering (references
// rendered as their own name) used for display purposes.
func InterpolatedStr(text string, parts []ValuePart, span Span) Value {
	return Value{Kind: ValueLiteral, Text: text, Parts: parts, Span: span}
}

// Num builds a Number value from its raw lexeme.
func Num(text string, span Span) Value {
	return Value{Kind: ValueNumber, Text: text, Span: span}
}

// VarRef builds a bare VariableRef value (the identifier shorthand).
func VarRef(name string, span Span) Value {
	return Value{Kind: ValueVariableRef, Name: name, Span: span}
}

// AnimRef builds a bare AnimationRef value (the identifier shorthand).
func AnimRef(name string, span Span) Value {
	return Value{Kind: ValueAnimationRef, Name: name, Span: span}
}

// TextPart builds a literal-text fragment of an interpolated string.
func TextPart(text string, span Span) ValuePart {
	return ValuePart{Kind: PartText, Text: text, Span: span}
}

// VarRefPart builds a ${name} fragment tagged as a variable reference.
func VarRefPart(name string, span Span) ValuePart {
	return ValuePart{Kind: PartVariableRef, Name: name, Span: span}
}

// AnimRefPart builds a ${name} fragment tagged as an animation reference.
func AnimRefPart(name string, span Span) ValuePart {
	return ValuePart{Kind: PartAnimationRef, Name: name, Span: span}
}

// NewImports builds an Imports declaration body.
func NewImports(items []string, span Span) *ImportsDecl {
	return &ImportsDecl{Items: items, Span: span}
}

// NewTypefaces builds an empty Typefaces declaration body ready for entries
// to be appended via Set.
func NewTypefaces(span Span) *TypefacesDecl {
	return &TypefacesDecl{Entries: map[string]string{}, Span: span}
}

// Set records ident → path, appending ident to Order only on first sight.
func (d *TypefacesDecl) Set(ident, path string) {
	if _, exists := d.Entries[ident]; !exists {
		d.Order = append(d.Order, ident)
	}
	d.Entries[ident] = path
}

// NewBreakpointGroup builds an empty MobileFirst/DesktopFirst group.
func NewBreakpointGroup(span Span) *BreakpointGroup {
	return &BreakpointGroup{Entries: map[string]string{}, Span: span}
}

// Set records ident → size, appending ident to Order only on first sight.
func (g *BreakpointGroup) Set(ident, size string) {
	if _, exists := g.Entries[ident]; !exists {
		g.Order = append(g.Order, ident)
	}
	g.Entries[ident] = size
}

// NewBreakpoints builds an empty Breakpoints declaration body.
func NewBreakpoints(span Span) *BreakpointsDecl {
	return &BreakpointsDecl{Span: span}
}

// NewThemes builds an empty Themes declaration body.
func NewThemes(span Span) *ThemesDecl {
	return &ThemesDecl{Span: span}
}

// NewAliases builds an empty Aliases declaration body.
func NewAliases(span Span) *AliasesDecl {
	return &AliasesDecl{Entries: map[string]string{}, Span: span}
}

// Set records ident → target, appending ident to Order only on first sight.
func (d *AliasesDecl) Set(ident, target string) {
	if _, exists := d.Entries[ident]; !exists {
		d.Order = append(d.Order, ident)
	}
	d.Entries[ident] = target
}

// NewVariables builds an empty Variables declaration body.
func NewVariables(span Span) *VariablesDecl {
	return &VariablesDecl{Entries: map[string]Value{}, Span: span}
}

// Set records ident → value, appending ident to Order only on first sight.
func (d *VariablesDecl) Set(ident string, v Value) {
	if _, exists := d.Entries[ident]; !exists {
		d.Order = append(d.Order, ident)
	}
	d.Entries[ident] = v
}

// NewAnimationStop builds an empty stop of the given kind.
func NewAnimationStop(kind StopKind, span Span) AnimationStop {
	return AnimationStop{Kind: kind, Properties: map[string]*PropertyAssignment{}, Span: span}
}

// Set records name → assignment, appending name to Order only on first
// sight (last occurrence still wins the stored value).
func (s *AnimationStop) Set(name string, assignment *PropertyAssignment) {
	if _, exists := s.Properties[name]; !exists {
		s.Order = append(s.Order, name)
	}
	s.Properties[name] = assignment
}

// NewAnimations builds an empty Animations declaration body.
func NewAnimations(span Span) *AnimationsDecl {
	return &AnimationsDecl{Entries: map[string]*AnimationBody{}, Span: span}
}

// Set records name → body, appending name to Order only on first sight.
func (d *AnimationsDecl) Set(name string, body *AnimationBody) {
	if _, exists := d.Entries[name]; !exists {
		d.Order = append(d.Order, name)
	}
	d.Entries[name] = body
}

// NewStateBlock builds an empty state block for the given selector
// ("Stylesheet", "Hover", …).
func NewStateBlock(selector string, span Span) *StateBlock {
	return &StateBlock{Selector: selector, Properties: map[string]*PropertyAssignment{}, Span: span}
}

// Set records name → assignment, appending name to Order only on first
// sight (last occurrence still wins the stored value).
func (b *StateBlock) Set(name string, assignment *PropertyAssignment) {
	if _, exists := b.Properties[name]; !exists {
		b.Order = append(b.Order, name)
	}
	b.Properties[name] = assignment
}

// NewPanoramicEntry builds an empty breakpoint entry.
func NewPanoramicEntry(breakpointID string, span Span) *PanoramicEntry {
	return &PanoramicEntry{BreakpointID: breakpointID, States: map[string]*StateBlock{}, Span: span}
}

// Set records selector → block, appending selector to Order only on first
// sight.
func (e *PanoramicEntry) Set(selector string, block *StateBlock) {
	if _, exists := e.States[selector]; !exists {
		e.StateOrder = append(e.StateOrder, selector)
	}
	e.States[selector] = block
}

// NewPanoramicBlock builds an empty PanoramicViewer block.
func NewPanoramicBlock(span Span) *PanoramicBlock {
	return &PanoramicBlock{Entries: map[string]*PanoramicEntry{}, Span: span}
}

// Set records id → entry, appending id to Order only on first sight.
func (b *PanoramicBlock) Set(id string, entry *PanoramicEntry) {
	if _, exists := b.Entries[id]; !exists {
		b.Order = append(b.Order, id)
	}
	b.Entries[id] = entry
}

// NewClassBody builds an empty class body.
func NewClassBody(name string, span Span) *ClassBody {
	return &ClassBody{Name: name, PseudoStates: map[string]*StateBlock{}, Span: span}
}

// SetPseudo records selector → block, appending selector to Order only on
// first sight.
func (c *ClassBody) SetPseudo(selector string, block *StateBlock) {
	if _, exists := c.PseudoStates[selector]; !exists {
		c.PseudoOrder = append(c.PseudoOrder, selector)
	}
	c.PseudoStates[selector] = block
}

// NewClasses builds an empty Classes declaration body.
func NewClasses(span Span) *ClassesDecl {
	return &ClassesDecl{Entries: map[string]*ClassBody{}, Span: span}
}

// Set records name → body, appending name to Order only on first sight.
func (d *ClassesDecl) Set(name string, body *ClassBody) {
	if _, exists := d.Entries[name]; !exists {
		d.Order = append(d.Order, name)
	}
	d.Entries[name] = body
}
