package ast

import "testing"

func TestSpanContains(t *testing.T) {
	outer := Span{Start: Position{Offset: 0}, End: Position{Offset: 10}}
	inner := Span{Start: Position{Offset: 2}, End: Position{Offset: 5}}
	edge := Span{Start: Position{Offset: 0}, End: Position{Offset: 10}}
	outside := Span{Start: Position{Offset: 4}, End: Position{Offset: 11}}

	if !outer.Contains(inner) {
		t.Errorf("expected outer to contain inner")
	}
	if !outer.Contains(edge) {
		t.Errorf("expected outer to contain itself")
	}
	if outer.Contains(outside) {
		t.Errorf("did not expect outer to contain a span extending past its end")
	}
}

func TestSpanJoin(t *testing.T) {
	a := Span{Start: Position{Offset: 5}, End: Position{Offset: 10}}
	b := Span{Start: Position{Offset: 2}, End: Position{Offset: 20}}
	joined := a.Join(b)
	if joined.Start.Offset != 2 || joined.End.Offset != 20 {
		t.Errorf("unexpected join result: %+v", joined)
	}
}

func TestContextKindString(t *testing.T) {
	cases := map[ContextKind]string{Central: "Central", Layout: "Layout", Module: "Module"}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestTypefacesSetOrderAndLastWins(t *testing.T) {
	d := NewTypefaces(Span{})
	d.Set("heading", "/fonts/a.woff")
	d.Set("body", "/fonts/b.woff")
	d.Set("heading", "/fonts/a2.woff")

	if got, want := d.Order, []string{"heading", "body"}; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Order = %v, want %v", got, want)
	}
	if d.Entries["heading"] != "/fonts/a2.woff" {
		t.Errorf("expected last-write-wins, got %q", d.Entries["heading"])
	}
}

func TestVariablesSetOrderAndLastWins(t *testing.T) {
	d := NewVariables(Span{})
	d.Set("a", Num("1", Span{}))
	d.Set("b", Str("x", Span{}))
	d.Set("a", Num("2", Span{}))

	if len(d.Order) != 2 || d.Order[0] != "a" || d.Order[1] != "b" {
		t.Errorf("unexpected Order: %v", d.Order)
	}
	if d.Entries["a"].Text != "2" {
		t.Errorf("expected a to be overwritten to 2, got %q", d.Entries["a"].Text)
	}
}

func TestAnimationStopSetAppendsOrderOnce(t *testing.T) {
	stop := NewAnimationStop(StopFrom, Span{})
	stop.Set("opacity", &PropertyAssignment{Name: "opacity", Value: Str("0", Span{})})
	stop.Set("color", &PropertyAssignment{Name: "color", Value: Str("red", Span{})})
	stop.Set("opacity", &PropertyAssignment{Name: "opacity", Value: Str("0.5", Span{})})

	if len(stop.Order) != 2 {
		t.Fatalf("expected 2 entries in Order, got %d: %v", len(stop.Order), stop.Order)
	}
	if stop.Properties["opacity"].Value.Text != "0.5" {
		t.Errorf("expected opacity overwritten to 0.5, got %q", stop.Properties["opacity"].Value.Text)
	}
}

func TestClassBodySetPseudo(t *testing.T) {
	c := NewClassBody("Card", Span{})
	block := NewStateBlock("Hover", Span{})
	c.SetPseudo("Hover", block)
	if len(c.PseudoOrder) != 1 || c.PseudoOrder[0] != "Hover" {
		t.Errorf("unexpected PseudoOrder: %v", c.PseudoOrder)
	}
	if c.PseudoStates["Hover"] != block {
		t.Errorf("expected stored block to match")
	}
}

func TestPanoramicEntrySetOrder(t *testing.T) {
	e := NewPanoramicEntry("sm", Span{})
	e.Set("Stylesheet", NewStateBlock("Stylesheet", Span{}))
	e.Set("Hover", NewStateBlock("Hover", Span{}))
	if len(e.StateOrder) != 2 || e.StateOrder[0] != "Stylesheet" || e.StateOrder[1] != "Hover" {
		t.Errorf("unexpected StateOrder: %v", e.StateOrder)
	}
}

func TestValuePartConstructors(t *testing.T) {
	text := TextPart("color: ", Span{})
	if text.Kind != PartText || text.Text != "color: " {
		t.Errorf("unexpected text part: %+v", text)
	}
	varRef := VarRefPart("primary", Span{})
	if varRef.Kind != PartVariableRef || varRef.Name != "primary" {
		t.Errorf("unexpected var ref part: %+v", varRef)
	}
	animRef := AnimRefPart("fadeIn", Span{})
	if animRef.Kind != PartAnimationRef || animRef.Name != "fadeIn" {
		t.Errorf("unexpected anim ref part: %+v", animRef)
	}
}

func TestStopKindString(t *testing.T) {
	cases := map[StopKind]string{
		StopFrom:        "From",
		StopHalfway:     "Halfway",
		StopTo:          "To",
		StopFraction:    "Fraction",
		StopProgressive: "Progressive",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", kind, got, want)
		}
	}
}
