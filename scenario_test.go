package cortado

import (
	"strings"
	"testing"

	"github.com/cortado-lang/cortado/eval"
	"github.com/cortado-lang/cortado/realize"
)

// collectText walks realized pairs and concatenates the plain text of
// every element, descending into containers.
func collectText(pairs []realize.Pair) string {
	var sb strings.Builder
	for _, pair := range pairs {
		collectElementText(pair.Element, &sb)
	}
	return sb.String()
}

func collectElementText(elem eval.ContentElement, sb *strings.Builder) {
	switch e := elem.(type) {
	case *eval.TextElement:
		sb.WriteString(e.Text)
	case *eval.SpaceElement:
		sb.WriteString(" ")
	case *eval.ParagraphElement:
		collectContentText(e.Body, sb)
	case *eval.HeadingElement:
		collectContentText(e.Content, sb)
	case *eval.StrongElement:
		collectContentText(e.Content, sb)
	case *eval.EmphElement:
		collectContentText(e.Content, sb)
	case *eval.StyledElement:
		collectContentText(e.Child, sb)
	}
}

func collectContentText(content eval.Content, sb *strings.Builder) {
	for _, elem := range content.Elements {
		collectElementText(elem, sb)
	}
}

// findHeading returns the first heading in the realized output,
// descending into styled wrappers.
func findHeading(pairs []realize.Pair) *eval.HeadingElement {
	for _, pair := range pairs {
		if h := headingIn(pair.Element); h != nil {
			return h
		}
	}
	return nil
}

func headingIn(elem eval.ContentElement) *eval.HeadingElement {
	switch e := elem.(type) {
	case *eval.HeadingElement:
		return e
	case *eval.StyledElement:
		for _, child := range e.Child.Elements {
			if h := headingIn(child); h != nil {
				return h
			}
		}
	}
	return nil
}

func findStyled(pairs []realize.Pair) *eval.StyledElement {
	for _, pair := range pairs {
		if styled, ok := pair.Element.(*eval.StyledElement); ok {
			return styled
		}
	}
	return nil
}

func TestScenarioHeading(t *testing.T) {
	world := newMockWorld("main.typ", `= Intro`)

	result := Compile(world)
	if !result.Success() {
		for _, err := range result.Errors {
			t.Errorf("compile error: %s", err.Message)
		}
		t.Fatal("compilation failed")
	}

	heading := findHeading(result.Realized)
	if heading == nil {
		t.Fatal("no heading element in realized output")
	}
	if heading.Level != 1 {
		t.Errorf("heading level = %d, want 1", heading.Level)
	}
	var sb strings.Builder
	collectContentText(heading.Content, &sb)
	if strings.TrimSpace(sb.String()) != "Intro" {
		t.Errorf("heading body = %q, want %q", sb.String(), "Intro")
	}
}

func TestScenarioSetThenParagraph(t *testing.T) {
	world := newMockWorld("main.typ", "#set text(weight: \"bold\")\nHello")

	result := Compile(world)
	if !result.Success() {
		for _, err := range result.Errors {
			t.Errorf("compile error: %s", err.Message)
		}
		t.Fatal("compilation failed")
	}

	styled := findStyled(result.Realized)
	if styled == nil {
		t.Fatal("set rule did not produce a styled wrapper around the tail")
	}

	chain := realize.NewStyleChain(styled.Styles, nil)
	if _, found := chain.Get("text", "weight"); !found {
		t.Error("styles do not carry the text weight setting")
	}

	var sb strings.Builder
	collectContentText(styled.Child, &sb)
	if !strings.Contains(sb.String(), "Hello") {
		t.Errorf("styled tail = %q, want it to contain %q", sb.String(), "Hello")
	}
}

func TestScenarioForOverArray(t *testing.T) {
	world := newMockWorld("main.typ", `#for x in (1, 2, 3) [#x ]`)

	result := Compile(world)
	if !result.Success() {
		for _, err := range result.Errors {
			t.Errorf("compile error: %s", err.Message)
		}
		t.Fatal("compilation failed")
	}

	text := collectText(result.Realized)
	compact := strings.Join(strings.Fields(text), "")
	if compact != "123" {
		t.Errorf("loop output = %q (compact %q), want the digits 1 2 3", text, compact)
	}
}

func TestScenarioGridPlacement(t *testing.T) {
	world := newMockWorld("main.typ", `#grid(columns: 2, [a], [b], [c])`)

	result := Compile(world)
	if !result.Success() {
		for _, err := range result.Errors {
			t.Errorf("compile error: %s", err.Message)
		}
		t.Fatal("compilation failed")
	}

	if len(result.Grids) != 1 {
		t.Fatalf("expected 1 resolved grid, got %d", len(result.Grids))
	}
	g := result.Grids[0]
	if g.ColCount != 2 {
		t.Errorf("ColCount = %d, want 2", g.ColCount)
	}
	if g.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", g.RowCount)
	}
	if len(g.Entries) != g.ColCount*g.RowCount {
		t.Errorf("len(Entries) = %d, want %d", len(g.Entries), g.ColCount*g.RowCount)
	}
	// Auto placement is row-major: the three cells land at (0,0),
	// (1,0), (0,1), and fixup fills the remaining slot.
	for i, e := range g.Entries {
		if e.Cell == nil && e.Parent == nil {
			t.Errorf("entry %d is neither a cell nor merged", i)
		}
	}
	first := g.CellAt(0, 0)
	if first == nil || first.X != 0 || first.Y != 0 {
		t.Error("first auto-placed cell is not at (0,0)")
	}
}
