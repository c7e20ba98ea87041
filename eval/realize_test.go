package eval

import (
	"testing"

	"github.com/cortado-lang/cortado/syntax"
)

func newRealizeVm() *Vm {
	return NewVm(NewEngine(nil), NewContext(), NewScopes(nil), syntax.Detached())
}

func textContent(s string) Content {
	return Content{Elements: []ContentElement{&TextElement{Text: s}}}
}

func TestMatchElemSelector(t *testing.T) {
	ctx := NewRealizeContext(newRealizeVm(), nil)

	sel := ElemSelector{Element: Element{Name: "heading"}}
	verdict, _ := matchSelector(sel, &HeadingElement{Level: 1}, ctx)
	if verdict != VerdictAccept {
		t.Errorf("heading selector should accept a heading, got %v", verdict)
	}

	verdict, _ = matchSelector(sel, &TextElement{Text: "hi"}, ctx)
	if verdict != VerdictNone {
		t.Errorf("heading selector should not accept text, got %v", verdict)
	}
}

func TestMatchTextSelector(t *testing.T) {
	ctx := NewRealizeContext(newRealizeVm(), nil)

	literal := TextSelector{Text: "hello"}
	if verdict, _ := matchSelector(literal, &TextElement{Text: "hello"}, ctx); verdict != VerdictAccept {
		t.Error("literal text selector should match identical text")
	}
	if verdict, _ := matchSelector(literal, &TextElement{Text: "goodbye"}, ctx); verdict == VerdictAccept {
		t.Error("literal text selector should not match different text")
	}

	regex := TextSelector{Text: `\d+`, IsRegex: true}
	if verdict, _ := matchSelector(regex, &TextElement{Text: "123"}, ctx); verdict != VerdictAccept {
		t.Error("regex selector should match digits")
	}

	invalid := TextSelector{Text: `[unclosed`, IsRegex: true}
	if verdict, _ := matchSelector(invalid, &TextElement{Text: "x"}, ctx); verdict == VerdictAccept {
		t.Error("invalid regex must not match")
	}
}

func TestMatchOrAndSelectors(t *testing.T) {
	ctx := NewRealizeContext(newRealizeVm(), nil)
	heading := ElemSelector{Element: Element{Name: "heading"}}
	strong := ElemSelector{Element: Element{Name: "strong"}}

	or := OrSelector{Selectors: []Selector{heading, strong}}
	if verdict, _ := matchSelector(or, &StrongElement{}, ctx); verdict != VerdictAccept {
		t.Error("or selector should accept strong")
	}

	and := AndSelector{Selectors: []Selector{heading, strong}}
	if verdict, _ := matchSelector(and, &StrongElement{}, ctx); verdict == VerdictAccept {
		t.Error("and selector should reject strong (not a heading)")
	}
}

func TestDetermineVerdictNilSelector(t *testing.T) {
	ctx := NewRealizeContext(newRealizeVm(), nil)
	recipe := &Recipe{Transform: NoneTransformation{}}
	verdict, _ := DetermineVerdict(recipe, &TextElement{Text: "x"}, ctx)
	if verdict != VerdictAccept {
		t.Errorf("recipe without selector should apply to everything, got %v", verdict)
	}
}

func TestApplyNoneTransformationHidesContent(t *testing.T) {
	ctx := NewRealizeContext(newRealizeVm(), nil)
	recipe := NewRecipe(
		ElemSelector{Element: Element{Name: "text"}},
		NoneTransformation{},
		syntax.Detached(),
	)

	result, err := RealizeContent(textContent("secret"), NewRealizeContext(ctx.VM, []*Recipe{recipe}))
	if err != nil {
		t.Fatalf("RealizeContent error: %v", err)
	}
	if len(result.Elements) != 0 {
		t.Errorf("none transformation should hide content, got %d elements", len(result.Elements))
	}
}

func TestApplyContentTransformationReplaces(t *testing.T) {
	vm := newRealizeVm()
	recipe := NewRecipe(
		ElemSelector{Element: Element{Name: "strong"}},
		ContentTransformation{Content: textContent("replaced")},
		syntax.Detached(),
	)

	input := Content{Elements: []ContentElement{&StrongElement{Content: textContent("original")}}}
	result, err := RealizeContent(input, NewRealizeContext(vm, []*Recipe{recipe}))
	if err != nil {
		t.Fatalf("RealizeContent error: %v", err)
	}
	if result.String() != "replaced" {
		t.Errorf("got %q, want %q", result.String(), "replaced")
	}
}

func TestRealizeLaterRecipeWins(t *testing.T) {
	vm := newRealizeVm()
	first := NewRecipe(
		ElemSelector{Element: Element{Name: "text"}},
		ContentTransformation{Content: textContent("first")},
		syntax.Detached(),
	)
	second := NewRecipe(
		ElemSelector{Element: Element{Name: "text"}},
		ContentTransformation{Content: textContent("second")},
		syntax.Detached(),
	)

	// Recipes are checked in reverse order of definition, so the later
	// recipe shadows the earlier one. The replacement is itself text,
	// which the remaining (earlier) recipe then rewrites.
	result, err := RealizeContent(textContent("x"), NewRealizeContext(vm, []*Recipe{first, second}))
	if err != nil {
		t.Fatalf("RealizeContent error: %v", err)
	}
	if result.String() != "first" {
		t.Errorf("got %q, want %q", result.String(), "first")
	}
}

func TestRealizeLeavesUnmatchedContent(t *testing.T) {
	vm := newRealizeVm()
	recipe := NewRecipe(
		ElemSelector{Element: Element{Name: "heading"}},
		NoneTransformation{},
		syntax.Detached(),
	)

	result, err := RealizeContent(textContent("keep me"), NewRealizeContext(vm, []*Recipe{recipe}))
	if err != nil {
		t.Fatalf("RealizeContent error: %v", err)
	}
	if result.String() != "keep me" {
		t.Errorf("got %q, want %q", result.String(), "keep me")
	}
}

func TestPrepareTransformKeepsMatchedValue(t *testing.T) {
	recipe := NewRecipe(nil, NoneTransformation{}, syntax.Detached())
	matched := ContentValue{Content: textContent("x")}
	prep := PrepareTransform(recipe, matched)
	if prep.Recipe != recipe {
		t.Error("prepared transform lost its recipe")
	}
	if _, ok := prep.MatchedValue.(ContentValue); !ok {
		t.Errorf("prepared transform lost its matched value: %T", prep.MatchedValue)
	}
}

func TestRecursionLimitError(t *testing.T) {
	err := &RecursionLimitError{Message: "maximum show rule depth exceeded", Depth: 64}
	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}
}
