package syntax

import (
	"testing"
)

// letPattern parses a let binding and returns its pattern.
func letPattern(t *testing.T, src string) Pattern {
	t.Helper()
	expr := firstCodeExpr(t, src)
	let, ok := expr.(*LetBindingExpr)
	if !ok {
		t.Fatalf("%q parsed as %T, want *LetBindingExpr", src, expr)
	}
	pattern := let.Pattern()
	if pattern == nil {
		t.Fatalf("no pattern in %q", src)
	}
	return pattern
}

func TestNormalPattern(t *testing.T) {
	pattern := letPattern(t, "let x = 1")
	normal, ok := pattern.(*NormalPattern)
	if !ok {
		t.Fatalf("pattern is %T, want *NormalPattern", pattern)
	}
	if normal.Name() != "x" {
		t.Errorf("Name() = %q, want %q", normal.Name(), "x")
	}
	bindings := normal.Bindings()
	if len(bindings) != 1 || bindings[0].Get() != "x" {
		t.Errorf("Bindings() = %v, want [x]", bindings)
	}
}

func TestPlaceholderPattern(t *testing.T) {
	pattern := letPattern(t, "let _ = 1")
	if _, ok := pattern.(*PlaceholderPattern); !ok {
		t.Fatalf("pattern is %T, want *PlaceholderPattern", pattern)
	}
	if len(pattern.Bindings()) != 0 {
		t.Error("placeholder should bind nothing")
	}
}

func TestDestructuringPattern(t *testing.T) {
	pattern := letPattern(t, "let (a, b) = (1, 2)")
	destruct, ok := pattern.(*DestructuringPattern)
	if !ok {
		t.Fatalf("pattern is %T, want *DestructuringPattern", pattern)
	}

	bindings := destruct.Bindings()
	if len(bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(bindings))
	}
	if bindings[0].Get() != "a" || bindings[1].Get() != "b" {
		t.Errorf("bindings = [%s, %s], want [a, b]", bindings[0].Get(), bindings[1].Get())
	}
}

func TestDestructuringPatternWithSink(t *testing.T) {
	pattern := letPattern(t, "let (first, ..rest) = (1, 2, 3)")
	destruct, ok := pattern.(*DestructuringPattern)
	if !ok {
		t.Fatalf("pattern is %T, want *DestructuringPattern", pattern)
	}

	var sawSink bool
	for _, item := range destruct.Items() {
		if _, ok := item.(*DestructuringSpread); ok {
			sawSink = true
		}
	}
	if !sawSink {
		t.Error("expected a spread item in the pattern")
	}
}

func TestPatternFromNodeNil(t *testing.T) {
	if PatternFromNode(nil) != nil {
		t.Error("PatternFromNode(nil) should be nil")
	}
}
