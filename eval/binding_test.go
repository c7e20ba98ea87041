package eval

import (
	"strings"
	"testing"
)

func TestLetBindingDefinesName(t *testing.T) {
	result, err := evalCodeString(t, "let x = 42\nx")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v, ok := AsInt(result); !ok || v != 42 {
		t.Errorf("x = %v, want 42", result)
	}
}

func TestDestructureArray(t *testing.T) {
	result, err := evalCodeString(t, "let (a, b) = (1, 2)\na + b")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v, ok := AsInt(result); !ok || v != 3 {
		t.Errorf("a + b = %v, want 3", result)
	}
}

func TestDestructureWithSink(t *testing.T) {
	result, err := evalCodeString(t, "let (first, ..rest) = (1, 2, 3)\nrest.len()")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v, ok := AsInt(result); !ok || v != 2 {
		t.Errorf("rest.len() = %v, want 2", result)
	}
}

func TestDestructureWrongNumberOfElements(t *testing.T) {
	_, err := evalCodeString(t, "let (a, b, c) = (1, 2)")
	if err == nil {
		t.Fatal("expected destructuring error")
	}
	if !strings.Contains(err.Error(), "elements") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestDestructureNonArrayFails(t *testing.T) {
	_, err := evalCodeString(t, "let (a, b) = 3")
	if err == nil {
		t.Fatal("expected error destructuring an int")
	}
}

func TestDestructuringAssignment(t *testing.T) {
	result, err := evalCodeString(t, "let a = 0\nlet b = 0\n(a, b) = (5, 7)\na * b")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v, ok := AsInt(result); !ok || v != 35 {
		t.Errorf("a * b = %v, want 35", result)
	}
}

func TestLetClosureBinding(t *testing.T) {
	result, err := evalCodeString(t, "let double(x) = x * 2\ndouble(21)")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v, ok := AsInt(result); !ok || v != 42 {
		t.Errorf("double(21) = %v, want 42", result)
	}
}

func TestClosureCapturesByValue(t *testing.T) {
	// The closure snapshots x at creation time; later writes to x are
	// not observed.
	result, err := evalCodeString(t, "let x = 1\nlet f() = x\nx = 2\nf()")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if v, ok := AsInt(result); !ok || v != 1 {
		t.Errorf("f() = %v, want captured 1", result)
	}
}
