package eval

import (
	"testing"

	"github.com/cortado-lang/cortado/syntax"
)

func TestEvalStringCodeLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want Value
	}{
		{"none", None},
		{"true", True},
		{"42", Int(42)},
		{"1.5", Float(1.5)},
		{"\"hi\"", Str("hi")},
	}
	for _, tt := range tests {
		got, err := EvalString(nil, tt.src, syntax.Detached(), EvalModeCode, nil)
		if err != nil {
			t.Errorf("EvalString(%q) error: %v", tt.src, err)
			continue
		}
		if got != tt.want {
			t.Errorf("EvalString(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestEvalStringInjectedScope(t *testing.T) {
	scope := NewScope()
	scope.Define("x", Int(21), syntax.Detached())

	got, err := EvalString(nil, "x * 2", syntax.Detached(), EvalModeCode, scope)
	if err != nil {
		t.Fatalf("EvalString error: %v", err)
	}
	if v, ok := AsInt(got); !ok || v != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

func TestEvalStringMarkup(t *testing.T) {
	got, err := EvalString(nil, "hello", syntax.Detached(), EvalModeMarkup, nil)
	if err != nil {
		t.Fatalf("EvalString error: %v", err)
	}
	cv, ok := got.(ContentValue)
	if !ok {
		t.Fatalf("markup mode returned %T, want ContentValue", got)
	}
	if cv.Content.String() != "hello" {
		t.Errorf("content = %q, want %q", cv.Content.String(), "hello")
	}
}

func TestEvalStringParseErrors(t *testing.T) {
	if _, err := EvalString(nil, "let = ", syntax.Detached(), EvalModeCode, nil); err == nil {
		t.Error("expected parse error to surface")
	}
}

func TestEvalStringFlowLeakErrors(t *testing.T) {
	if _, err := EvalString(nil, "break", syntax.Detached(), EvalModeCode, nil); err == nil {
		t.Error("expected break at top level to error")
	}
}
