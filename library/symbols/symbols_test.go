package symbols

import "testing"

func TestLookupDefaults(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"alpha", "α"},
		{"Omega", "Ω"},
		{"arrow", "→"},
		{"infinity", "∞"},
		{"sum", "∑"},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.path)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%q) = %q, %v; want %q, true", tt.path, got, ok, tt.want)
		}
	}
}

func TestLookupVariants(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"arrow.l", "←"},
		{"arrow.l.double", "⇐"},
		{"eq.not", "≠"},
		{"lt.eq", "≤"},
		{"in.not", "∉"},
		{"integral.cont", "∮"},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.path)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%q) = %q, %v; want %q, true", tt.path, got, ok, tt.want)
		}
	}
}

func TestLookupMisses(t *testing.T) {
	for _, path := range []string{"nosuch", "arrow.sideways", "alpha.double", ""} {
		if got, ok := Lookup(path); ok {
			t.Errorf("Lookup(%q) = %q, true; want miss", path, got)
		}
	}
}

func TestSymbolAccessors(t *testing.T) {
	arrow := Named("arrow")
	if arrow == nil {
		t.Fatal("arrow symbol missing")
	}
	if arrow.Default() != "→" {
		t.Errorf("Default() = %q, want →", arrow.Default())
	}
	if !arrow.HasVariant("l", "double") {
		t.Error("expected arrow.l.double variant")
	}
	if arrow.Get("bar") != "↦" {
		t.Errorf("Get(bar) = %q, want ↦", arrow.Get("bar"))
	}
	variants := arrow.AllVariants()
	if len(variants) == 0 || variants[0] != "" {
		t.Errorf("AllVariants should start with the default key, got %v", variants)
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) < 60 {
		t.Fatalf("expected a substantial symbol table, got %d names", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
