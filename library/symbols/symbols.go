// Package symbols provides the named Unicode symbols of the `sym`
// module: Greek letters, operators, relations, and arrows.
//
// A symbol may have multiple variants accessed via dot modifiers. For
// example, arrow is the right arrow (→) and arrow.l.double is ⇐.
package symbols

import (
	"sort"
	"strings"
)

// Symbol is a named symbol with one default variant and any number of
// modified variants.
type Symbol struct {
	Name     string
	variants map[string]string
}

// Get returns the Unicode string for the given modifier path, or ""
// when the variant does not exist.
func (s *Symbol) Get(modifiers ...string) string {
	return s.variants[strings.Join(modifiers, ".")]
}

// Default returns the unmodified variant.
func (s *Symbol) Default() string {
	return s.variants[""]
}

// HasVariant reports whether the symbol defines the given variant.
func (s *Symbol) HasVariant(modifiers ...string) bool {
	_, ok := s.variants[strings.Join(modifiers, ".")]
	return ok
}

// AllVariants returns the symbol's variant keys in sorted order, with
// "" naming the default.
func (s *Symbol) AllVariants() []string {
	keys := make([]string, 0, len(s.variants))
	for k := range s.variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup resolves a dotted path such as "arrow.l.double" against the
// symbol table.
func Lookup(path string) (string, bool) {
	name, rest, _ := strings.Cut(path, ".")
	sym, ok := table[name]
	if !ok {
		return "", false
	}
	v, ok := sym.variants[rest]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Named returns the symbol with the given base name.
func Named(name string) *Symbol {
	return table[name]
}

// Names returns every defined base name in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for n := range table {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var table = map[string]*Symbol{}

// def registers a symbol from alternating modifier/value pairs; the
// first pair's modifier is "" for the default variant.
func def(name string, pairs ...string) {
	variants := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		variants[pairs[i]] = pairs[i+1]
	}
	table[name] = &Symbol{Name: name, variants: variants}
}

func init() {
	// Greek lowercase.
	def("alpha", "", "α")
	def("beta", "", "β")
	def("gamma", "", "γ")
	def("delta", "", "δ")
	def("epsilon", "", "ε", "alt", "ϵ")
	def("zeta", "", "ζ")
	def("eta", "", "η")
	def("theta", "", "θ", "alt", "ϑ")
	def("iota", "", "ι")
	def("kappa", "", "κ")
	def("lambda", "", "λ")
	def("mu", "", "μ")
	def("nu", "", "ν")
	def("xi", "", "ξ")
	def("omicron", "", "ο")
	def("pi", "", "π")
	def("rho", "", "ρ")
	def("sigma", "", "σ", "alt", "ς")
	def("tau", "", "τ")
	def("upsilon", "", "υ")
	def("phi", "", "φ", "alt", "ϕ")
	def("chi", "", "χ")
	def("psi", "", "ψ")
	def("omega", "", "ω")

	// Greek uppercase.
	def("Alpha", "", "Α")
	def("Beta", "", "Β")
	def("Gamma", "", "Γ")
	def("Delta", "", "Δ")
	def("Epsilon", "", "Ε")
	def("Zeta", "", "Ζ")
	def("Eta", "", "Η")
	def("Theta", "", "Θ")
	def("Iota", "", "Ι")
	def("Kappa", "", "Κ")
	def("Lambda", "", "Λ")
	def("Mu", "", "Μ")
	def("Nu", "", "Ν")
	def("Xi", "", "Ξ")
	def("Omicron", "", "Ο")
	def("Pi", "", "Π")
	def("Rho", "", "Ρ")
	def("Sigma", "", "Σ")
	def("Tau", "", "Τ")
	def("Upsilon", "", "Υ")
	def("Phi", "", "Φ")
	def("Chi", "", "Χ")
	def("Psi", "", "Ψ")
	def("Omega", "", "Ω")

	// Operators.
	def("plus", "", "+", "minus", "±", "circle", "⊕", "dot", "∔")
	def("minus", "", "−", "plus", "∓", "circle", "⊖")
	def("times", "", "×", "circle", "⊗")
	def("div", "", "÷")
	def("dot", "", "⋅", "circle", "⊙")
	def("star", "", "⋆")
	def("ast", "", "∗")
	def("sum", "", "∑")
	def("product", "", "∏")
	def("integral", "", "∫", "double", "∬", "cont", "∮")
	def("diff", "", "∂")
	def("nabla", "", "∇")
	def("sqrt", "", "√")

	// Relations.
	def("eq", "", "=", "not", "≠", "triple", "≡", "def", "≝")
	def("lt", "", "<", "eq", "≤", "not", "≮")
	def("gt", "", ">", "eq", "≥", "not", "≯")
	def("approx", "", "≈", "not", "≉")
	def("tilde", "", "∼", "eq", "≃", "not", "≁")
	def("prop", "", "∝")
	def("prec", "", "≺", "eq", "⪯")
	def("succ", "", "≻", "eq", "⪰")

	// Sets and logic.
	def("in", "", "∈", "not", "∉", "rev", "∋")
	def("subset", "", "⊂", "eq", "⊆", "not", "⊄")
	def("supset", "", "⊃", "eq", "⊇", "not", "⊅")
	def("union", "", "∪", "big", "⋃")
	def("sect", "", "∩", "big", "⋂")
	def("emptyset", "", "∅")
	def("forall", "", "∀")
	def("exists", "", "∃", "not", "∄")
	def("and", "", "∧", "big", "⋀")
	def("or", "", "∨", "big", "⋁")
	def("not", "", "¬")
	def("tack", "", "⊢", "l", "⊣", "double", "⊨")

	// Arrows.
	def("arrow",
		"", "→",
		"l", "←",
		"t", "↑",
		"b", "↓",
		"double", "⇒",
		"l.double", "⇐",
		"l.r", "↔",
		"l.r.double", "⇔",
		"bar", "↦",
		"hook", "↪",
		"squiggly", "⇝",
	)

	// Misc.
	def("infinity", "", "∞")
	def("angle", "", "∠", "bracket.l", "⟨", "bracket.r", "⟩")
	def("perp", "", "⊥")
	def("parallel", "", "∥", "not", "∦")
	def("degree", "", "°")
	def("prime", "", "′", "double", "″", "triple", "‴")
	def("dots", "", "…", "h", "…", "v", "⋮", "c", "⋯", "down", "⋱")
	def("bullet", "", "•")
	def("section", "", "§")
	def("dagger", "", "†", "double", "‡")
	def("copyright", "", "©")
	def("floor", "l", "⌊", "r", "⌋")
	def("ceil", "l", "⌈", "r", "⌉")
	def("bracket", "l.double", "⟦", "r.double", "⟧")
}
