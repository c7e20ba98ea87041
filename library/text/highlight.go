// Package text provides syntax highlighting for raw code blocks.
//
// The highlighting system uses a hook-based design: custom highlighters
// can be registered per language, with a keyword-based fallback for a
// handful of common languages and a no-op fallback for everything else.
package text

import (
	"github.com/cortado-lang/cortado/eval"
)

// HighlightedSpan is a run of code with one style applied.
type HighlightedSpan struct {
	Text  string
	Style HighlightStyle
}

// HighlightStyle describes how a span is rendered.
type HighlightStyle struct {
	Color  string // hex RGB, empty for the default text color
	Bold   bool
	Italic bool
}

// SyntaxHighlighter splits code in some language into styled spans.
type SyntaxHighlighter interface {
	Highlight(code, lang string) []HighlightedSpan
	SupportedLanguages() []string
}

// Hooks routes a language to its registered highlighter, falling back
// to the default highlighter when no specific one is registered.
type Hooks struct {
	byLang   map[string]SyntaxHighlighter
	fallback SyntaxHighlighter
}

// NewHooks creates an empty hook registry with a no-op fallback.
func NewHooks() *Hooks {
	return &Hooks{byLang: map[string]SyntaxHighlighter{}, fallback: noOpHighlighter{}}
}

// Register routes every language the highlighter supports to it.
func (h *Hooks) Register(highlighter SyntaxHighlighter) {
	for _, lang := range highlighter.SupportedLanguages() {
		h.byLang[lang] = highlighter
	}
}

// RegisterDefault sets the fallback used for unknown languages.
func (h *Hooks) RegisterDefault(highlighter SyntaxHighlighter) {
	h.fallback = highlighter
}

// Highlight splits code into styled spans using the highlighter
// registered for lang.
func (h *Hooks) Highlight(code, lang string) []HighlightedSpan {
	if hl, ok := h.byLang[lang]; ok {
		return hl.Highlight(code, lang)
	}
	return h.fallback.Highlight(code, lang)
}

// HighlightRawElement highlights a realized raw element. Elements
// without a language tag produce no spans.
func (h *Hooks) HighlightRawElement(element *eval.RawElement) []HighlightedSpan {
	if element == nil || element.Lang == "" {
		return nil
	}
	return h.Highlight(element.Text, element.Lang)
}

// DefaultHooks is the registry used when a host doesn't provide one.
var DefaultHooks = NewHooks()

// noOpHighlighter returns the code as a single unstyled span.
type noOpHighlighter struct{}

func (noOpHighlighter) Highlight(code, lang string) []HighlightedSpan {
	return []HighlightedSpan{{Text: code}}
}

func (noOpHighlighter) SupportedLanguages() []string { return nil }

// Styles shared by every keyword highlighter language.
var (
	keywordStyle = HighlightStyle{Color: "0000ff", Bold: true}
	literalStyle = HighlightStyle{Color: "ff6600", Italic: true}
)

// keywordSets lists, per language, the words drawn in keywordStyle and
// the literal-like words drawn in literalStyle.
var keywordSets = map[string]struct{ keywords, literals []string }{
	"go": {
		keywords: []string{"func", "return", "if", "else", "for", "range", "package", "import", "type", "struct", "interface", "var", "const"},
		literals: []string{"nil", "true", "false"},
	},
	"python": {
		keywords: []string{"def", "class", "return", "if", "else", "elif", "for", "while", "import", "from", "try", "except"},
		literals: []string{"None", "True", "False"},
	},
	"javascript": {
		keywords: []string{"function", "return", "if", "else", "for", "while", "const", "let", "var", "class"},
		literals: []string{"null", "true", "false", "undefined"},
	},
	"rust": {
		keywords: []string{"fn", "let", "mut", "return", "if", "else", "for", "while", "loop", "match", "use", "mod", "pub", "struct", "impl", "trait"},
		literals: []string{"None", "Some", "true", "false"},
	},
}

// KeywordHighlighter provides keyword-level highlighting for the
// languages in keywordSets.
type KeywordHighlighter struct {
	styles map[string]map[string]HighlightStyle
}

// NewKeywordHighlighter builds the per-language style tables.
func NewKeywordHighlighter() *KeywordHighlighter {
	styles := make(map[string]map[string]HighlightStyle, len(keywordSets))
	for lang, set := range keywordSets {
		table := make(map[string]HighlightStyle, len(set.keywords)+len(set.literals))
		for _, w := range set.keywords {
			table[w] = keywordStyle
		}
		for _, w := range set.literals {
			table[w] = literalStyle
		}
		styles[lang] = table
	}
	return &KeywordHighlighter{styles: styles}
}

// Highlight implements SyntaxHighlighter: words found in the language's
// table become styled spans, everything between them is coalesced into
// plain spans.
func (h *KeywordHighlighter) Highlight(code, lang string) []HighlightedSpan {
	table, ok := h.styles[lang]
	if !ok {
		return []HighlightedSpan{{Text: code}}
	}

	var spans []HighlightedSpan
	var plain, word []rune
	flushWord := func() {
		if len(word) == 0 {
			return
		}
		if style, isKeyword := table[string(word)]; isKeyword {
			if len(plain) > 0 {
				spans = append(spans, HighlightedSpan{Text: string(plain)})
				plain = nil
			}
			spans = append(spans, HighlightedSpan{Text: string(word), Style: style})
		} else {
			plain = append(plain, word...)
		}
		word = nil
	}

	for _, r := range code {
		if isWordChar(r) {
			word = append(word, r)
			continue
		}
		flushWord()
		plain = append(plain, r)
	}
	flushWord()
	if len(plain) > 0 {
		spans = append(spans, HighlightedSpan{Text: string(plain)})
	}
	return spans
}

// SupportedLanguages implements SyntaxHighlighter.
func (h *KeywordHighlighter) SupportedLanguages() []string {
	langs := make([]string, 0, len(h.styles))
	for lang := range h.styles {
		langs = append(langs, lang)
	}
	return langs
}

func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func init() {
	DefaultHooks.Register(NewKeywordHighlighter())
}
