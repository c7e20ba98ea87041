package text

import (
	"strings"
	"testing"

	"github.com/cortado-lang/cortado/eval"
)

func joinSpans(spans []HighlightedSpan) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func TestKeywordHighlighterGo(t *testing.T) {
	h := NewKeywordHighlighter()
	code := "func main() { return nil }"
	spans := h.Highlight(code, "go")

	if joinSpans(spans) != code {
		t.Fatalf("spans reassemble to %q, want %q", joinSpans(spans), code)
	}

	var sawKeyword, sawLiteral bool
	for _, s := range spans {
		if s.Text == "func" && s.Style == keywordStyle {
			sawKeyword = true
		}
		if s.Text == "nil" && s.Style == literalStyle {
			sawLiteral = true
		}
	}
	if !sawKeyword {
		t.Error("expected func to be styled as a keyword")
	}
	if !sawLiteral {
		t.Error("expected nil to be styled as a literal")
	}
}

func TestKeywordHighlighterUnknownLanguage(t *testing.T) {
	h := NewKeywordHighlighter()
	spans := h.Highlight("SELECT 1", "sql")
	if len(spans) != 1 || spans[0].Text != "SELECT 1" || spans[0].Style != (HighlightStyle{}) {
		t.Errorf("unknown language should pass through unstyled, got %+v", spans)
	}
}

func TestKeywordAtEndOfInput(t *testing.T) {
	h := NewKeywordHighlighter()
	spans := h.Highlight("x = nil", "go")
	last := spans[len(spans)-1]
	if last.Text != "nil" || last.Style != literalStyle {
		t.Errorf("trailing literal not styled, got %+v", last)
	}
}

func TestHooksFallback(t *testing.T) {
	hooks := NewHooks()
	spans := hooks.Highlight("anything", "nosuchlang")
	if len(spans) != 1 || spans[0].Text != "anything" {
		t.Errorf("no-op fallback should return one plain span, got %+v", spans)
	}
}

func TestHooksRouting(t *testing.T) {
	hooks := NewHooks()
	hooks.Register(NewKeywordHighlighter())
	spans := hooks.Highlight("return", "python")
	if len(spans) != 1 || spans[0].Style != keywordStyle {
		t.Errorf("registered language should be keyword-styled, got %+v", spans)
	}
}

func TestHighlightRawElement(t *testing.T) {
	raw := &eval.RawElement{Text: "def f(): return None", Lang: "python", Block: true}
	spans := DefaultHooks.HighlightRawElement(raw)
	if joinSpans(spans) != raw.Text {
		t.Fatalf("spans reassemble to %q, want %q", joinSpans(spans), raw.Text)
	}

	if got := DefaultHooks.HighlightRawElement(&eval.RawElement{Text: "plain"}); got != nil {
		t.Errorf("raw element without a language should produce no spans, got %+v", got)
	}
}
