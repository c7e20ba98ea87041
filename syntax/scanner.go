package syntax

import (
	"strings"
	"unicode/utf8"
)

// Scanner is a string iterator with peek/eat capabilities.
// It tracks a cursor position and provides methods for consuming characters.
type Scanner struct {
	text   string
	cursor int
}

// NewScanner creates a new scanner for the given text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// String returns the underlying text being scanned.
func (s *Scanner) String() string {
	return s.text
}

// Cursor returns the current position in the text.
func (s *Scanner) Cursor() int {
	return s.cursor
}

// Jump sets the cursor to the given position, clamped into the text.
func (s *Scanner) Jump(pos int) {
	s.cursor = s.clamp(pos)
}

// Advance moves the cursor forward by the given number of bytes.
func (s *Scanner) Advance(by int) {
	s.Jump(s.cursor + by)
}

// Done returns true if the scanner has reached the end of the text.
func (s *Scanner) Done() bool {
	return s.cursor >= len(s.text)
}

// Peek returns the next rune without consuming it.
// Returns 0 if at end.
func (s *Scanner) Peek() rune {
	return firstRune(s.After())
}

// Scout looks at a rune at a relative offset from the cursor.
// Positive offsets look ahead, negative offsets look behind.
// Returns 0 if the position is out of bounds.
func (s *Scanner) Scout(offset int) rune {
	pos := s.cursor
	for ; offset > 0; offset-- {
		if pos >= len(s.text) {
			return 0
		}
		_, size := utf8.DecodeRuneInString(s.text[pos:])
		pos += size
	}
	for ; offset < 0; offset++ {
		if pos <= 0 {
			return 0
		}
		_, size := utf8.DecodeLastRuneInString(s.text[:pos])
		pos -= size
	}
	return firstRune(s.text[pos:])
}

// Eat consumes and returns the next rune.
// Returns 0 if at end.
func (s *Scanner) Eat() rune {
	if s.Done() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(s.After())
	s.cursor += size
	return r
}

// Uneat moves back one rune.
func (s *Scanner) Uneat() {
	if s.cursor > 0 {
		_, size := utf8.DecodeLastRuneInString(s.Before())
		s.cursor -= size
	}
}

// EatIf consumes the next rune if it matches the given rune.
// Returns true if consumed.
func (s *Scanner) EatIf(r rune) bool {
	if s.Done() || s.Peek() != r {
		return false
	}
	s.Eat()
	return true
}

// EatIfStr consumes the string if it matches at the current position.
// Returns true if consumed.
func (s *Scanner) EatIfStr(str string) bool {
	if !s.At(str) {
		return false
	}
	s.cursor += len(str)
	return true
}

// EatWhile consumes runes while the predicate returns true.
// Returns the consumed string.
func (s *Scanner) EatWhile(pred func(rune) bool) string {
	return s.eatSpan(pred, true)
}

// EatUntil consumes runes until the predicate returns true.
// Returns the consumed string.
func (s *Scanner) EatUntil(pred func(rune) bool) string {
	return s.eatSpan(pred, false)
}

// eatSpan consumes runes for as long as pred matches the wanted polarity.
func (s *Scanner) eatSpan(pred func(rune) bool, want bool) string {
	start := s.cursor
	for !s.Done() && pred(s.Peek()) == want {
		s.Eat()
	}
	return s.text[start:s.cursor]
}

// EatNewline consumes one line break, treating \r\n as a single break.
// Returns true if a newline was consumed.
func (s *Scanner) EatNewline() bool {
	switch {
	case s.EatIf('\r'):
		s.EatIf('\n')
		return true
	case s.EatIf('\n'), s.EatIf('\x0B'), s.EatIf('\x0C'),
		s.EatIf('\u0085'), s.EatIf('\u2028'), s.EatIf('\u2029'):
		return true
	}
	return false
}

// At checks if the current position starts with the given string.
func (s *Scanner) At(str string) bool {
	return strings.HasPrefix(s.After(), str)
}

// AtRune checks if the current position matches a rune predicate.
func (s *Scanner) AtRune(pred func(rune) bool) bool {
	return !s.Done() && pred(s.Peek())
}

// AtAny checks if the current position matches any of the given runes.
func (s *Scanner) AtAny(runes ...rune) bool {
	if s.Done() {
		return false
	}
	return strings.ContainsRune(string(runes), s.Peek())
}

// AtAnyStr checks if the current position matches any of the given strings.
func (s *Scanner) AtAnyStr(strs ...string) bool {
	for _, str := range strs {
		if s.At(str) {
			return true
		}
	}
	return false
}

// Before returns the text before the cursor.
func (s *Scanner) Before() string {
	return s.text[:s.cursor]
}

// After returns the text after the cursor.
func (s *Scanner) After() string {
	return s.text[s.cursor:]
}

// From returns the text from the given position to the cursor.
func (s *Scanner) From(start int) string {
	start = s.clamp(start)
	if start > s.cursor {
		return ""
	}
	return s.text[start:s.cursor]
}

// To returns the text from the cursor to the given position.
func (s *Scanner) To(end int) string {
	end = s.clamp(end)
	if end < s.cursor {
		return ""
	}
	return s.text[s.cursor:end]
}

// Get returns a substring of the text.
func (s *Scanner) Get(start, end int) string {
	start, end = s.clamp(start), s.clamp(end)
	if start >= end {
		return ""
	}
	return s.text[start:end]
}

// Clone creates a copy of the scanner with the same position.
func (s *Scanner) Clone() *Scanner {
	clone := *s
	return &clone
}

// clamp bounds a byte position into the text.
func (s *Scanner) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(s.text) {
		return len(s.text)
	}
	return pos
}

// firstRune decodes the first rune of rest, or 0 when rest is empty.
func firstRune(rest string) rune {
	if rest == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r
}
