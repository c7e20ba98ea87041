// Package syntax provides the foundational types for Typst's syntax tree.
// It defines SyntaxKind (token and node types) and SyntaxSet (bitset for kinds).
package syntax

// SyntaxKind represents the type of a syntax node or token.
// This is the foundation type for the Typst syntax tree.
type SyntaxKind uint8

// All syntax kinds in Typst.
const (
	End SyntaxKind = iota
	Error

	// Comments
	Shebang
	LineComment
	BlockComment

	// Markup
	Markup
	Text
	Space
	Linebreak
	Parbreak

	// Escape sequences
	Escape
	Shorthand
	SmartQuote

	// Text formatting
	Strong
	Emph

	// Raw blocks
	Raw
	RawLang
	RawDelim
	RawTrimmed

	// References and labels
	Link
	Label
	Ref
	RefMarker

	// Headings and lists
	Heading
	HeadingMarker
	ListItem
	ListMarker
	EnumItem
	EnumMarker
	TermItem
	TermMarker

	// Math
	Equation
	Math
	MathText
	MathIdent
	MathShorthand
	MathAlignPoint
	MathDelimited
	MathAttach
	MathPrimes
	MathFrac
	MathRoot

	// Operators and delimiters
	Hash
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	LeftParen
	RightParen
	Comma
	Semicolon
	Colon
	Star
	Underscore
	Dollar
	Plus
	Minus
	Slash
	Hat
	Dot
	Eq
	EqEq
	ExclEq
	Lt
	LtEq
	Gt
	GtEq
	PlusEq
	HyphEq
	StarEq
	SlashEq
	Dots
	Arrow
	Root
	Bang

	// Keyword operators
	Not
	And
	Or

	// Keyword literals
	None
	Auto

	// Keywords
	Let
	Set
	Show
	Context
	If
	Else
	For
	In
	While
	Break
	Continue
	Return
	Import
	Include
	As

	// Code elements
	Code
	Ident
	Bool
	Int
	Float
	Numeric
	Str

	// Expressions and blocks
	CodeBlock
	ContentBlock
	Parenthesized
	Array
	Dict
	Named
	Keyed
	Unary
	Binary
	FieldAccess
	FuncCall
	Args
	Spread
	Closure
	Params

	// Statements and control flow
	LetBinding
	SetRule
	ShowRule
	Contextual
	Conditional
	WhileLoop
	ForLoop
	ModuleImport
	ImportItems
	ImportItemPath
	RenamedImportItem
	ModuleInclude
	LoopBreak
	LoopContinue
	FuncReturn
	Destructuring
	DestructAssignment
)

// Kind classes, as bitsets so the predicates below are single lookups.
var (
	groupingKinds   = SyntaxSetOf(LeftBrace, RightBrace, LeftBracket, RightBracket, LeftParen, RightParen)
	terminatorKinds = SyntaxSetOf(End, Semicolon, RightBrace, RightParen, RightBracket)
	blockKinds      = SyntaxSetOf(CodeBlock, ContentBlock)
	stmtKinds       = SyntaxSetOf(LetBinding, SetRule, ShowRule, ModuleImport, ModuleInclude)
	triviaKinds     = SyntaxSetOf(Shebang, LineComment, BlockComment, Space, Parbreak)
	keywordKinds    = SyntaxSetOf(
		Not, And, Or, None, Auto,
		Let, Set, Show, Context,
		If, Else, For, In, While,
		Break, Continue, Return,
		Import, Include, As,
	)
)

// IsGrouping returns true if this kind is a bracket, brace, or parenthesis.
func (k SyntaxKind) IsGrouping() bool {
	return groupingKinds.Contains(k)
}

// IsTerminator returns true if this kind terminates an expression.
func (k SyntaxKind) IsTerminator() bool {
	return terminatorKinds.Contains(k)
}

// IsBlock returns true if this kind is a code or content block.
func (k SyntaxKind) IsBlock() bool {
	return blockKinds.Contains(k)
}

// IsStmt returns true if this kind is a statement-level construct.
func (k SyntaxKind) IsStmt() bool {
	return stmtKinds.Contains(k)
}

// IsTrivia returns true if this kind is automatically skipped in code/math mode.
func (k SyntaxKind) IsTrivia() bool {
	return triviaKinds.Contains(k)
}

// IsKeyword returns true if this kind is a language keyword.
func (k SyntaxKind) IsKeyword() bool {
	return keywordKinds.Contains(k)
}

// IsError returns true if this kind is an error node.
func (k SyntaxKind) IsError() bool {
	return k == Error
}

// kindNames maps every kind to its human-readable name, used in
// "expected X" diagnostics.
var kindNames = map[SyntaxKind]string{
	End:                "end of tokens",
	Error:              "syntax error",
	Shebang:            "shebang",
	LineComment:        "line comment",
	BlockComment:       "block comment",
	Markup:             "markup",
	Text:               "text",
	Space:              "space",
	Linebreak:          "line break",
	Parbreak:           "paragraph break",
	Escape:             "escape sequence",
	Shorthand:          "shorthand",
	SmartQuote:         "smart quote",
	Strong:             "strong content",
	Emph:               "emphasized content",
	Raw:                "raw block",
	RawLang:            "raw language tag",
	RawDelim:           "raw delimiter",
	RawTrimmed:         "raw trimmed",
	Link:               "link",
	Label:              "label",
	Ref:                "reference",
	RefMarker:          "reference marker",
	Heading:            "heading",
	HeadingMarker:      "heading marker",
	ListItem:           "list item",
	ListMarker:         "list marker",
	EnumItem:           "enum item",
	EnumMarker:         "enum marker",
	TermItem:           "term list item",
	TermMarker:         "term marker",
	Equation:           "equation",
	Math:               "math",
	MathText:           "math text",
	MathIdent:          "math identifier",
	MathShorthand:      "math shorthand",
	MathAlignPoint:     "math alignment point",
	MathDelimited:      "delimited math",
	MathAttach:         "math attachments",
	MathPrimes:         "math primes",
	MathFrac:           "math fraction",
	MathRoot:           "math root",
	Hash:               "hash",
	LeftBrace:          "opening brace",
	RightBrace:         "closing brace",
	LeftBracket:        "opening bracket",
	RightBracket:       "closing bracket",
	LeftParen:          "opening paren",
	RightParen:         "closing paren",
	Comma:              "comma",
	Semicolon:          "semicolon",
	Colon:              "colon",
	Star:               "star",
	Underscore:         "underscore",
	Dollar:             "dollar sign",
	Plus:               "plus",
	Minus:              "minus",
	Slash:              "slash",
	Hat:                "hat",
	Dot:                "dot",
	Eq:                 "equals sign",
	EqEq:               "equality operator",
	ExclEq:             "inequality operator",
	Lt:                 "less-than operator",
	LtEq:               "less-than or equal operator",
	Gt:                 "greater-than operator",
	GtEq:               "greater-than or equal operator",
	PlusEq:             "add-assign operator",
	HyphEq:             "subtract-assign operator",
	StarEq:             "multiply-assign operator",
	SlashEq:            "divide-assign operator",
	Dots:               "dots",
	Arrow:              "arrow",
	Root:               "root",
	Bang:               "exclamation mark",
	Not:                "operator `not`",
	And:                "operator `and`",
	Or:                 "operator `or`",
	None:               "`none`",
	Auto:               "`auto`",
	Let:                "keyword `let`",
	Set:                "keyword `set`",
	Show:               "keyword `show`",
	Context:            "keyword `context`",
	If:                 "keyword `if`",
	Else:               "keyword `else`",
	For:                "keyword `for`",
	In:                 "keyword `in`",
	While:              "keyword `while`",
	Break:              "keyword `break`",
	Continue:           "keyword `continue`",
	Return:             "keyword `return`",
	Import:             "keyword `import`",
	Include:            "keyword `include`",
	As:                 "keyword `as`",
	Code:               "code",
	Ident:              "identifier",
	Bool:               "boolean",
	Int:                "integer",
	Float:              "float",
	Numeric:            "numeric value",
	Str:                "string",
	CodeBlock:          "code block",
	ContentBlock:       "content block",
	Parenthesized:      "group",
	Array:              "array",
	Dict:               "dictionary",
	Named:              "named pair",
	Keyed:              "keyed pair",
	Unary:              "unary expression",
	Binary:             "binary expression",
	FieldAccess:        "field access",
	FuncCall:           "function call",
	Args:               "call arguments",
	Spread:             "spread",
	Closure:            "closure",
	Params:             "closure parameters",
	LetBinding:         "`let` expression",
	SetRule:            "`set` expression",
	ShowRule:           "`show` expression",
	Contextual:         "`context` expression",
	Conditional:        "`if` expression",
	WhileLoop:          "while-loop expression",
	ForLoop:            "for-loop expression",
	ModuleImport:       "`import` expression",
	ImportItems:        "import items",
	ImportItemPath:     "imported item path",
	RenamedImportItem:  "renamed import item",
	ModuleInclude:      "`include` expression",
	LoopBreak:          "`break` expression",
	LoopContinue:       "`continue` expression",
	FuncReturn:         "`return` expression",
	Destructuring:      "destructuring pattern",
	DestructAssignment:  "destructuring assignment expression",
}

// Name returns a human-readable name for the syntax kind.
func (k SyntaxKind) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k SyntaxKind) String() string {
	return k.Name()
}
