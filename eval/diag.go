// Diagnostics and re-exports for the evaluator.
//
// The value model and the selector/style machinery live in
// library/foundations; this file re-exports the names the evaluator and
// its consumers use unqualified, alongside the evaluator's own
// diagnostic types.

package eval

import (
	"fmt"

	"github.com/cortado-lang/cortado/library/foundations"
	"github.com/cortado-lang/cortado/syntax"
)

// Styles and rules.
type (
	Styles      = foundations.Styles
	StyleRule   = foundations.StyleRule
	StylesValue = foundations.StylesValue
	Recipe      = foundations.Recipe
	Element     = foundations.Element
)

// Selectors and show rule transformations.
type (
	Selector              = foundations.Selector
	ElemSelector          = foundations.ElemSelector
	LabelSelector         = foundations.LabelSelector
	TextSelector          = foundations.TextSelector
	FuncSelector          = foundations.FuncSelector
	RegexSelector         = foundations.RegexSelector
	OrSelector            = foundations.OrSelector
	AndSelector           = foundations.AndSelector
	Transformation        = foundations.Transformation
	NoneTransformation    = foundations.NoneTransformation
	ContentTransformation = foundations.ContentTransformation
	StyleTransformation   = foundations.StyleTransformation
	FuncTransformation    = foundations.FuncTransformation
)

// Function metadata and evaluation context.
type (
	FuncInfo  = foundations.FuncInfo
	ParamInfo = foundations.ParamInfo
	Context   = foundations.Context
)

var (
	NewContext = foundations.NewContext
	NewRecipe  = foundations.NewRecipe
	NewRoute   = foundations.NewRoute
	NewBinding = foundations.NewBinding
	NewTraced  = foundations.NewTraced

	NewScopeWithCategory = foundations.NewScopeWithCategory
)

// BoolValue is the boolean value variant.
type BoolValue = foundations.Bool

// TypeMismatchError reports a value of the wrong type.
type TypeMismatchError = foundations.TypeMismatchError

// InvalidArgumentError reports an argument that is well-typed but
// semantically invalid.
type InvalidArgumentError struct {
	Message string
	Span    syntax.Span
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// KeyNotFoundError reports a missing dictionary key.
type KeyNotFoundError struct {
	Key  string
	Span syntax.Span
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("dictionary does not contain key %q", e.Key)
}

// DivisionByZeroError reports an integer division or remainder by zero.
type DivisionByZeroError struct {
	Span syntax.Span
}

func (e *DivisionByZeroError) Error() string {
	return "cannot divide by zero"
}

// MissingMethodError reports a method call on a type that has no such
// method.
type MissingMethodError struct {
	Type   foundations.Type
	Method string
	Span   syntax.Span
}

func (e *MissingMethodError) Error() string {
	return fmt.Sprintf("type %s has no method `%s`", e.Type, e.Method)
}

// UndefinedVariableError reports an unknown identifier in code mode.
type UndefinedVariableError struct {
	Name string
	Span syntax.Span
}

func (e *UndefinedVariableError) Error() string {
	return "unknown variable: " + e.Name
}

// UnknownVariableError reports an unknown identifier in math mode.
type UnknownVariableError struct {
	Name string
	Span syntax.Span
}

func (e *UnknownVariableError) Error() string {
	return "unknown variable: " + e.Name
}
