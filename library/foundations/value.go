// Package foundations provides core types and operations for the Typst runtime.
//
// This package contains the foundational value types that form the basis of
// the Typst language. It corresponds to typst-library/src/foundations/ in
// the Rust implementation.
//
// File organization matches Rust:
//   - value.go: Value interface, Type enum
//   - primitives.go: None, Auto, Bool, Int, Float
//   - measurements.go: Length, Angle, Ratio, Relative, Fraction
//   - data.go: Str, Bytes, Label, Decimal, Version
//   - datetime.go: Datetime, Duration
//   - content.go: Content, ContentValue
//   - visual.go: Gradient, Tiling, Symbol, Dyn
//   - array.go: Array
//   - dict.go: Dict
//   - func.go: Func, NativeFunc, Closure
//   - scope.go: Scope, Binding
//   - module.go: Module
//   - styles.go: Styles, Recipe
//   - engine.go: Engine, Context, World interfaces
//   - color.go: Color types
//   - args.go: Args
//   - cast.go: Type conversion utilities
package foundations

import "fmt"

// Value represents a runtime value in the Typst evaluator.
//
// This is a sum type interface - each value kind has a separate concrete type.
// The interface provides common operations that all values support.
type Value interface {
	// Type returns the type of this value.
	Type() Type

	// Display returns the display representation as Content.
	Display() Content

	// Clone creates a shallow copy of the value.
	Clone() Value

	// isValue is a marker method to seal the interface.
	isValue()
}

// Type represents a Typst type.
type Type int

const (
	TypeNone Type = iota
	TypeAuto
	TypeBool
	TypeInt
	TypeFloat
	TypeLength
	TypeAngle
	TypeRatio
	TypeRelative
	TypeFraction
	TypeStr
	TypeBytes
	TypeLabel
	TypeDatetime
	TypeDuration
	TypeDecimal
	TypeColor
	TypeGradient
	TypeTiling
	TypeSymbol
	TypeContent
	TypeArray
	TypeDict
	TypeFunc
	TypeArgs
	TypeType
	TypeModule
	TypeDyn
	TypeStyles
	TypeVersion

	typeCount
)

// typeDescriptor bundles the static metadata a Type carries: its long
// display name, its short identifier (used in cast error messages), and
// the method scope registered for it. Keeping these three in one table
// (rather than a String() switch plus an Ident() switch plus a separate
// typeScopes map) means adding a type can't leave one of the three out
// of sync with the others.
type typeDescriptor struct {
	name  string
	ident string
	scope *Scope
}

var typeTable = [typeCount]typeDescriptor{
	TypeNone:     {name: "none", ident: "none"},
	TypeAuto:     {name: "auto", ident: "auto"},
	TypeBool:     {name: "boolean", ident: "bool"},
	TypeInt:      {name: "integer", ident: "int"},
	TypeFloat:    {name: "float", ident: "float"},
	TypeLength:   {name: "length", ident: "length"},
	TypeAngle:    {name: "angle", ident: "angle"},
	TypeRatio:    {name: "ratio", ident: "ratio"},
	TypeRelative: {name: "relative", ident: "relative"},
	TypeFraction: {name: "fraction", ident: "fraction"},
	TypeStr:      {name: "string", ident: "str"},
	TypeBytes:    {name: "bytes", ident: "bytes"},
	TypeLabel:    {name: "label", ident: "label"},
	TypeDatetime: {name: "datetime", ident: "datetime"},
	TypeDuration: {name: "duration", ident: "duration"},
	TypeDecimal:  {name: "decimal", ident: "decimal"},
	TypeColor:    {name: "color", ident: "color"},
	TypeGradient: {name: "gradient", ident: "gradient"},
	TypeTiling:   {name: "tiling", ident: "tiling"},
	TypeSymbol:   {name: "symbol", ident: "symbol"},
	TypeContent:  {name: "content", ident: "content"},
	TypeArray:    {name: "array", ident: "array"},
	TypeDict:     {name: "dictionary", ident: "dictionary"},
	TypeFunc:     {name: "function", ident: "function"},
	TypeArgs:     {name: "arguments", ident: "arguments"},
	TypeType:     {name: "type", ident: "type"},
	TypeModule:   {name: "module", ident: "module"},
	TypeDyn:      {name: "dynamic", ident: "dynamic"},
	TypeStyles:   {name: "styles", ident: "styles"},
	TypeVersion:  {name: "version", ident: "version"},
}

// descriptor looks up t's table entry, falling back to not-ok for any
// out-of-range Type (e.g. one synthesized by bad arithmetic rather than
// one of the declared constants).
func (t Type) descriptor() (typeDescriptor, bool) {
	if t < 0 || int(t) >= len(typeTable) {
		return typeDescriptor{}, false
	}
	return typeTable[t], true
}

// String returns the type name.
func (t Type) String() string {
	d, ok := t.descriptor()
	if !ok || d.name == "" {
		return fmt.Sprintf("Type(%d)", t)
	}
	return d.name
}

// Ident returns the short identifier for the type.
func (t Type) Ident() string {
	d, ok := t.descriptor()
	if !ok || d.ident == "" {
		return t.String()
	}
	return d.ident
}

// Scope returns the type's associated scope containing methods.
// Returns nil if the type has no associated scope.
func (t Type) Scope() *Scope {
	d, ok := t.descriptor()
	if !ok {
		return nil
	}
	return d.scope
}

// RegisterTypeScope registers a scope for a type.
// This should be called during package initialization to set up type methods.
func RegisterTypeScope(t Type, scope *Scope) {
	if t < 0 || int(t) >= len(typeTable) {
		return
	}
	typeTable[t].scope = scope
}

// TypeValue represents a type as a value.
type TypeValue struct {
	Inner Type
}

func (TypeValue) Type() Type         { return TypeType }
func (v TypeValue) Display() Content { return Content{} }
func (v TypeValue) Clone() Value     { return v }
func (TypeValue) isValue()           {}

// Get returns the wrapped type.
func (v TypeValue) Get() Type { return v.Inner }

// ----------------------------------------------------------------------------
// Value Conversion Helpers
// ----------------------------------------------------------------------------

// IsNone returns true if the value is none.
func IsNone(v Value) bool {
	_, ok := v.(NoneValue)
	return ok
}

// IsAuto returns true if the value is auto.
func IsAuto(v Value) bool {
	_, ok := v.(AutoValue)
	return ok
}

// AsBool attempts to convert a value to a bool.
func AsBool(v Value) (bool, bool) {
	if b, ok := v.(Bool); ok {
		return bool(b), true
	}
	return false, false
}

// AsInt attempts to convert a value to an int64.
func AsInt(v Value) (int64, bool) {
	if i, ok := v.(Int); ok {
		return int64(i), true
	}
	return 0, false
}

// AsFloat attempts to convert a value to a float64.
func AsFloat(v Value) (float64, bool) {
	switch v := v.(type) {
	case Float:
		return float64(v), true
	case Int:
		return float64(v), true
	}
	return 0, false
}

// AsStr attempts to convert a value to a string.
func AsStr(v Value) (string, bool) {
	if s, ok := v.(Str); ok {
		return string(s), true
	}
	return "", false
}

// AsArray attempts to convert a value to an array.
func AsArray(v Value) (Array, bool) {
	if a, ok := v.(Array); ok {
		return a, true
	}
	return nil, false
}

// AsDict attempts to convert a value to a dictionary.
func AsDict(v Value) (*Dict, bool) {
	if d, ok := v.(*Dict); ok {
		return d, true
	}
	return nil, false
}

// AsFunc attempts to convert a value to a function.
func AsFunc(v Value) (*Func, bool) {
	if f, ok := v.(FuncValue); ok {
		return f.Func, true
	}
	return nil, false
}

// HasFields reports whether values of the type expose accessible fields
// (e.g. length.abs, datetime.year).
func HasFields(t Type) bool {
	switch t {
	case TypeLength, TypeRelative, TypeDatetime, TypeDuration, TypeVersion:
		return true
	}
	return false
}
