// Package eval provides the evaluation engine for Typst.
//
// This package is a Go translation of typst-eval from the original Typst
// compiler. It implements a tree-walking interpreter that transforms parsed
// AST nodes into runtime values.
package eval

import (
	"math/big"

	"github.com/cortado-lang/cortado/syntax"
)

// Value, Content, ContentElement, ContentValue, and the bulk of the
// primitive value zoo (None/Auto/Bool/Int/Float/Str/Length/Angle/Ratio/
// Relative/Fraction/Array/Dict/Func/Args/Type/Module/Version) are defined
// once, as aliases of the foundations package types, in call.go. This file
// holds only the value kinds foundations does not already provide: colors,
// gradients, tiling, dynamic values, decimals, and calendar types.

// DatetimeValue represents a date and time.
type DatetimeValue struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

func (DatetimeValue) Type() Type         { return TypeDatetime }
func (v DatetimeValue) Display() Content { return Content{} }
func (v DatetimeValue) Clone() Value     { return v }
func (DatetimeValue) isValue()           {}

// DurationValue represents a duration of time.
type DurationValue struct {
	// Nanoseconds is the duration in nanoseconds.
	Nanoseconds int64
}

func (DurationValue) Type() Type         { return TypeDuration }
func (v DurationValue) Display() Content { return Content{} }
func (v DurationValue) Clone() Value     { return v }
func (DurationValue) isValue()           {}

// DecimalValue represents an arbitrary-precision decimal number.
type DecimalValue struct {
	Value *big.Rat
}

func (DecimalValue) Type() Type         { return TypeDecimal }
func (v DecimalValue) Display() Content { return Content{} }
func (v DecimalValue) Clone() Value {
	if v.Value == nil {
		return DecimalValue{}
	}
	return DecimalValue{Value: new(big.Rat).Set(v.Value)}
}
func (DecimalValue) isValue() {}

// ----------------------------------------------------------------------------
// Visual Values
// ----------------------------------------------------------------------------

// Color represents a color value.
type Color struct {
	R, G, B, A uint8
}

// ColorValue represents a color as a Value.
type ColorValue struct {
	Color Color
}

func (ColorValue) Type() Type         { return TypeColor }
func (v ColorValue) Display() Content { return Content{} }
func (v ColorValue) Clone() Value     { return v }
func (ColorValue) isValue()           {}

// GradientValue represents a gradient.
type GradientValue struct {
	// Stops contains the color stops.
	Stops []GradientStop
}

// GradientStop represents a single stop in a gradient.
type GradientStop struct {
	Color  Color
	Offset float64
}

func (GradientValue) Type() Type         { return TypeGradient }
func (v GradientValue) Display() Content { return Content{} }
func (v GradientValue) Clone() Value {
	if v.Stops == nil {
		return GradientValue{}
	}
	stops := make([]GradientStop, len(v.Stops))
	copy(stops, v.Stops)
	return GradientValue{Stops: stops}
}
func (GradientValue) isValue() {}

// TilingValue represents a tiling pattern.
type TilingValue struct {
	// Content is the pattern content.
	Content Content
}

func (TilingValue) Type() Type         { return TypeTiling }
func (v TilingValue) Display() Content { return Content{} }
func (v TilingValue) Clone() Value     { return v }
func (TilingValue) isValue()           {}

// ----------------------------------------------------------------------------
// Dynamic Value
// ----------------------------------------------------------------------------

// DynValue represents a dynamically-typed value.
// This allows extending the value system with custom types.
type DynValue struct {
	// Inner is the underlying dynamic value.
	Inner interface{}
	// TypeName is the name of the dynamic type.
	TypeName string
}

func (DynValue) Type() Type         { return TypeDyn }
func (v DynValue) Display() Content { return Content{} }
func (v DynValue) Clone() Value     { return v } // Shallow clone
func (DynValue) isValue()           {}
