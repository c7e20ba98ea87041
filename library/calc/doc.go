// Package calc provides mathematical functions for the Typst standard library.
//
// This package contains pure mathematical functions including:
// - Trigonometric functions (sin, cos, tan, etc.)
// - Hyperbolic functions (sinh, cosh, tanh)
// - Inverse trigonometric functions (asin, acos, atan, atan2)
package calc
