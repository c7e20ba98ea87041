// String evaluation for Typst.
// Translated from typst-eval/src/lib.rs eval_string.

package eval

import (
	"fmt"

	"github.com/cortado-lang/cortado/syntax"
)

// EvalMode selects the syntactical mode a string is evaluated in.
type EvalMode int

const (
	// EvalModeCode evaluates the string as a sequence of code
	// expressions, joining their values.
	EvalModeCode EvalMode = iota
	// EvalModeMarkup evaluates the string as markup, producing content.
	EvalModeMarkup
	// EvalModeMath evaluates the string as a math formula.
	EvalModeMath
)

// EvalString evaluates a string of source text in the given mode. The
// bindings of scope, if any, are injected on top of the world's
// library. The string must parse without errors.
func EvalString(world World, text string, span syntax.Span, mode EvalMode, scope *Scope) (Value, error) {
	var root *syntax.SyntaxNode
	switch mode {
	case EvalModeMarkup:
		root = syntax.Parse(text)
	case EvalModeMath:
		root = syntax.ParseMath(text)
	default:
		root = syntax.ParseCode(text)
	}
	if errs := root.Errors(); len(errs) > 0 {
		return nil, errs[0]
	}

	engine := NewEngine(world)
	var base *Scope
	if world != nil {
		base = world.Library()
	}
	scopes := NewScopes(base)
	if scope != nil {
		scopes.Enter()
		scopes.SetTop(scope)
	}
	vm := NewVm(engine, NewContext(), scopes, span)

	var result Value
	var err error
	switch mode {
	case EvalModeMarkup:
		markup := syntax.MarkupNodeFromNode(root)
		if markup == nil {
			return nil, fmt.Errorf("string did not parse as markup")
		}
		result, err = evalMarkup(vm, markup)
	case EvalModeMath:
		mathNode := syntax.MathNodeFromNode(root)
		if mathNode == nil {
			return nil, fmt.Errorf("string did not parse as math")
		}
		result, err = evalExprSequence(vm, mathNode.Exprs())
	default:
		code := syntax.CodeNodeFromNode(root)
		if code == nil {
			return nil, fmt.Errorf("string did not parse as code")
		}
		result, err = evalExprSequence(vm, code.Exprs())
	}
	if err != nil {
		return nil, err
	}

	// Control flow must not leak out of a string evaluation.
	if vm.HasFlow() {
		return nil, vm.Flow.Forbidden()
	}
	return result, nil
}

// evalExprSequence evaluates expressions in order, joining their values.
func evalExprSequence(vm *Vm, exprs []syntax.Expr) (Value, error) {
	var result Value = None
	for _, expr := range exprs {
		if vm.HasFlow() {
			break
		}
		value, err := EvalExpr(vm, expr)
		if err != nil {
			return nil, err
		}
		result, err = joinValues(result, value)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Eval evaluates a parsed source file into a module, with the world's
// library as the base scope.
func Eval(world World, source *syntax.Source) (*Module, error) {
	engine := NewEngine(world)
	return EvalSource(engine, source, syntax.Detached())
}
