// Control flow evaluation for Typst.
// Translated from typst-eval/src/flow.rs

package eval

import (
	"fmt"

	"github.com/cortado-lang/cortado/library/foundations"
	"github.com/cortado-lang/cortado/syntax"
)

// MaxIterations is the maximum number of loop iterations.
const MaxIterations = 10_000

// ----------------------------------------------------------------------------
// Flow Events
// ----------------------------------------------------------------------------

// FlowEvent represents a control flow event that occurred during evaluation.
// Matches Rust: pub enum FlowEvent
type FlowEvent interface {
	// Span returns the source location where this flow event was triggered.
	Span() syntax.Span

	// Forbidden returns an error stating that this control flow is forbidden.
	Forbidden() error

	isFlowEvent()
}

// BreakEvent represents stopping iteration in a loop.
// Matches Rust: FlowEvent::Break(Span)
type BreakEvent struct {
	span syntax.Span
}

func (e BreakEvent) Span() syntax.Span { return e.span }
func (e BreakEvent) isFlowEvent()      {}
func (e BreakEvent) Forbidden() error {
	return fmt.Errorf("cannot break outside of loop")
}

// ContinueEvent represents skipping the remainder of the current iteration.
// Matches Rust: FlowEvent::Continue(Span)
type ContinueEvent struct {
	span syntax.Span
}

func (e ContinueEvent) Span() syntax.Span { return e.span }
func (e ContinueEvent) isFlowEvent()      {}
func (e ContinueEvent) Forbidden() error {
	return fmt.Errorf("cannot continue outside of loop")
}

// ReturnEvent represents stopping execution of a function early.
// Matches Rust: FlowEvent::Return(Span, Option<Value>, bool)
type ReturnEvent struct {
	span syntax.Span

	// Value is the optional return value (nil for bare `return`).
	Value foundations.Value

	// Conditional indicates whether the return was conditional.
	// Conditional returns don't produce warnings for discarding content.
	Conditional bool
}

func (e ReturnEvent) Span() syntax.Span { return e.span }
func (e ReturnEvent) isFlowEvent()      {}
func (e ReturnEvent) Forbidden() error {
	return fmt.Errorf("cannot return outside of function")
}

// NewBreakEvent creates a new break event.
func NewBreakEvent(span syntax.Span) BreakEvent {
	return BreakEvent{span: span}
}

// NewContinueEvent creates a new continue event.
func NewContinueEvent(span syntax.Span) ContinueEvent {
	return ContinueEvent{span: span}
}

// NewReturnEvent creates a new return event with no value.
func NewReturnEvent(span syntax.Span) ReturnEvent {
	return ReturnEvent{span: span}
}

// NewReturnEventWithValue creates a new return event carrying a value.
func NewReturnEventWithValue(span syntax.Span, value foundations.Value) ReturnEvent {
	return ReturnEvent{span: span, Value: value}
}

// NewConditionalReturnEvent creates a return event that was triggered on a
// conditional path. Conditional returns don't warn about discarded content.
func NewConditionalReturnEvent(span syntax.Span, value foundations.Value) ReturnEvent {
	return ReturnEvent{span: span, Value: value, Conditional: true}
}

// CheckForbiddenFlow checks if a flow event is forbidden in the current context.
// Returns nil if the flow is allowed, otherwise returns the forbidden error.
func CheckForbiddenFlow(flow FlowEvent, allowBreak, allowContinue, allowReturn bool) error {
	if flow == nil {
		return nil
	}
	switch flow.(type) {
	case BreakEvent:
		if allowBreak {
			return nil
		}
	case ContinueEvent:
		if allowContinue {
			return nil
		}
	case ReturnEvent:
		if allowReturn {
			return nil
		}
	}
	return flow.Forbidden()
}

// ----------------------------------------------------------------------------
// Helper Functions
// ----------------------------------------------------------------------------

// isInvariant checks whether the expression always evaluates to the same value.
// Matches Rust: fn is_invariant(expr: &SyntaxNode) -> bool
func isInvariant(node *syntax.SyntaxNode) bool {
	if node == nil {
		return true
	}

	kind := node.Kind()

	// Identifiers can change (variables)
	if kind == syntax.Ident || kind == syntax.MathIdent {
		return false
	}

	// For field access, check if the target is invariant
	if kind == syntax.FieldAccess {
		children := node.Children()
		if len(children) > 0 {
			return isInvariant(children[0])
		}
		return true
	}

	// For function calls, both callee and args must be invariant
	if kind == syntax.FuncCall {
		children := node.Children()
		for _, child := range children {
			if !isInvariant(child) {
				return false
			}
		}
		return true
	}

	// For all other nodes, check all children
	for _, child := range node.Children() {
		if !isInvariant(child) {
			return false
		}
	}
	return true
}

// canDiverge checks whether the expression contains a break or return.
// Matches Rust: fn can_diverge(expr: &SyntaxNode) -> bool
func canDiverge(node *syntax.SyntaxNode) bool {
	if node == nil {
		return false
	}

	kind := node.Kind()

	// Break and return can exit early
	if kind == syntax.Break || kind == syntax.Return {
		return true
	}

	// Recursively check children
	for _, child := range node.Children() {
		if canDiverge(child) {
			return true
		}
	}
	return false
}

// IsBreak reports whether the event is a break.
func IsBreak(flow FlowEvent) bool {
	_, ok := flow.(BreakEvent)
	return ok
}

// IsContinue reports whether the event is a continue.
func IsContinue(flow FlowEvent) bool {
	_, ok := flow.(ContinueEvent)
	return ok
}

// IsReturn reports whether the event is a return.
func IsReturn(flow FlowEvent) bool {
	_, ok := flow.(ReturnEvent)
	return ok
}

// IsLoopFlow reports whether the event is consumed by loops (break/continue).
func IsLoopFlow(flow FlowEvent) bool {
	return IsBreak(flow) || IsContinue(flow)
}

// MarkReturnAsConditional marks a pending return event as conditional.
// Conditional returns don't warn about discarded joined content.
func MarkReturnAsConditional(vm *Vm) {
	if ret, ok := vm.Flow.(ReturnEvent); ok {
		ret.Conditional = true
		vm.Flow = ret
	}
}

// ForbiddenFlowError reports a control flow event that occurred outside
// the construct that could consume it.
type ForbiddenFlowError struct {
	Event FlowEvent
	Span  syntax.Span
}

func (e *ForbiddenFlowError) Error() string {
	switch e.Event.(type) {
	case BreakEvent:
		return "break is not allowed here"
	case ContinueEvent:
		return "continue is not allowed here"
	case ReturnEvent:
		return "return is not allowed here"
	}
	return "control flow is not allowed here"
}

// InfiniteLoopError reports a loop that cannot terminate, either because
// its condition is invariant or because the iteration fuse tripped.
type InfiniteLoopError struct {
	Span    syntax.Span
	Message string
}

func (e *InfiniteLoopError) Error() string {
	return e.Message
}
