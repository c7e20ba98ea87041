// Package cortado provides a Go implementation of the Typst typesetting system.
//
// This file implements the compile pipeline that wires together:
// Parse -> Evaluate -> Realize, plus grid/table resolution for any
// grid elements the realized content contains. Page layout happens in a
// separate layouter: Compile stops at realized content and resolved
// grids.

package cortado

import (
	"fmt"

	"github.com/cortado-lang/cortado/eval"
	"github.com/cortado-lang/cortado/layout/grid"
	"github.com/cortado-lang/cortado/library"
	"github.com/cortado-lang/cortado/library/layout"
	"github.com/cortado-lang/cortado/library/text"
	"github.com/cortado-lang/cortado/realize"
	"github.com/cortado-lang/cortado/syntax"
)

// CompileResult holds the result of a compilation.
type CompileResult struct {
	// Realized holds the content tree after show-rule application and
	// paragraph/grouping. May be an empty (but non-nil-marked) slice for
	// a document with no content; see Reached.
	Realized []realize.Pair

	// Grids holds every grid/table placed into a ResolvedGrid, in the
	// order they were found in the realized content.
	Grids []*grid.ResolvedGrid

	// Highlights maps each realized raw code element with a language
	// tag to its syntax highlighting spans.
	Highlights map[*eval.RawElement][]text.HighlightedSpan

	// Reached marks that the pipeline ran all the way through Realize
	// without a fatal error. Distinguishes a zero-value CompileResult
	// (nothing attempted) from a document that legitimately realized to
	// no elements.
	Reached bool

	// Warnings contains non-fatal warnings generated during compilation.
	Warnings []SourceDiagnostic

	// Errors contains fatal errors that prevented compilation.
	Errors []SourceDiagnostic
}

// Success returns true if compilation completed without errors.
func (r *CompileResult) Success() bool {
	return r.Reached && len(r.Errors) == 0
}

// SourceDiagnostic represents a diagnostic message with source location.
type SourceDiagnostic struct {
	// Span is the source location of the diagnostic.
	Span syntax.Span

	// Severity indicates error or warning.
	Severity DiagnosticSeverity

	// Message is the diagnostic message.
	Message string

	// Hints are optional suggestions for resolving the issue.
	Hints []string
}

// DiagnosticSeverity indicates the severity of a diagnostic.
type DiagnosticSeverity int

const (
	SeverityError DiagnosticSeverity = iota
	SeverityWarning
)

// Compile compiles a Typst document from the given world.
//
// The compilation pipeline consists of:
//  1. Parse: Read and parse the main source file
//  2. Evaluate: Execute the source to produce content
//  3. Realize: Apply show rules and group elements (paragraphs, etc.)
//  4. Resolve: Place any grid/table elements into ResolvedGrids
//
// The World interface provides access to source files, the standard library,
// and other resources needed during compilation.
func Compile(world eval.World) *CompileResult {
	return CompileWithOptions(world, CompileOptions{})
}

// CompileWithOptions compiles a Typst document with the given options.
func CompileWithOptions(world eval.World, opts CompileOptions) *CompileResult {
	result := &CompileResult{}

	mainFile := world.MainFile()
	source, err := world.Source(mainFile)
	if err != nil {
		result.Errors = append(result.Errors, SourceDiagnostic{
			Severity: SeverityError,
			Message:  fmt.Sprintf("cannot read main file: %v", err),
		})
		return result
	}

	content, engine, warnings, err := evaluate(world, source, mainFile, &opts)
	result.Warnings = append(result.Warnings, warnings...)
	if err != nil {
		result.Errors = append(result.Errors, diagnosticFromError(err))
		return result
	}

	pairs, err := realize.Realize(realize.LayoutDocument{}, engine, content, realize.EmptyStyleChain())
	if err != nil {
		result.Errors = append(result.Errors, diagnosticFromError(err))
		return result
	}
	result.Realized = pairs
	result.Reached = true

	for _, pair := range pairs {
		switch e := pair.Element.(type) {
		case *layout.GridElement:
			resolved, err := e.Resolve()
			if err != nil {
				result.Errors = append(result.Errors, diagnosticFromError(err))
				continue
			}
			result.Grids = append(result.Grids, resolved)
		case *eval.RawElement:
			if spans := text.DefaultHooks.HighlightRawElement(e); spans != nil {
				if result.Highlights == nil {
					result.Highlights = make(map[*eval.RawElement][]text.HighlightedSpan)
				}
				result.Highlights[e] = spans
			}
		}
	}

	return result
}

// evaluate parses and evaluates a source file, returning the produced
// content alongside the engine that evaluated it (realize needs the
// same engine to resolve show rules against the same Sink/Route).
func evaluate(world eval.World, source *syntax.Source, fileID eval.FileID, opts *CompileOptions) (*eval.Content, *eval.Engine, []SourceDiagnostic, error) {
	var warnings []SourceDiagnostic

	root := source.Root()
	if root == nil {
		return nil, nil, warnings, fmt.Errorf("source has no root")
	}

	if errs := root.Errors(); len(errs) > 0 {
		return nil, nil, warnings, fmt.Errorf("parse error: %v", errs[0])
	}

	engine := eval.NewEngine(world)
	if opts != nil && len(opts.TraceSpans) > 0 {
		engine.Traced = eval.NewTraced(opts.TraceSpans[0])
	}

	scopes := eval.NewScopes(world.Library())

	vm := eval.NewVm(engine, eval.NewContext(), scopes, root.Span())

	markup := syntax.MarkupNodeFromNode(root)
	if markup == nil {
		return nil, nil, warnings, fmt.Errorf("source root is not markup")
	}

	value, err := eval.EvalMarkup(vm, markup)
	if err != nil {
		return nil, nil, warnings, err
	}

	if vm.HasFlow() {
		flow := vm.Flow
		switch flow.(type) {
		case eval.BreakEvent:
			return nil, nil, warnings, fmt.Errorf("break is not allowed at the top level")
		case eval.ContinueEvent:
			return nil, nil, warnings, fmt.Errorf("continue is not allowed at the top level")
		case eval.ReturnEvent:
			return nil, nil, warnings, fmt.Errorf("return is not allowed at the top level")
		}
	}

	if cv, ok := value.(eval.ContentValue); ok {
		for _, w := range engine.Sink.Warnings {
			warnings = append(warnings, SourceDiagnostic{
				Span:     w.Span,
				Severity: SeverityWarning,
				Message:  w.Message,
				Hints:    w.Hints,
			})
		}
		return &cv.Content, engine, warnings, nil
	}

	return nil, nil, warnings, fmt.Errorf("evaluation did not produce content")
}

// diagnosticFromError creates a SourceDiagnostic from an error.
func diagnosticFromError(err error) SourceDiagnostic {
	if spanErr, ok := err.(interface{ Span() syntax.Span }); ok {
		return SourceDiagnostic{
			Span:     spanErr.Span(),
			Severity: SeverityError,
			Message:  err.Error(),
		}
	}

	return SourceDiagnostic{
		Severity: SeverityError,
		Message:  err.Error(),
	}
}

// CompileOptions configures the compilation process.
type CompileOptions struct {
	// TraceSpans enables tracing for the given spans (for IDE support).
	TraceSpans []syntax.Span
}

// CreateStandardLibrary creates the standard library scope: prelude
// values, colors, alignments, the calc module, and all element
// functions.
//
// This should be called once and passed to NewFileWorld via WithLibrary.
func CreateStandardLibrary() *eval.Scope {
	return library.Library()
}
