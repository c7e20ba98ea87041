// Package main provides the CLI entry point for cortado.
//
// Usage:
//
//	cortado check input.typ
//	cortado check input.typ --dump
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	cortado "github.com/cortado-lang/cortado"
	"github.com/cortado-lang/cortado/eval"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check", "c":
		if err := runCheck(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		printVersion()
	default:
		// A bare input file means check.
		if err := runCheck(os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Println(`cortado - a Typst compilation core

Usage:
  cortado check <input.typ> [--dump]
  cortado <input.typ>
  cortado help
  cortado version

Commands:
  check, c      Parse, evaluate, and realize a document, reporting
                any diagnostics
  help          Show this help message
  version       Show version information

Options:
  --root        Project root directory (default: input file directory)
  --font-path   Additional font directories (can be given multiple times)
  --dump        Print the realized element tree and resolved grids`)
}

func printVersion() {
	fmt.Println("cortado version 0.1.0")
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	root := fs.String("root", "", "Project root directory")
	dump := fs.Bool("dump", false, "Print the realized element tree")
	var fontPaths []string
	fs.Func("font-path", "Additional font directory", func(s string) error {
		fontPaths = append(fontPaths, s)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input file")
	}
	input := fs.Arg(0)

	projectRoot := *root
	if projectRoot == "" {
		projectRoot = filepath.Dir(input)
	}
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("cannot resolve project root: %w", err)
	}
	absInput, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("cannot resolve input path: %w", err)
	}
	mainPath, err := filepath.Rel(absRoot, absInput)
	if err != nil {
		mainPath = absInput
	}

	opts := []eval.FileWorldOption{
		eval.WithLibrary(cortado.CreateStandardLibrary()),
		eval.WithPackageResolver(eval.NewLocalPackageResolver(absRoot)),
	}
	if len(fontPaths) > 0 {
		opts = append(opts, eval.WithFontDirs(fontPaths...))
	}

	world, err := eval.NewFileWorld(absRoot, mainPath, opts...)
	if err != nil {
		return fmt.Errorf("cannot create world: %w", err)
	}

	result := cortado.Compile(world)

	for _, warning := range result.Warnings {
		printDiagnostic(world, input, "warning", warning)
	}
	for _, diag := range result.Errors {
		printDiagnostic(world, input, "error", diag)
	}
	if !result.Success() {
		return fmt.Errorf("%d error(s)", len(result.Errors))
	}

	if *dump {
		dumpResult(result)
	}

	fmt.Printf("%s: ok (%d element(s), %d grid(s))\n", input, len(result.Realized), len(result.Grids))
	return nil
}

// printDiagnostic renders a diagnostic with a line:column prefix when
// the span resolves into the main source.
func printDiagnostic(world *eval.FileWorld, input, severity string, diag cortado.SourceDiagnostic) {
	location := input
	if source, err := world.Source(world.MainFile()); err == nil {
		if start, _, ok := source.Range(diag.Span); ok {
			line, column := source.Lines().ByteToLineColumn(start)
			location = fmt.Sprintf("%s:%d:%d", input, line+1, column+1)
		}
	}
	fmt.Fprintf(os.Stderr, "%s: %s: %s\n", location, severity, diag.Message)
	for _, hint := range diag.Hints {
		fmt.Fprintf(os.Stderr, "  hint: %s\n", hint)
	}
}

// dumpResult prints a one-line summary per realized element and the
// shape of every resolved grid.
func dumpResult(result *cortado.CompileResult) {
	for i, pair := range result.Realized {
		fmt.Printf("%3d: %T\n", i, pair.Element)
	}
	for i, g := range result.Grids {
		fmt.Printf("grid %d: %d column(s) x %d row(s), %d entrie(s)\n",
			i, g.ColCount, g.RowCount, len(g.Entries))
	}
}
