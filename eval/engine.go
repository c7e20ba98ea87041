package eval

import (
	"path/filepath"
	"strings"

	"github.com/cortado-lang/cortado/library/foundations"
	"github.com/cortado-lang/cortado/syntax"
)

// Engine is the evaluator's compilation context: the standard library
// scope, the world collaborator, cycle-detection route, and the
// diagnostic sink. It is the foundations engine under the hood, kept as
// an alias so callers across eval, realize, and the library/* packages
// all share the same concrete type without importing foundations
// themselves for this one name.
type Engine = foundations.Engine

// NewEngine builds an engine around a World. Since World speaks in this
// package's FileID/Date rather than foundations' syntax.FileId/Datetime,
// the world is wrapped in a small adapter before being handed to
// foundations.NewEngine.
func NewEngine(world World) *Engine {
	if world == nil {
		return foundations.NewEngine(nil, routines{})
	}
	return foundations.NewEngine(worldAdapter{inner: world}, routines{})
}

// routines lets foundations call back into this package when a native
// needs to invoke a user-defined closure (array.map, show rules, ...).
type routines struct{}

func (routines) EvalClosure(engine *foundations.Engine, context *foundations.Context, fn *foundations.Func, closure *foundations.Closure, args *foundations.Args) (foundations.Value, error) {
	vm := NewVm(engine, context, foundations.NewScopes(nil), fn.Span)
	return callClosure(vm, fn, closure, args)
}

// worldAdapter satisfies foundations.World by forwarding to a World,
// translating between this package's path-based FileID and the interned
// syntax.FileId the foundations layer speaks, and between Date and
// Datetime.
type worldAdapter struct {
	inner World
}

func (a worldAdapter) Library() *foundations.Scope {
	return a.inner.Library()
}

func (a worldAdapter) MainFile() syntax.FileId {
	return fileIDToSyntax(a.inner.MainFile())
}

func (a worldAdapter) Source(id syntax.FileId) (*syntax.Source, error) {
	return a.inner.Source(fileIDFromSyntax(id))
}

func (a worldAdapter) File(id syntax.FileId) ([]byte, error) {
	return a.inner.File(fileIDFromSyntax(id))
}

func (a worldAdapter) Today(offset *int) *foundations.Datetime {
	d := a.inner.Today(offset)
	dt, err := foundations.NewDate(d.Year, d.Month, d.Day)
	if err != nil {
		return nil
	}
	return dt
}

// fileIDToSyntax interns a path-based FileID.
func fileIDToSyntax(id FileID) syntax.FileId {
	path := filepath.ToSlash(id.Path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	vpath, err := syntax.NewVirtualPath(path)
	if err != nil {
		vpath, _ = syntax.NewVirtualPath("/unknown")
	}
	root := syntax.ProjectRoot()
	if id.Package != nil {
		root = syntax.PackageRoot(*id.Package)
	}
	return syntax.NewRootedPath(root, *vpath).Intern()
}

// fileIDFromSyntax recovers a path-based FileID from an interned id.
func fileIDFromSyntax(id syntax.FileId) FileID {
	rpath := id.Get()
	if rpath == nil {
		return FileID{}
	}
	out := FileID{Path: strings.TrimPrefix(rpath.VPath().String(), "/")}
	if spec := rpath.Package(); spec != nil {
		out.Package = spec
	}
	return out
}
