// Package vet implements frozenwrite, a static check for writes that reach a
// frozen value through the result of Freeze.Get.
//
// Freeze hands out copies, but copying a slice, map or pointer copies the
// reference, not the data behind it. The compiler rejects assignments to the
// copy itself; frozenwrite reports the ones that go through it.
package vet

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// FreezePkgPath is the import path of the package declaring Freeze.
const FreezePkgPath = "martianoff/freezie/freeze"

const message = "write through Freeze.Get result mutates the frozen value; call Defrost to take ownership first"

const doc = `report writes through the result of Freeze.Get

Freeze.Get returns a copy of the frozen value, but slices, maps and
pointers in that copy still share storage with the original. frozenwrite
reports assignments, increments, delete/clear/copy/append and in-place
mutators from the slices, sort and maps packages whose target is reached
through a Get call, directly or through local variables bound to one.

Variables are followed only while every assignment to them comes from a
Get result; values passed to other functions are not tracked.`

// Analyzer reports writes that reach a frozen value through Freeze.Get.
var Analyzer = &analysis.Analyzer{
	Name:     "frozenwrite",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// mutators maps package path and function name to the index of the argument
// the function writes into.
var mutators = map[string]map[string]int{
	"slices": {
		"Sort":           0,
		"SortFunc":       0,
		"SortStableFunc": 0,
		"Reverse":        0,
		"Delete":         0,
		"DeleteFunc":     0,
		"Insert":         0,
		"Compact":        0,
		"CompactFunc":    0,
		"Replace":        0,
	},
	"sort": {
		"Ints":        0,
		"Strings":     0,
		"Float64s":    0,
		"Sort":        0,
		"Stable":      0,
		"Slice":       0,
		"SliceStable": 0,
	},
	"maps": {
		"DeleteFunc": 0,
		"Copy":       0,
	},
}

// builtins that write into their first argument.
var writingBuiltins = map[string]bool{
	"append": true,
	"clear":  true,
	"copy":   true,
	"delete": true,
}

// binding is one assignment of rhs to a local variable.
type binding struct {
	obj *types.Var
	rhs ast.Expr
}

type frozenWrites struct {
	pass    *analysis.Pass
	aliases map[*types.Var]bool
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	w := &frozenWrites{pass: pass}
	w.aliases = w.findAliases(insp)

	filter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.IncDecStmt)(nil),
		(*ast.CallExpr)(nil),
	}
	insp.Preorder(filter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.AssignStmt:
			if n.Tok == token.DEFINE {
				return
			}
			for _, lhs := range n.Lhs {
				w.checkTarget(lhs)
			}
		case *ast.IncDecStmt:
			w.checkTarget(n.X)
		case *ast.CallExpr:
			w.checkCall(n)
		}
	})
	return nil, nil
}

// findAliases returns the variables that hold a Get result. A variable is
// an alias when at least one assignment binds it to a Get result, directly
// or through another alias, and no assignment binds it to anything else.
func (w *frozenWrites) findAliases(insp *inspector.Inspector) map[*types.Var]bool {
	info := w.pass.TypesInfo
	var bindings []binding
	bind := func(id *ast.Ident, rhs ast.Expr) {
		obj := info.Defs[id]
		if obj == nil {
			obj = info.Uses[id]
		}
		if v, ok := obj.(*types.Var); ok && !v.IsField() {
			bindings = append(bindings, binding{obj: v, rhs: rhs})
		}
	}

	filter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.ValueSpec)(nil),
	}
	insp.Preorder(filter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.AssignStmt:
			if n.Tok != token.DEFINE && n.Tok != token.ASSIGN || len(n.Lhs) != len(n.Rhs) {
				return
			}
			for i, lhs := range n.Lhs {
				if id, ok := ast.Unparen(lhs).(*ast.Ident); ok {
					bind(id, n.Rhs[i])
				}
			}
		case *ast.ValueSpec:
			if len(n.Names) != len(n.Values) {
				return
			}
			for i, id := range n.Names {
				bind(id, n.Values[i])
			}
		}
	})

	aliases := make(map[*types.Var]bool)
	for changed := true; changed; {
		changed = false
		for _, b := range bindings {
			if aliases[b.obj] {
				continue
			}
			if frozen, _ := w.root(b.rhs, aliases); frozen {
				aliases[b.obj] = true
				changed = true
			}
		}
	}
	for changed := true; changed; {
		changed = false
		for _, b := range bindings {
			if !aliases[b.obj] {
				continue
			}
			if frozen, _ := w.root(b.rhs, aliases); !frozen {
				delete(aliases, b.obj)
				changed = true
			}
		}
	}
	return aliases
}

// checkTarget reports lhs when it writes into storage reached through Get.
// A bare Get call is left alone: the compiler already rejects it.
func (w *frozenWrites) checkTarget(lhs ast.Expr) {
	switch ast.Unparen(lhs).(type) {
	case *ast.IndexExpr, *ast.SelectorExpr, *ast.StarExpr:
	default:
		return
	}
	if frozen, indirect := w.root(lhs, w.aliases); frozen && indirect {
		w.pass.Reportf(lhs.Pos(), message)
	}
}

func (w *frozenWrites) checkCall(call *ast.CallExpr) {
	if len(call.Args) == 0 {
		return
	}
	info := w.pass.TypesInfo

	if id, ok := ast.Unparen(call.Fun).(*ast.Ident); ok {
		if b, ok := info.Uses[id].(*types.Builtin); ok {
			if writingBuiltins[b.Name()] && w.writesInto(call.Args[0]) {
				w.pass.Reportf(call.Pos(), message)
			}
			return
		}
	}

	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return
	}
	idx, ok := mutators[fn.Pkg().Path()][fn.Name()]
	if !ok || idx >= len(call.Args) {
		return
	}
	if w.writesInto(call.Args[idx]) {
		w.pass.Reportf(call.Pos(), message)
	}
}

// writesInto reports whether writing into arg, as a builtin or mutator
// does, changes a frozen value.
func (w *frozenWrites) writesInto(arg ast.Expr) bool {
	frozen, indirect := w.root(arg, w.aliases)
	return frozen && (indirect || isContainer(w.pass.TypesInfo.TypeOf(arg)))
}

// root follows indexing, slicing, field selection, dereference and
// representation-preserving conversions down from e. frozen reports whether
// it starts at a Freeze.Get call or an alias of one; indirect reports
// whether the path passes through a pointer, slice or map, so that a write
// to e lands in shared storage rather than in a copy.
func (w *frozenWrites) root(e ast.Expr, aliases map[*types.Var]bool) (frozen, indirect bool) {
	info := w.pass.TypesInfo
	for {
		switch x := ast.Unparen(e).(type) {
		case *ast.Ident:
			v, ok := info.Uses[x].(*types.Var)
			return ok && aliases[v], indirect
		case *ast.IndexExpr:
			if isReference(info.TypeOf(x.X)) {
				indirect = true
			}
			e = x.X
		case *ast.SliceExpr:
			if isReference(info.TypeOf(x.X)) {
				indirect = true
			}
			e = x.X
		case *ast.StarExpr:
			indirect = true
			e = x.X
		case *ast.SelectorExpr:
			sel := info.Selections[x]
			if sel == nil || sel.Kind() != types.FieldVal {
				return false, false
			}
			if sel.Indirect() {
				indirect = true
			}
			e = x.X
		case *ast.CallExpr:
			if isFreezeGet(info, x) {
				return true, indirect
			}
			if tv, ok := info.Types[x.Fun]; ok && tv.IsType() && len(x.Args) == 1 &&
				types.Identical(tv.Type.Underlying(), info.TypeOf(x.Args[0]).Underlying()) {
				e = x.Args[0]
				continue
			}
			return false, false
		default:
			return false, false
		}
	}
}

func isReference(t types.Type) bool {
	if t == nil {
		return false
	}
	switch t.Underlying().(type) {
	case *types.Pointer, *types.Slice, *types.Map:
		return true
	}
	return false
}

func isContainer(t types.Type) bool {
	if t == nil {
		return false
	}
	switch t.Underlying().(type) {
	case *types.Slice, *types.Map:
		return true
	}
	return false
}

func isFreezeGet(info *types.Info, call *ast.CallExpr) bool {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Get" {
		return false
	}
	s := info.Selections[sel]
	if s == nil || s.Kind() != types.MethodVal {
		return false
	}
	return isFreezeType(s.Recv())
}

func isFreezeType(t types.Type) bool {
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
	}
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	obj := named.Origin().Obj()
	return obj.Name() == "Freeze" && obj.Pkg() != nil && obj.Pkg().Path() == FreezePkgPath
}
