// Package watch evaluates starlark expressions against interpreter state.
//
// A watch expression sees the names:
//
//	ptr    the raw pointer value
//	index  the pointer mapped onto the tape
//	cell   the value of the cell under the pointer
//	steps  the top level steps executed since reset
//	tape   a function returning the value of any cell, tape(i)
package watch

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/bf/interpreter"
)

// Watch is a compiled watch expression.
type Watch struct {
	Expr string

	prog *starlark.Program
}

// predeclared are the names every watch expression may use.
var predeclared = map[string]bool{
	"ptr":   true,
	"index": true,
	"cell":  true,
	"steps": true,
	"tape":  true,
}

// Compile compiles a watch expression.
func Compile(expr string) (w *Watch, err error) {
	opts := syntax.FileOptions{}
	src := "rc=" + expr + "\n"
	_, prog, err := starlark.SourceProgramOptions(&opts, "watch", src, func(name string) bool {
		return predeclared[name]
	})
	if err != nil {
		err = &ErrWatchExpression{Expr: expr, Err: err}
		return
	}

	w = &Watch{
		Expr: expr,
		prog: prog,
	}

	return
}

// Eval evaluates the expression against the interpreter, returning its truth.
func (w *Watch) Eval(in *interpreter.Interpreter) (hit bool, err error) {
	thread := starlark.Thread{Name: "watch"}

	tape := starlark.NewBuiltin("tape", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var ptr int
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &ptr)
		if err != nil {
			return nil, err
		}
		return starlark.MakeInt(int(in.Tape.Get(ptr))), nil
	})

	pred := starlark.StringDict{
		"ptr":   starlark.MakeInt(in.Pointer),
		"index": starlark.MakeInt(in.Index()),
		"cell":  starlark.MakeInt(int(in.Cell())),
		"steps": starlark.MakeInt(in.Steps),
		"tape":  tape,
	}

	globals, err := w.prog.Init(&thread, pred)
	if err != nil {
		err = &ErrWatchExpression{Expr: w.Expr, Err: err}
		return
	}

	rc, ok := globals["rc"]
	if !ok {
		err = &ErrWatchExpression{Expr: w.Expr, Err: ErrWatchResult}
		return
	}

	hit = bool(rc.Truth())
	return
}
