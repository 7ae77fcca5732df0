package interp

import (
	"sync"

	"github.com/eantcal/nuexpreval/internal/errors"
)

// Func is a named built-in: it receives the context, the name it was
// called under and the unevaluated argument subtrees.
type Func func(ctx *Context, name string, args []Node) (Value, error)

var (
	functionsOnce sync.Once
	functions     map[string]Func
)

// Functions returns the process-wide function registry. Built once,
// read-only afterwards; keys are lowercase names plus the increment
// and decrement operator words.
func Functions() map[string]Func {
	functionsOnce.Do(func() {
		functions = make(map[string]Func)
		registerMathFuncs(functions)
		registerStringFuncs(functions)
		registerConversionFuncs(functions)
		registerCoreFuncs(functions)
	})
	return functions
}

// checkArity validates the argument count before anything evaluates.
// A call compiled from "f()" carries either no arguments or a single
// empty one; both satisfy a zero-arity check.
func checkArity(args []Node, want int, name string) error {
	valid := (want == 0 && len(args) == 0) ||
		(want == 0 && len(args) == 1 && args[0].Empty()) ||
		(want == 1 && len(args) == 1 && !args[0].Empty()) ||
		(want > 1 && len(args) == want)
	if valid {
		return nil
	}

	switch want {
	case 0:
		return errors.NewPlainSyntaxError("'%s': expects to be passed no arguments", name)
	case 1:
		return errors.NewPlainSyntaxError("'%s': expects to be passed one argument", name)
	}
	return errors.NewPlainSyntaxError("'%s': expects to be passed %d argument(s)", name, want)
}

// evalArgs checks arity against the expected type list, evaluates the
// arguments left to right and verifies each against its expected type.
// UNDEFINED means any type; numeric types accept any numeric argument.
func evalArgs(ctx *Context, name string, args []Node, types ...Type) ([]Value, error) {
	if err := checkArity(args, len(types), name); err != nil {
		return nil, err
	}

	vargs := make([]Value, 0, len(args))
	for _, arg := range args {
		v, err := arg.Eval(ctx)
		if err != nil {
			return nil, err
		}
		vargs = append(vargs, v)
	}

	for i, want := range types {
		if want == UNDEFINED {
			continue
		}
		got := vargs[i].Type()
		if want.IsNumber() && got.IsNumber() {
			continue
		}
		if got != want {
			return nil, errors.NewPlainSyntaxError(
				"'%s': expects to be passed argument %d as %s", name, i+1, want.Desc())
		}
	}

	return vargs, nil
}

// mathFunc wraps a double→double function.
func mathFunc(f func(float64) float64) Func {
	return func(ctx *Context, name string, args []Node) (Value, error) {
		vargs, err := evalArgs(ctx, name, args, DOUBLE)
		if err != nil {
			return Value{}, err
		}
		return NewDouble(f(vargs[0].ToDouble())), nil
	}
}

// mathFunc2 wraps a (double,double)→double function.
func mathFunc2(f func(float64, float64) float64) Func {
	return func(ctx *Context, name string, args []Node) (Value, error) {
		vargs, err := evalArgs(ctx, name, args, DOUBLE, DOUBLE)
		if err != nil {
			return Value{}, err
		}
		return NewDouble(f(vargs[0].ToDouble(), vargs[1].ToDouble())), nil
	}
}

// intFunc wraps a double→int function.
func intFunc(f func(float64) int) Func {
	return func(ctx *Context, name string, args []Node) (Value, error) {
		vargs, err := evalArgs(ctx, name, args, DOUBLE)
		if err != nil {
			return Value{}, err
		}
		return NewInteger(f(vargs[0].ToDouble())), nil
	}
}

// stringFunc wraps a string→string function.
func stringFunc(f func(string) string) Func {
	return func(ctx *Context, name string, args []Node) (Value, error) {
		vargs, err := evalArgs(ctx, name, args, STRING)
		if err != nil {
			return Value{}, err
		}
		return NewString(f(vargs[0].ToStr())), nil
	}
}

// intOfStringFunc wraps a string→int function.
func intOfStringFunc(f func(string) int) Func {
	return func(ctx *Context, name string, args []Node) (Value, error) {
		vargs, err := evalArgs(ctx, name, args, STRING)
		if err != nil {
			return Value{}, err
		}
		return NewInteger(f(vargs[0].ToStr())), nil
	}
}

// stringIntFunc wraps a (string,int)→string function.
func stringIntFunc(f func(string, int) string) Func {
	return func(ctx *Context, name string, args []Node) (Value, error) {
		vargs, err := evalArgs(ctx, name, args, STRING, INTEGER)
		if err != nil {
			return Value{}, err
		}
		return NewString(f(vargs[0].ToStr(), vargs[1].ToInt())), nil
	}
}

// stringOfIntFunc wraps an int→string function.
func stringOfIntFunc(f func(int) string) Func {
	return func(ctx *Context, name string, args []Node) (Value, error) {
		vargs, err := evalArgs(ctx, name, args, INTEGER)
		if err != nil {
			return Value{}, err
		}
		return NewString(f(vargs[0].ToInt())), nil
	}
}

// intOfStringsFunc wraps a (string,string)→int function.
func intOfStringsFunc(f func(string, string) int) Func {
	return func(ctx *Context, name string, args []Node) (Value, error) {
		vargs, err := evalArgs(ctx, name, args, STRING, STRING)
		if err != nil {
			return Value{}, err
		}
		return NewInteger(f(vargs[0].ToStr(), vargs[1].ToStr())), nil
	}
}
