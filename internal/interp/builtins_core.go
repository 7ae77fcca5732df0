package interp

import (
	"github.com/eantcal/nuexpreval/internal/errors"
)

func registerCoreFuncs(fmap map[string]Func) {
	// pi carries float precision, as the original constant does.
	fmap["pi"] = func(ctx *Context, name string, args []Node) (Value, error) {
		if err := checkArity(args, 0, name); err != nil {
			return Value{}, err
		}
		return NewFloat(3.1415926535897), nil
	}

	// size returns the declared vector length of its argument.
	fmap["size"] = func(ctx *Context, name string, args []Node) (Value, error) {
		vargs, err := evalArgs(ctx, name, args, UNDEFINED)
		if err != nil {
			return Value{}, err
		}
		return NewInteger(vargs[0].Size()), nil
	}

	// not is the boolean negation with an integer result.
	fmap["not"] = intFunc(func(x float64) int {
		if x == 0 {
			return 1
		}
		return 0
	})

	// b_not is the bitwise complement.
	fmap["b_not"] = func(ctx *Context, name string, args []Node) (Value, error) {
		vargs, err := evalArgs(ctx, name, args, INTEGER)
		if err != nil {
			return Value{}, err
		}
		return NewInteger(int(^int32(vargs[0].ToInt()))), nil
	}

	// The increment and decrement operator words dispatch through the
	// function table: one argument, which must be a variable bound in
	// the context; the binding mutates in place.
	fmap["++"] = processOperator
	fmap["--"] = processOperator
}

// processOperator implements `++` and `--`.
func processOperator(ctx *Context, opName string, args []Node) (Value, error) {
	if len(args) != 1 {
		return Value{}, errors.NewRuntimeError(errors.ErrInvalidArgs, "")
	}

	variable, ok := args[0].(*VarExpr)
	if !ok {
		return Value{}, errors.NewRuntimeError(errors.ErrInvalidArgs, "")
	}

	name := variable.Name()
	v, bound := ctx.Get(name)
	if !bound {
		return Value{}, errors.NewRuntimeError(errors.ErrInvIdentif, "")
	}

	var result Value
	var err error
	switch opName {
	case "++":
		result, err = v.Increment()
	case "--":
		result, err = v.Decrement()
	default:
		return Value{}, errors.NewRuntimeError(errors.ErrFuncUndef, "")
	}
	if err != nil {
		return Value{}, err
	}

	ctx.Set(name, result)
	return result, nil
}
