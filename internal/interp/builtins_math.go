package interp

import (
	"math"
	"math/rand"
	"time"

	"github.com/eantcal/nuexpreval/internal/errors"
)

// rng backs rnd(). A non-negative argument draws from the current
// sequence; a negative one reseeds from the clock first, as the
// original does with srand(time).
var rng = rand.New(rand.NewSource(1))

func registerMathFuncs(fmap map[string]Func) {
	fmap["sin"] = mathFunc(math.Sin)
	fmap["cos"] = mathFunc(math.Cos)
	fmap["tan"] = mathFunc(math.Tan)
	fmap["asin"] = mathFunc(math.Asin)
	fmap["acos"] = mathFunc(math.Acos)
	fmap["atan"] = mathFunc(math.Atan)
	fmap["sinh"] = mathFunc(math.Sinh)
	fmap["cosh"] = mathFunc(math.Cosh)
	fmap["tanh"] = mathFunc(math.Tanh)
	fmap["log"] = mathFunc(math.Log)
	fmap["log10"] = mathFunc(math.Log10)
	fmap["exp"] = mathFunc(math.Exp)
	fmap["abs"] = mathFunc(math.Abs)
	fmap["sqrt"] = mathFunc(math.Sqrt)

	// sqr is an alias of sqrt
	fmap["sqr"] = mathFunc(math.Sqrt)

	fmap["sign"] = mathFunc(func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		}
		return 0
	})

	fmap["min"] = mathFunc2(math.Min)
	fmap["max"] = mathFunc2(math.Max)
	fmap["pow"] = mathFunc2(math.Pow)

	// int rounds down to the greatest integer less than or equal to
	// the argument: int(-5.1) is -6, int(5.9) is 5.
	fmap["int"] = intFunc(func(x float64) int {
		return int(math.Floor(x))
	})

	fmap["truncf"] = builtinTruncf
	fmap["rnd"] = builtinRnd
}

// builtinTruncf truncates a FLOAT. Unlike the other math functions it
// requires the FLOAT tag specifically; a DOUBLE argument is a type
// mismatch.
func builtinTruncf(ctx *Context, name string, args []Node) (Value, error) {
	vargs, err := evalArgs(ctx, name, args, UNDEFINED)
	if err != nil {
		return Value{}, err
	}
	if vargs[0].Type() != FLOAT {
		return Value{}, errors.NewPlainSyntaxError(
			"'%s': expects to be passed argument 1 as %s", name, FLOAT.Desc())
	}
	return NewFloat(float32(math.Trunc(vargs[0].ToReal()))), nil
}

// builtinRnd returns a uniform draw in [0,1). A negative argument
// reseeds the generator from the current time.
func builtinRnd(ctx *Context, name string, args []Node) (Value, error) {
	vargs, err := evalArgs(ctx, name, args, DOUBLE)
	if err != nil {
		return Value{}, err
	}
	if vargs[0].ToDouble() < 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return NewDouble(rng.Float64()), nil
}
