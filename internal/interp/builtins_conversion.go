package interp

import (
	"fmt"
	"math"
	"strconv"
)

func registerConversionFuncs(fmap map[string]Func) {
	// val parses a string as a double; an unparseable one reads as 0.
	fmap["val"] = builtinVal

	// str renders a double: integer form for whole values, default
	// double form otherwise.
	fmap["str"] = builtinStr

	// strp renders a double with |digits| fractional digits.
	fmap["strp"] = builtinStrp

	// hex renders the integer truncation in lowercase hex; negatives
	// render as the two's complement of a 32-bit int.
	fmap["hex"] = builtinHex
}

func builtinVal(ctx *Context, name string, args []Node) (Value, error) {
	vargs, err := evalArgs(ctx, name, args, STRING)
	if err != nil {
		return Value{}, err
	}
	return NewDouble(parseDoublePrefix(vargs[0].ToStr())), nil
}

func builtinStr(ctx *Context, name string, args []Node) (Value, error) {
	vargs, err := evalArgs(ctx, name, args, DOUBLE)
	if err != nil {
		return Value{}, err
	}

	x := vargs[0].ToDouble()
	if math.Floor(x) == x {
		return NewString(strconv.Itoa(int(int32(x)))), nil
	}
	return NewString(strconv.FormatFloat(x, 'g', -1, 64)), nil
}

func builtinStrp(ctx *Context, name string, args []Node) (Value, error) {
	vargs, err := evalArgs(ctx, name, args, DOUBLE, INTEGER)
	if err != nil {
		return Value{}, err
	}

	digits := vargs[1].ToInt()
	if digits < 0 {
		digits = -digits
	}
	return NewString(strconv.FormatFloat(vargs[0].ToDouble(), 'f', digits, 64)), nil
}

func builtinHex(ctx *Context, name string, args []Node) (Value, error) {
	vargs, err := evalArgs(ctx, name, args, DOUBLE)
	if err != nil {
		return Value{}, err
	}
	return NewString(fmt.Sprintf("%x", uint32(int32(vargs[0].ToDouble())))), nil
}
