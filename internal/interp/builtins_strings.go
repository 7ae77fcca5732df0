package interp

import (
	"strings"

	"github.com/eantcal/nuexpreval/internal/errors"
)

func registerStringFuncs(fmap map[string]Func) {
	fmap["len"] = intOfStringFunc(func(s string) int {
		return len(s)
	})

	// asc returns the first byte of the string, 0 for an empty one.
	fmap["asc"] = intOfStringFunc(func(s string) int {
		if s == "" {
			return 0
		}
		return int(s[0])
	})

	// spc builds a run of n spaces; a negative count is empty.
	fmap["spc"] = stringOfIntFunc(func(n int) string {
		if n < 0 {
			n = 0
		}
		return strings.Repeat(" ", n)
	})

	// chr builds a one-byte string from a byte code.
	fmap["chr"] = stringOfIntFunc(func(code int) string {
		return string([]byte{byte(code)})
	})

	fmap["left"] = stringIntFunc(leftStr)
	fmap["right"] = stringIntFunc(rightStr)

	fmap["lcase"] = stringFunc(strings.ToLower)
	fmap["ucase"] = stringFunc(strings.ToUpper)

	fmap["substr"] = builtinSubstr
	fmap["mid"] = builtinMid
	fmap["pstr"] = builtinPstr

	// instr is case-insensitive, instrcs case-sensitive; both return
	// the 0-based match position or -1, and 0 for an empty needle.
	fmap["instrcs"] = intOfStringsFunc(strings.Index)
	fmap["instr"] = intOfStringsFunc(func(s, needle string) int {
		return strings.Index(strings.ToUpper(s), strings.ToUpper(needle))
	})
}

func leftStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// rightStr keeps the last n bytes. A non-positive count returns the
// whole string, not the empty one; callers depend on the asymmetry
// with left.
func rightStr(s string, n int) string {
	if n <= 0 {
		return s
	}
	if n > len(s) {
		n = len(s)
	}
	return s[len(s)-n:]
}

// clampSpan clamps a 0-based start position and a length against s.
func clampSpan(s string, pos, n int) (int, int) {
	if pos < 1 {
		pos = 0
	}
	if n < 0 {
		n = 0
	}
	if pos+n >= len(s) {
		n = len(s) - pos
	}
	return pos, n
}

// builtinSubstr returns n bytes of s starting at a 0-based position.
func builtinSubstr(ctx *Context, name string, args []Node) (Value, error) {
	vargs, err := evalArgs(ctx, name, args, STRING, INTEGER, INTEGER)
	if err != nil {
		return Value{}, err
	}

	s := vargs[0].ToStr()
	pos, n := vargs[1].ToInt(), vargs[2].ToInt()
	if pos >= len(s) && pos >= 1 {
		return NewString(""), nil
	}
	pos, n = clampSpan(s, pos, n)
	return NewString(s[pos : pos+n]), nil
}

// builtinMid is substr with a 1-based position.
func builtinMid(ctx *Context, name string, args []Node) (Value, error) {
	vargs, err := evalArgs(ctx, name, args, STRING, INTEGER, INTEGER)
	if err != nil {
		return Value{}, err
	}

	s := vargs[0].ToStr()
	pos, n := vargs[1].ToInt()-1, vargs[2].ToInt()
	if pos >= len(s) && pos >= 1 {
		return NewString(""), nil
	}
	pos, n = clampSpan(s, pos, n)
	return NewString(s[pos : pos+n]), nil
}

// builtinPstr replaces the byte at pos with the first byte of c. The
// position clamps into [0, len(s)-1]: any past-the-end position patches
// the last byte.
func builtinPstr(ctx *Context, name string, args []Node) (Value, error) {
	vargs, err := evalArgs(ctx, name, args, STRING, INTEGER, STRING)
	if err != nil {
		return Value{}, err
	}

	s := vargs[0].ToStr()
	if s == "" {
		return Value{}, errors.NewRuntimeError(errors.ErrValOutOfRange, name)
	}

	pos := vargs[1].ToInt()
	if pos >= len(s) {
		pos = len(s) - 1
	}
	if pos < 1 {
		pos = 0
	}

	var c byte
	if cs := vargs[2].ToStr(); cs != "" {
		c = cs[0]
	}

	patched := []byte(s)
	patched[pos] = c
	return NewString(string(patched)), nil
}
