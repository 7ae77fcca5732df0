package interp

import (
	"math"

	"github.com/eantcal/nuexpreval/internal/errors"
)

// typeRank orders numeric types for widening: the result of a mixed
// binary operation takes the higher-ranked operand type.
func typeRank(t Type) int {
	switch t {
	case BOOLEAN:
		return 1
	case INTEGER:
		return 2
	case LONG64:
		return 3
	case FLOAT:
		return 4
	case DOUBLE:
		return 5
	}
	return 0
}

// wider returns the wider of two numeric types.
func wider(a, b Type) Type {
	if typeRank(a) >= typeRank(b) {
		return a
	}
	return b
}

// makeIntegral builds a scalar of an integral type tag.
func makeIntegral(t Type, v int64) Value {
	return Value{typ: t, size: 1, iData: []int64{v}}
}

// makeFloating builds a scalar of a floating type tag; FLOAT payloads
// are rounded through float32.
func makeFloating(t Type, v float64) Value {
	if t == FLOAT {
		v = float64(float32(v))
	}
	return Value{typ: t, size: 1, fData: []float64{v}}
}

// Add implements `+`: numeric addition with type widening, or string
// concatenation when both operands are strings.
func (v Value) Add(b Value) (Value, error) {
	if !v.IsNumber() || !b.IsNumber() {
		if v.typ != STRING || b.typ != STRING {
			return Value{}, errors.NewRuntimeError(errors.ErrTypeIllegal, "")
		}
		return NewString(v.strAt(0) + b.strAt(0)), nil
	}

	t := wider(v.typ, b.typ)
	if t.IsFloat() {
		return makeFloating(t, v.toDoubleAt(0)+b.toDoubleAt(0)), nil
	}
	return makeIntegral(t, v.intAt(0)+b.intAt(0)), nil
}

// Sub implements `-`.
func (v Value) Sub(b Value) (Value, error) {
	return v.arith(b, func(a, b float64) float64 { return a - b },
		func(a, b int64) int64 { return a - b })
}

// Mul implements `*`.
func (v Value) Mul(b Value) (Value, error) {
	return v.arith(b, func(a, b float64) float64 { return a * b },
		func(a, b int64) int64 { return a * b })
}

func (v Value) arith(b Value, ff func(float64, float64) float64, fi func(int64, int64) int64) (Value, error) {
	if !v.IsNumber() || !b.IsNumber() {
		return Value{}, errors.NewRuntimeError(errors.ErrTypeMismatch, "")
	}

	t := wider(v.typ, b.typ)
	if t.IsFloat() {
		return makeFloating(t, ff(v.toDoubleAt(0), b.toDoubleAt(0))), nil
	}
	return makeIntegral(t, fi(v.intAt(0), b.intAt(0))), nil
}

// Div implements `/`: always a DOUBLE result, zero divisor rejected.
func (v Value) Div(b Value) (Value, error) {
	if !v.IsNumber() || !b.IsNumber() {
		return Value{}, errors.NewRuntimeError(errors.ErrTypeMismatch, "")
	}
	if b.ToDouble() == 0 {
		return Value{}, errors.NewRuntimeError(errors.ErrDivByZero, "")
	}
	return NewDouble(v.ToDouble() / b.ToDouble()), nil
}

// IntDiv implements `div` and `\`: integral division, LONG64 result if
// either operand is a LONG64, INTEGER otherwise.
func (v Value) IntDiv(b Value) (Value, error) {
	if !v.IsIntegral() || !b.IsIntegral() {
		return Value{}, errors.NewRuntimeError(errors.ErrTypeMismatch, "")
	}
	if b.ToLong64() == 0 {
		return Value{}, errors.NewRuntimeError(errors.ErrDivByZero, "")
	}
	if v.typ == LONG64 || b.typ == LONG64 {
		return NewLong64(v.ToLong64() / b.ToLong64()), nil
	}
	return NewInteger(int(int32(v.ToLong64() / b.ToLong64()))), nil
}

// IntMod implements `mod`.
func (v Value) IntMod(b Value) (Value, error) {
	if !v.IsIntegral() || !b.IsIntegral() {
		return Value{}, errors.NewRuntimeError(errors.ErrTypeMismatch, "")
	}
	if b.ToLong64() == 0 {
		return Value{}, errors.NewRuntimeError(errors.ErrDivByZero, "")
	}
	if v.typ == LONG64 || b.typ == LONG64 {
		return NewLong64(v.ToLong64() % b.ToLong64()), nil
	}
	return NewInteger(int(int32(v.ToLong64() % b.ToLong64()))), nil
}

// Power implements `^`. A floating operand makes the result floating;
// an all-integral operation rounds pow(a,b)+0.5 down to the wider
// integral type.
func (v Value) Power(b Value) (Value, error) {
	if !v.IsNumber() || !b.IsNumber() {
		return Value{}, errors.NewRuntimeError(errors.ErrTypeMismatch, "")
	}

	switch {
	case v.typ == DOUBLE || b.typ == DOUBLE:
		return NewDouble(math.Pow(v.ToDouble(), b.ToDouble())), nil
	case v.typ == FLOAT || b.typ == FLOAT:
		return NewFloat(float32(math.Pow(v.ToReal(), b.ToReal()))), nil
	case v.typ == LONG64 || b.typ == LONG64:
		return NewLong64(int64(0.5 + math.Pow(v.ToDouble(), b.ToDouble()))), nil
	}
	return NewInteger(int(0.5 + math.Pow(v.ToDouble(), b.ToDouble()))), nil
}

// compare dispatches a comparison over the operand types: lexicographic
// for string pairs, floating when either side is floating, integral
// otherwise. A boolean pair has no ordering and is a type mismatch.
func (v Value) compare(b Value, fi func(int64, int64) bool, ff func(float64, float64) bool, fs func(string, string) bool) (Value, error) {
	switch {
	case v.typ == STRING && b.typ == STRING:
		return NewBoolean(fs(v.strAt(0), b.strAt(0))), nil
	case v.typ == DOUBLE || b.typ == DOUBLE || v.typ == FLOAT || b.typ == FLOAT:
		return NewBoolean(ff(v.ToDouble(), b.ToDouble())), nil
	case v.typ == LONG64 || b.typ == LONG64 || v.typ == INTEGER || b.typ == INTEGER:
		return NewBoolean(fi(v.ToLong64(), b.ToLong64())), nil
	}
	return Value{}, errors.NewRuntimeError(errors.ErrTypeMismatch, "")
}

// Less implements `<`.
func (v Value) Less(b Value) (Value, error) {
	return v.compare(b,
		func(a, b int64) bool { return a < b },
		func(a, b float64) bool { return a < b },
		func(a, b string) bool { return a < b })
}

// LessEq implements `<=`.
func (v Value) LessEq(b Value) (Value, error) {
	return v.compare(b,
		func(a, b int64) bool { return a <= b },
		func(a, b float64) bool { return a <= b },
		func(a, b string) bool { return a <= b })
}

// Greater implements `>`.
func (v Value) Greater(b Value) (Value, error) {
	return v.compare(b,
		func(a, b int64) bool { return a > b },
		func(a, b float64) bool { return a > b },
		func(a, b string) bool { return a > b })
}

// GreaterEq implements `>=`.
func (v Value) GreaterEq(b Value) (Value, error) {
	return v.compare(b,
		func(a, b int64) bool { return a >= b },
		func(a, b float64) bool { return a >= b },
		func(a, b string) bool { return a >= b })
}

// Equal implements `=`. A boolean operand on either side compares the
// boolean projections.
func (v Value) Equal(b Value) (Value, error) {
	if v.typ == BOOLEAN || b.typ == BOOLEAN {
		return NewBoolean(v.ToBool() == b.ToBool()), nil
	}
	return v.compare(b,
		func(a, b int64) bool { return a == b },
		func(a, b float64) bool { return a == b },
		func(a, b string) bool { return a == b })
}

// NotEqual implements `<>`.
func (v Value) NotEqual(b Value) (Value, error) {
	if v.typ == BOOLEAN || b.typ == BOOLEAN {
		return NewBoolean(v.ToBool() != b.ToBool()), nil
	}
	return v.compare(b,
		func(a, b int64) bool { return a != b },
		func(a, b float64) bool { return a != b },
		func(a, b string) bool { return a != b })
}

// LogicalAnd implements `and` over the boolean projections.
func (v Value) LogicalAnd(b Value) (Value, error) {
	return NewBoolean(v.ToBool() && b.ToBool()), nil
}

// LogicalOr implements `or`.
func (v Value) LogicalOr(b Value) (Value, error) {
	return NewBoolean(v.ToBool() || b.ToBool()), nil
}

// LogicalXor implements `xor` as boolean inequality.
func (v Value) LogicalXor(b Value) (Value, error) {
	return NewBoolean(v.ToBool() != b.ToBool()), nil
}

// Bitwise operators coerce both operands to INTEGER.

// BitOr implements `bor`.
func (v Value) BitOr(b Value) (Value, error) {
	return NewInteger(int(int32(v.ToInt()) | int32(b.ToInt()))), nil
}

// BitAnd implements `band`.
func (v Value) BitAnd(b Value) (Value, error) {
	return NewInteger(int(int32(v.ToInt()) & int32(b.ToInt()))), nil
}

// BitXor implements `bxor`.
func (v Value) BitXor(b Value) (Value, error) {
	return NewInteger(int(int32(v.ToInt()) ^ int32(b.ToInt()))), nil
}

// BitShr implements `bshr` (arithmetic right shift).
func (v Value) BitShr(b Value) (Value, error) {
	return NewInteger(int(int32(v.ToInt()) >> clampShift(b.ToInt()))), nil
}

// BitShl implements `bshl`.
func (v Value) BitShl(b Value) (Value, error) {
	return NewInteger(int(int32(v.ToInt()) << clampShift(b.ToInt()))), nil
}

func clampShift(n int) uint {
	if n < 0 {
		return 0
	}
	return uint(n)
}

// Increment applies `++` in place and returns the new value. Vectors
// are illegal operands; scalars other than INTEGER, LONG64, FLOAT and
// DOUBLE (booleans included) are a type mismatch.
func (v *Value) Increment() (Value, error) {
	return v.bump(1)
}

// Decrement applies `--` in place and returns the new value.
func (v *Value) Decrement() (Value, error) {
	return v.bump(-1)
}

func (v *Value) bump(delta int64) (Value, error) {
	if v.vector {
		return Value{}, errors.NewRuntimeError(errors.ErrTypeIllegal, "")
	}

	switch v.typ {
	case FLOAT, DOUBLE:
		v.fData[0] += float64(delta)
		return *v, nil
	case INTEGER, LONG64:
		v.iData[0] += delta
		return *v, nil
	}
	return Value{}, errors.NewRuntimeError(errors.ErrTypeMismatch, "")
}

// At returns element i as a scalar of the same type.
func (v Value) At(i int) (Value, error) {
	if i < 0 || i >= v.Size() {
		return Value{}, errors.NewRuntimeError(errors.ErrValOutOfRange, "")
	}

	switch {
	case v.IsIntegral():
		return makeIntegral(v.typ, v.intAt(i)), nil
	case v.IsFloat():
		return makeFloating(v.typ, v.floatAt(i)), nil
	}
	return NewString(v.strAt(i)), nil
}

// SetAt stores a scalar's payload into element i, used by callers that
// populate vector bindings.
func (v *Value) SetAt(i int, elem Value) error {
	if i < 0 || i >= v.Size() {
		return errors.NewRuntimeError(errors.ErrValOutOfRange, "")
	}

	switch {
	case v.IsIntegral():
		v.iData[i] = elem.ToLong64()
	case v.IsFloat():
		v.fData[i] = elem.ToDouble()
	default:
		v.sData[i] = elem.ToStr()
	}
	return nil
}
