package interp

import "sync"

// BinOp is a pure binary operator over two values.
type BinOp func(a, b Value) (Value, error)

var (
	operatorsOnce sync.Once
	operators     map[string]BinOp
)

// Operators returns the process-wide binary operator registry. It is
// built once and read-only afterwards; keys are the operator symbols
// and lowercase words.
func Operators() map[string]BinOp {
	operatorsOnce.Do(func() {
		operators = map[string]BinOp{
			"+":  Value.Add,
			"-":  Value.Sub,
			"*":  Value.Mul,
			"/":  Value.Div,
			"\\": Value.IntDiv,
			"^":  Value.Power,

			"=":  Value.Equal,
			"<>": Value.NotEqual,
			"<":  Value.Less,
			">":  Value.Greater,
			"<=": Value.LessEq,
			">=": Value.GreaterEq,

			"and": Value.LogicalAnd,
			"or":  Value.LogicalOr,
			"xor": Value.LogicalXor,

			"mod": Value.IntMod,
			"div": Value.IntDiv,

			"bor":  Value.BitOr,
			"band": Value.BitAnd,
			"bxor": Value.BitXor,
			"bshr": Value.BitShr,
			"bshl": Value.BitShl,
		}
	})
	return operators
}
