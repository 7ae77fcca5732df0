// Package interp provides the runtime for the expression evaluator:
// the polymorphic variant value, the evaluation context, the expression
// tree nodes and the global operator and function registries.
package interp

import (
	"strconv"
	"strings"
)

// Type is the tag of a variant value.
type Type int

// Variant type tags.
const (
	UNDEFINED Type = iota
	INTEGER
	FLOAT
	DOUBLE
	STRING
	BOOLEAN
	LONG64
	ANY
)

// typeDescs maps Type values to the lowercase descriptions used in
// diagnostics.
var typeDescs = [...]string{
	UNDEFINED: "undef",
	INTEGER:   "integer",
	FLOAT:     "float",
	DOUBLE:    "double",
	STRING:    "string",
	BOOLEAN:   "boolean",
	LONG64:    "long64",
	ANY:       "any",
}

// Desc returns the lowercase description of the type.
func (t Type) Desc() string {
	if int(t) < len(typeDescs) {
		return typeDescs[t]
	}
	return "undef"
}

// IsNumber reports whether the type is numeric (integral or floating).
func (t Type) IsNumber() bool {
	return t.IsIntegral() || t.IsFloat()
}

// IsIntegral reports whether values of the type use the integer store.
func (t Type) IsIntegral() bool {
	return t == LONG64 || t == INTEGER || t == BOOLEAN
}

// IsFloat reports whether values of the type use the floating store.
func (t Type) IsFloat() bool {
	return t == FLOAT || t == DOUBLE
}

// Value is the variant datum flowing through evaluation: a type tag
// plus one homogeneous payload. A scalar is a one-element payload with
// the vector flag down; a vector carries its declared length.
//
// Exactly one store is populated, matching the tag: integral types use
// iData, floating types fData, STRING sData.
type Value struct {
	sData  []string
	iData  []int64
	fData  []float64
	typ    Type
	size   int
	vector bool
}

// NewInteger creates an INTEGER scalar.
func NewInteger(v int) Value {
	return Value{typ: INTEGER, size: 1, iData: []int64{int64(v)}}
}

// NewLong64 creates a LONG64 scalar.
func NewLong64(v int64) Value {
	return Value{typ: LONG64, size: 1, iData: []int64{v}}
}

// NewBoolean creates a BOOLEAN scalar.
func NewBoolean(v bool) Value {
	var i int64
	if v {
		i = 1
	}
	return Value{typ: BOOLEAN, size: 1, iData: []int64{i}}
}

// NewFloat creates a FLOAT scalar. The payload is stored at float32
// precision.
func NewFloat(v float32) Value {
	return Value{typ: FLOAT, size: 1, fData: []float64{float64(v)}}
}

// NewDouble creates a DOUBLE scalar.
func NewDouble(v float64) Value {
	return Value{typ: DOUBLE, size: 1, fData: []float64{v}}
}

// NewString creates a STRING scalar.
func NewString(v string) Value {
	return Value{typ: STRING, size: 1, sData: []string{v}}
}

// NewVector creates a zero-filled vector of the given type and
// declared length. A length below one is clamped to one.
func NewVector(t Type, length int) Value {
	if length < 1 {
		length = 1
	}
	v := Value{typ: t, size: length, vector: true}
	switch {
	case t.IsIntegral():
		v.iData = make([]int64, length)
	case t.IsFloat():
		v.fData = make([]float64, length)
	default:
		v.sData = make([]string, length)
	}
	return v
}

// Type returns the value's type tag.
func (v Value) Type() Type {
	return v.typ
}

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool {
	return v.typ.IsNumber()
}

// IsIntegral reports whether the value uses the integer store.
func (v Value) IsIntegral() bool {
	return v.typ.IsIntegral()
}

// IsFloat reports whether the value uses the floating store.
func (v Value) IsFloat() bool {
	return v.typ.IsFloat()
}

// IsVector reports whether the value is a vector.
func (v Value) IsVector() bool {
	return v.vector
}

// Size returns the declared vector length, 1 for scalars.
func (v Value) Size() int {
	if v.size < 1 {
		return 1
	}
	return v.size
}

// String returns the scalar string projection of the value.
func (v Value) String() string {
	return v.ToStr()
}

// Describe renders the value with its type, vector length and
// elements, strings quoted, capping the listing at ten elements.
func (v Value) Describe() string {
	var sb strings.Builder
	sb.WriteString(v.typ.Desc())
	sb.WriteString(" ")

	if v.vector {
		sb.WriteString("[")
		sb.WriteString(strconv.Itoa(v.Size()))
		sb.WriteString("] ")
	}
	sb.WriteString("=")

	count := v.Size()
	if !v.vector {
		count = 1
	}
	truncated := count > 10
	if truncated {
		count = 10
	}

	for i := 0; i < count; i++ {
		if v.vector {
			sb.WriteString("[")
			sb.WriteString(strconv.Itoa(i))
			sb.WriteString("]:")
		}
		if v.typ == STRING {
			sb.WriteString(strconv.Quote(v.strAt(i)))
		} else {
			sb.WriteString(v.toStrAt(i))
		}
		if v.vector && i < count-1 {
			sb.WriteString(", ")
		} else if v.vector {
			sb.WriteString(" ")
		}
	}

	if truncated {
		sb.WriteString("...")
	}

	return sb.String()
}
