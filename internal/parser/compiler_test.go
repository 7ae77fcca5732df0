package parser

import (
	"testing"

	stderrors "errors"

	"github.com/eantcal/nuexpreval/internal/errors"
	"github.com/eantcal/nuexpreval/internal/interp"
)

// eval compiles and evaluates source against ctx.
func eval(t *testing.T, source string, ctx *interp.Context) (interp.Value, error) {
	t.Helper()
	node, err := Compile(source)
	if err != nil {
		return interp.Value{}, err
	}
	return node.Eval(ctx)
}

// mustEval fails the test on any error.
func mustEval(t *testing.T, source string, ctx *interp.Context) interp.Value {
	t.Helper()
	if ctx == nil {
		ctx = interp.NewContext()
	}
	v, err := eval(t, source, ctx)
	if err != nil {
		t.Fatalf("eval(%q) error: %v", source, err)
	}
	return v
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		source   string
		wantStr  string
		wantType interp.Type
	}{
		{"1+2", "3", interp.INTEGER},
		{"10-4", "6", interp.INTEGER},
		{"6*7", "42", interp.INTEGER},
		{"7/2", "3.5", interp.DOUBLE},
		{"7 div 2", "3", interp.INTEGER},
		{"7 mod 2", "1", interp.INTEGER},
		{`7\2`, "3", interp.INTEGER},
		{"2^10", "1024", interp.INTEGER},
		{"1.5+1", "2.5", interp.DOUBLE},
		{"2E2+1", "201", interp.DOUBLE},
	}

	for _, tt := range tests {
		v := mustEval(t, tt.source, nil)
		if v.Type() != tt.wantType {
			t.Errorf("eval(%q) type = %v, want %v", tt.source, v.Type(), tt.wantType)
		}
		if v.ToStr() != tt.wantStr {
			t.Errorf("eval(%q) = %q, want %q", tt.source, v.ToStr(), tt.wantStr)
		}
	}
}

func TestEvalFoldsLeftWithoutPrecedence(t *testing.T) {
	// every binary operator shares one precedence level and folds left
	// to right; parentheses override the ordering
	tests := []struct {
		source string
		want   string
	}{
		{"1+2*3", "9"},
		{"(1+2)*3", "9"},
		{"1+(2*3)", "7"},
		{"10-2-3", "5"},
		{"10-(2-3)", "11"},
		{"2*3+4", "10"},
		{"100/10/5", "2"},
	}

	for _, tt := range tests {
		v := mustEval(t, tt.source, nil)
		if v.ToStr() != tt.want {
			t.Errorf("eval(%q) = %q, want %q", tt.source, v.ToStr(), tt.want)
		}
	}
}

func TestEvalUnary(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"-5", "-5"},
		{"+5", "5"},
		{"-5+3", "-2"},
		{"2*-3", "-6"},
		{"-2.5", "-2.5"},
		{"not 0", "1"},
		{"not 7", "0"},
		{"not(0)", "1"},
		{"b_not 0", "-1"},
		{"b_not(0)", "-1"},
	}

	for _, tt := range tests {
		v := mustEval(t, tt.source, nil)
		if v.ToStr() != tt.want {
			t.Errorf("eval(%q) = %q, want %q", tt.source, v.ToStr(), tt.want)
		}
	}
}

func TestEvalExponentFusion(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1E-3+1", "1.001"},
		{"1E+2", "100"},
		{"2E-2", "0.02"},
		{"1E-3*1E3", "1"},
	}

	for _, tt := range tests {
		v := mustEval(t, tt.source, nil)
		if v.Type() != interp.DOUBLE {
			t.Errorf("eval(%q) type = %v, want DOUBLE", tt.source, v.Type())
		}
		if v.ToStr() != tt.want {
			t.Errorf("eval(%q) = %q, want %q", tt.source, v.ToStr(), tt.want)
		}
	}
}

func TestEvalIntegerLiteralTyping(t *testing.T) {
	v := mustEval(t, "2147483647", nil)
	if v.Type() != interp.INTEGER {
		t.Errorf("max int32 literal type = %v, want INTEGER", v.Type())
	}

	v = mustEval(t, "2147483648", nil)
	if v.Type() != interp.LONG64 {
		t.Errorf("past-int32 literal type = %v, want LONG64", v.Type())
	}
}

func TestEvalStringsAndComparisons(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{`"a"+"b"`, "ab"},
		{`"abc" < "abd"`, "1"},
		{`"x" = "x"`, "1"},
		{`"x" <> "y"`, "1"},
		{"1 < 2", "1"},
		{"2 <= 1", "0"},
		{"3 >= 3", "1"},
		{"1 = 2", "0"},
		{"1 <> 2", "1"},
	}

	for _, tt := range tests {
		v := mustEval(t, tt.source, nil)
		if v.ToStr() != tt.want {
			t.Errorf("eval(%q) = %q, want %q", tt.source, v.ToStr(), tt.want)
		}
	}
}

func TestEvalLogicalAndBitwise(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1 and 1", "1"},
		{"1 and 0", "0"},
		{"0 or 1", "1"},
		{"0 or 0", "0"},
		{"1 xor 1", "0"},
		{"1 xor 0", "1"},
		{"5 bor 2", "7"},
		{"6 band 3", "2"},
		{"6 bxor 3", "5"},
		{"1 bshl 4", "16"},
		{"16 bshr 2", "4"},
	}

	for _, tt := range tests {
		v := mustEval(t, tt.source, nil)
		if v.ToStr() != tt.want {
			t.Errorf("eval(%q) = %q, want %q", tt.source, v.ToStr(), tt.want)
		}
	}
}

func TestEvalVariables(t *testing.T) {
	ctx := interp.NewContext()
	ctx.Define("x", interp.NewInteger(41))
	ctx.Define("name", interp.NewString("world"))

	v := mustEval(t, "x+1", ctx)
	if v.Type() != interp.INTEGER || v.ToInt() != 42 {
		t.Errorf("x+1 = %v %d, want integer 42", v.Type(), v.ToInt())
	}

	v = mustEval(t, `"hello "+name`, ctx)
	if v.ToStr() != "hello world" {
		t.Errorf(`"hello "+name = %q`, v.ToStr())
	}

	_, err := eval(t, "ghost+1", ctx)
	var rte *errors.RuntimeError
	if !stderrors.As(err, &rte) || rte.Code != errors.ErrVarUndef {
		t.Fatalf("expected ErrVarUndef, got %v", err)
	}
}

func TestEvalIncrementDecrement(t *testing.T) {
	ctx := interp.NewContext()
	ctx.Define("x", interp.NewInteger(0))

	v := mustEval(t, "++x", ctx)
	if v.ToInt() != 1 {
		t.Fatalf("++x = %d, want 1", v.ToInt())
	}
	stored, _ := ctx.Get("x")
	if stored.ToInt() != 1 {
		t.Fatalf("context x = %d, want 1", stored.ToInt())
	}

	v = mustEval(t, "--x", ctx)
	if v.ToInt() != 0 {
		t.Fatalf("--x = %d, want 0", v.ToInt())
	}
}

func TestEvalFunctionCalls(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{`len("hello")`, "5"},
		{`mid("abcdef",2,3)`, "bcd"},
		{`ucase("abc")`, "ABC"},
		{`min(3,1+1)`, "2"},
		{"sqrt(16)", "4"},
		{"int(-5.1)", "-6"},
		{`val(str(42))`, "42"},
		{`hex(255)`, "ff"},
	}

	for _, tt := range tests {
		v := mustEval(t, tt.source, nil)
		if v.ToStr() != tt.want {
			t.Errorf("eval(%q) = %q, want %q", tt.source, v.ToStr(), tt.want)
		}
	}
}

func TestEvalSubscript(t *testing.T) {
	ctx := interp.NewContext()
	vec := interp.NewVector(interp.INTEGER, 4)
	for i := 0; i < 4; i++ {
		if err := vec.SetAt(i, interp.NewInteger(i*10)); err != nil {
			t.Fatal(err)
		}
	}
	ctx.Define("v", vec)

	v := mustEval(t, "v[2]", ctx)
	if v.ToInt() != 20 {
		t.Fatalf("v[2] = %d, want 20", v.ToInt())
	}

	v = mustEval(t, "v[1+2]", ctx)
	if v.ToInt() != 30 {
		t.Fatalf("v[1+2] = %d, want 30", v.ToInt())
	}

	// the call form subscripts too when the name is a context vector
	v = mustEval(t, "v(1)", ctx)
	if v.ToInt() != 10 {
		t.Fatalf("v(1) = %d, want 10", v.ToInt())
	}

	v = mustEval(t, "size(v)", ctx)
	if v.ToInt() != 4 {
		t.Fatalf("size(v) = %d, want 4", v.ToInt())
	}

	_, err := eval(t, "v[9]", ctx)
	var rte *errors.RuntimeError
	if !stderrors.As(err, &rte) || rte.Code != errors.ErrValOutOfRange {
		t.Fatalf("v[9] expected ErrValOutOfRange, got %v", err)
	}
}

func TestEvalRuntimeErrors(t *testing.T) {
	tests := []struct {
		source string
		code   errors.Code
	}{
		{"1/0", errors.ErrDivByZero},
		{"1 div 0", errors.ErrDivByZero},
		{"1 mod 0", errors.ErrDivByZero},
		{`1\0`, errors.ErrDivByZero},
		{`"a"-1`, errors.ErrTypeMismatch},
		{`"a"+1`, errors.ErrTypeIllegal},
		{"foo(1)", errors.ErrFuncUndef},
		{"ghost", errors.ErrVarUndef},
	}

	for _, tt := range tests {
		_, err := eval(t, tt.source, interp.NewContext())
		var rte *errors.RuntimeError
		if !stderrors.As(err, &rte) {
			t.Fatalf("eval(%q) expected runtime error, got %v", tt.source, err)
		}
		if rte.Code != tt.code {
			t.Errorf("eval(%q) code = %v, want %v", tt.source, rte.Code, tt.code)
		}
	}
}

func TestCompileSyntaxErrors(t *testing.T) {
	sources := []string{
		"1+",
		"*2",
		"(1+2",
		"1+2)",
		"f(1,",
		"v[1",
		"[1]",
		"1 ? 2",
		"2(3)",
		"1 2",
	}

	for _, source := range sources {
		_, err := Compile(source)
		if err == nil {
			t.Errorf("Compile(%q) expected syntax error", source)
			continue
		}
		var se *errors.SyntaxError
		if !stderrors.As(err, &se) {
			t.Errorf("Compile(%q) error type = %T, want *SyntaxError", source, err)
		}
	}
}

func TestCompileEmptySource(t *testing.T) {
	node, err := Compile("")
	if err != nil {
		t.Fatalf("Compile(\"\") error: %v", err)
	}
	if !node.Empty() {
		t.Fatal("Compile(\"\") not empty")
	}

	node, err = Compile("  \t\n ' just a comment")
	if err != nil {
		t.Fatalf("Compile(blank) error: %v", err)
	}
	if !node.Empty() {
		t.Fatal("Compile(blank) not empty")
	}
}

func TestCompileSkipsBlanksAndComments(t *testing.T) {
	v := mustEval(t, " 1 +\t2 ' comment\n + 3", nil)
	if v.ToInt() != 6 {
		t.Fatalf("eval = %d, want 6", v.ToInt())
	}
}

func TestOperatorWordsAreCaseInsensitive(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"7 MOD 2", "1"},
		{"7 Div 2", "3"},
		{"1 AND 1", "1"},
		{"1 Or 0", "1"},
	}

	for _, tt := range tests {
		v := mustEval(t, tt.source, nil)
		if v.ToStr() != tt.want {
			t.Errorf("eval(%q) = %q, want %q", tt.source, v.ToStr(), tt.want)
		}
	}
}

func TestEmptyCallParentheses(t *testing.T) {
	v := mustEval(t, "pi()", nil)
	if v.Type() != interp.FLOAT {
		t.Fatalf("pi() type = %v, want FLOAT", v.Type())
	}

	// a zero-arity function rejects a real argument
	_, err := eval(t, "pi(1)", interp.NewContext())
	if err == nil {
		t.Fatal("pi(1) expected arity error")
	}
}
