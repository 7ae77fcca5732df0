package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// streamOf reduces a token sequence to (class, literal) pairs for
// comparison, dropping blanks.
func streamOf(t *testing.T, input string) [][2]string {
	t.Helper()

	tokens, err := New(input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", input, err)
	}

	var stream [][2]string
	for _, tok := range tokens {
		if tok.Class == BLANK {
			continue
		}
		stream = append(stream, [2]string{tok.Class.String(), tok.Literal})
	}
	return stream
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  [][2]string
	}{
		{"42", [][2]string{{"INTEGRAL", "42"}}},
		{"0", [][2]string{{"INTEGRAL", "0"}}},
		{"1.5", [][2]string{{"REAL", "1.5"}}},
		{".5", [][2]string{{"REAL", ".5"}}},
		{"2E10", [][2]string{{"REAL", "2E10"}}},
		{"2e10", [][2]string{{"REAL", "2e10"}}},
		{"1.25E2", [][2]string{{"REAL", "1.25E2"}}},
		// the sign never joins the exponent at lexing time; the
		// compiler's fix-up pass fuses these back together
		{"1E-3", [][2]string{{"REAL", "1E"}, {"OPERATOR", "-"}, {"INTEGRAL", "3"}}},
		{"1E+3", [][2]string{{"REAL", "1E"}, {"OPERATOR", "+"}, {"INTEGRAL", "3"}}},
		// a second point starts a new number
		{"1.2.3", [][2]string{{"REAL", "1.2"}, {"REAL", ".3"}}},
		// unary minus is an operator token; the compiler owns the sign
		{"-5", [][2]string{{"OPERATOR", "-"}, {"INTEGRAL", "5"}}},
		{"1+2", [][2]string{{"INTEGRAL", "1"}, {"OPERATOR", "+"}, {"INTEGRAL", "2"}}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, streamOf(t, tt.input)); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestIsIntegerLiteral(t *testing.T) {
	valid := []string{"0", "7", "42", "-3", "1234567890"}
	invalid := []string{"", "-", "3.5", "1E2", "x", "12a"}

	for _, s := range valid {
		if !IsIntegerLiteral(s) {
			t.Errorf("IsIntegerLiteral(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsIntegerLiteral(s) {
			t.Errorf("IsIntegerLiteral(%q) = true, want false", s)
		}
	}
}

func TestIsRealLiteral(t *testing.T) {
	valid := []string{"0", "3.5", ".5", "-2.5", "1E2", "1e2", "1E+2", "1E-2", "1.25e10", "1E"}
	invalid := []string{"", "-", ".", "1.2.3", "1EE2", "E2", ".E2", "abc", "1x"}

	for _, s := range valid {
		if !IsRealLiteral(s) {
			t.Errorf("IsRealLiteral(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsRealLiteral(s) {
			t.Errorf("IsRealLiteral(%q) = true, want false", s)
		}
	}
}
