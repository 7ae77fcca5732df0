package lexer

// Operator words handled by the function registry rather than the
// operator registry.
const (
	OpInc = "++"
	OpDec = "--"
)

// Policy carries the lexical configuration of the tokenizer: which
// bytes are blanks and newlines, the operator sets, bracket pairs,
// string delimiters and the comment introducer.
type Policy struct {
	Blanks        string
	Newlines      string
	SingleCharOps string
	WordOps       []string
	SubexpBegin   byte
	SubexpEnd     byte
	SubscrBegin   byte
	SubscrEnd     byte
	StringDelim   byte
	EscapeChar    byte
	LineComment   string
}

// DefaultPolicy returns the evaluator's lexical policy.
func DefaultPolicy() Policy {
	return Policy{
		Blanks:        " \t\r",
		Newlines:      "\n",
		SingleCharOps: `.+-*/^,\=";:<>?'`,
		WordOps: []string{
			"bxor", "band", "bshr", "bshl", "bor", OpInc, OpDec,
			"mod", "div", "xor", "and", "or", "<>", "<=", ">=",
		},
		SubexpBegin: '(',
		SubexpEnd:   ')',
		SubscrBegin: '[',
		SubscrEnd:   ']',
		StringDelim: '"',
		EscapeChar:  '\\',
		LineComment: "'",
	}
}

// wordOpsByLength returns the word operators sorted longest first, so
// the scanner's longest-match rule is a plain in-order probe.
func (p Policy) wordOpsByLength() []string {
	ops := make([]string, len(p.WordOps))
	copy(ops, p.WordOps)
	for i := 1; i < len(ops); i++ {
		for j := i; j > 0 && len(ops[j]) > len(ops[j-1]); j-- {
			ops[j], ops[j-1] = ops[j-1], ops[j]
		}
	}
	return ops
}

// isAlphabetic reports whether the word operator is made of letters and
// therefore needs identifier boundaries around its match.
func isAlphabetic(op string) bool {
	for i := 0; i < len(op); i++ {
		c := op[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return len(op) > 0
}

// isIdentChar reports whether c may appear inside an identifier.
func isIdentChar(c byte) bool {
	return c == '_' || c == '.' ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsIntegerLiteral reports whether s is a well-formed integer literal,
// optionally signed.
func IsIntegerLiteral(s string) bool {
	if s == "" {
		return false
	}
	if !isDigit(s[0]) && s[0] != '-' {
		return false
	}
	if len(s) == 1 {
		return s[0] != '-'
	}
	for i := 1; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// IsRealLiteral reports whether s is a well-formed real literal. The
// incomplete trailing-exponent form ("1E") is accepted: the compiler
// verifies that the following tokens complete it with a sign and an
// integer exponent.
func IsRealLiteral(s string) bool {
	if s == "" {
		return false
	}
	if !isDigit(s[0]) && s[0] != '-' && s[0] != '.' {
		return false
	}
	if len(s) == 1 {
		return s[0] != '-' && s[0] != '.'
	}

	var prev byte
	points := 0
	exponents := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		valid := (c == '-' && i == 0) || isDigit(c)
		if !valid && c == '.' && points < 1 {
			points++
			valid = true
		}
		if !valid && (c == 'E' || c == 'e') && exponents < 1 && isDigit(prev) {
			exponents++
			valid = true
		}
		if !valid && (c == '+' || c == '-') && (prev == 'E' || prev == 'e') {
			valid = true
		}
		if !valid {
			return false
		}
		prev = c
	}

	return isDigit(prev) || prev == 'E' || prev == 'e'
}
