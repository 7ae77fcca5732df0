// Package lexer turns expression source text into an ordered sequence
// of classified tokens, driven by a configurable lexical Policy.
//
// The scanner is byte-oriented: token positions are byte offsets into
// the source, matching the error model's caret rendering and the
// byte-level string builtins.
package lexer

import (
	"strings"

	"github.com/eantcal/nuexpreval/internal/errors"
)

// Tokenizer is a left-to-right, longest-match scanner over one
// expression.
type Tokenizer struct {
	source  string
	src     *string
	wordOps []string
	policy  Policy
	pos     int
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithPolicy replaces the default lexical policy.
func WithPolicy(p Policy) Option {
	return func(t *Tokenizer) {
		t.policy = p
	}
}

// New creates a Tokenizer for the given source text.
func New(source string, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		source: source,
		src:    &source,
		policy: DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.wordOps = t.policy.wordOpsByLength()
	return t
}

// Tokenize scans the whole source and returns the token sequence.
// Positions are strictly increasing and the tokens cover the source
// exactly. An unclassifiable byte yields a syntax error at its
// position.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	var tokens []Token
	for t.pos < len(t.source) {
		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// next scans one token starting at the current position.
func (t *Tokenizer) next() (Token, error) {
	c := t.source[t.pos]
	p := &t.policy

	switch {
	case c == p.StringDelim:
		return t.scanString()

	case t.hasPrefix(p.LineComment):
		return t.scanLineComment()
	}

	if tok, ok := t.matchWordOp(); ok {
		return tok, nil
	}

	switch {
	case isDigit(c) || (c == '.' && t.pos+1 < len(t.source) && isDigit(t.source[t.pos+1])):
		return t.scanNumber(), nil

	case strings.IndexByte(p.SingleCharOps, c) >= 0:
		tok := NewToken(string(c), OPERATOR, t.pos, t.src)
		t.pos++
		return tok, nil

	case c == p.SubexpBegin:
		return t.emitByte(SUBEXP_BEGIN), nil
	case c == p.SubexpEnd:
		return t.emitByte(SUBEXP_END), nil
	case c == p.SubscrBegin:
		return t.emitByte(SUBSCR_BEGIN), nil
	case c == p.SubscrEnd:
		return t.emitByte(SUBSCR_END), nil

	case isLetter(c) || c == '_':
		return t.scanIdentifier(), nil

	case strings.IndexByte(p.Blanks, c) >= 0:
		return t.scanBlanks(), nil

	case strings.IndexByte(p.Newlines, c) >= 0:
		return t.emitByte(NEWLINE), nil
	}

	return Token{}, errors.NewSyntaxError(t.source, t.pos, "")
}

// emitByte emits the single byte at the cursor with the given class.
func (t *Tokenizer) emitByte(class Class) Token {
	tok := NewToken(string(t.source[t.pos]), class, t.pos, t.src)
	t.pos++
	return tok
}

func (t *Tokenizer) hasPrefix(prefix string) bool {
	return prefix != "" && strings.HasPrefix(t.source[t.pos:], prefix)
}

// matchWordOp probes the word operators, longest first. Alphabetic
// operators match case-insensitively and only between non-identifier
// boundaries.
func (t *Tokenizer) matchWordOp() (Token, bool) {
	for _, op := range t.wordOps {
		end := t.pos + len(op)
		if end > len(t.source) {
			continue
		}
		if !strings.EqualFold(t.source[t.pos:end], op) {
			continue
		}
		if isAlphabetic(op) {
			if t.pos > 0 && isIdentChar(t.source[t.pos-1]) {
				continue
			}
			if end < len(t.source) && isIdentChar(t.source[end]) {
				continue
			}
		}
		tok := NewToken(strings.ToLower(t.source[t.pos:end]), OPERATOR, t.pos, t.src)
		t.pos = end
		return tok, true
	}
	return Token{}, false
}

// scanString consumes a string literal. The escape character takes the
// following byte literally; the token literal is the unquoted content.
func (t *Tokenizer) scanString() (Token, error) {
	start := t.pos
	t.pos++ // opening delimiter

	var sb strings.Builder
	for t.pos < len(t.source) {
		c := t.source[t.pos]
		switch c {
		case t.policy.EscapeChar:
			if t.pos+1 < len(t.source) {
				sb.WriteByte(t.source[t.pos+1])
				t.pos += 2
				continue
			}
			t.pos++
		case t.policy.StringDelim:
			t.pos++
			return NewToken(sb.String(), STRING_LITERAL, start, t.src), nil
		default:
			sb.WriteByte(c)
			t.pos++
		}
	}

	return Token{}, errors.NewSyntaxError(t.source, start, "")
}

// scanLineComment consumes through the end of the line, leaving the
// newline itself for the next token.
func (t *Tokenizer) scanLineComment() (Token, error) {
	start := t.pos
	for t.pos < len(t.source) && strings.IndexByte(t.policy.Newlines, t.source[t.pos]) < 0 {
		t.pos++
	}
	return NewToken(t.source[start:t.pos], LINE_COMMENT, start, t.src), nil
}

// scanNumber consumes an integral or real literal: digits, at most one
// point, at most one digit-preceded exponent symbol followed by digits
// only. A sign after the exponent is never consumed here; the compiler
// fuses the split "1E" "-" "3" form back into one real token.
func (t *Tokenizer) scanNumber() Token {
	start := t.pos
	seenPoint := false
	seenExp := false

	for t.pos < len(t.source) {
		c := t.source[t.pos]
		switch {
		case isDigit(c):
			t.pos++
		case c == '.' && !seenPoint && !seenExp:
			seenPoint = true
			t.pos++
		case (c == 'E' || c == 'e') && !seenExp && isDigit(t.source[t.pos-1]):
			seenExp = true
			t.pos++
		default:
			goto done
		}
	}
done:

	literal := t.source[start:t.pos]
	class := REAL
	if IsIntegerLiteral(literal) {
		class = INTEGRAL
	}
	return NewToken(literal, class, start, t.src)
}

// scanIdentifier consumes a letter or underscore followed by letters,
// digits, underscores and non-repeating dots.
func (t *Tokenizer) scanIdentifier() Token {
	start := t.pos
	t.pos++

	var prev byte
	for t.pos < len(t.source) {
		c := t.source[t.pos]
		if !isIdentChar(c) || (c == '.' && prev == '.') {
			break
		}
		prev = c
		t.pos++
	}

	return NewToken(t.source[start:t.pos], IDENTIFIER, start, t.src)
}

// scanBlanks consumes a run of blank bytes as one token.
func (t *Tokenizer) scanBlanks() Token {
	start := t.pos
	for t.pos < len(t.source) && strings.IndexByte(t.policy.Blanks, t.source[t.pos]) >= 0 {
		t.pos++
	}
	return NewToken(t.source[start:t.pos], BLANK, start, t.src)
}
