// Package parser folds a token sequence into an evaluable expression
// tree. All binary operators share one precedence level and fold left
// to right; parentheses override the ordering. Operator precedence is
// deliberately absent.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/eantcal/nuexpreval/internal/errors"
	"github.com/eantcal/nuexpreval/internal/interp"
	"github.com/eantcal/nuexpreval/internal/lexer"
)

// Compile tokenizes source and compiles the tokens into a tree.
func Compile(source string) (interp.Node, error) {
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return nil, err
	}
	return CompileTokens(tokens, source)
}

// CompileTokens compiles an already-tokenized expression.
func CompileTokens(tokens []lexer.Token, source string) (interp.Node, error) {
	tl := prune(tokens)
	if err := checkSubscriptPositions(tl, source); err != nil {
		return nil, err
	}
	tl = fixRealNumbers(tl)

	if len(tl) == 0 {
		return &interp.EmptyExpr{}, nil
	}

	c := &compiler{tokens: tl, source: source}
	node, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	if c.pos < len(c.tokens) {
		return nil, errors.NewSyntaxError(source, c.tokens[c.pos].Pos, "")
	}
	return node, nil
}

// prune drops the token classes the grammar ignores.
func prune(tokens []lexer.Token) []lexer.Token {
	tl := make([]lexer.Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.Class.Skippable() {
			tl = append(tl, t)
		}
	}
	return tl
}

// checkSubscriptPositions verifies every subscript bracket directly
// follows an identifier; the language has no standalone arrays.
func checkSubscriptPositions(tokens []lexer.Token, source string) error {
	for i, t := range tokens {
		if t.Class != lexer.SUBSCR_BEGIN {
			continue
		}
		if i == 0 || tokens[i-1].Class != lexer.IDENTIFIER {
			return errors.NewSyntaxError(source, t.Pos, "")
		}
	}
	return nil
}

// fixRealNumbers fuses the three tokens of a split exponent — a real
// ending in E, a sign operator, an integral — back into one real
// token, repairing what byte-wise scanning split apart.
func fixRealNumbers(tokens []lexer.Token) []lexer.Token {
	tl := make([]lexer.Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Class == lexer.REAL && endsInExponent(t.Literal) &&
			i+2 < len(tokens) &&
			tokens[i+1].Class == lexer.OPERATOR &&
			(tokens[i+1].Literal == "+" || tokens[i+1].Literal == "-") &&
			tokens[i+2].Class == lexer.INTEGRAL {
			fused := t.Literal + tokens[i+1].Literal + tokens[i+2].Literal
			tl = append(tl, lexer.NewToken(fused, lexer.REAL, t.Pos, t.Source))
			i += 2
			continue
		}
		tl = append(tl, t)
	}
	return tl
}

func endsInExponent(literal string) bool {
	if literal == "" {
		return false
	}
	last := literal[len(literal)-1]
	return last == 'E' || last == 'e'
}

// compiler is the cursor state of one descent.
type compiler struct {
	source string
	tokens []lexer.Token
	pos    int
}

func (c *compiler) eof() bool {
	return c.pos >= len(c.tokens)
}

func (c *compiler) peek() lexer.Token {
	return c.tokens[c.pos]
}

func (c *compiler) advance() lexer.Token {
	t := c.tokens[c.pos]
	c.pos++
	return t
}

// errHere raises a syntax error at the current token, or at the end of
// the source when the tokens ran out.
func (c *compiler) errHere() error {
	if c.eof() {
		return errors.NewSyntaxError(c.source, len(c.source), "")
	}
	return errors.NewSyntaxError(c.source, c.peek().Pos, "")
}

// parseExpr parses operand (operator operand)* into a left-associative
// fold.
func (c *compiler) parseExpr() (interp.Node, error) {
	left, err := c.parseOperand()
	if err != nil {
		return nil, err
	}

	for !c.eof() {
		fn, ok := c.binaryOperator(c.peek())
		if !ok {
			break
		}
		c.advance()

		right, err := c.parseOperand()
		if err != nil {
			return nil, err
		}
		left = interp.NewBinary(fn, left, right)
	}

	return left, nil
}

// binaryOperator resolves a token against the operator registry. A
// token that is both a word operator and an identifier resolves as the
// operator; matching is case-insensitive.
func (c *compiler) binaryOperator(t lexer.Token) (interp.BinOp, bool) {
	if t.Class != lexer.OPERATOR && t.Class != lexer.IDENTIFIER {
		return nil, false
	}
	fn, ok := interp.Operators()[strings.ToLower(t.Literal)]
	return fn, ok
}

// parseOperand parses one operand: a literal, an identifier with its
// call or subscript suffix, a parenthesized subexpression, or a unary
// prefix.
func (c *compiler) parseOperand() (interp.Node, error) {
	if c.eof() {
		return nil, c.errHere()
	}

	t := c.peek()
	switch t.Class {
	case lexer.INTEGRAL:
		c.advance()
		return integralConst(t, c.source)

	case lexer.REAL:
		c.advance()
		if endsInExponent(t.Literal) {
			return nil, errors.NewSyntaxError(c.source, t.Pos, "")
		}
		f, err := strconv.ParseFloat(t.Literal, 64)
		if err != nil {
			return nil, errors.NewSyntaxError(c.source, t.Pos, "")
		}
		return interp.NewConst(interp.NewDouble(f)), nil

	case lexer.STRING_LITERAL:
		c.advance()
		return interp.NewConst(interp.NewString(t.Literal)), nil

	case lexer.OPERATOR:
		return c.parseUnaryOperator(t)

	case lexer.SUBEXP_BEGIN:
		return c.parseSubexpression()

	case lexer.IDENTIFIER:
		return c.parseIdentifier(t)
	}

	return nil, c.errHere()
}

// integralConst types an integer literal: INTEGER when it fits the
// 32-bit range, LONG64 otherwise.
func integralConst(t lexer.Token, source string) (interp.Node, error) {
	n, err := strconv.ParseInt(t.Literal, 10, 64)
	if err != nil {
		return nil, errors.NewSyntaxError(source, t.Pos, "")
	}
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return interp.NewConst(interp.NewInteger(int(n))), nil
	}
	return interp.NewConst(interp.NewLong64(n)), nil
}

// parseUnaryOperator handles the unary prefixes `+`, `-`, `++`, `--`.
func (c *compiler) parseUnaryOperator(t lexer.Token) (interp.Node, error) {
	switch t.Literal {
	case "+":
		c.advance()
		return c.parseOperand()

	case "-":
		c.advance()
		operand, err := c.parseOperand()
		if err != nil {
			return nil, err
		}
		return interp.NewBinary(interp.Operators()["-"],
			interp.NewConst(interp.NewInteger(0)), operand), nil

	case lexer.OpInc, lexer.OpDec:
		c.advance()
		operand, err := c.parseOperand()
		if err != nil {
			return nil, err
		}
		return interp.NewFuncCall(t.Literal, []interp.Node{operand}), nil
	}

	return nil, c.errHere()
}

// parseSubexpression parses a parenthesized expression; bare `()` is
// the empty expression.
func (c *compiler) parseSubexpression() (interp.Node, error) {
	c.advance() // (

	if !c.eof() && c.peek().Class == lexer.SUBEXP_END {
		c.advance()
		return &interp.EmptyExpr{}, nil
	}

	node, err := c.parseExpr()
	if err != nil {
		return nil, err
	}
	if c.eof() || c.peek().Class != lexer.SUBEXP_END {
		return nil, c.errHere()
	}
	c.advance() // )
	return node, nil
}

// parseIdentifier resolves the call, subscript and plain-variable
// forms, plus the word-unary `not` and `b_not` prefixes.
func (c *compiler) parseIdentifier(t lexer.Token) (interp.Node, error) {
	c.advance()

	followedByCall := !c.eof() && c.peek().Class == lexer.SUBEXP_BEGIN
	if low := strings.ToLower(t.Literal); (low == "not" || low == "b_not") && !followedByCall {
		operand, err := c.parseOperand()
		if err != nil {
			return nil, err
		}
		return interp.NewFuncCall(low, []interp.Node{operand}), nil
	}

	if followedByCall {
		args, err := c.parseArgList()
		if err != nil {
			return nil, err
		}
		return interp.NewFuncCall(t.Literal, args), nil
	}

	if !c.eof() && c.peek().Class == lexer.SUBSCR_BEGIN {
		c.advance() // [
		index, err := c.parseExpr()
		if err != nil {
			return nil, err
		}
		if c.eof() || c.peek().Class != lexer.SUBSCR_END {
			return nil, c.errHere()
		}
		c.advance() // ]
		return interp.NewSubscript(t.Literal, index), nil
	}

	return interp.NewVar(t.Literal), nil
}

// parseArgList parses a parenthesized, comma-separated argument list.
func (c *compiler) parseArgList() ([]interp.Node, error) {
	c.advance() // (

	var args []interp.Node
	if !c.eof() && c.peek().Class == lexer.SUBEXP_END {
		c.advance()
		return args, nil
	}

	for {
		arg, err := c.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if c.eof() {
			return nil, c.errHere()
		}
		if c.peek().Is(lexer.OPERATOR, ",") {
			c.advance()
			continue
		}
		break
	}

	if c.eof() || c.peek().Class != lexer.SUBEXP_END {
		return nil, c.errHere()
	}
	c.advance() // )
	return args, nil
}
