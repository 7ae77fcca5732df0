package lexer

// Token holds one classified slice of the source text.
//
// Pos is the byte offset of the token's first character in the original
// source. Source is a shared reference to the full source text, kept so
// diagnostics can render the expression with a caret without threading
// the text separately.
type Token struct {
	Literal string
	Source  *string
	Class   Class
	Pos     int
}

// NewToken creates a token of the given class.
func NewToken(literal string, class Class, pos int, source *string) Token {
	return Token{Literal: literal, Class: class, Pos: pos, Source: source}
}

// Expression returns the full source text the token was cut from.
func (t Token) Expression() string {
	if t.Source == nil {
		return ""
	}
	return *t.Source
}

// Is reports whether the token has the given class and literal.
func (t Token) Is(class Class, literal string) bool {
	return t.Class == class && t.Literal == literal
}
