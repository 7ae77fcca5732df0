package lexer

// Class identifies the lexical class of a token.
type Class int

// Token classes.
const (
	UNDEFINED Class = iota // unclassified token
	BLANK                  // run of blanks (space, tab, carriage return)
	NEWLINE                // line feed
	IDENTIFIER             // identifiers: x, my_var, a.b
	INTEGRAL               // integer literals: 123
	REAL                   // real literals: 1.5, .5, 2E10, 1E (incomplete)
	OPERATOR               // single-char or word operator
	SUBEXP_BEGIN           // (
	SUBEXP_END             // )
	STRING_LITERAL         // "..."
	STRING_COMMENT         // reserved for delimited comments
	SUBSCR_BEGIN           // [
	SUBSCR_END             // ]
	LINE_COMMENT           // ' through end of line
)

// classStrings maps Class values to their string representations.
var classStrings = [...]string{
	UNDEFINED:      "UNDEFINED",
	BLANK:          "BLANK",
	NEWLINE:        "NEWLINE",
	IDENTIFIER:     "IDENTIFIER",
	INTEGRAL:       "INTEGRAL",
	REAL:           "REAL",
	OPERATOR:       "OPERATOR",
	SUBEXP_BEGIN:   "SUBEXP_BEGIN",
	SUBEXP_END:     "SUBEXP_END",
	STRING_LITERAL: "STRING_LITERAL",
	STRING_COMMENT: "STRING_COMMENT",
	SUBSCR_BEGIN:   "SUBSCR_BEGIN",
	SUBSCR_END:     "SUBSCR_END",
	LINE_COMMENT:   "LINE_COMMENT",
}

// String returns the string representation of a Class.
func (c Class) String() string {
	if int(c) < len(classStrings) {
		return classStrings[c]
	}
	return "UNKNOWN"
}

// Skippable reports whether the compiler discards tokens of this class
// before parsing.
func (c Class) Skippable() bool {
	switch c {
	case BLANK, NEWLINE, LINE_COMMENT, STRING_COMMENT:
		return true
	}
	return false
}
