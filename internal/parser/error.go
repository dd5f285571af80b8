package parser

import (
	"strconv"

	"github.com/loxlang/golox/internal/lexer"
)

// ParseError is a single syntax error: a mismatched grammar rule, an
// invalid assignment target, or an argument/parameter list overflow.
// Parsing continues after each one (via synchronize when the error
// abandons a declaration), so a single source can report several.
type ParseError struct {
	Token   lexer.Token
	Message string
}

// Error formats the diagnostic in the reference form:
// `[line L] Error at 'LEX': MSG`, or `[line L] Error at end: MSG` when
// Token is EOF.
func (e *ParseError) Error() string {
	where := "at '" + e.Token.Lexeme + "'"
	if e.Token.Type == lexer.EOF {
		where = "at end"
	}
	return "[line " + strconv.Itoa(e.Token.Line) + "] Error " + where + ": " + e.Message
}
