package runtime

import "github.com/loxlang/golox/internal/lexer"

// RuntimeError is a fatal evaluation failure: a type mismatch, an
// undefined variable, a non-callable callee, and so on. It carries the
// token being evaluated when the failure occurred so the diagnostic
// can report a line.
//
// RuntimeError is distinct from the control-flow panic used to
// implement `return` (see internal/interp.controlReturn): a
// RuntimeError always unwinds all the way to the top of Interpret,
// while a return unwinds only to the nearest enclosing call frame.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func NewRuntimeError(token lexer.Token, message string) *RuntimeError {
	return &RuntimeError{Token: token, Message: message}
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Line returns the source line to report alongside Message, per the
// two-line runtime diagnostic format ("MSG\n[line L]").
func (e *RuntimeError) Line() int {
	return e.Token.Line
}
