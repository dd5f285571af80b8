package ast

import "github.com/loxlang/golox/internal/lexer"

// Binary is a binary operator expression: left OP right.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (b *Binary) exprNode()            {}
func (b *Binary) TokenLiteral() string { return b.Operator.Lexeme }

// Logical is a short-circuiting `and`/`or` expression.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (l *Logical) exprNode()            {}
func (l *Logical) TokenLiteral() string { return l.Operator.Lexeme }

// Unary is a prefix operator expression: OP right.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

func (u *Unary) exprNode()            {}
func (u *Unary) TokenLiteral() string { return u.Operator.Lexeme }

// Grouping is a parenthesized expression.
type Grouping struct {
	Expression Expr
}

func (g *Grouping) exprNode()            {}
func (g *Grouping) TokenLiteral() string { return "(" }

// Literal is a constant value baked in at parse time (number, string,
// bool, or nil).
type Literal struct {
	Value any
}

func (l *Literal) exprNode()            {}
func (l *Literal) TokenLiteral() string { return "literal" }

// Variable is a reference to a named binding.
type Variable struct {
	Name lexer.Token
}

func (v *Variable) exprNode()            {}
func (v *Variable) TokenLiteral() string { return v.Name.Lexeme }

// Assign is an assignment to a named binding: Name = Value.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (a *Assign) exprNode()            {}
func (a *Assign) TokenLiteral() string { return a.Name.Lexeme }

// Call is a function/method/class invocation: Callee(Args...).
// Paren is the closing ')' token, used to report call-site runtime
// errors (arity mismatch, non-callable callee) at the right line.
type Call struct {
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func (c *Call) exprNode()            {}
func (c *Call) TokenLiteral() string { return "(" }

// Get is a property read: Object.Name.
type Get struct {
	Object Expr
	Name   lexer.Token
}

func (g *Get) exprNode()            {}
func (g *Get) TokenLiteral() string { return g.Name.Lexeme }

// Set is a property write: Object.Name = Value.
type Set struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func (s *Set) exprNode()            {}
func (s *Set) TokenLiteral() string { return s.Name.Lexeme }

// This is a `this` reference inside a method body.
type This struct {
	Keyword lexer.Token
}

func (t *This) exprNode()            {}
func (t *This) TokenLiteral() string { return t.Keyword.Lexeme }

// Super is a `super.Method` reference inside a subclass method body.
type Super struct {
	Keyword lexer.Token
	Method  lexer.Token
}

func (s *Super) exprNode()            {}
func (s *Super) TokenLiteral() string { return s.Keyword.Lexeme }
