// Package ast defines the Abstract Syntax Tree node types produced by
// the parser and consumed by the resolver and interpreter.
package ast

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the lexeme of the token most representative
	// of this node, used in debug output.
	TokenLiteral() string
}

// Expr is any node that produces a Value when evaluated. The parser
// allocates every expression node separately and handles it by
// pointer, so two textually identical expressions at different source
// positions are distinct values — this is what lets the resolver's side-table key on node
// identity (see internal/resolver) rather than structural equality.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action without producing a value.
type Stmt interface {
	Node
	stmtNode()
}
