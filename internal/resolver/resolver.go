// Package resolver performs the static scope pass between parsing and
// interpretation. It walks the AST once, tracking which block scope
// each local variable belongs to, and records for every variable
// reference how many scopes out the interpreter must walk to find its
// binding. The interpreter consults this side-table instead of
// searching the environment chain at every lookup.
//
// Grounded on the pass/scope-stack shape of internal/semantic in the
// teacher repo, generalized from its multi-pass, type-checking design
// down to Lox's single untyped scope-resolution pass.
package resolver

import (
	"strconv"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/lexer"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Locals is the side-table produced by Resolve: for each Variable,
// Assign, This, or Super expression node, the number of environment
// scopes the interpreter must walk outward to find its binding.
// Absence from the map means the name resolves as a global.
type Locals map[ast.Expr]int

// ResolveError is a single static-scope error. The resolver collects
// every error it finds rather than stopping at the first; the host
// must still treat the run as failed if the error slice Resolve
// returns is non-empty.
type ResolveError struct {
	Token   lexer.Token
	Message string
}

// Error formats the diagnostic in the reference form:
// `[line L] Error at 'LEX': MSG`, or `[line L] Error at end: MSG` when
// Token is EOF — the same format ParseError.Error produces.
func (e *ResolveError) Error() string {
	where := "at '" + e.Token.Lexeme + "'"
	if e.Token.Type == lexer.EOF {
		where = "at end"
	}
	return "[line " + strconv.Itoa(e.Token.Line) + "] Error " + where + ": " + e.Message
}

// scope maps a name to whether it has finished initializing: false
// means declared but not yet defined (its initializer is still being
// resolved), true means ready for use.
type scope map[string]bool

// Resolver implements the single static-scope pass described above.
type Resolver struct {
	scopes          []scope
	locals          Locals
	currentFunction functionType
	currentClass    classType
	errors          []*ResolveError
}

// New creates a Resolver ready to resolve a top-level program.
func New() *Resolver {
	return &Resolver{locals: make(Locals)}
}

// Resolve walks stmts (a whole program, or a REPL chunk) and returns
// the accumulated side-table and any static errors found. Resolution
// continues after each error so every mistake in the program is
// reported in one pass.
func Resolve(stmts []ast.Stmt) (Locals, []*ResolveError) {
	r := New()
	r.resolveStmts(stmts)
	return r.locals, r.errors
}

func (r *Resolver) error(token lexer.Token, message string) {
	r.errors = append(r.errors, &ResolveError{Token: token, Message: message})
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) peekScope() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

func (r *Resolver) declare(name lexer.Token) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	if _, ok := sc[name.Lexeme]; ok {
		r.error(name, "Already a variable with this name in this scope.")
	}
	sc[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	sc[name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: treat as a global.
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Expression:
		r.resolveExpr(s.Expr)
	case *ast.Print:
		r.resolveExpr(s.Expr)
	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)
	case *ast.Return:
		if r.currentFunction == fnNone {
			r.error(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == fnInitializer {
				r.error(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.Class:
		r.resolveClass(s)
	}
}

func (r *Resolver) resolveClass(s *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.error(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.peekScope()["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.peekScope()["this"] = true
	defer r.endScope()

	for _, method := range s.Methods {
		ft := fnMethod
		if method.Name.Lexeme == "init" {
			ft = fnInitializer
		}
		r.resolveFunction(method, ft)
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, ft functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = ft
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	defer r.endScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if sc := r.peekScope(); sc != nil {
			if defined, ok := sc[e.Name.Lexeme]; ok && !defined {
				r.error(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.This:
		if r.currentClass == classNone {
			r.error(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.error(e.Keyword, "Can't use 'super' outside of a class.")
		case classClass:
			r.error(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Literal:
		// no subexpressions
	}
}
