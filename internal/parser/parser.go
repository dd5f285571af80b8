// Package parser builds an AST from a token stream via recursive
// descent, one function per precedence level. Grounded on the
// teacher's internal/parser layout, but a plain index over an
// already-scanned token slice replaces its streaming TokenCursor: our
// lexer scans the whole source up front, so there is no lexer to pull
// from lazily and nothing to buffer.
package parser

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/lexer"
)

const maxArgs = 255

// parseError is an internal sentinel panicked by the parser's error
// helper and recovered at statement boundaries so synchronize can run.
// It is distinct from ParseError, the value actually reported to
// callers.
type parseError struct{}

// Parser is a recursive-descent parser over a fully-scanned token
// slice.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []*ParseError
}

// New creates a Parser over tokens (as produced by lexer.Scan).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a whole program: declaration* EOF. It never returns a
// nil statement slice; errored declarations are simply omitted, and
// the caller must check the error slice to know whether the tree is
// complete.
func (p *Parser) Parse() ([]ast.Stmt, []*ParseError) {
	stmts := []ast.Stmt{}
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, p.errors
}

// --- token stream primitives ---

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type, or records a
// parseError and panics to unwind to the nearest recovery point.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.fail(p.peek(), message))
}

func (p *Parser) fail(token lexer.Token, message string) parseError {
	p.errors = append(p.errors, &ParseError{Token: token, Message: message})
	return parseError{}
}

// synchronize discards tokens until it reaches a likely statement
// boundary, so one syntax error doesn't cascade into spurious
// follow-on errors.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}
