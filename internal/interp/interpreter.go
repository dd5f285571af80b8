package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/interp/runtime"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/resolver"
	"github.com/sirupsen/logrus"
)

// controlReturn is the panic payload used to unwind a `return`
// statement to its matching call frame. It is never allowed to
// escape CallFunction: doing so would indicate a `return` outside any
// function, which the resolver already rejects before the interpreter
// ever runs.
type controlReturn struct {
	value runtime.Value
}

// Interpreter walks a resolved program and executes it statement by
// statement against a chain of runtime.Environment scopes.
type Interpreter struct {
	Globals *runtime.Environment
	Locals  resolver.Locals

	environment *runtime.Environment
	out         io.Writer
}

// New creates an Interpreter that writes `print` output to out and
// installs the native globals (currently just clock).
func New(out io.Writer) *Interpreter {
	globals := runtime.NewEnvironment()
	it := &Interpreter{
		Globals:     globals,
		environment: globals,
		Locals:      make(resolver.Locals),
		out:         out,
	}
	globals.Define("clock", &runtime.NativeFunction{
		Name:   "clock",
		NArity: 0,
		Fn: func(_ []runtime.Value) (runtime.Value, error) {
			return runtime.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
	return it
}

// Interpret executes a program's statements in order. It stops and
// returns the first runtime error encountered; statements before the
// failure have already produced their side effects. A nil result
// means every statement completed normally.
func (it *Interpreter) Interpret(stmts []ast.Stmt) (err *runtime.RuntimeError) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*runtime.RuntimeError); ok {
				err = re
				return
			}
			panic(r)
		}
	}()
	for _, stmt := range stmts {
		it.execute(stmt)
	}
	return nil
}

func (it *Interpreter) raise(token lexer.Token, message string) {
	panic(runtime.NewRuntimeError(token, message))
}

// CallFunction implements runtime.Interpreter: it runs fn's body in a
// fresh environment binding its parameters, and recovers the
// controlReturn panic a `return` statement raises. An initializer
// always yields its bound `this`, regardless of whether it returns a
// value explicitly.
func (it *Interpreter) CallFunction(fn *runtime.Function, args []runtime.Value) (result runtime.Value, err error) {
	env := runtime.NewEnclosedEnvironment(fn.Closure)
	for i, param := range fn.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			ret, ok := r.(controlReturn)
			if !ok {
				panic(r)
			}
			if fn.IsInitializer {
				result = fn.Closure.GetAt(0, "this")
				return
			}
			result = ret.value
		}
	}()

	it.executeBlock(fn.Declaration.Body, env)

	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this"), nil
	}
	return runtime.NilValue, nil
}

// executeBlock runs stmts against env, restoring the interpreter's
// previous environment on every exit path: normal completion, a
// controlReturn panic, or a RuntimeError panic.
func (it *Interpreter) executeBlock(stmts []ast.Stmt, env *runtime.Environment) {
	previous := it.environment
	it.environment = env
	defer func() { it.environment = previous }()

	for _, stmt := range stmts {
		it.execute(stmt)
	}
}

func (it *Interpreter) execute(stmt ast.Stmt) {
	logrus.Debugf("exec %T %q", stmt, stmt.TokenLiteral())

	switch s := stmt.(type) {
	case *ast.Expression:
		it.evaluate(s.Expr)
	case *ast.Print:
		value := it.evaluate(s.Expr)
		fmt.Fprintln(it.out, value.String())
	case *ast.Var:
		var value runtime.Value = runtime.NilValue
		if s.Initializer != nil {
			value = it.evaluate(s.Initializer)
		}
		it.environment.Define(s.Name.Lexeme, value)
	case *ast.Block:
		it.executeBlock(s.Statements, runtime.NewEnclosedEnvironment(it.environment))
	case *ast.If:
		if runtime.IsTruthy(it.evaluate(s.Condition)) {
			it.execute(s.ThenBranch)
		} else if s.ElseBranch != nil {
			it.execute(s.ElseBranch)
		}
	case *ast.While:
		for runtime.IsTruthy(it.evaluate(s.Condition)) {
			it.execute(s.Body)
		}
	case *ast.Function:
		fn := &runtime.Function{Declaration: s, Closure: it.environment, IsInitializer: false}
		it.environment.Define(s.Name.Lexeme, fn)
	case *ast.Return:
		var value runtime.Value = runtime.NilValue
		if s.Value != nil {
			value = it.evaluate(s.Value)
		}
		panic(controlReturn{value: value})
	case *ast.Class:
		it.executeClass(s)
	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

func (it *Interpreter) executeClass(s *ast.Class) {
	var superclass *runtime.Class
	if s.Superclass != nil {
		value := it.evaluate(s.Superclass)
		sc, ok := value.(*runtime.Class)
		if !ok {
			it.raise(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	it.environment.Define(s.Name.Lexeme, runtime.NilValue)

	if s.Superclass != nil {
		it.environment = runtime.NewEnclosedEnvironment(it.environment)
		it.environment.Define("super", superclass)
	}

	methods := make(map[string]*runtime.Function, len(s.Methods))
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = &runtime.Function{
			Declaration:   method,
			Closure:       it.environment,
			IsInitializer: method.Name.Lexeme == "init",
		}
	}

	class := &runtime.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}

	if s.Superclass != nil {
		it.environment = it.environment.Enclosing
	}

	it.environment.Assign(s.Name.Lexeme, class)
}

func (it *Interpreter) evaluate(expr ast.Expr) runtime.Value {
	logrus.Debugf("eval %T %q", expr, expr.TokenLiteral())

	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value)
	case *ast.Grouping:
		return it.evaluate(e.Expression)
	case *ast.Unary:
		return it.evalUnary(e)
	case *ast.Binary:
		return it.evalBinary(e)
	case *ast.Logical:
		return it.evalLogical(e)
	case *ast.Variable:
		return it.lookupVariable(e.Name, e)
	case *ast.Assign:
		value := it.evaluate(e.Value)
		if distance, ok := it.Locals[e]; ok {
			it.environment.AssignAt(distance, e.Name.Lexeme, value)
		} else if !it.Globals.Assign(e.Name.Lexeme, value) {
			it.raise(e.Name, "Undefined variable '"+e.Name.Lexeme+"'.")
		}
		return value
	case *ast.Call:
		return it.evalCall(e)
	case *ast.Get:
		return it.evalGet(e)
	case *ast.Set:
		return it.evalSet(e)
	case *ast.This:
		return it.lookupVariable(e.Keyword, e)
	case *ast.Super:
		return it.evalSuper(e)
	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

func literalValue(v any) runtime.Value {
	switch v := v.(type) {
	case nil:
		return runtime.NilValue
	case float64:
		return runtime.Number(v)
	case string:
		return runtime.String(v)
	case bool:
		return runtime.Bool(v)
	default:
		panic(fmt.Sprintf("interp: unhandled literal payload %T", v))
	}
}

func (it *Interpreter) lookupVariable(name lexer.Token, expr ast.Expr) runtime.Value {
	if distance, ok := it.Locals[expr]; ok {
		return it.environment.GetAt(distance, name.Lexeme)
	}
	value, ok := it.Globals.Get(name.Lexeme)
	if !ok {
		it.raise(name, "Undefined variable '"+name.Lexeme+"'.")
	}
	return value
}

func (it *Interpreter) evalUnary(e *ast.Unary) runtime.Value {
	right := it.evaluate(e.Right)
	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(runtime.Number)
		if !ok {
			it.raise(e.Operator, "Operand must be a number.")
		}
		return -n
	case lexer.BANG:
		return runtime.Bool(!runtime.IsTruthy(right))
	default:
		panic("interp: unhandled unary operator " + e.Operator.Lexeme)
	}
}

// evalBinary evaluates the right operand before the left, per the
// reference evaluation order.
func (it *Interpreter) evalBinary(e *ast.Binary) runtime.Value {
	right := it.evaluate(e.Right)
	left := it.evaluate(e.Left)

	switch e.Operator.Type {
	case lexer.MINUS:
		l, r := it.numberOperands(e.Operator, left, right)
		return l - r
	case lexer.SLASH:
		l, r := it.numberOperands(e.Operator, left, right)
		return l / r
	case lexer.STAR:
		l, r := it.numberOperands(e.Operator, left, right)
		return l * r
	case lexer.PLUS:
		if ln, lok := left.(runtime.Number); lok {
			if rn, rok := right.(runtime.Number); rok {
				return ln + rn
			}
		}
		if ls, lok := left.(runtime.String); lok {
			if rs, rok := right.(runtime.String); rok {
				return ls + rs
			}
		}
		it.raise(e.Operator, "Operands must be two numbers or two strings.")
		return runtime.NilValue
	case lexer.GREATER:
		l, r := it.numberOperands(e.Operator, left, right)
		return runtime.Bool(l > r)
	case lexer.GREATER_EQUAL:
		l, r := it.numberOperands(e.Operator, left, right)
		return runtime.Bool(l >= r)
	case lexer.LESS:
		l, r := it.numberOperands(e.Operator, left, right)
		return runtime.Bool(l < r)
	case lexer.LESS_EQUAL:
		l, r := it.numberOperands(e.Operator, left, right)
		return runtime.Bool(l <= r)
	case lexer.BANG_EQUAL:
		return runtime.Bool(!runtime.Equal(left, right))
	case lexer.EQUAL_EQUAL:
		return runtime.Bool(runtime.Equal(left, right))
	default:
		panic("interp: unhandled binary operator " + e.Operator.Lexeme)
	}
}

func (it *Interpreter) numberOperands(op lexer.Token, left, right runtime.Value) (runtime.Number, runtime.Number) {
	l, lok := left.(runtime.Number)
	r, rok := right.(runtime.Number)
	if !lok || !rok {
		it.raise(op, "Operands must be numbers.")
	}
	return l, r
}

func (it *Interpreter) evalLogical(e *ast.Logical) runtime.Value {
	left := it.evaluate(e.Left)
	if e.Operator.Type == lexer.OR {
		if runtime.IsTruthy(left) {
			return left
		}
	} else {
		if !runtime.IsTruthy(left) {
			return left
		}
	}
	return it.evaluate(e.Right)
}

func (it *Interpreter) evalCall(e *ast.Call) runtime.Value {
	callee := it.evaluate(e.Callee)

	args := make([]runtime.Value, len(e.Args))
	for i, argExpr := range e.Args {
		args[i] = it.evaluate(argExpr)
	}

	callable, ok := callee.(runtime.Callable)
	if !ok {
		it.raise(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		it.raise(e.Paren, fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}
	value, err := callable.Call(it, args)
	if err != nil {
		if re, ok := err.(*runtime.RuntimeError); ok {
			panic(re)
		}
		it.raise(e.Paren, err.Error())
	}
	return value
}

func (it *Interpreter) evalGet(e *ast.Get) runtime.Value {
	object := it.evaluate(e.Object)
	instance, ok := object.(*runtime.Instance)
	if !ok {
		it.raise(e.Name, "Only instances have properties.")
	}
	value, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		it.raise(e.Name, "Undefined property '"+e.Name.Lexeme+"'.")
	}
	return value
}

func (it *Interpreter) evalSet(e *ast.Set) runtime.Value {
	object := it.evaluate(e.Object)
	instance, ok := object.(*runtime.Instance)
	if !ok {
		it.raise(e.Name, "Only instances have fields.")
	}
	value := it.evaluate(e.Value)
	instance.Set(e.Name.Lexeme, value)
	return value
}

func (it *Interpreter) evalSuper(e *ast.Super) runtime.Value {
	distance := it.Locals[e]
	superclass := it.environment.GetAt(distance, "super").(*runtime.Class)
	instance := it.environment.GetAt(distance-1, "this").(*runtime.Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		it.raise(e.Method, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.Bind(instance)
}
