package runtime

import "github.com/loxlang/golox/internal/ast"

// Callable is any Value that can appear as the callee of a call
// expression: a user-defined Function, a Class (constructing an
// Instance), or a NativeFunction.
type Callable interface {
	Value
	Arity() int
	Call(interp Interpreter, args []Value) (Value, error)
}

// Interpreter is the capability Function and Class need from the
// tree-walk interpreter to invoke a function body. Defining it here,
// rather than importing internal/interp directly, keeps this package
// free of the import cycle that would otherwise result (interp
// depends on runtime for Value).
type Interpreter interface {
	CallFunction(fn *Function, args []Value) (Value, error)
}

// Function is a user-defined function or method: its declaration plus
// the environment active at the point it was declared (its closure).
type Function struct {
	Declaration   *ast.Function
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) Type() string { return "function" }

func (f *Function) String() string {
	return "<fn " + f.Declaration.Name.Lexeme + ">"
}

func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

func (f *Function) Call(interp Interpreter, args []Value) (Value, error) {
	return interp.CallFunction(f, args)
}

// Bind returns a new Function whose closure extends f's closure with
// `this` bound to instance. Called once per method lookup, so that
// `this` always refers to the instance the method was looked up on.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{
		Declaration:   f.Declaration,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}

// NativeFunction wraps a Go function as a callable Lox value (e.g.
// the global `clock`). Native functions never see the interpreter.
type NativeFunction struct {
	Name    string
	NArity  int
	Fn      func(args []Value) (Value, error)
}

func (n *NativeFunction) Type() string   { return "native function" }
func (n *NativeFunction) String() string { return "<native fn " + n.Name + ">" }
func (n *NativeFunction) Arity() int     { return n.NArity }

func (n *NativeFunction) Call(_ Interpreter, args []Value) (Value, error) {
	return n.Fn(args)
}
