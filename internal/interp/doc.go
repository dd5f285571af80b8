// Package interp implements the tree-walk interpreter: the final stage
// that executes a resolved Lox program by walking its statement and
// expression trees directly, with no intermediate bytecode.
//
// The interpreter maintains:
//   - A chain of runtime.Environment scopes rooted at the globals
//   - A call stack implicit in Go's own stack, unwound via panic/recover
//     for both `return` and fatal runtime errors
//   - The side-table produced by internal/resolver, consulted for every
//     variable reference instead of re-walking the scope chain
//
// Example usage:
//
//	locals, resErrs := resolver.Resolve(program)
//	it := interp.New(os.Stdout)
//	it.Locals = locals
//	runtimeErr := it.Interpret(program)
package interp
