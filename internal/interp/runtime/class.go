package runtime

// Class is a runtime class value. Calling it constructs a new Instance
// and, if an "init" method is defined, runs it.
type Class struct {
	Name       string
	Superclass *Class // nil for a root class
	Methods    map[string]*Function
}

func (c *Class) Type() string   { return "class" }
func (c *Class) String() string { return c.Name }

// FindMethod looks up a method by name, walking up the superclass
// chain. Returns nil if no class in the chain declares it.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(interp Interpreter, args []Value) (Value, error) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init := c.FindMethod("init"); init != nil {
		if _, err := interp.CallFunction(init.Bind(instance), args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object: a class plus its own field storage.
// Field names are case-sensitive, unlike identifiers in the teacher
// repo this package is grounded on.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (i *Instance) Type() string   { return i.Class.Name + " instance" }
func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get reads a field first, then falls back to a bound method. The
// bool result is false if neither exists, letting the caller raise a
// RuntimeError with the accessing token.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m := i.Class.FindMethod(name); m != nil {
		return m.Bind(i), true
	}
	return nil, false
}

// Set writes a field unconditionally; Lox classes have no fixed field
// list, so assignment always succeeds.
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}
