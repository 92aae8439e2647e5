package third

// registerBuiltins installs every builtin word into dict. Called once by
// New for every fresh Interpreter.
func registerBuiltins(dict *Dictionary) {
	registerStackBuiltins(dict)
	registerCompareBuiltins(dict)
	registerArithBuiltins(dict)
	registerMemoryBuiltins(dict)
	registerControlBuiltins(dict)
	registerIOBuiltins(dict)
	registerFloatBuiltins(dict)
	registerDefineBuiltins(dict)
	registerProcessBuiltins(dict)
}

// pop1 pops a single operand, useful for builtins that act on just the top
// of the data stack.
func (in *Interpreter) pop1() (Value, error) {
	return in.Data.Pop()
}

// pop2 pops two operands in push order: a was pushed before b, so a is
// second from the top.
func (in *Interpreter) pop2() (a, b Value, err error) {
	b, err = in.Data.Pop()
	if err != nil {
		return Value{}, Value{}, err
	}
	a, err = in.Data.Pop()
	if err != nil {
		return Value{}, Value{}, err
	}
	return a, b, nil
}
