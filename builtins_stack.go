package third

// registerStackBuiltins installs the stack-manipulation words, grounded on
// original_source/src/builtins.h's dup/drop/swap/over/rot/pick/roll/?dup/depth.
func registerStackBuiltins(dict *Dictionary) {
	dict.DefineBuiltin("dup", builtinDup)
	dict.DefineBuiltin("drop", builtinDrop)
	dict.DefineBuiltin("swap", builtinSwap)
	dict.DefineBuiltin("over", builtinOver)
	dict.DefineBuiltin("rot", builtinRot)
	dict.DefineBuiltin("pick", builtinPick)
	dict.DefineBuiltin("roll", builtinRoll)
	dict.DefineBuiltin("?dup", builtinQDup)
	dict.DefineBuiltin("depth", builtinDepth)
}

func builtinDup(in *Interpreter, _ *int, _ []string, _ int) error {
	val, err := in.Data.Peek(1)
	if err != nil {
		return err
	}
	return in.Data.Push(val)
}

func builtinDrop(in *Interpreter, _ *int, _ []string, _ int) error {
	_, err := in.Data.Pop()
	return err
}

func builtinSwap(in *Interpreter, _ *int, _ []string, _ int) error {
	a, b, err := in.pop2()
	if err != nil {
		return err
	}
	if err := in.Data.Push(b); err != nil {
		return err
	}
	return in.Data.Push(a)
}

func builtinOver(in *Interpreter, _ *int, _ []string, _ int) error {
	second, err := in.Data.Peek(2)
	if err != nil {
		return err
	}
	return in.Data.Push(second)
}

func builtinRot(in *Interpreter, _ *int, _ []string, _ int) error {
	n3, err := in.Data.Pop()
	if err != nil {
		return err
	}
	n2, err := in.Data.Pop()
	if err != nil {
		return err
	}
	n1, err := in.Data.Pop()
	if err != nil {
		return err
	}
	if err := in.Data.Push(n2); err != nil {
		return err
	}
	if err := in.Data.Push(n3); err != nil {
		return err
	}
	return in.Data.Push(n1)
}

func builtinPick(in *Interpreter, _ *int, _ []string, _ int) error {
	idx, err := in.Data.Pop()
	if err != nil {
		return err
	}
	nth, err := in.Data.Peek(int(idx.Int))
	if err != nil {
		return err
	}
	return in.Data.Push(nth)
}

func builtinRoll(in *Interpreter, _ *int, _ []string, _ int) error {
	n, err := in.Data.Pop()
	if err != nil {
		return err
	}
	val, err := in.Data.Remove(int(n.Int) + 1)
	if err != nil {
		return err
	}
	return in.Data.InsertTop(val)
}

func builtinQDup(in *Interpreter, _ *int, _ []string, _ int) error {
	val, err := in.Data.Peek(1)
	if err != nil {
		return err
	}
	if val.Truthy() {
		return in.Data.Push(val)
	}
	return nil
}

func builtinDepth(in *Interpreter, _ *int, _ []string, _ int) error {
	return in.Data.Push(Int64(int64(in.Data.Len())))
}
