package third

// registerArithBuiltins installs the integer arithmetic and bitwise words,
// grounded on original_source/src/builtins.h's add/sub/.../rshift.
func registerArithBuiltins(dict *Dictionary) {
	dict.DefineBuiltin("+", builtinAdd)
	dict.DefineBuiltin("-", intBinary(func(a, b int64) int64 { return a - b }))
	dict.DefineBuiltin("1+", intUnary(func(a int64) int64 { return a + 1 }))
	dict.DefineBuiltin("1-", intUnary(func(a int64) int64 { return a - 1 }))
	dict.DefineBuiltin("2+", intUnary(func(a int64) int64 { return a + 2 }))
	dict.DefineBuiltin("2-", intUnary(func(a int64) int64 { return a - 2 }))
	dict.DefineBuiltin("*", intBinary(func(a, b int64) int64 { return a * b }))
	dict.DefineBuiltin("/", builtinDivGuarded(func(a, b int64) int64 { return a / b }))
	dict.DefineBuiltin("mod", builtinDivGuarded(func(a, b int64) int64 { return a % b }))
	dict.DefineBuiltin("/mod", builtinDivMod)
	dict.DefineBuiltin("max", intBinary(func(a, b int64) int64 {
		if a > b {
			return a
		}
		return b
	}))
	dict.DefineBuiltin("min", intBinary(func(a, b int64) int64 {
		if a < b {
			return a
		}
		return b
	}))
	dict.DefineBuiltin("abs", intUnary(func(a int64) int64 {
		if a < 0 {
			return -a
		}
		return a
	}))
	dict.DefineBuiltin("negate", intUnary(func(a int64) int64 { return -a }))
	dict.DefineBuiltin("and", intBinary(func(a, b int64) int64 { return a & b }))
	dict.DefineBuiltin("or", intBinary(func(a, b int64) int64 { return a | b }))
	dict.DefineBuiltin("xor", intBinary(func(a, b int64) int64 { return a ^ b }))
	dict.DefineBuiltin("lshift", intBinary(func(a, b int64) int64 { return a << uint64(b) }))
	dict.DefineBuiltin("rshift", intBinary(func(a, b int64) int64 { return a >> uint64(b) }))
}

func intBinary(op func(a, b int64) int64) Builtin {
	return func(in *Interpreter, _ *int, _ []string, _ int) error {
		a, b, err := in.pop2()
		if err != nil {
			return err
		}
		return in.Data.Push(Int64(op(a.Int, b.Int)))
	}
}

func intUnary(op func(a int64) int64) Builtin {
	return func(in *Interpreter, _ *int, _ []string, _ int) error {
		val, err := in.pop1()
		if err != nil {
			return err
		}
		return in.Data.Push(Int64(op(val.Int)))
	}
}

func builtinDivGuarded(op func(a, b int64) int64) Builtin {
	return func(in *Interpreter, _ *int, _ []string, _ int) error {
		a, b, err := in.pop2()
		if err != nil {
			return err
		}
		if b.Int == 0 {
			return ErrTypeMismatch{Word: "/ or mod", Tags: []Tag{a.Tag, b.Tag}}
		}
		return in.Data.Push(Int64(op(a.Int, b.Int)))
	}
}

func builtinDivMod(in *Interpreter, _ *int, _ []string, _ int) error {
	a, b, err := in.pop2()
	if err != nil {
		return err
	}
	if b.Int == 0 {
		return ErrTypeMismatch{Word: "/mod", Tags: []Tag{a.Tag, b.Tag}}
	}
	if err := in.Data.Push(Int64(a.Int % b.Int)); err != nil {
		return err
	}
	return in.Data.Push(Int64(a.Int / b.Int))
}

// builtinAdd implements the polymorphic + decided in SPEC_FULL.md §10: two
// integers add normally; a reference plus an integer (in either order)
// advances the reference by that many cells; anything else is a type
// mismatch that aborts the current evaluation, unlike the original C
// implementation which silently leaves the stack untouched for any
// combination other than two ints or two refs.
func builtinAdd(in *Interpreter, _ *int, _ []string, _ int) error {
	a, b, err := in.pop2()
	if err != nil {
		return err
	}
	switch {
	case a.Tag == TagInt && b.Tag == TagInt:
		return in.Data.Push(Int64(a.Int + b.Int))
	case a.Tag == TagRef && b.Tag == TagInt:
		return in.Data.Push(Ref(uint64(int64(a.Ref) + b.Int)))
	case a.Tag == TagInt && b.Tag == TagRef:
		return in.Data.Push(Ref(uint64(a.Int + int64(b.Ref))))
	default:
		return ErrTypeMismatch{Word: "+", Tags: []Tag{a.Tag, b.Tag}}
	}
}
