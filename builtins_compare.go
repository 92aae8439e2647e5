package third

// registerCompareBuiltins installs the integer comparison and boolean
// words, grounded on original_source/src/builtins.h's lt/eq/gt/.../not.
// Results follow Forth boolean convention: -1 for true, 0 for false.
func registerCompareBuiltins(dict *Dictionary) {
	dict.DefineBuiltin("<", cmpBinary(func(a, b int64) bool { return a < b }))
	dict.DefineBuiltin("=", cmpBinary(func(a, b int64) bool { return a == b }))
	dict.DefineBuiltin(">", cmpBinary(func(a, b int64) bool { return a > b }))
	dict.DefineBuiltin(">=", cmpBinary(func(a, b int64) bool { return a >= b }))
	dict.DefineBuiltin("<=", cmpBinary(func(a, b int64) bool { return a <= b }))
	dict.DefineBuiltin("0<", cmpUnary(func(a int64) bool { return a < 0 }))
	dict.DefineBuiltin("0=", cmpUnary(func(a int64) bool { return a == 0 }))
	dict.DefineBuiltin("0>", cmpUnary(func(a int64) bool { return a > 0 }))
	dict.DefineBuiltin("not", cmpUnary(func(a int64) bool { return a == 0 }))
}

func cmpBinary(pred func(a, b int64) bool) Builtin {
	return func(in *Interpreter, _ *int, _ []string, _ int) error {
		a, b, err := in.pop2()
		if err != nil {
			return err
		}
		return in.Data.Push(Bool(pred(a.Int, b.Int)))
	}
}

func cmpUnary(pred func(a int64) bool) Builtin {
	return func(in *Interpreter, _ *int, _ []string, _ int) error {
		val, err := in.pop1()
		if err != nil {
			return err
		}
		return in.Data.Push(Bool(pred(val.Int)))
	}
}
