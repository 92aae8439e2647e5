package third

import "math"

// registerFloatBuiltins installs the floating-point words, grounded on
// original_source/src/builtins.h's d_to_f/f_to_d/fadd/.../fgteqz.
func registerFloatBuiltins(dict *Dictionary) {
	dict.DefineBuiltin("d>f", builtinDToF)
	dict.DefineBuiltin("f>d", builtinFToD)

	dict.DefineBuiltin("f+", floatBinary(func(a, b float64) float64 { return a + b }))
	dict.DefineBuiltin("f-", floatBinary(func(a, b float64) float64 { return a - b }))
	dict.DefineBuiltin("f*", floatBinary(func(a, b float64) float64 { return a * b }))
	dict.DefineBuiltin("f/", floatBinary(func(a, b float64) float64 { return a / b }))
	dict.DefineBuiltin("fnegate", floatUnary(func(a float64) float64 { return -a }))
	dict.DefineBuiltin("fabs", floatUnary(math.Abs))
	dict.DefineBuiltin("fmax", floatBinary(math.Max))
	dict.DefineBuiltin("fmin", floatBinary(math.Min))
	dict.DefineBuiltin("floor", floatUnary(math.Floor))
	dict.DefineBuiltin("fround", floatUnary(math.Round))
	dict.DefineBuiltin("f**", func(in *Interpreter, _ *int, _ []string, _ int) error {
		base, exp, err := in.popFloat2()
		if err != nil {
			return err
		}
		return in.Data.Push(Float64(math.Pow(base, exp)))
	})
	dict.DefineBuiltin("1/f", floatUnary(func(a float64) float64 { return 1.0 / a }))
	dict.DefineBuiltin("f2/", floatUnary(func(a float64) float64 { return a / 2.0 }))
	dict.DefineBuiltin("fsin", floatUnary(math.Sin))
	dict.DefineBuiltin("fcos", floatUnary(math.Cos))
	dict.DefineBuiltin("fsincos", builtinFSinCos)
	dict.DefineBuiltin("ftan", floatUnary(math.Tan))
	dict.DefineBuiltin("fasin", floatUnary(math.Asin))
	dict.DefineBuiltin("facos", floatUnary(math.Acos))
	dict.DefineBuiltin("fatan", floatUnary(math.Atan))
	dict.DefineBuiltin("fatan2", func(in *Interpreter, _ *int, _ []string, _ int) error {
		x, y, err := in.popFloat2()
		if err != nil {
			return err
		}
		return in.Data.Push(Float64(math.Atan2(y, x)))
	})
	dict.DefineBuiltin("pi", func(in *Interpreter, _ *int, _ []string, _ int) error {
		return in.Data.Push(Float64(math.Pi))
	})

	dict.DefineBuiltin("f~rel", builtinFApproxRel)
	dict.DefineBuiltin("f~abs", builtinFApproxAbs)
	dict.DefineBuiltin("f~", builtinFApprox)

	dict.DefineBuiltin("f=", floatCompare(func(a, b float64) bool { return a == b }))
	dict.DefineBuiltin("f<>", floatCompare(func(a, b float64) bool { return a != b }))
	dict.DefineBuiltin("f<", floatCompare(func(a, b float64) bool { return a < b }))
	dict.DefineBuiltin("f<=", floatCompare(func(a, b float64) bool { return a <= b }))
	dict.DefineBuiltin("f>", floatCompare(func(a, b float64) bool { return a > b }))
	dict.DefineBuiltin("f>=", floatCompare(func(a, b float64) bool { return a >= b }))

	dict.DefineBuiltin("f0<", floatCompareZero(func(a float64) bool { return a < 0 }))
	dict.DefineBuiltin("f0<=", floatCompareZero(func(a float64) bool { return a <= 0 }))
	dict.DefineBuiltin("f0<>", floatCompareZero(func(a float64) bool { return a != 0 }))
	dict.DefineBuiltin("f0=", floatCompareZero(func(a float64) bool { return a == 0 }))
	dict.DefineBuiltin("f0>", floatCompareZero(func(a float64) bool { return a > 0 }))
	dict.DefineBuiltin("f0>=", floatCompareZero(func(a float64) bool { return a >= 0 }))
}

// popFloat2 pops two float operands in push order: a was pushed before b.
func (in *Interpreter) popFloat2() (a, b float64, err error) {
	va, vb, err := in.pop2()
	if err != nil {
		return 0, 0, err
	}
	return va.Float, vb.Float, nil
}

func floatBinary(op func(a, b float64) float64) Builtin {
	return func(in *Interpreter, _ *int, _ []string, _ int) error {
		a, b, err := in.popFloat2()
		if err != nil {
			return err
		}
		return in.Data.Push(Float64(op(a, b)))
	}
}

func floatUnary(op func(a float64) float64) Builtin {
	return func(in *Interpreter, _ *int, _ []string, _ int) error {
		val, err := in.pop1()
		if err != nil {
			return err
		}
		return in.Data.Push(Float64(op(val.Float)))
	}
}

func floatCompare(pred func(a, b float64) bool) Builtin {
	return func(in *Interpreter, _ *int, _ []string, _ int) error {
		a, b, err := in.popFloat2()
		if err != nil {
			return err
		}
		return in.Data.Push(Bool(pred(a, b)))
	}
}

func floatCompareZero(pred func(a float64) bool) Builtin {
	return func(in *Interpreter, _ *int, _ []string, _ int) error {
		val, err := in.pop1()
		if err != nil {
			return err
		}
		return in.Data.Push(Bool(pred(val.Float)))
	}
}

func builtinDToF(in *Interpreter, _ *int, _ []string, _ int) error {
	val, err := in.pop1()
	if err != nil {
		return err
	}
	return in.Data.Push(Float64(float64(val.Int)))
}

// builtinFToD converts a float to an integer by truncation. The original
// implementation reads the popped value's int64 field here instead of its
// float64 field, which is simply wrong whenever the value on the stack
// really is a float (the common case, since this word exists to convert
// one); see SPEC_FULL.md §4.4's f>d fix.
func builtinFToD(in *Interpreter, _ *int, _ []string, _ int) error {
	val, err := in.pop1()
	if err != nil {
		return err
	}
	return in.Data.Push(Int64(int64(val.Float)))
}

func builtinFSinCos(in *Interpreter, _ *int, _ []string, _ int) error {
	val, err := in.pop1()
	if err != nil {
		return err
	}
	s, c := math.Sincos(val.Float)
	if err := in.Data.Push(Float64(c)); err != nil {
		return err
	}
	return in.Data.Push(Float64(s))
}

func builtinFApproxRel(in *Interpreter, _ *int, _ []string, _ int) error {
	rel, err := in.pop1()
	if err != nil {
		return err
	}
	b, err := in.pop1()
	if err != nil {
		return err
	}
	a, err := in.pop1()
	if err != nil {
		return err
	}
	diff := math.Abs(a.Float - b.Float)
	ok := diff <= rel.Float*math.Max(math.Abs(a.Float), math.Abs(b.Float))
	return in.Data.Push(Bool(ok))
}

func builtinFApproxAbs(in *Interpreter, _ *int, _ []string, _ int) error {
	absTol, err := in.pop1()
	if err != nil {
		return err
	}
	b, err := in.pop1()
	if err != nil {
		return err
	}
	a, err := in.pop1()
	if err != nil {
		return err
	}
	ok := math.Abs(a.Float-b.Float) <= absTol.Float
	return in.Data.Push(Bool(ok))
}

func builtinFApprox(in *Interpreter, _ *int, _ []string, _ int) error {
	absTol, err := in.pop1()
	if err != nil {
		return err
	}
	relTol, err := in.pop1()
	if err != nil {
		return err
	}
	b, err := in.pop1()
	if err != nil {
		return err
	}
	a, err := in.pop1()
	if err != nil {
		return err
	}
	diff := math.Abs(a.Float - b.Float)
	maxAB := math.Max(math.Abs(a.Float), math.Abs(b.Float))
	ok := diff <= absTol.Float || diff <= relTol.Float*maxAB
	return in.Data.Push(Bool(ok))
}
