package third

// registerProcessBuiltins installs bye and throw, grounded on
// original_source/src/builtins.h. Both raise the halt signal rather than
// calling exit() directly, so the host program decides whether and how to
// actually terminate (see SPEC_FULL.md §7 and errors.go's HaltError).
func registerProcessBuiltins(dict *Dictionary) {
	dict.DefineBuiltin("bye", builtinBye)
	dict.DefineBuiltin("throw", builtinThrow)
}

func builtinBye(in *Interpreter, _ *int, _ []string, _ int) error {
	in.halt(0)
	return nil
}

func builtinThrow(in *Interpreter, _ *int, _ []string, _ int) error {
	code, err := in.pop1()
	if err != nil {
		return err
	}
	if code.Int != 0 {
		in.halt(int(code.Int))
	}
	return nil
}
