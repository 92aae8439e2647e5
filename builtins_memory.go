package third

import "fmt"

// registerMemoryBuiltins installs the heap access words, grounded on
// original_source/src/builtins.h's load/store/load_print. Unlike the
// original, which dereferences a ref's raw host pointer directly, every
// address here is validated against the Interpreter's own heap bounds (see
// SPEC_FULL.md §4.4 and errors.go's ErrBadReference).
func registerMemoryBuiltins(dict *Dictionary) {
	dict.DefineBuiltin("@", builtinLoad)
	dict.DefineBuiltin("!", builtinStore)
	dict.DefineBuiltin("?", builtinLoadPrint)
}

func builtinLoad(in *Interpreter, _ *int, _ []string, _ int) error {
	addr, err := in.pop1()
	if err != nil {
		return err
	}
	if addr.Tag != TagRef {
		return ErrTypeMismatch{Word: "@", Tags: []Tag{addr.Tag}}
	}
	val, err := in.HeapLoad(addr.Ref)
	if err != nil {
		return err
	}
	return in.Data.Push(val)
}

func builtinStore(in *Interpreter, _ *int, _ []string, _ int) error {
	addr, err := in.pop1()
	if err != nil {
		return err
	}
	if addr.Tag != TagRef {
		return ErrTypeMismatch{Word: "!", Tags: []Tag{addr.Tag}}
	}
	val, err := in.pop1()
	if err != nil {
		return err
	}
	return in.HeapStore(addr.Ref, val)
}

func builtinLoadPrint(in *Interpreter, _ *int, _ []string, _ int) error {
	addr, err := in.pop1()
	if err != nil {
		return err
	}
	if addr.Tag != TagRef {
		return ErrTypeMismatch{Word: "?", Tags: []Tag{addr.Tag}}
	}
	val, err := in.HeapLoad(addr.Ref)
	if err != nil {
		return err
	}
	in.Print(fmt.Sprintf("%s ", val.String()))
	return nil
}
