package third

import "os"

// DefineWord installs a user-word binding directly from the host program,
// grounded on original_source/src/forth.c's forth_define_word.
func (in *Interpreter) DefineWord(name, definition string) {
	in.Dict.DefineWord(name, definition)
}

// RegisterForeign binds name to a host-implemented function, grounded on
// forth_add_ffi_function.
func (in *Interpreter) RegisterForeign(name string, fn Foreign) {
	in.Dict.DefineForeign(name, fn)
}

// DefineVariable allots a heap cell initialised to val and binds name to a
// reference to it, grounded on forth_define_variable.
func (in *Interpreter) DefineVariable(name string, val Value) (Value, error) {
	ref, err := in.Allot(1)
	if err != nil {
		return Value{}, err
	}
	if err := in.HeapStore(ref.Ref, val); err != nil {
		return Value{}, err
	}
	in.Dict.DefineVariable(name, ref)
	return ref, nil
}

// Variable evaluates name and returns the reference it pushes, failing if
// name isn't bound to a reference. Grounded on forth_get_variable, but
// returns an error instead of reporting directly and returning a possibly
// invalid pointer.
func (in *Interpreter) Variable(name string) (Value, error) {
	if err := in.Eval(name); err != nil {
		return Value{}, err
	}
	val, err := in.Data.Pop()
	if err != nil {
		return Value{}, err
	}
	if val.Tag != TagRef {
		return Value{}, ErrTypeMismatch{Word: name, Tags: []Tag{val.Tag}}
	}
	return val, nil
}

// ImportFile reads and evaluates filename, grounded on forth_import_file.
func (in *Interpreter) ImportFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return in.Eval(string(data))
}
