package third

import (
	"fmt"
	"io"
	"strings"
)

// registerIOBuiltins installs the output words, grounded on
// original_source/src/builtins.h's cr/emit/space/spaces/page/dump/period.
func registerIOBuiltins(dict *Dictionary) {
	dict.DefineBuiltin("cr", builtinCR)
	dict.DefineBuiltin("emit", builtinEmit)
	dict.DefineBuiltin("space", builtinSpace)
	dict.DefineBuiltin("spaces", builtinSpaces)
	dict.DefineBuiltin("page", builtinPage)
	dict.DefineBuiltin("dump", builtinDump)
	dict.DefineBuiltin(".", builtinPeriod)
}

func builtinCR(in *Interpreter, _ *int, _ []string, _ int) error {
	in.Print("\n")
	return nil
}

func builtinEmit(in *Interpreter, _ *int, _ []string, _ int) error {
	val, err := in.pop1()
	if err != nil {
		return err
	}
	in.Print(string(rune(val.Int)))
	return nil
}

func builtinSpace(in *Interpreter, _ *int, _ []string, _ int) error {
	in.Print(" ")
	return nil
}

func builtinSpaces(in *Interpreter, _ *int, _ []string, _ int) error {
	val, err := in.pop1()
	if err != nil {
		return err
	}
	if val.Int > 0 {
		in.Print(strings.Repeat(" ", int(val.Int)))
	}
	return nil
}

func builtinPage(in *Interpreter, _ *int, _ []string, _ int) error {
	in.Print("\033[2J\033[H")
	return nil
}

// builtinDump prints the data stack top-to-bottom, one value per line,
// tagged with its type -- a debugging aid, not part of the numeric
// evaluation path. It writes to dumpOut when WithDumpOutput configured one
// (the host CLI routes this through a *logio.Writer into its logger rather
// than mixing it into the program's own stdout), falling back to the
// primary output sink otherwise.
func builtinDump(in *Interpreter, _ *int, _ []string, _ int) error {
	var w io.Writer = in.out
	if in.dumpOut != nil {
		w = in.dumpOut
	}
	fmt.Fprint(w, "Stack dump:\n")
	values := in.Data.Values()
	for i := len(values) - 1; i >= 0; i-- {
		val := values[i]
		fmt.Fprintf(w, "%s (%s)\n", val.String(), strings.ToUpper(val.Tag.String()))
	}
	return nil
}

func builtinPeriod(in *Interpreter, _ *int, _ []string, _ int) error {
	val, err := in.pop1()
	if err != nil {
		return err
	}
	in.Print(val.String() + " ")
	return nil
}
