package third

import (
	"os"
	"strconv"
	"strings"
)

// registerDefineBuiltins installs the definitional words, grounded on
// original_source/src/builtins.h's colon/variable/include/ref.
func registerDefineBuiltins(dict *Dictionary) {
	dict.DefineBuiltin(":", builtinColon)
	dict.DefineBuiltin("variable", builtinVariable)
	dict.DefineBuiltin("include", builtinInclude)
	dict.DefineBuiltin("ref", builtinRef)
}

// builtinColon collects tokens up to a closing ";" into a user-word
// definition, the way the reference implementation's colon builtin
// sprintf-accumulates into a fixed buffer -- here just a string join, with
// no fixed-size limit to overflow.
func builtinColon(in *Interpreter, cursor *int, tokens []string, length int) error {
	*cursor++
	if *cursor >= length {
		return ErrUnexpectedToken{Token: ":"}
	}
	name := tokens[*cursor]

	var body []string
	for {
		*cursor++
		if *cursor >= length {
			return ErrUnexpectedToken{Token: ":"}
		}
		if tokens[*cursor] == ";" {
			break
		}
		body = append(body, tokens[*cursor])
	}
	in.Dict.DefineWord(name, strings.Join(body, " "))
	return nil
}

// builtinVariable allots one heap cell, zeroes it, and binds name to a
// reference to it.
func builtinVariable(in *Interpreter, cursor *int, tokens []string, length int) error {
	*cursor++
	if *cursor >= length {
		return ErrUnexpectedToken{Token: "variable"}
	}
	name := tokens[*cursor]

	ref, err := in.Allot(1)
	if err != nil {
		return err
	}
	if err := in.HeapStore(ref.Ref, Int64(0)); err != nil {
		return err
	}
	in.Dict.DefineVariable(name, ref)
	return nil
}

// builtinInclude reads and evaluates a file's contents in place. Only the
// open failure itself is reported and swallowed rather than aborting the
// enclosing evaluation (spec.md's "I/O failure (include): reported; that
// include is skipped") -- the reference implementation's forth_import_file
// logs that failure and simply returns, so the program text around
// `include` keeps running with that one file skipped. An error arising
// while evaluating the file's own contents is an ordinary nested-eval
// error and propagates like any other. Nesting past MaxIncludeDepth (a file
// including itself, directly or through a cycle) aborts with
// ErrIncludeTooDeep instead of recursing indefinitely.
func builtinInclude(in *Interpreter, cursor *int, tokens []string, length int) error {
	*cursor++
	if *cursor >= length {
		return ErrUnexpectedToken{Token: "include"}
	}
	filename := tokens[*cursor]

	if in.includeDepth >= MaxIncludeDepth {
		return ErrIncludeTooDeep{Depth: in.includeDepth}
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		in.reportError(err)
		return nil
	}

	in.includeDepth++
	defer func() { in.includeDepth-- }()
	return in.eval(string(data))
}

// builtinRef parses the next token as an unsigned heap address and pushes a
// reference to it, without validating the address against the heap's
// bounds -- that happens lazily, at the point of @/!/? -- so that `ref` can
// be used to build addresses one cell at a time (e.g. `variable` followed
// by `1 +`).
func builtinRef(in *Interpreter, cursor *int, tokens []string, length int) error {
	*cursor++
	if *cursor >= length {
		return ErrUnexpectedToken{Token: "ref"}
	}
	n, err := strconv.ParseUint(tokens[*cursor], 10, 64)
	if err != nil {
		return err
	}
	return in.Data.Push(Ref(n))
}
