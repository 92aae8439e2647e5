package third

import "strconv"

// Eval tokenises and evaluates source, the public entry point used by both
// the host program (the CLI's REPL and file loader) and the embedded API.
// It recovers the halt signal raised by bye and a nonzero throw and turns it
// into a *HaltError; every other error is already reported to the error
// sink by the time it is returned here.
func (in *Interpreter) Eval(source string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if h, ok := r.(haltSignal); ok {
				err = &HaltError{Code: h.code}
				return
			}
			panic(r)
		}
	}()
	return in.eval(source)
}

// eval is the recursive core: tokenise, then walk tokens left to right,
// dispatching numbers straight to the data stack and everything else
// through the dictionary. A user word's body re-enters eval recursively,
// and -- unlike the reference implementation, which never checks that
// recursive call's return value -- an error inside a word's body propagates
// out through every enclosing eval call, aborting the whole evaluation
// rather than just the word. See SPEC_FULL.md §8.
func (in *Interpreter) eval(source string) error {
	tokens, total := Tokenize(source)
	if total > len(tokens) {
		in.reportError(ErrTokenLimitExceeded{Found: total})
	}

	length := len(tokens)
	for i := 0; i < length; i++ {
		word := tokens[i]
		in.Logf(".", "step %d/%d %q depth=%d", i, length, word, in.Data.Len())

		if n, ok := parseInt(word); ok {
			if err := in.Data.Push(Int64(n)); err != nil {
				in.reportError(err)
				return err
			}
			continue
		}
		if f, ok := parseFloat(word); ok {
			if err := in.Data.Push(Float64(f)); err != nil {
				in.reportError(err)
				return err
			}
			continue
		}

		b, found := in.Dict.lookup(word)
		if !found {
			err := ErrUndefinedWord{Word: word}
			in.reportError(err)
			return err
		}

		switch b.kind {
		case BindBuiltin:
			if err := b.builtin(in, &i, tokens, length); err != nil {
				in.reportError(err)
				return err
			}
		case BindUserWord:
			if err := in.eval(b.defStr); err != nil {
				return err
			}
		case BindForeign:
			if err := b.foreign(in); err != nil {
				in.reportError(err)
				return err
			}
		case BindVariable:
			if err := in.Data.Push(b.variable); err != nil {
				in.reportError(err)
				return err
			}
		}
	}
	return nil
}

// parseInt reports whether word is entirely a base-10 signed integer.
func parseInt(word string) (int64, bool) {
	n, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseFloat reports whether word is entirely a floating-point literal.
// Tried only after parseInt fails, so plain integers are never pushed as
// floats.
func parseFloat(word string) (float64, bool) {
	f, err := strconv.ParseFloat(word, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
