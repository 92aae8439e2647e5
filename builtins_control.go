package third

// registerControlBuiltins installs the loop and branch words, grounded on
// original_source/src/builtins.h's do/loop/add_loop/leave/i/j/if/else/
// then/begin/again/until. All of them drive the token cursor directly,
// which is why Builtin receives it by pointer.
func registerControlBuiltins(dict *Dictionary) {
	dict.DefineBuiltin("do", builtinDo)
	dict.DefineBuiltin("loop", builtinLoop)
	dict.DefineBuiltin("+loop", builtinAddLoop)
	dict.DefineBuiltin("leave", builtinLeave)
	dict.DefineBuiltin("i", builtinI)
	dict.DefineBuiltin("j", builtinJ)
	dict.DefineBuiltin("if", builtinIf)
	dict.DefineBuiltin("else", builtinElse)
	dict.DefineBuiltin("then", builtinThen)
	dict.DefineBuiltin("begin", builtinBegin)
	dict.DefineBuiltin("again", builtinAgain)
	dict.DefineBuiltin("until", builtinUntil)
}

// A do...loop frame occupies three control-stack cells, pushed in this
// order: limit, start index, return address -- so the return address is
// always on top (Peek(1)), the running index second (Peek(2)), and the
// limit third (Peek(3)). i and j read straight through this layout; j
// reaches into the next frame out (Peek(5)) for a nested loop's index.
func builtinDo(in *Interpreter, cursor *int, _ []string, _ int) error {
	index, err := in.pop1()
	if err != nil {
		return err
	}
	limit, err := in.pop1()
	if err != nil {
		return err
	}
	if err := in.Control.Push(limit); err != nil {
		return err
	}
	if err := in.Control.Push(index); err != nil {
		return err
	}
	return in.Control.Push(Ref(uint64(int64(*cursor))))
}

func builtinLoop(in *Interpreter, cursor *int, _ []string, _ int) error {
	start, err := in.Control.Pop()
	if err != nil {
		return err
	}
	index, err := in.Control.Pop()
	if err != nil {
		return err
	}
	limit, err := in.Control.Pop()
	if err != nil {
		return err
	}
	next := index.Int + 1
	if next < limit.Int {
		if err := in.Control.Push(limit); err != nil {
			return err
		}
		if err := in.Control.Push(Int64(next)); err != nil {
			return err
		}
		if err := in.Control.Push(start); err != nil {
			return err
		}
		*cursor = int(int64(start.Ref))
		in.Logf(">", "loop continue index=%d limit=%d", next, limit.Int)
		return nil
	}
	in.Logf(">", "loop exit index=%d limit=%d", next, limit.Int)
	return nil
}

// builtinAddLoop reads the frame's three cells without popping them (unlike
// builtinLoop, which unconditionally pops the frame first) and updates the
// index cell in place via Stack.Set on the continuing path, matching
// spec.md's "+loop: ... reads (without popping) the top-3 control stack
// cells to update" wording. The frame is only popped when the loop exits.
func builtinAddLoop(in *Interpreter, cursor *int, _ []string, _ int) error {
	inc, err := in.pop1()
	if err != nil {
		return err
	}
	start, err := in.Control.Peek(1)
	if err != nil {
		return err
	}
	index, err := in.Control.Peek(2)
	if err != nil {
		return err
	}
	limit, err := in.Control.Peek(3)
	if err != nil {
		return err
	}
	next := index.Int + inc.Int
	if (inc.Int > 0 && next < limit.Int) || (inc.Int < 0 && next > limit.Int) {
		if err := in.Control.Set(2, Int64(next)); err != nil {
			return err
		}
		*cursor = int(int64(start.Ref))
		in.Logf(">", "+loop continue index=%d limit=%d inc=%d", next, limit.Int, inc.Int)
		return nil
	}
	if _, err := in.Control.Pop(); err != nil { // return address
		return err
	}
	if _, err := in.Control.Pop(); err != nil { // index
		return err
	}
	if _, err := in.Control.Pop(); err != nil { // limit
		return err
	}
	in.Logf(">", "+loop exit index=%d limit=%d inc=%d", next, limit.Int, inc.Int)
	return nil
}

// builtinLeave skips forward to the loop/+loop closing its own do, tracking
// nested do depth as it scans. The original implementation stops at the
// first "loop"/"+loop" token regardless of nesting, which mis-targets a
// leave that precedes a nested do...loop in the same body; see
// SPEC_FULL.md §4.4's leave fix.
func builtinLeave(in *Interpreter, cursor *int, tokens []string, length int) error {
	depth := 1
scan:
	for *cursor+1 < length {
		*cursor++
		switch tokens[*cursor] {
		case "do":
			depth++
		case "loop", "+loop":
			depth--
			if depth == 0 {
				break scan
			}
		}
	}
	if _, err := in.Control.Pop(); err != nil { // return address
		return err
	}
	if _, err := in.Control.Pop(); err != nil { // index
		return err
	}
	if _, err := in.Control.Pop(); err != nil { // limit
		return err
	}
	in.Logf(">", "leave @%d", *cursor)
	return nil
}

func builtinI(in *Interpreter, _ *int, _ []string, _ int) error {
	index, err := in.Control.Peek(2)
	if err != nil {
		return err
	}
	return in.Data.Push(index)
}

func builtinJ(in *Interpreter, _ *int, _ []string, _ int) error {
	index, err := in.Control.Peek(5)
	if err != nil {
		return err
	}
	return in.Data.Push(index)
}

// builtinIf and builtinElse both track nested if/then depth while scanning
// forward, so a nested if...then inside a false branch (or inside the
// portion an else skips past) does not fool the scan into stopping early.
func builtinIf(in *Interpreter, cursor *int, tokens []string, length int) error {
	cond, err := in.pop1()
	if err != nil {
		return err
	}
	if cond.Truthy() {
		in.Logf(">", "if taken")
		return nil
	}
	in.Logf(">", "if not taken")
	depth := 1
	for *cursor+1 < length {
		*cursor++
		switch tokens[*cursor] {
		case "if":
			depth++
		case "then":
			depth--
			if depth == 0 {
				return nil
			}
		case "else":
			if depth == 1 {
				return nil
			}
		}
	}
	return nil
}

func builtinElse(in *Interpreter, cursor *int, tokens []string, length int) error {
	depth := 1
	for *cursor+1 < length {
		*cursor++
		switch tokens[*cursor] {
		case "if":
			depth++
		case "then":
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
	return nil
}

func builtinThen(*Interpreter, *int, []string, int) error { return nil }

func builtinBegin(in *Interpreter, cursor *int, _ []string, _ int) error {
	return in.Control.Push(Ref(uint64(int64(*cursor - 1))))
}

func builtinAgain(in *Interpreter, cursor *int, _ []string, _ int) error {
	addr, err := in.Control.Pop()
	if err != nil {
		return err
	}
	*cursor = int(int64(addr.Ref))
	return nil
}

func builtinUntil(in *Interpreter, cursor *int, _ []string, _ int) error {
	flag, err := in.pop1()
	if err != nil {
		return err
	}
	addr, err := in.Control.Pop()
	if err != nil {
		return err
	}
	if !flag.Truthy() {
		*cursor = int(int64(addr.Ref))
		in.Logf(">", "until continue")
		return nil
	}
	in.Logf(">", "until exit")
	return nil
}
