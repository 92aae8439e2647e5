package third

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestInterpreter(t *testing.T) *Interpreter {
	t.Helper()
	in := New(WithErrorOutput(&strings.Builder{}))
	t.Cleanup(func() { in.Destroy() })
	return in
}

// dataTopDown returns the data stack contents from top to bottom, matching
// the presentation spec.md's end-to-end scenarios use.
func dataTopDown(in *Interpreter) []Value {
	values := in.Data.Values()
	out := make([]Value, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}

func Test_Eval_EndToEndScenarios(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   []Value
	}{
		{"arithmetic", "1 2 3 + *", []Value{Int64(5)}},
		{"user word square", ": square dup * ; 6 square", []Value{Int64(36)}},
		{"counted loop pushes i", "5 0 do i loop",
			[]Value{Int64(4), Int64(3), Int64(2), Int64(1), Int64(0)}},
		{"leave exits before push", "10 0 do i 5 = if leave then loop 99",
			[]Value{Int64(99)}},
		{"begin until", "0 begin 1+ dup 3 = until", []Value{Int64(3)}},
		{"+loop counts by two", "10 0 do i 2 +loop",
			[]Value{Int64(8), Int64(6), Int64(4), Int64(2), Int64(0)}},
		{"+loop counts down", "0 10 do i -2 +loop",
			[]Value{Int64(2), Int64(4), Int64(6), Int64(8), Int64(10)}},
		{"recursive factorial", ": fact dup 1 > if dup 1 - fact * else drop 1 then ; 5 fact",
			[]Value{Int64(120)}},
		{"variable store and load", "variable x 42 x ! x @", []Value{Int64(42)}},
		{"float multiply and compare", "3.0 4.0 f* 12.0 f=", []Value{Bool(true)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := newTestInterpreter(t)
			require.NoError(t, in.Eval(tc.source))
			require.Equal(t, tc.want, dataTopDown(in))
		})
	}
}

func Test_Eval_UniversalProperties(t *testing.T) {
	t.Run("dup drop is identity", func(t *testing.T) {
		in := newTestInterpreter(t)
		require.NoError(t, in.Eval("1 2 3 dup drop"))
		require.Equal(t, []Value{Int64(3), Int64(2), Int64(1)}, dataTopDown(in))
	})

	t.Run("swap swap is identity", func(t *testing.T) {
		in := newTestInterpreter(t)
		require.NoError(t, in.Eval("1 2 swap swap"))
		require.Equal(t, []Value{Int64(2), Int64(1)}, dataTopDown(in))
	})

	t.Run("rot rot rot is identity", func(t *testing.T) {
		in := newTestInterpreter(t)
		require.NoError(t, in.Eval("1 2 3 rot rot rot"))
		require.Equal(t, []Value{Int64(3), Int64(2), Int64(1)}, dataTopDown(in))
	})

	t.Run("divmod leaves mod then div", func(t *testing.T) {
		in := newTestInterpreter(t)
		require.NoError(t, in.Eval("17 5 /mod"))
		require.Equal(t, []Value{Int64(3), Int64(2)}, dataTopDown(in))
	})

	t.Run("0= 0= equals not not", func(t *testing.T) {
		in := newTestInterpreter(t)
		require.NoError(t, in.Eval("7 0= 0="))
		a := dataTopDown(in)

		in2 := newTestInterpreter(t)
		require.NoError(t, in2.Eval("7 not not"))
		b := dataTopDown(in2)

		require.Equal(t, a, b)
	})

	t.Run("d>f f>d round trips", func(t *testing.T) {
		in := newTestInterpreter(t)
		require.NoError(t, in.Eval("42 d>f f>d"))
		require.Equal(t, []Value{Int64(42)}, dataTopDown(in))
	})

	t.Run("comparisons are -1 or 0", func(t *testing.T) {
		in := newTestInterpreter(t)
		require.NoError(t, in.Eval("1 2 < 5 5 ="))
		require.Equal(t, []Value{Int64(-1), Int64(-1)}, dataTopDown(in))
	})

	t.Run("nested if else then terminates at matching then", func(t *testing.T) {
		in := newTestInterpreter(t)
		require.NoError(t, in.Eval(
			"0 if 1 if 2 else 3 then else 4 if 5 else 6 then then",
		))
		require.Equal(t, []Value{Int64(5)}, dataTopDown(in))
	})

	t.Run("colon semicolon consumed from outer stream", func(t *testing.T) {
		in := newTestInterpreter(t)
		require.NoError(t, in.Eval(": inc 1 + ; 41 inc 100"))
		require.Equal(t, []Value{Int64(100), Int64(42)}, dataTopDown(in))
	})
}

func Test_Eval_UndefinedWordAbortsEvaluation(t *testing.T) {
	in := newTestInterpreter(t)
	err := in.Eval("1 2 bogusword 3")
	require.Error(t, err)
	require.ErrorAs(t, err, new(ErrUndefinedWord))
	require.Equal(t, []Value{Int64(2), Int64(1)}, dataTopDown(in), "tokens after the error must not run")
}

// Test_Eval_ErrorInUserWordPropagates is the redesigned nesting behavior
// from SPEC_FULL.md §8: an error deep inside a user word must unwind all
// the way to the outer Eval call, unlike the source's forth_eval, which
// discards a recursive call's return value and lets the outer loop carry
// on regardless.
func Test_Eval_ErrorInUserWordPropagates(t *testing.T) {
	in := newTestInterpreter(t)
	in.DefineWord("broken", "1 bogusword 2")
	err := in.Eval("9 broken 9")
	require.Error(t, err)
	require.Equal(t, []Value{Int64(1), Int64(9)}, dataTopDown(in),
		"tokens after broken, both inside and outside the word, must not run")
}

func Test_Eval_Bye_HaltsWithZero(t *testing.T) {
	in := newTestInterpreter(t)
	err := in.Eval("1 2 bye 3")
	var halt *HaltError
	require.ErrorAs(t, err, &halt)
	require.Equal(t, 0, halt.Code)
	require.Equal(t, []Value{Int64(2), Int64(1)}, dataTopDown(in))
}

func Test_Eval_Throw_NonzeroHalts_ZeroContinues(t *testing.T) {
	in := newTestInterpreter(t)
	err := in.Eval("5 throw 1 2 3")
	var halt *HaltError
	require.ErrorAs(t, err, &halt)
	require.Equal(t, 5, halt.Code)

	in2 := newTestInterpreter(t)
	require.NoError(t, in2.Eval("0 throw 1 2 3"))
	require.Equal(t, []Value{Int64(3), Int64(2), Int64(1)}, dataTopDown(in2))
}

func Test_Eval_NestedLeave(t *testing.T) {
	// An outer do...loop has its leave before a fully-closed inner
	// do...loop; a naive leave scan (stop at the first loop/+loop token)
	// would match the inner loop's closing token instead of the outer's.
	in := newTestInterpreter(t)
	err := in.Eval(
		"3 0 do " +
			"i 1 = if leave then " +
			"2 0 do i loop " +
			"99 loop",
	)
	require.NoError(t, err)
	values := dataTopDown(in)
	// outer i=0: the comparison is false, so the inner loop pushes 0,1 and
	// 99 is pushed too. outer i=1: the comparison is true, so leave skips
	// past the inner loop to the outer loop's closing token and nothing
	// more is pushed.
	require.Equal(t, []Value{
		Int64(99), Int64(1), Int64(0), // 99 + inner loop, outer i=0
	}, values)
}

func Test_Eval_HeapIndexSemanticsAreUniform(t *testing.T) {
	in := newTestInterpreter(t)
	require.NoError(t, in.Eval("variable x x 1 + 7 swap ! x 1 + @"))
	// x holds ref N; ref N+1 is the next heap cell, untouched (0) until
	// this program stores through it and reads it back -- proving @ and !
	// address the same index space as `variable`'s own allocation.
	require.Equal(t, []Value{Int64(7)}, dataTopDown(in))
}

func Test_Eval_RefOutOfBoundsIsBadReference(t *testing.T) {
	in := newTestInterpreter(t)
	err := in.Eval("ref 999999 @")
	require.Error(t, err)
	require.ErrorAs(t, err, new(ErrBadReference))
}

func Test_Eval_PolymorphicAdd(t *testing.T) {
	in := newTestInterpreter(t)
	require.NoError(t, in.Eval("variable v v 2 +"))
	top, err := in.Data.Pop()
	require.NoError(t, err)
	require.Equal(t, TagRef, top.Tag)

	in2 := newTestInterpreter(t)
	require.NoError(t, in2.Eval("2 variable w w +"))
	top2, err := in2.Data.Pop()
	require.NoError(t, err)
	require.Equal(t, TagRef, top2.Tag)
}

func Test_Eval_AddTypeMismatchAborts(t *testing.T) {
	in := newTestInterpreter(t)
	err := in.Eval("1.0 2 +")
	require.Error(t, err)
	require.ErrorAs(t, err, new(ErrTypeMismatch))
}

func Test_Eval_IncludeFailureIsSkippedNotFatal(t *testing.T) {
	in := newTestInterpreter(t)
	err := in.Eval("1 include /nonexistent/path/to/nowhere.third 2")
	require.NoError(t, err, "a failed include must not abort the surrounding evaluation")
	require.Equal(t, []Value{Int64(2), Int64(1)}, dataTopDown(in))
}
