package third

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Float_BasicArithmetic(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   float64
	}{
		{"add", "1.5 2.5 f+", 4.0},
		{"sub", "5.0 2.0 f-", 3.0},
		{"mul", "3.0 4.0 f*", 12.0},
		{"div", "9.0 2.0 f/", 4.5},
		{"negate", "2.5 fnegate", -2.5},
		{"abs", "-2.5 fabs", 2.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := newTestInterpreter(t)
			require.NoError(t, in.Eval(tc.source))
			top, err := in.Data.Pop()
			require.NoError(t, err)
			require.Equal(t, TagFloat, top.Tag)
			require.InDelta(t, tc.want, top.Float, 1e-9)
		})
	}
}

// Test_Float_FToD_ReadsFloatField guards the f>d bug fix: the original
// implementation reads the popped value's int64 field, which is always
// zero for a value that arrived on the stack as a float literal.
func Test_Float_FToD_ReadsFloatField(t *testing.T) {
	in := newTestInterpreter(t)
	require.NoError(t, in.Eval("3.75 f>d"))
	top, err := in.Data.Pop()
	require.NoError(t, err)
	require.Equal(t, TagInt, top.Tag)
	require.Equal(t, int64(3), top.Int)
}

func Test_Float_DToF_FToD_RoundTrip(t *testing.T) {
	in := newTestInterpreter(t)
	require.NoError(t, in.Eval("7 d>f f>d"))
	top, err := in.Data.Pop()
	require.NoError(t, err)
	require.Equal(t, Int64(7), top)
}

func Test_Float_ApproxComparisons(t *testing.T) {
	t.Run("f~abs within tolerance", func(t *testing.T) {
		in := newTestInterpreter(t)
		require.NoError(t, in.Eval("1.0 1.0001 0.001 f~abs"))
		top, err := in.Data.Pop()
		require.NoError(t, err)
		require.Equal(t, Bool(true), top)
	})

	t.Run("f~abs outside tolerance", func(t *testing.T) {
		in := newTestInterpreter(t)
		require.NoError(t, in.Eval("1.0 2.0 0.001 f~abs"))
		top, err := in.Data.Pop()
		require.NoError(t, err)
		require.Equal(t, Bool(false), top)
	})

	t.Run("f~rel scales with magnitude", func(t *testing.T) {
		in := newTestInterpreter(t)
		require.NoError(t, in.Eval("1000.0 1001.0 0.01 f~rel"))
		top, err := in.Data.Pop()
		require.NoError(t, err)
		require.Equal(t, Bool(true), top)
	})
}

func Test_Float_SinCosPushesBothInPushOrder(t *testing.T) {
	in := newTestInterpreter(t)
	require.NoError(t, in.Eval("0.0 fsincos"))
	values := dataTopDown(in)
	require.Len(t, values, 2)
	require.InDelta(t, 0.0, values[0].Float, 1e-9) // sin on top
	require.InDelta(t, 1.0, values[1].Float, 1e-9) // cos beneath
}

func Test_Arith_DivisionByZeroIsTypeMismatch(t *testing.T) {
	in := newTestInterpreter(t)
	err := in.Eval("1 0 /")
	require.Error(t, err)
	require.ErrorAs(t, err, new(ErrTypeMismatch))
}

func Test_Arith_BitwiseAndShift(t *testing.T) {
	in := newTestInterpreter(t)
	require.NoError(t, in.Eval("6 3 and 6 1 or 1 2 lshift 8 2 rshift"))
	require.Equal(t, []Value{Int64(2), Int64(4), Int64(7), Int64(2)}, dataTopDown(in))
}
