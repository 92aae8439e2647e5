package third

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Memory_StoreLoadRoundTrip(t *testing.T) {
	in := newTestInterpreter(t)
	require.NoError(t, in.Eval("variable x 99 x ! x @"))
	top, err := in.Data.Pop()
	require.NoError(t, err)
	require.Equal(t, Int64(99), top)
}

func Test_Memory_LoadTypeMismatchOnNonRef(t *testing.T) {
	in := newTestInterpreter(t)
	err := in.Eval("5 @")
	require.Error(t, err)
	require.ErrorAs(t, err, new(ErrTypeMismatch))
}

func Test_Memory_StoreTypeMismatchOnNonRef(t *testing.T) {
	in := newTestInterpreter(t)
	err := in.Eval("5 6 !")
	require.Error(t, err)
	require.ErrorAs(t, err, new(ErrTypeMismatch))
}

func Test_Interpreter_AllotAdvancesThroughDistinctCells(t *testing.T) {
	in := newTestInterpreter(t)
	a, err := in.Allot(1)
	require.NoError(t, err)
	b, err := in.Allot(1)
	require.NoError(t, err)
	require.NotEqual(t, a.Ref, b.Ref)

	require.NoError(t, in.HeapStore(a.Ref, Int64(1)))
	require.NoError(t, in.HeapStore(b.Ref, Int64(2)))

	va, err := in.HeapLoad(a.Ref)
	require.NoError(t, err)
	vb, err := in.HeapLoad(b.Ref)
	require.NoError(t, err)
	require.Equal(t, Int64(1), va)
	require.Equal(t, Int64(2), vb)
}

func Test_Interpreter_HeapLoadRejectsZeroAndOutOfRange(t *testing.T) {
	in := newTestInterpreter(t)
	_, err := in.HeapLoad(0)
	require.ErrorAs(t, err, new(ErrBadReference))

	_, err = in.HeapLoad(uint64(in.HeapSize() + 1))
	require.ErrorAs(t, err, new(ErrBadReference))
}

func Test_Interpreter_HeapExhaustedOnOverAllot(t *testing.T) {
	in := New(WithHeapSize(2))
	defer in.Destroy()

	_, err := in.Allot(1)
	require.NoError(t, err)
	_, err = in.Allot(1)
	require.NoError(t, err)
	_, err = in.Allot(1)
	require.Error(t, err)
	require.ErrorAs(t, err, new(ErrHeapExhausted))
}
