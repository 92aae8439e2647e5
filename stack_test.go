package third

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Stack_PushPop(t *testing.T) {
	s := NewStack("data", 4)
	require.NoError(t, s.Push(Int64(1)))
	require.NoError(t, s.Push(Int64(2)))
	require.Equal(t, 2, s.Len())

	val, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, Int64(2), val)
	require.Equal(t, 1, s.Len())
}

func Test_Stack_Overflow(t *testing.T) {
	s := NewStack("data", 1)
	require.NoError(t, s.Push(Int64(1)))
	err := s.Push(Int64(2))
	require.ErrorAs(t, err, new(ErrStackOverflow))
	require.Equal(t, 1, s.Len(), "a rejected push must not have mutated the stack")
}

// Test_Stack_Underflow_DoesNotWrap guards the stack_pop bounds-check fix:
// popping (or peeking) an empty stack must report an error without ever
// touching top, rather than wrapping to a huge unsigned index the way the
// original implementation's unchecked `top--` does.
func Test_Stack_Underflow_DoesNotWrap(t *testing.T) {
	s := NewStack("data", 4)
	_, err := s.Pop()
	require.ErrorAs(t, err, new(ErrStackUnderflow))
	require.Equal(t, 0, s.Len())

	_, err = s.Peek(1)
	require.ErrorAs(t, err, new(ErrStackUnderflow))

	require.NoError(t, s.Push(Int64(1)))
	_, err = s.Peek(2)
	require.ErrorAs(t, err, new(ErrStackUnderflow))
}

func Test_Stack_Remove_Roll(t *testing.T) {
	s := NewStack("data", 4)
	require.NoError(t, s.Push(Int64(1)))
	require.NoError(t, s.Push(Int64(2)))
	require.NoError(t, s.Push(Int64(3)))

	val, err := s.Remove(3) // bottom element
	require.NoError(t, err)
	require.Equal(t, Int64(1), val)
	require.Equal(t, []Value{Int64(2), Int64(3)}, s.Values())
}
