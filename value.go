package third

import "fmt"

// Tag discriminates the payload carried by a Value.
type Tag uint8

const (
	// TagInt marks a Value carrying a signed 64-bit integer.
	TagInt Tag = iota
	// TagFloat marks a Value carrying an IEEE-754 double.
	TagFloat
	// TagRef marks a Value carrying a heap index.
	TagRef
)

func (tag Tag) String() string {
	switch tag {
	case TagInt:
		return "int"
	case TagFloat:
		return "float"
	case TagRef:
		return "ref"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(tag))
	}
}

// Value is a tagged stack/heap cell: exactly one of a signed 64-bit integer,
// an IEEE-754 double, or an unsigned heap index (a reference).
type Value struct {
	Tag   Tag
	Int   int64
	Float float64
	Ref   uint64
}

// Int64 builds an integer Value.
func Int64(n int64) Value { return Value{Tag: TagInt, Int: n} }

// Float64 builds a float Value.
func Float64(f float64) Value { return Value{Tag: TagFloat, Float: f} }

// Ref builds a reference Value addressing the given heap index.
func Ref(addr uint64) Value { return Value{Tag: TagRef, Ref: addr} }

// Bool builds a Forth boolean: -1 for true, 0 for false.
func Bool(b bool) Value {
	if b {
		return Int64(-1)
	}
	return Int64(0)
}

// Truthy reports whether a value is true by Forth convention: any nonzero
// integer, float, or reference is true.
func (v Value) Truthy() bool {
	switch v.Tag {
	case TagFloat:
		return v.Float != 0
	case TagRef:
		return v.Ref != 0
	default:
		return v.Int != 0
	}
}

func (v Value) String() string {
	switch v.Tag {
	case TagFloat:
		return fmt.Sprintf("%g", v.Float)
	case TagRef:
		return fmt.Sprintf("%d", v.Ref)
	default:
		return fmt.Sprintf("%d", v.Int)
	}
}
