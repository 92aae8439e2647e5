package third

import (
	"io"

	"github.com/forthworks/third/internal/flushio"
)

// Default capacities, used when New is given no sizing Options.
const (
	DefaultDataStackSize    = 1024
	DefaultControlStackSize = 256
	DefaultHeapSize         = 4096
)

// MaxIncludeDepth bounds how many `include` calls may nest inside one
// another, so a file that (directly or transitively) includes itself
// aborts with ErrIncludeTooDeep instead of recursing until the Go call
// stack overflows.
const MaxIncludeDepth = 64

// Interpreter holds all state for one independent stack-language session:
// the two stacks, the heap, the dictionary, and the I/O sinks builtins read
// and write through. It is not safe for concurrent use by multiple
// goroutines.
type Interpreter struct {
	Data    *Stack
	Control *Stack

	heap     []Value
	heapNext uint64

	Dict *Dictionary

	in      io.Reader
	out     flushio.WriteFlusher
	errOut  io.Writer
	dumpOut io.Writer
	logf    func(level, mess string, args ...interface{})
	closers []io.Closer

	// includeDepth counts currently-nested `include` calls; builtinInclude
	// increments it before recursing and checks it against MaxIncludeDepth.
	includeDepth int
}

// New constructs an Interpreter, applying opts over the defaults: a
// DefaultDataStackSize data stack, a DefaultControlStackSize control stack,
// a DefaultHeapSize heap, input discarded, output discarded, and builtins
// already registered.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		Data:    NewStack("data", DefaultDataStackSize),
		Control: NewStack("control", DefaultControlStackSize),
		heap:    make([]Value, DefaultHeapSize),
		Dict:    NewDictionary(),
		out:     flushio.New(io.Discard),
		errOut:  io.Discard,
	}
	Options(opts...).apply(in)
	registerBuiltins(in.Dict)
	return in
}

// Destroy releases any closers accumulated by Options (e.g. a file given to
// WithOutput)
// and flushes pending output. It leaves the Interpreter otherwise unusable.
func (in *Interpreter) Destroy() error {
	var err error
	if ferr := in.out.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	for i := len(in.closers) - 1; i >= 0; i-- {
		if cerr := in.closers[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// HeapSize returns the number of addressable heap cells.
func (in *Interpreter) HeapSize() int { return len(in.heap) }

// HeapLoad reads the cell at addr. An out-of-range addr (including the
// never-valid address 0, per the uniform reference semantics in
// SPEC_FULL.md §4.4) reports ErrBadReference.
func (in *Interpreter) HeapLoad(addr uint64) (Value, error) {
	if addr < 1 || addr > uint64(len(in.heap)) {
		return Value{}, ErrBadReference{Ref: addr}
	}
	return in.heap[addr-1], nil
}

// HeapStore writes val to the cell at addr. See HeapLoad for addr validity.
func (in *Interpreter) HeapStore(addr uint64, val Value) error {
	if addr < 1 || addr > uint64(len(in.heap)) {
		return ErrBadReference{Ref: addr}
	}
	in.heap[addr-1] = val
	return nil
}

// Allot reserves the next n free heap cells and returns a reference to the
// first one. It reports ErrHeapExhausted if not enough cells remain.
func (in *Interpreter) Allot(n uint64) (Value, error) {
	if in.heapNext+n > uint64(len(in.heap)) {
		return Value{}, ErrHeapExhausted{}
	}
	addr := in.heapNext + 1
	in.heapNext += n
	return Ref(addr), nil
}

// Logf reports a trace message at level, if a logging sink was configured
// via WithLog.
func (in *Interpreter) Logf(level, mess string, args ...interface{}) {
	if in.logf != nil {
		in.logf(level, mess, args...)
	}
}

// Print writes directly to the interpreter's output sink, used by the `.`,
// `emit`, `cr`, and related I/O builtins.
func (in *Interpreter) Print(s string) {
	io.WriteString(in.out, s)
}

// FlushOutput forces any buffered output out to its sink, used before a
// blocking read (the REPL prompting for another line) and by bye/throw.
func (in *Interpreter) FlushOutput() error {
	return in.out.Flush()
}
