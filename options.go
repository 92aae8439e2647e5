package third

import (
	"io"

	"github.com/forthworks/third/internal/flushio"
)

// Option configures an Interpreter at construction time via New.
type Option interface{ apply(in *Interpreter) }

// Options flattens a list of Options (including nils and other flattened
// Options) into a single Option, the way the reference VMOptions combinator
// does.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*Interpreter) {}

type options []Option

func (opts options) apply(in *Interpreter) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

type dataStackSizeOption int
type controlStackSizeOption int
type heapSizeOption int

// WithDataStackSize overrides the data stack's fixed capacity.
func WithDataStackSize(n int) Option { return dataStackSizeOption(n) }

// WithControlStackSize overrides the control stack's fixed capacity.
func WithControlStackSize(n int) Option { return controlStackSizeOption(n) }

// WithHeapSize overrides the number of addressable heap cells.
func WithHeapSize(n int) Option { return heapSizeOption(n) }

func (n dataStackSizeOption) apply(in *Interpreter)    { in.Data = NewStack("data", int(n)) }
func (n controlStackSizeOption) apply(in *Interpreter) { in.Control = NewStack("control", int(n)) }
func (n heapSizeOption) apply(in *Interpreter)         { in.heap = make([]Value, int(n)) }

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type errorOutputOption struct{ io.Writer }
type dumpOutputOption struct{ io.Writer }
type logOption func(level, mess string, args ...interface{})

// WithInput sets the reader `include`-less source reads (currently unused
// by Eval itself, which always takes source as a string, but retained for
// host programs that want to record or replay an Interpreter's stdin-style
// input stream).
func WithInput(r io.Reader) Option { return inputOption{r} }

// WithOutput sets the interpreter's output sink, used by `.`, `emit`, `cr`,
// and friends. A bare io.Writer is wrapped in a flush-aware buffer unless it
// is already one.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee adds an additional output sink that receives a copy of everything
// written to the primary output sink.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithErrorOutput sets the sink errors (undefined words, type mismatches,
// stack over/underflow, ...) are reported to.
func WithErrorOutput(w io.Writer) Option { return errorOutputOption{w} }

// WithDumpOutput redirects `dump`'s stack listing away from the primary
// output sink to w, e.g. a *logio.Writer routing it through a leveled
// logger the way the host CLI's -dump flag does.
func WithDumpOutput(w io.Writer) Option { return dumpOutputOption{w} }

// WithLog installs a leveled trace callback, invoked by builtins and the
// evaluator at points of interest (token dispatch, control-flow branches)
// when tracing is enabled by the host.
func WithLog(fn func(level, mess string, args ...interface{})) Option { return logOption(fn) }

func (i inputOption) apply(in *Interpreter) { in.in = i.Reader }

func (o outputOption) apply(in *Interpreter) {
	if in.out != nil {
		in.out.Flush()
	}
	in.out = flushio.New(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		in.closers = append(in.closers, cl)
	}
}

func (o teeOption) apply(in *Interpreter) {
	in.out = flushio.WriteFlushers(in.out, flushio.New(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		in.closers = append(in.closers, cl)
	}
}

func (o errorOutputOption) apply(in *Interpreter) {
	in.errOut = o.Writer
	if cl, ok := o.Writer.(io.Closer); ok {
		in.closers = append(in.closers, cl)
	}
}

func (o dumpOutputOption) apply(in *Interpreter) {
	in.dumpOut = o.Writer
	if cl, ok := o.Writer.(io.Closer); ok {
		in.closers = append(in.closers, cl)
	}
}

func (fn logOption) apply(in *Interpreter) {
	in.logf = func(level, mess string, args ...interface{}) { fn(level, mess, args...) }
}
