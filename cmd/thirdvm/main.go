// Command thirdvm runs a stack-language REPL, or evaluates the files named
// on its command line, then exits.
package main

import (
	"errors"
	"flag"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/chzyer/readline"

	third "github.com/forthworks/third"
	"github.com/forthworks/third/internal/logio"
)

func main() {
	var (
		trace        bool
		dump         bool
		dataStack    int
		controlStack int
		heapSize     int
		timeout      time.Duration
	)
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "print a data-stack dump after each top-level evaluation")
	flag.IntVar(&dataStack, "data-stack", third.DefaultDataStackSize, "data stack capacity")
	flag.IntVar(&controlStack, "control-stack", third.DefaultControlStackSize, "control stack capacity")
	flag.IntVar(&heapSize, "heap-size", third.DefaultHeapSize, "heap size in cells")
	flag.DurationVar(&timeout, "timeout", 0, "abort if evaluation runs longer than this")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)

	opts := []third.Option{
		third.WithDataStackSize(dataStack),
		third.WithControlStackSize(controlStack),
		third.WithHeapSize(heapSize),
		third.WithOutput(os.Stdout),
		third.WithErrorOutput(os.Stderr),
	}
	if trace {
		opts = append(opts, third.WithLog(log.Printf))
	}
	if dump {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		opts = append(opts, third.WithDumpOutput(lw))
	}

	in := third.New(opts...)
	defer in.Destroy()

	registerRandFFI(in)

	if timeout > 0 {
		watchdog := time.AfterFunc(timeout, func() {
			log.Errorf("evaluation exceeded %s, terminating", timeout)
			in.Destroy()
			os.Exit(124)
		})
		defer watchdog.Stop()
	}

	args := flag.Args()
	var err error
	if len(args) > 0 {
		err = runFiles(in, args, dump)
	} else {
		err = runREPL(in, dump)
	}
	// os.Exit skips the deferred Destroy, so flush buffered output here.
	in.FlushOutput()

	var halt *third.HaltError
	if errors.As(err, &halt) {
		os.Exit(halt.Code)
	}
	log.ErrorIf(err)
	os.Exit(log.ExitCode())
}

func runFiles(in *third.Interpreter, files []string, dump bool) error {
	for _, name := range files {
		if err := in.ImportFile(name); err != nil {
			return err
		}
		if dump {
			in.Eval("dump")
		}
	}
	return nil
}

func runREPL(in *third.Interpreter, dump bool) error {
	rl, err := readline.New("meili> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return err
		}

		if evalErr := in.Eval(line); evalErr != nil {
			var halt *third.HaltError
			if errors.As(evalErr, &halt) {
				return halt
			}
		}
		if dump {
			in.Eval("dump")
		}
		in.Print(" ok\n")
		in.FlushOutput()
	}
}

// registerRandFFI exposes a host-implemented `rand` word that pushes a
// pseudo-random integer, exercised by programs that need nondeterminism the
// stack language itself cannot produce.
func registerRandFFI(in *third.Interpreter) {
	in.RegisterForeign("rand", func(in *third.Interpreter) error {
		return in.Data.Push(third.Int64(rand.Int63()))
	})
}

