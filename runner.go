// Copyright 2025 The Try Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package try

import (
	"fmt"
	"io"
	"os"

	"github.com/mgutz/ansi"
	"golang.org/x/term"

	"github.com/tryharness/try/render"
)

// Runner executes test cases and tallies their outcomes.
//
// A Runner holds a non-owning reference to its diagnostic sink; the caller
// must keep the sink alive for as long as the Runner is in use.
//
// A Runner is not safe for concurrent use: its counters and its sink are
// mutated without synchronization. Confine an instance to one goroutine or
// serialize access externally.
type Runner struct {
	sink      io.Writer
	colorize  bool
	successes uint64
	failures  uint64
}

// Option adjusts a Runner at construction time.
type Option func(*Runner)

// WithColor forces colorization of failure headers on or off, overriding
// the terminal autodetection done by New.
func WithColor(on bool) Option {
	return func(t *Runner) { t.colorize = on }
}

// New returns a Runner writing failure reports to sink.
//
// A nil sink defaults to os.Stdout. When the sink is a terminal, the
// "Test failed:" header line is colorized; pass WithColor to override.
func New(sink io.Writer, opts ...Option) *Runner {
	if sink == nil {
		sink = os.Stdout
	}
	t := &Runner{sink: sink, colorize: isTerminal(sink)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run invokes test with the given arguments and records the outcome.
//
// The test signals failure by panicking; a normal return is a success no
// matter what the test computed. On failure the panic value, the source
// context and the arguments are written to the sink and the failure
// counter is incremented; on success only the success counter moves.
//
// No panic escapes Run. A loop driving many independent cases through one
// Runner keeps going when a case fails.
func (t *Runner) Run(sc SourceContext, test func(args ...any), args ...any) bool {
	if reason := capture(test, args); reason != nil {
		t.report(sc, reason, args)
		t.failures++
		return false
	}
	t.successes++
	return true
}

func (t *Runner) report(sc SourceContext, reason any, args []any) {
	header := "Test failed: " + sc.String()
	if t.colorize {
		header = ansi.Red + header + ansi.Reset
	}
	fmt.Fprintln(t.sink, header)

	if msg, ok := failureMessage(reason); ok {
		fmt.Fprintf(t.sink, "Message: \"%s\"\n", msg)
	} else {
		fmt.Fprintln(t.sink, "(no message)")
	}

	if len(args) == 0 {
		fmt.Fprint(t.sink, "(no arguments)\n\n")
	} else {
		fmt.Fprintln(t.sink, "Arguments:")
		render.Args(t.sink, args)
	}
}

// SuccessCount returns the number of test cases run through this Runner
// that passed.
func (t *Runner) SuccessCount() uint64 { return t.successes }

// FailureCount returns the number of test cases run through this Runner
// that failed.
func (t *Runner) FailureCount() uint64 { return t.failures }

// Sink returns the diagnostic stream. Callers may write extra diagnostic
// text around test invocations through it.
func (t *Runner) Sink() io.Writer { return t.sink }
