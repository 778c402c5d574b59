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

package try_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mgutz/ansi"

	"github.com/tryharness/try"
)

var testSC = try.SourceContext{File: "widget_test.go", Line: 42}

func pass(...any)    {}
func explode(...any) { panic(errors.New("widget broke")) }

func TestCountersTrackEveryInvocation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runner := try.New(&buf)

	outcomes := []func(...any){pass, explode, pass, explode, explode}
	for _, test := range outcomes {
		runner.Run(testSC, test)
	}

	if got := runner.SuccessCount(); got != 2 {
		t.Errorf("SuccessCount = %d, want 2", got)
	}
	if got := runner.FailureCount(); got != 3 {
		t.Errorf("FailureCount = %d, want 3", got)
	}
	if got, want := runner.SuccessCount()+runner.FailureCount(), uint64(len(outcomes)); got != want {
		t.Errorf("count sum = %d, want %d", got, want)
	}
}

func TestSuccessWritesNothing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runner := try.New(&buf)

	if !runner.Run(testSC, pass) {
		t.Fatal("Run reported failure for a passing test")
	}
	if buf.Len() != 0 {
		t.Errorf("sink not empty after success: %q", buf.String())
	}
}

func TestFailureReportNoArguments(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runner := try.New(&buf)

	if runner.Run(testSC, explode) {
		t.Fatal("Run reported success for a panicking test")
	}

	want := "Test failed: widget_test.go, line 42\n" +
		"Message: \"widget broke\"\n" +
		"(no arguments)\n" +
		"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
}

func TestFailureReportWithArguments(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runner := try.New(&buf)

	runner.Run(testSC, explode, 4, "hi")

	want := "Test failed: widget_test.go, line 42\n" +
		"Message: \"widget broke\"\n" +
		"Arguments:\n" +
		"\"4\" (int)\n" +
		"\"hi\" (string)\n" +
		"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
}

func TestFailureReportStringPanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runner := try.New(&buf)

	runner.Run(testSC, func(...any) { panic("plain text reason") })

	want := "Test failed: widget_test.go, line 42\n" +
		"Message: \"plain text reason\"\n" +
		"(no arguments)\n" +
		"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
}

func TestFailureReportOpaquePanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runner := try.New(&buf)

	runner.Run(testSC, func(...any) { panic(17) })

	want := "Test failed: widget_test.go, line 42\n" +
		"(no message)\n" +
		"(no arguments)\n" +
		"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
}

func TestNilPanicIsStillAFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runner := try.New(&buf)

	if runner.Run(testSC, func(...any) { panic(nil) }) {
		t.Fatal("Run reported success for panic(nil)")
	}
	if got := runner.FailureCount(); got != 1 {
		t.Errorf("FailureCount = %d, want 1", got)
	}
}

func TestArgumentsRenderInSuppliedOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runner := try.New(&buf)

	runner.Run(testSC, explode, "first", "second", "third")

	want := "Arguments:\n" +
		"\"first\" (string)\n" +
		"\"second\" (string)\n" +
		"\"third\" (string)\n" +
		"\n"
	if !strings.HasSuffix(buf.String(), want) {
		t.Fatalf("report does not end with ordered arguments:\n%s", buf.String())
	}
}

func TestColorizedHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runner := try.New(&buf, try.WithColor(true))

	runner.Run(testSC, explode)

	want := ansi.Red + "Test failed: widget_test.go, line 42" + ansi.Reset + "\n"
	if !strings.HasPrefix(buf.String(), want) {
		t.Fatalf("report header not colorized:\n%q", buf.String())
	}
}

func TestBufferSinkIsNotColorized(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runner := try.New(&buf)

	runner.Run(testSC, explode)

	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("non-terminal sink got ANSI codes:\n%q", buf.String())
	}
}

func TestSinkAccessor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runner := try.New(&buf)

	// Callers interleave their own diagnostics through the sink.
	runner.Sink().Write([]byte("--- widget suite ---\n"))
	runner.Run(testSC, explode)

	if !strings.HasPrefix(buf.String(), "--- widget suite ---\n") {
		t.Fatalf("sink accessor did not write through:\n%q", buf.String())
	}
}

func TestOneFailureDoesNotStopTheRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runner := try.New(&buf)

	for i := 0; i < 3; i++ {
		runner.Run(testSC, explode)
	}
	if !runner.Run(testSC, pass) {
		t.Fatal("runner stopped accepting tests after failures")
	}
	if got := runner.SuccessCount(); got != 1 {
		t.Errorf("SuccessCount = %d, want 1", got)
	}
	if got := runner.FailureCount(); got != 3 {
		t.Errorf("FailureCount = %d, want 3", got)
	}
}
