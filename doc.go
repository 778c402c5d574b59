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

// Package try is a minimal unit-testing harness.
//
// A Runner executes individual test cases, converts any panic a case
// signals into a failure report on its diagnostic sink, and tallies
// pass/fail counts across the run. A test case is an ordinary function;
// it fails by panicking and passes by returning.
//
// Typical use:
//
//	runner := try.New(os.Stdout)
//
//	try.Equal(runner, try.Here(), parse("2"), 2)
//	try.Less(runner, try.Here(), cost(small), cost(large))
//	try.Throws[ParseError](runner, try.Here(), func(...any) {
//		parse("not a number")
//	})
//
//	fmt.Printf("%d passed, %d failed\n",
//		runner.SuccessCount(), runner.FailureCount())
//
// No panic signaled by a test case ever escapes Runner.Run: one failing
// case cannot abort a loop driving many independent cases. Failures are
// visible only as text on the sink and as the aggregate counters.
package try
