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
	"runtime"
)

// SourceContext identifies where a test assertion was written.
//
// Use Here to capture one at the call site; hand-written values are fine
// too (both fields are stored as given, never validated).
type SourceContext struct {
	File string
	Line int
}

// Here captures the file and line of its caller.
//
// skipFrames optionally holds one extra number of stack frames to skip.
// Use it from a test helper function to report the helper's call site
// instead of the line inside the helper:
//
//	checkParse := func(input string, want int) {
//		try.Equal(runner, try.Here(1), parse(input), want)
//	}
func Here(skipFrames ...int) SourceContext {
	if len(skipFrames) > 1 {
		panic(fmt.Errorf("try.Here: skipFrames has more than one value: %v", skipFrames))
	}

	skip := 1
	if len(skipFrames) > 0 {
		skip += skipFrames[0]
	}
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return SourceContext{File: "<unknown>"}
	}
	return SourceContext{File: file, Line: line}
}

// String renders the context as "<file>, line <line>", the form used in
// failure reports.
func (sc SourceContext) String() string {
	return fmt.Sprintf("%s, line %d", sc.File, sc.Line)
}
