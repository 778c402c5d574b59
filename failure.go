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

// failureMessage classifies a recovered panic value.
//
// Values carrying an error or a plain string are describable and their
// text goes on the report's Message line. Every other panic value reports
// "(no message)".
func failureMessage(reason any) (msg string, ok bool) {
	switch v := reason.(type) {
	case error:
		return v.Error(), true
	case string:
		return v, true
	}
	return "", false
}

// capture invokes test and returns the value it panicked with, or nil if
// it returned normally.
//
// Note that panic(nil) still comes back non-nil (*runtime.PanicNilError),
// so a nil result really does mean the test completed.
func capture(test func(args ...any), args []any) (reason any) {
	defer func() { reason = recover() }()
	test(args...)
	return nil
}
