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
	"errors"
	"fmt"
	"reflect"
)

// Throws runs a test case that passes only when test panics with a value
// of kind K.
//
// K may be a concrete type or an interface; the panic value matches when a
// type assertion to K succeeds. A test that returns normally fails with
// "Test did not throw!". A panic of the wrong kind fails with "Test throws
// a wrong exception (<type>): <message>" when the value is describable
// (an error or a string), and with "Test throws a wrong non-exception!"
// otherwise.
func Throws[K any](t *Runner, sc SourceContext, test func(args ...any), args ...any) bool {
	return t.Run(sc, func(args ...any) {
		reason := capture(test, args)
		if reason == nil {
			panic(errors.New("Test did not throw!"))
		}
		if _, ok := reason.(K); ok {
			return
		}
		if msg, ok := failureMessage(reason); ok {
			panic(fmt.Errorf("Test throws a wrong exception (%s): %s", reflect.TypeOf(reason), msg))
		}
		panic(errors.New("Test throws a wrong non-exception!"))
	}, args...)
}
