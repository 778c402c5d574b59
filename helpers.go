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

	"golang.org/x/exp/constraints"
)

// The helpers below are sugar over Runner.Run: each one builds a test case
// from a single comparison and passes both operands through as the logged
// arguments, so a failure report renders them.
//
// If the comparison itself panics (for example `==` on interface operands
// with uncomparable dynamic types), Run catches that like any other test
// failure.

// Equal runs a test case that checks a == b.
func Equal[T comparable](t *Runner, sc SourceContext, a, b T) bool {
	return t.Run(sc, func(...any) {
		if !(a == b) {
			panic(errors.New("Arguments are not equal!"))
		}
	}, a, b)
}

// NotEqual runs a test case that checks a != b.
func NotEqual[T comparable](t *Runner, sc SourceContext, a, b T) bool {
	return t.Run(sc, func(...any) {
		if !(a != b) {
			panic(errors.New("Arguments are equal!"))
		}
	}, a, b)
}

// Less runs a test case that checks a < b.
func Less[T constraints.Ordered](t *Runner, sc SourceContext, a, b T) bool {
	return t.Run(sc, func(...any) {
		if !(a < b) {
			panic(errors.New("The first argument is not less than the second!"))
		}
	}, a, b)
}

// LessEqual runs a test case that checks a <= b.
func LessEqual[T constraints.Ordered](t *Runner, sc SourceContext, a, b T) bool {
	return t.Run(sc, func(...any) {
		if !(a <= b) {
			panic(errors.New("The first argument is not less than or equal to the second!"))
		}
	}, a, b)
}
