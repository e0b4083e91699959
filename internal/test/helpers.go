// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package test

import (
	"fmt"
	"strings"
)

// Text left justifies s in a space filled field of the given width. It panics
// if s does not fit, which makes it usable inline when building fixtures.
func Text(s string, width int) string {
	if len(s) > width {
		panic(fmt.Sprintf("fixture text %q exceeds width %d", s, width))
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Blank returns a field of spaces
func Blank(width int) string {
	return strings.Repeat(" ", width)
}

// Digits renders n zero padded to width
func Digits(n int, width int) string {
	s := fmt.Sprintf("%0*d", width, n)
	if len(s) > width {
		panic(fmt.Sprintf("fixture number %d exceeds width %d", n, width))
	}
	return s
}

// Bytes concatenates fixture fields into a buffer
func Bytes(fields ...string) []byte {
	return []byte(strings.Join(fields, ""))
}
