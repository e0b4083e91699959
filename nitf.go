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

package nitf

import (
	"sync"

	"github.com/nitfgo/nitf/tre"
	"github.com/nitfgo/nitf/tre/unclass"
)

// Extensions returns the default registry of built-in TRE declarations. It is
// built on first use and shared read-only afterward.
var Extensions = sync.OnceValue(func() *tre.Registry {
	return tre.MustRegistry(unclass.Definitions())
})

// NewExtensions builds a registry holding the built-in declarations plus any
// extra ones. Extra definitions may not reuse a built-in tag.
func NewExtensions(extra []tre.Definition, opts ...tre.RegistryOptionFunc) (*tre.Registry, error) {
	defs := append(unclass.Definitions(), extra...)
	return tre.NewRegistry(defs, opts...)
}
