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

package tre

import (
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/nitfgo/nitf/element"
)

const (
	TagLength = 6
)

// Definition binds a TRE tag to the schema of its payload
type Definition struct {
	Tag         string
	Description string
	Schema      *element.Schema
}

// Registry maps tags to definitions. It is immutable once built. Without
// WithLogger it logs to whatever slog.Default() is at the time of the call.
type Registry struct {
	defs   map[string]Definition
	logger *slog.Logger
}

type RegistryOptionFunc func(*Registry)

// WithLogger sets the logger used for dispatch diagnostics
func WithLogger(logger *slog.Logger) RegistryOptionFunc {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry validates the definitions and returns a frozen registry
func NewRegistry(defs []Definition, opts ...RegistryOptionFunc) (*Registry, error) {
	r := &Registry{
		defs: make(map[string]Definition, len(defs)),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, def := range defs {
		if err := validTag(def.Tag); err != nil {
			return nil, err
		}
		if def.Schema == nil {
			return nil, &RegistrationError{Tag: def.Tag, Reason: "no schema"}
		}
		if _, ok := r.defs[def.Tag]; ok {
			return nil, &RegistrationError{Tag: def.Tag, Reason: "duplicate tag"}
		}
		r.defs[def.Tag] = def
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on an invalid definition
func MustRegistry(defs []Definition, opts ...RegistryOptionFunc) *Registry {
	r, err := NewRegistry(defs, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func validTag(tag string) error {
	if tag == "" || len(tag) > TagLength {
		return &RegistrationError{
			Tag:    tag,
			Reason: "tag must be 1 to 6 characters",
		}
	}
	for i := 0; i < len(tag); i++ {
		if tag[i] <= ' ' || tag[i] > '~' {
			return &RegistrationError{
				Tag:    tag,
				Reason: "tag must be printable ASCII without spaces",
			}
		}
	}
	return nil
}

func (r *Registry) log() *slog.Logger {
	if r.logger == nil {
		return slog.Default()
	}
	return r.logger
}

// normalizeTag strips the space fill of a CETAG field
func normalizeTag(tag []byte) string {
	return strings.TrimRight(string(tag), " ")
}

// Resolve returns the schema registered for tag
func (r *Registry) Resolve(tag []byte) (*element.Schema, bool) {
	def, ok := r.defs[normalizeTag(tag)]
	if !ok {
		return nil, false
	}
	return def.Schema, true
}

// Definition returns the full definition registered for tag
func (r *Registry) Definition(tag string) (Definition, bool) {
	def, ok := r.defs[normalizeTag([]byte(tag))]
	return def, ok
}

// Tags returns the registered tags in sorted order
func (r *Registry) Tags() []string {
	return slices.Sorted(maps.Keys(r.defs))
}

// Decode decodes one payload. Unknown tags yield a raw extension; errors from
// a known schema are returned unchanged.
func (r *Registry) Decode(tag []byte, payload []byte) (*Extension, error) {
	name := normalizeTag(tag)
	schema, ok := r.Resolve(tag)
	if !ok {
		r.log().Debug(
			"unknown TRE, keeping raw payload",
			"tag",
			name,
			"length",
			len(payload),
		)
		return NewRawExtension(name, payload), nil
	}
	rec, n, err := schema.Decode(payload, 0)
	if err != nil {
		return nil, err
	}
	if n != len(payload) {
		return nil, &PayloadLengthError{
			Tag:      name,
			Declared: len(payload),
			Consumed: n,
		}
	}
	ext := NewExtension(name, rec)
	ext.raw = slices.Clone(payload)
	return ext, nil
}
