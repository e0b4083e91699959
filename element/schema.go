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

package element

import (
	"fmt"
	"slices"
)

// LengthFunc returns the effective byte width of a conditional field given the
// values of the fields declared before it. Zero means the field is absent.
type LengthFunc func(prior Siblings) int

type SchemaOption func(*Schema)

// WithConditional makes the named field's presence depend on earlier siblings
func WithConditional(field string, fn LengthFunc) SchemaOption {
	return func(s *Schema) {
		if s.conditional == nil {
			s.conditional = make(map[string]LengthFunc)
		}
		s.conditional[field] = fn
	}
}

// Schema is the immutable description of a record type
type Schema struct {
	name        string
	fields      []Field
	index       map[string]int
	conditional map[string]LengthFunc
	// count field name -> loop field name
	loops     map[string]string
	length    int
	minLength int
}

// NewSchema validates the declaration and returns the schema. All declaration
// problems are reported here as *SchemaDefinitionError.
func NewSchema(name string, fields []Field, opts ...SchemaOption) (*Schema, error) {
	s := &Schema{
		name:   name,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
		loops:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(fields) == 0 {
		return nil, s.definitionError("", "no fields declared")
	}
	for i, f := range fields {
		f.Allowed = slices.Clone(f.Allowed)
		if err := s.checkField(f); err != nil {
			return nil, err
		}
		s.index[f.Name] = i
		s.fields = append(s.fields, f)
		if f.Kind == KindLoop {
			continue
		}
		s.length += f.Length
		if _, ok := s.conditional[f.Name]; !ok {
			s.minLength += f.Length
		}
	}
	for fieldName, fn := range s.conditional {
		idx, ok := s.index[fieldName]
		if !ok {
			return nil, s.definitionError(fieldName, "conditional on undeclared field")
		}
		if fn == nil {
			return nil, s.definitionError(fieldName, "nil conditional length function")
		}
		if s.fields[idx].Kind == KindLoop {
			return nil, s.definitionError(fieldName, "loop fields cannot be conditional")
		}
		if _, ok := s.loops[fieldName]; ok {
			return nil, s.definitionError(fieldName, "loop count fields cannot be conditional")
		}
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid declaration. It is meant
// for package-level schema variables.
func MustSchema(name string, fields []Field, opts ...SchemaOption) *Schema {
	s, err := NewSchema(name, fields, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) definitionError(field string, format string, args ...any) error {
	return &SchemaDefinitionError{
		Schema: s.name,
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (s *Schema) checkField(f Field) error {
	if f.Name == "" {
		return s.definitionError("", "field %d has no name", len(s.fields))
	}
	if _, ok := s.index[f.Name]; ok {
		return s.definitionError(f.Name, "duplicate field name")
	}
	if f.Kind == KindLoop {
		if f.Element == nil {
			return s.definitionError(f.Name, "loop without element schema")
		}
		countIdx, ok := s.index[f.Count]
		if !ok {
			return s.definitionError(
				f.Name,
				"count field %q must be declared before the loop",
				f.Count,
			)
		}
		if s.fields[countIdx].Kind != KindInteger {
			return s.definitionError(
				f.Name,
				"count field %q is not an integer field",
				f.Count,
			)
		}
		if other, ok := s.loops[f.Count]; ok {
			return s.definitionError(
				f.Name,
				"count field %q already drives loop %s",
				f.Count,
				other,
			)
		}
		s.fields[countIdx].Unsigned = true
		if _, err := s.fields[countIdx].validate(s.name, s.fields[countIdx].Default); err != nil {
			return s.definitionError(f.Count, "invalid default: %v", err)
		}
		s.loops[f.Count] = f.Name
		return nil
	}
	if f.Length <= 0 {
		return s.definitionError(f.Name, "width must be positive, got %d", f.Length)
	}
	if f.Kind == KindEnum {
		if len(f.Allowed) == 0 {
			return s.definitionError(f.Name, "enumeration without allowed values")
		}
		for _, v := range f.Allowed {
			if len(v) > f.Length {
				return s.definitionError(
					f.Name,
					"allowed value %q exceeds width %d",
					v,
					f.Length,
				)
			}
		}
	}
	if f.Default == nil {
		return s.definitionError(f.Name, "missing default value")
	}
	if _, err := f.validate(s.name, f.Default); err != nil {
		return s.definitionError(f.Name, "invalid default: %v", err)
	}
	if f.Kind == KindEnum && !slices.Contains(f.Allowed, f.Default.(string)) {
		return s.definitionError(
			f.Name,
			"default %q is outside the allowed values",
			f.Default,
		)
	}
	return nil
}

func (s *Schema) Name() string {
	return s.name
}

// Fields returns a copy of the declared field ordering
func (s *Schema) Fields() []Field {
	return slices.Clone(s.fields)
}

func (s *Schema) Field(name string) (Field, bool) {
	idx, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[idx], true
}

// Length returns the sum of all declared widths. Loop fields contribute only
// their count field.
func (s *Schema) Length() int {
	return s.length
}

// MinimumLength is a lower bound on the bytes any record of this schema
// occupies: conditional fields and loop bodies count as absent.
func (s *Schema) MinimumLength() int {
	return s.minLength
}

// Conditional reports whether the named field has a conditional length
func (s *Schema) Conditional(name string) bool {
	_, ok := s.conditional[name]
	return ok
}

// New returns a record populated with every field's default. Conditional
// fields start absent and loops start empty.
func (s *Schema) New() *Record {
	r := &Record{
		schema: s,
		values: make(map[string]any, len(s.fields)),
	}
	for _, f := range s.fields {
		switch {
		case f.Kind == KindLoop:
			r.values[f.Name] = []*Record{}
		case s.Conditional(f.Name):
			r.values[f.Name] = nil
		default:
			r.values[f.Name] = f.Default
		}
	}
	return r
}

// effectiveLength returns the width field idx occupies in rec
func (s *Schema) effectiveLength(rec *Record, idx int) (int, error) {
	f := s.fields[idx]
	fn, ok := s.conditional[f.Name]
	if !ok {
		return f.Length, nil
	}
	width := fn(Siblings{rec: rec, limit: idx})
	if width < 0 || width > f.Length {
		return 0, f.invalid(
			s.name,
			nil,
			"conditional width %d outside 0..%d",
			width,
			f.Length,
		)
	}
	return width, nil
}

// Siblings is a read-only view of the fields declared before a conditional field
type Siblings struct {
	rec   *Record
	limit int
}

func (p Siblings) Get(name string) (any, bool) {
	idx, ok := p.rec.schema.index[name]
	if !ok || idx >= p.limit {
		return nil, false
	}
	v, ok := p.rec.values[name]
	return v, ok
}

func (p Siblings) String(name string) string {
	v, _ := p.Get(name)
	s, _ := v.(string)
	return s
}

func (p Siblings) Int(name string) int {
	v, _ := p.Get(name)
	n, _ := toInt(v)
	return n
}
