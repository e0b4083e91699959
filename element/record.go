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
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/nitfgo/nitf/cbor"
)

// StructTag is the struct tag read by Bind and Fill
const StructTag = "nitf"

// Record holds the decoded values of one record. A record is not safe for
// concurrent mutation.
type Record struct {
	schema *Schema
	values map[string]any
	// optional fields decoded from blank input, re-encoded blank until set
	blank map[string]bool
}

func (r *Record) Schema() *Schema {
	return r.schema
}

// Get returns the stored value of a field. Absent conditional fields report nil.
func (r *Record) Get(name string) (any, bool) {
	if _, ok := r.schema.index[name]; !ok {
		return nil, false
	}
	return r.values[name], true
}

// String returns a text field's value, or "" if absent or not text
func (r *Record) String(name string) string {
	s, _ := r.values[name].(string)
	return s
}

// Int returns an integer field's value, or 0 if absent or not an integer
func (r *Record) Int(name string) int {
	n, _ := toInt(r.values[name])
	return n
}

// Records returns a loop field's sub-records
func (r *Record) Records(name string) []*Record {
	recs, _ := r.values[name].([]*Record)
	return recs
}

// Present reports whether the field holds a value (conditional fields may not)
func (r *Record) Present(name string) bool {
	v, ok := r.values[name]
	return ok && v != nil
}

// Set validates v against the field's descriptor and stores it. Nil marks a
// conditional field absent. Loop fields must be set with SetRecords.
func (r *Record) Set(name string, v any) error {
	f, err := r.field(name)
	if err != nil {
		return err
	}
	if f.Kind == KindLoop {
		return f.invalid(r.schema.name, nil, "use SetRecords for loop fields")
	}
	if v == nil {
		if !r.schema.Conditional(name) {
			return f.invalid(r.schema.name, nil, "only conditional fields may be absent")
		}
		r.values[name] = nil
		delete(r.blank, name)
		return nil
	}
	nv, err := f.validate(r.schema.name, v)
	if err != nil {
		return err
	}
	r.values[name] = nv
	delete(r.blank, name)
	return nil
}

// SetRecords stores the sub-records of a loop field and updates its count field
func (r *Record) SetRecords(name string, recs []*Record) error {
	f, err := r.field(name)
	if err != nil {
		return err
	}
	if f.Kind != KindLoop {
		return f.invalid(r.schema.name, nil, "not a loop field")
	}
	if recs == nil {
		recs = []*Record{}
	}
	nv, err := f.validate(r.schema.name, recs)
	if err != nil {
		return err
	}
	countField, _ := r.schema.Field(f.Count)
	count, err := countField.validate(r.schema.name, len(recs))
	if err != nil {
		return err
	}
	r.values[name] = nv
	r.values[f.Count] = count
	delete(r.blank, f.Count)
	return nil
}

func (r *Record) field(name string) (Field, error) {
	f, ok := r.schema.Field(name)
	if !ok {
		return Field{}, &FieldValidationError{
			Record: r.schema.name,
			Field:  name,
			Reason: "no such field",
		}
	}
	return f, nil
}

// Blank reports whether an optional field was decoded from blank input and has
// not been set since. Such fields encode as blanks rather than their default.
func (r *Record) Blank(name string) bool {
	return r.blank[name]
}

// Encode renders the record with its own schema
func (r *Record) Encode() ([]byte, error) {
	return r.schema.Encode(r)
}

// Map returns the values as nested plain maps, loops as slices of maps
func (r *Record) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for _, f := range r.schema.fields {
		v := r.values[f.Name]
		if f.Kind == KindLoop {
			recs := r.Records(f.Name)
			items := make([]map[string]any, 0, len(recs))
			for _, rec := range recs {
				items = append(items, rec.Map())
			}
			out[f.Name] = items
			continue
		}
		out[f.Name] = v
	}
	return out
}

// Equal compares two records field by field, recursing into loops
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.schema != other.schema {
		return false
	}
	for _, f := range r.schema.fields {
		if f.Kind == KindLoop {
			a, b := r.Records(f.Name), other.Records(f.Name)
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if !a[i].Equal(b[i]) {
					return false
				}
			}
			continue
		}
		if r.values[f.Name] != other.values[f.Name] {
			return false
		}
	}
	return true
}

// Bind copies the record's values into the struct pointed to by dest, matching
// fields by their `nitf` struct tag
func (r *Record) Bind(dest any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: StructTag,
		Result:  dest,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(r.Map()); err != nil {
		return fmt.Errorf("bind %s: %w", r.schema.name, err)
	}
	return nil
}

// Fill sets the record's fields from a struct tagged like Bind expects. Struct
// fields with no matching record field are ignored; nil pointers mark
// conditional fields absent.
func (r *Record) Fill(src any) error {
	var values map[string]any
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: StructTag,
		Result:  &values,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(src); err != nil {
		return fmt.Errorf("fill %s: %w", r.schema.name, err)
	}
	for _, f := range r.schema.fields {
		v, ok := values[f.Name]
		if !ok || f.Kind == KindLoop {
			continue
		}
		if err := r.Set(f.Name, derefValue(v)); err != nil {
			return err
		}
	}
	return nil
}

func derefValue(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return v
	}
	if rv.IsNil() {
		return nil
	}
	return rv.Elem().Interface()
}

// MarshalCBOR encodes a deterministic snapshot of the record's values
func (r *Record) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(r.Map())
}
