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
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind identifies how a field's bytes are interpreted
type Kind uint8

const (
	KindString Kind = iota
	KindEnum
	KindInteger
	KindLoop
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindInteger:
		return "integer"
	case KindLoop:
		return "loop"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Justify selects which side of the field the fill bytes go on
type Justify uint8

const (
	JustifyLeft Justify = iota
	JustifyRight
)

// Field describes one fixed-width field of a record. Fields are plain values
// copied into a Schema at construction and never mutated afterwards.
type Field struct {
	Name     string
	Length   int
	Kind     Kind
	Allowed  []string
	Default  any
	Required bool
	Justify  Justify
	Fill     byte
	// Integer fields only
	Unsigned bool
	// Loop fields only
	Count   string
	Element *Schema
}

type FieldOption func(*Field)

// WithDefault sets the value used for new records and for empty input on
// fields that are not required
func WithDefault(v any) FieldOption {
	return func(f *Field) {
		f.Default = v
	}
}

// Optional marks the field as not required: empty input resolves to the default
func Optional() FieldOption {
	return func(f *Field) {
		f.Required = false
	}
}

// Unsigned rejects signs on integer input and negative values. Loop count
// fields are always unsigned.
func Unsigned() FieldOption {
	return func(f *Field) {
		f.Unsigned = true
	}
}

func RightJustified() FieldOption {
	return func(f *Field) {
		f.Justify = JustifyRight
	}
}

func WithFill(fill byte) FieldOption {
	return func(f *Field) {
		f.Fill = fill
	}
}

// String declares a space filled text field
func String(name string, length int, opts ...FieldOption) Field {
	f := Field{
		Name:     name,
		Length:   length,
		Kind:     KindString,
		Default:  "",
		Required: true,
		Justify:  JustifyLeft,
		Fill:     ' ',
	}
	return applyFieldOptions(f, opts)
}

// Enum declares a text field whose value must be one of allowed
func Enum(name string, length int, allowed []string, opts ...FieldOption) Field {
	f := Field{
		Name:     name,
		Length:   length,
		Kind:     KindEnum,
		Allowed:  slices.Clone(allowed),
		Default:  "",
		Required: true,
		Justify:  JustifyLeft,
		Fill:     ' ',
	}
	return applyFieldOptions(f, opts)
}

// Integer declares a decimal text field, zero filled and right justified
func Integer(name string, length int, opts ...FieldOption) Field {
	f := Field{
		Name:     name,
		Length:   length,
		Kind:     KindInteger,
		Default:  0,
		Required: true,
		Justify:  JustifyRight,
		Fill:     '0',
	}
	return applyFieldOptions(f, opts)
}

// Loop declares a repeated sub-record whose multiplicity is the value of the
// earlier integer field named count
func Loop(name string, count string, elem *Schema) Field {
	return Field{
		Name:     name,
		Kind:     KindLoop,
		Required: true,
		Count:    count,
		Element:  elem,
	}
}

func applyFieldOptions(f Field, opts []FieldOption) Field {
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func (f Field) invalid(record string, value any, format string, args ...any) error {
	e := &FieldValidationError{
		Record: record,
		Field:  f.Name,
		Reason: fmt.Sprintf(format, args...),
	}
	if value != nil {
		e.Value = fmt.Sprint(value)
	}
	return e
}

// validate checks v against the descriptor and returns the canonical value to store
func (f Field) validate(record string, v any) (any, error) {
	switch f.Kind {
	case KindString, KindEnum:
		s, ok := v.(string)
		if !ok {
			return nil, f.invalid(record, v, "expected string, got %T", v)
		}
		if len(s) > f.Length {
			return nil, f.invalid(
				record,
				s,
				"length %d exceeds width %d",
				len(s),
				f.Length,
			)
		}
		if !utf8.ValidString(s) {
			return nil, f.invalid(record, nil, "value is not valid text")
		}
		if f.Kind == KindEnum && !f.allows(s) {
			return nil, f.invalid(
				record,
				s,
				"not one of [%s]",
				strings.Join(f.Allowed, ","),
			)
		}
		return s, nil
	case KindInteger:
		n, ok := toInt(v)
		if !ok {
			return nil, f.invalid(record, v, "expected integer, got %T", v)
		}
		if f.Unsigned && n < 0 {
			return nil, f.invalid(record, n, "negative value in unsigned field")
		}
		if digits := len(strconv.Itoa(n)); digits > f.Length {
			return nil, f.invalid(
				record,
				n,
				"%d digits exceed width %d",
				digits,
				f.Length,
			)
		}
		return n, nil
	case KindLoop:
		recs, ok := v.([]*Record)
		if !ok {
			return nil, f.invalid(record, nil, "expected []*Record, got %T", v)
		}
		for i, rec := range recs {
			if rec == nil || rec.schema != f.Element {
				return nil, f.invalid(
					record,
					nil,
					"entry %d is not a %s record",
					i,
					f.Element.Name(),
				)
			}
		}
		return slices.Clone(recs), nil
	}
	return nil, f.invalid(record, nil, "unknown field kind %s", f.Kind)
}

func (f Field) allows(s string) bool {
	if def, ok := f.Default.(string); ok && s == def {
		return true
	}
	return slices.Contains(f.Allowed, s)
}

// parse converts raw field bytes to a validated value
func (f Field) parse(record string, raw []byte) (any, error) {
	if len(raw) > f.Length {
		return nil, f.invalid(
			record,
			nil,
			"%d bytes exceed width %d",
			len(raw),
			f.Length,
		)
	}
	if !utf8.Valid(raw) {
		return nil, f.invalid(record, nil, "bytes are not valid text")
	}
	switch f.Kind {
	case KindString, KindEnum:
		var s string
		if f.Justify == JustifyRight {
			s = string(bytes.TrimLeft(raw, string(f.Fill)))
		} else {
			s = string(bytes.TrimRight(raw, string(f.Fill)))
		}
		if s == "" && !f.Required {
			return f.Default, nil
		}
		return f.validate(record, s)
	case KindInteger:
		s := strings.TrimSpace(string(raw))
		if s == "" {
			if !f.Required {
				return f.Default, nil
			}
			return nil, f.invalid(record, nil, "empty integer field")
		}
		if f.Unsigned && (s[0] == '-' || s[0] == '+') {
			return nil, f.invalid(record, s, "sign in unsigned field")
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, f.invalid(record, s, "not a decimal integer")
		}
		return f.validate(record, n)
	}
	return nil, f.invalid(record, nil, "%s fields have no byte form", f.Kind)
}

// blank reports whether raw holds no value: all spaces for integers, all fill
// for text
func (f Field) blank(raw []byte) bool {
	if f.Kind == KindInteger {
		return len(bytes.TrimSpace(raw)) == 0
	}
	return len(bytes.Trim(raw, string(f.Fill))) == 0
}

// blankBytes renders a blank field of the given width
func (f Field) blankBytes(width int) []byte {
	fill := f.Fill
	if f.Kind == KindInteger {
		fill = ' '
	}
	return bytes.Repeat([]byte{fill}, width)
}

// render produces exactly width bytes for v
func (f Field) render(record string, v any, width int) ([]byte, error) {
	switch f.Kind {
	case KindString, KindEnum:
		s, ok := v.(string)
		if !ok {
			return nil, f.invalid(record, v, "expected string, got %T", v)
		}
		if len(s) > width {
			s = s[:width]
		}
		return pad([]byte(s), width, f.Fill, f.Justify), nil
	case KindInteger:
		n, ok := toInt(v)
		if !ok {
			return nil, f.invalid(record, v, "expected integer, got %T", v)
		}
		digits := strconv.Itoa(n)
		if len(digits) > width {
			return nil, f.invalid(
				record,
				n,
				"%d digits exceed width %d",
				len(digits),
				width,
			)
		}
		if n < 0 && f.Fill == '0' {
			// Sign goes ahead of the zero fill
			out := pad([]byte(digits[1:]), width-1, '0', JustifyRight)
			return append([]byte{'-'}, out...), nil
		}
		return pad([]byte(digits), width, f.Fill, f.Justify), nil
	}
	return nil, f.invalid(record, nil, "%s fields have no byte form", f.Kind)
}

func pad(b []byte, width int, fill byte, justify Justify) []byte {
	out := make([]byte, width)
	for i := range out {
		out[i] = fill
	}
	if justify == JustifyRight {
		copy(out[width-len(b):], b)
	} else {
		copy(out, b)
	}
	return out
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	}
	return 0, false
}
