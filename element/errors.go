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
	"errors"
	"fmt"
)

var (
	ErrSchemaDefinition = errors.New("element: invalid schema definition")
	ErrFieldValidation  = errors.New("element: field validation failed")
	ErrTruncatedRecord  = errors.New("element: truncated record")
	ErrCountMismatch    = errors.New("element: loop count mismatch")
	ErrSchemaMismatch   = errors.New("element: record does not belong to schema")
)

// SchemaDefinitionError reports an inconsistent schema declaration
type SchemaDefinitionError struct {
	Schema string
	Field  string
	Reason string
}

func (e *SchemaDefinitionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("element: schema %s: %s", e.Schema, e.Reason)
	}
	return fmt.Sprintf(
		"element: schema %s: field %s: %s",
		e.Schema,
		e.Field,
		e.Reason,
	)
}

func (*SchemaDefinitionError) Is(target error) bool {
	return target == ErrSchemaDefinition
}

// FieldValidationError reports a value that violates its field descriptor
type FieldValidationError struct {
	Record string
	Field  string
	Value  string
	Reason string
}

func (e *FieldValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf(
			"element: %s.%s: %s",
			e.Record,
			e.Field,
			e.Reason,
		)
	}
	return fmt.Sprintf(
		"element: %s.%s: %s (value %q)",
		e.Record,
		e.Field,
		e.Reason,
		e.Value,
	)
}

func (*FieldValidationError) Is(target error) bool {
	return target == ErrFieldValidation
}

// TruncatedRecordError reports input with fewer bytes than a record or field requires
type TruncatedRecordError struct {
	Record string
	Field  string
	Offset int
	Need   int
	Have   int
}

func (e *TruncatedRecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf(
			"element: %s at offset %d needs at least %d bytes, have %d",
			e.Record,
			e.Offset,
			e.Need,
			e.Have,
		)
	}
	return fmt.Sprintf(
		"element: %s.%s at offset %d needs %d bytes, have %d",
		e.Record,
		e.Field,
		e.Offset,
		e.Need,
		e.Have,
	)
}

func (*TruncatedRecordError) Is(target error) bool {
	return target == ErrTruncatedRecord
}

// CountMismatchError reports a loop whose count disagrees with the available
// bytes (decode) or with the stored sequence (encode)
type CountMismatchError struct {
	Record string
	Field  string
	Count  int
	Actual int
	Err    error
}

func (e *CountMismatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"element: %s.%s: count %d cannot be satisfied: %v",
			e.Record,
			e.Field,
			e.Count,
			e.Err,
		)
	}
	return fmt.Sprintf(
		"element: %s.%s: count %d does not match %d sub-records",
		e.Record,
		e.Field,
		e.Count,
		e.Actual,
	)
}

func (e *CountMismatchError) Unwrap() error { return e.Err }

func (*CountMismatchError) Is(target error) bool {
	return target == ErrCountMismatch
}
