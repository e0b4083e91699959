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

package aggregate

import (
	"errors"
	"fmt"
)

var (
	ErrFileOpen     = errors.New("aggregate: failed to open file")
	ErrInvalidEntry = errors.New("aggregate: invalid entry")
	ErrReaderType   = errors.New("aggregate: unsupported reader type")
	ErrNoEntries    = errors.New("aggregate: no entries")
)

// FileOpenError wraps an opener failure with the path and the position of the
// entry in the input batch
type FileOpenError struct {
	Path  string
	Index int
	Err   error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf(
		"aggregate: failed to open %s (entry %d) using the complex opener: %v",
		e.Path,
		e.Index,
		e.Err,
	)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

func (*FileOpenError) Is(target error) bool {
	return target == ErrFileOpen
}

// InvalidEntryError reports an entry that is neither a path nor a Reader
type InvalidEntryError struct {
	Index int
	Type  string
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf(
		"aggregate: entry %d must be a file name or a Reader, got %s",
		e.Index,
		e.Type,
	)
}

func (*InvalidEntryError) Is(target error) bool {
	return target == ErrInvalidEntry
}

// ReaderTypeError reports a reader whose type cannot be aggregated
type ReaderTypeError struct {
	Index      int
	ReaderType string
}

func (e *ReaderTypeError) Error() string {
	return fmt.Sprintf(
		"aggregate: entry %d is a %q reader, expected %q",
		e.Index,
		e.ReaderType,
		ReaderTypeSICD,
	)
}

func (*ReaderTypeError) Is(target error) bool {
	return target == ErrReaderType
}
