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

// Package aggregate combines several complex image readers into a single
// reader with one flat metadata sequence.
package aggregate

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

const ReaderTypeSICD = "SICD"

// Reader is the view of a per-file reader needed to build a combined index
type Reader interface {
	// ReaderType classifies the reader, for example "SICD"
	ReaderType() string
	// Metadata returns one metadata object per image entry, in order
	Metadata() []any
}

// OpenFunc opens a complex image file
type OpenFunc func(path string) (Reader, error)

// IndexEntry locates one image of the aggregate within its source reader
type IndexEntry struct {
	Reader int
	Entry  int
}

// ComplexReader presents several SICD type readers as one
type ComplexReader struct {
	readers  []Reader
	index    []IndexEntry
	metadata []any
	logger   *slog.Logger
}

type OptionFunc func(*ComplexReader)

// WithLogger specifies the logger object to use
func WithLogger(logger *slog.Logger) OptionFunc {
	return func(c *ComplexReader) {
		c.logger = logger
	}
}

// NewComplexReader builds an aggregate from entries, each either a file path
// opened with open or an already open Reader
func NewComplexReader(open OpenFunc, entries []any, opts ...OptionFunc) (*ComplexReader, error) {
	c := &ComplexReader{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	for i, entry := range entries {
		reader, err := c.resolve(open, i, entry)
		if err != nil {
			return nil, err
		}
		if rt := reader.ReaderType(); rt != ReaderTypeSICD {
			return nil, &ReaderTypeError{Index: i, ReaderType: rt}
		}
		c.readers = append(c.readers, reader)
	}
	for ri, reader := range c.readers {
		for ei, md := range reader.Metadata() {
			c.index = append(c.index, IndexEntry{Reader: ri, Entry: ei})
			c.metadata = append(c.metadata, md)
		}
	}
	c.logger.Debug(
		"built aggregate reader",
		"component", "aggregate",
		"readers", len(c.readers),
		"images", len(c.index),
	)
	return c, nil
}

func (c *ComplexReader) resolve(open OpenFunc, idx int, entry any) (Reader, error) {
	switch e := entry.(type) {
	case string:
		if open == nil {
			return nil, &FileOpenError{
				Path:  e,
				Index: idx,
				Err:   errors.New("no opener configured"),
			}
		}
		reader, err := open(e)
		if err != nil {
			return nil, &FileOpenError{Path: e, Index: idx, Err: err}
		}
		if reader == nil {
			return nil, &FileOpenError{
				Path:  e,
				Index: idx,
				Err:   errors.New("opener returned no reader"),
			}
		}
		c.logger.Debug(
			"opened aggregate entry",
			"component", "aggregate",
			"path", e,
			"index", idx,
		)
		return reader, nil
	case Reader:
		return e, nil
	default:
		return nil, &InvalidEntryError{Index: idx, Type: fmt.Sprintf("%T", entry)}
	}
}

// ReaderType always reports ReaderTypeSICD, so aggregates can be nested
func (c *ComplexReader) ReaderType() string {
	return ReaderTypeSICD
}

// Metadata returns the combined metadata of every reader, in index order
func (c *ComplexReader) Metadata() []any {
	return slices.Clone(c.metadata)
}

// Readers returns the underlying readers in input order
func (c *ComplexReader) Readers() []Reader {
	return slices.Clone(c.readers)
}

// Index maps each aggregate image position to its source reader and entry
func (c *ComplexReader) Index() []IndexEntry {
	return slices.Clone(c.index)
}

// Locate returns the source reader and entry for aggregate image i
func (c *ComplexReader) Locate(i int) (Reader, int, bool) {
	if i < 0 || i >= len(c.index) {
		return nil, 0, false
	}
	ie := c.index[i]
	return c.readers[ie.Reader], ie.Entry, true
}
