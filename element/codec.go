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
	"math"
)

// Decode reads one record starting at data[offset:] and returns it along with
// the number of bytes consumed
func (s *Schema) Decode(data []byte, offset int) (*Record, int, error) {
	if offset < 0 || offset > len(data) {
		return nil, 0, &TruncatedRecordError{
			Record: s.name,
			Offset: offset,
			Need:   s.minLength,
		}
	}
	if have := len(data) - offset; have < s.minLength {
		return nil, 0, &TruncatedRecordError{
			Record: s.name,
			Offset: offset,
			Need:   s.minLength,
			Have:   have,
		}
	}
	rec := &Record{
		schema: s,
		values: make(map[string]any, len(s.fields)),
	}
	pos := offset
	for idx, f := range s.fields {
		if f.Kind == KindLoop {
			n, err := s.decodeLoop(rec, f, data, pos)
			if err != nil {
				return nil, 0, err
			}
			pos += n
			continue
		}
		width, err := s.effectiveLength(rec, idx)
		if err != nil {
			return nil, 0, err
		}
		if width == 0 {
			rec.values[f.Name] = nil
			continue
		}
		if pos+width > len(data) {
			return nil, 0, &TruncatedRecordError{
				Record: s.name,
				Field:  f.Name,
				Offset: pos,
				Need:   width,
				Have:   len(data) - pos,
			}
		}
		raw := data[pos : pos+width]
		v, err := f.parse(s.name, raw)
		if err != nil {
			return nil, 0, err
		}
		rec.values[f.Name] = v
		if !f.Required && f.blank(raw) {
			if rec.blank == nil {
				rec.blank = make(map[string]bool)
			}
			rec.blank[f.Name] = true
		}
		pos += width
	}
	return rec, pos - offset, nil
}

func (s *Schema) decodeLoop(rec *Record, f Field, data []byte, pos int) (int, error) {
	count := rec.Int(f.Count)
	remaining := len(data) - pos
	minLen := f.Element.MinimumLength()
	if count < 0 || (minLen > 0 && count > remaining/minLen) {
		need := math.MaxInt
		if count >= 0 && count <= math.MaxInt/max(minLen, 1) {
			need = count * minLen
		}
		return 0, &CountMismatchError{
			Record: s.name,
			Field:  f.Name,
			Count:  count,
			Err: &TruncatedRecordError{
				Record: f.Element.name,
				Offset: pos,
				Need:   need,
				Have:   remaining,
			},
		}
	}
	start := pos
	recs := make([]*Record, 0, min(count, remaining))
	for range count {
		sub, n, err := f.Element.Decode(data, pos)
		if err != nil {
			if errors.Is(err, ErrTruncatedRecord) {
				return 0, &CountMismatchError{
					Record: s.name,
					Field:  f.Name,
					Count:  count,
					Err:    err,
				}
			}
			return 0, err
		}
		recs = append(recs, sub)
		pos += n
	}
	rec.values[f.Name] = recs
	return pos - start, nil
}

// Encode renders rec, which must have been created by this schema
func (s *Schema) Encode(rec *Record) ([]byte, error) {
	if rec == nil || rec.schema != s {
		return nil, ErrSchemaMismatch
	}
	return s.appendRecord(make([]byte, 0, s.length), rec)
}

func (s *Schema) appendRecord(buf []byte, rec *Record) ([]byte, error) {
	var err error
	for idx, f := range s.fields {
		if f.Kind == KindLoop {
			for _, sub := range rec.Records(f.Name) {
				if buf, err = f.Element.appendRecord(buf, sub); err != nil {
					return nil, err
				}
			}
			continue
		}
		v := rec.values[f.Name]
		if loopName, ok := s.loops[f.Name]; ok {
			actual := len(rec.Records(loopName))
			if count := rec.Int(f.Name); count != actual {
				return nil, &CountMismatchError{
					Record: s.name,
					Field:  loopName,
					Count:  count,
					Actual: actual,
				}
			}
			v = actual
		}
		width, err := s.effectiveLength(rec, idx)
		if err != nil {
			return nil, err
		}
		if width == 0 {
			if v != nil && v != "" {
				return nil, f.invalid(s.name, v, "value set for absent field")
			}
			continue
		}
		if rec.blank[f.Name] {
			buf = append(buf, f.blankBytes(width)...)
			continue
		}
		if v == nil {
			v = f.Default
		}
		out, err := f.render(s.name, v, width)
		if err != nil {
			return nil, err
		}
		buf = append(buf, out...)
	}
	return buf, nil
}
