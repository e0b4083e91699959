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
	"github.com/nitfgo/nitf/element"
)

const (
	LengthDigits = 5
	HeaderLength = TagLength + LengthDigits
	MaxPayload   = 99999
)

// header is the CETAG/CEL framing in front of every payload
var header = element.MustSchema("TREHeader", []element.Field{
	element.String("CETAG", TagLength),
	element.Integer("CEL", LengthDigits, element.Unsigned()),
})

// DecodeStream decodes consecutive framed extensions filling data
func (r *Registry) DecodeStream(data []byte) ([]*Extension, error) {
	var ret []*Extension
	pos := 0
	for pos < len(data) {
		hdr, n, err := header.Decode(data, pos)
		if err != nil {
			return nil, err
		}
		tag := hdr.String("CETAG")
		length := hdr.Int("CEL")
		pos += n
		if pos+length > len(data) {
			return nil, &element.TruncatedRecordError{
				Record: tag,
				Offset: pos,
				Need:   length,
				Have:   len(data) - pos,
			}
		}
		ext, err := r.Decode([]byte(tag), data[pos:pos+length])
		if err != nil {
			r.log().Debug(
				"failed to decode TRE",
				"tag",
				tag,
				"offset",
				pos-n,
				"error",
				err,
			)
			return nil, err
		}
		ret = append(ret, ext)
		pos += length
	}
	return ret, nil
}

// EncodeStream renders the extensions back to back with their framing
func EncodeStream(exts []*Extension) ([]byte, error) {
	var buf []byte
	var err error
	for _, ext := range exts {
		if buf, err = ext.appendTo(buf); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func (e *Extension) appendTo(buf []byte) ([]byte, error) {
	payload, err := e.Payload()
	if err != nil {
		return nil, err
	}
	if len(payload) > MaxPayload {
		return nil, &PayloadTooLargeError{Tag: e.Tag, Length: len(payload)}
	}
	hdr := header.New()
	if err := hdr.Set("CETAG", e.Tag); err != nil {
		return nil, err
	}
	if err := hdr.Set("CEL", len(payload)); err != nil {
		return nil, err
	}
	out, err := hdr.Encode()
	if err != nil {
		return nil, err
	}
	buf = append(buf, out...)
	return append(buf, payload...), nil
}
