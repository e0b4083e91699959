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
	"encoding/hex"
	"slices"

	"github.com/nitfgo/nitf/element"
	"golang.org/x/crypto/blake2b"
)

// Extension is one decoded TRE. Record is nil for tags with no registered
// schema, in which case the payload is kept as an opaque byte blob.
type Extension struct {
	Tag    string
	Record *element.Record
	raw    []byte
}

// NewExtension wraps a record for encoding under tag
func NewExtension(tag string, rec *element.Record) *Extension {
	return &Extension{
		Tag:    tag,
		Record: rec,
	}
}

// NewRawExtension wraps an opaque payload
func NewRawExtension(tag string, payload []byte) *Extension {
	return &Extension{
		Tag: tag,
		raw: slices.Clone(payload),
	}
}

// Known reports whether the payload was decoded with a registered schema
func (e *Extension) Known() bool {
	return e.Record != nil
}

// Raw returns the payload bytes the extension was decoded from, or nil for an
// extension built from a record
func (e *Extension) Raw() []byte {
	return slices.Clone(e.raw)
}

// Payload renders the payload: the encoded record, or the raw bytes
func (e *Extension) Payload() ([]byte, error) {
	if e.Record != nil {
		return e.Record.Encode()
	}
	return slices.Clone(e.raw), nil
}

// Bytes renders the framed extension (CETAG, CEL, payload)
func (e *Extension) Bytes() ([]byte, error) {
	return e.appendTo(nil)
}

// Hash returns the hex BLAKE2b-256 digest of the payload
func (e *Extension) Hash() (string, error) {
	payload, err := e.Payload()
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
