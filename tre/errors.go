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
	"errors"
	"fmt"
)

var (
	ErrRegistration  = errors.New("tre: invalid registration")
	ErrPayloadLength = errors.New("tre: payload length mismatch")
	ErrPayloadSize   = errors.New("tre: payload too large")
)

// RegistrationError reports a definition rejected by NewRegistry
type RegistrationError struct {
	Tag    string
	Reason string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("tre: cannot register %q: %s", e.Tag, e.Reason)
}

func (*RegistrationError) Is(target error) bool {
	return target == ErrRegistration
}

// PayloadLengthError reports a payload whose size disagrees with its record
type PayloadLengthError struct {
	Tag      string
	Declared int
	Consumed int
}

func (e *PayloadLengthError) Error() string {
	return fmt.Sprintf(
		"tre: %s payload is %d bytes but the record consumed %d",
		e.Tag,
		e.Declared,
		e.Consumed,
	)
}

func (*PayloadLengthError) Is(target error) bool {
	return target == ErrPayloadLength
}

// PayloadTooLargeError reports a payload that cannot be framed in a CEL field
type PayloadTooLargeError struct {
	Tag    string
	Length int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf(
		"tre: %s payload is %d bytes, the limit is %d",
		e.Tag,
		e.Length,
		MaxPayload,
	)
}

func (*PayloadTooLargeError) Is(target error) bool {
	return target == ErrPayloadSize
}
