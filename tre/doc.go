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

// Package tre dispatches NITF Tagged Record Extensions to their declared schemas.
//
// A Registry is built once from a list of Definitions and is read-only after
// NewRegistry returns, so any number of goroutines may resolve tags and decode
// payloads concurrently. Tags without a definition decode to a raw Extension
// that keeps the payload bytes verbatim, so a stream with unknown extensions
// still parses and re-encodes unchanged.
//
// On the wire each extension is framed as CETAG (6 bytes, space filled), CEL
// (5 decimal digits) and CEL bytes of payload. DecodeStream and EncodeStream
// handle that framing; Decode works on a single tag and payload.
package tre
