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

// Package nitf ties the record framework together for NITF metadata: the
// default TRE registry and the security block generation for each file
// format version.
//
// Decoding an extension stream with the built-in declarations:
//
//	exts, err := nitf.Extensions().DecodeStream(data)
//
// Decoding the security block of a file header:
//
//	schema, err := nitf.SecuritySchema("NITF02.10")
//	rec, n, err := schema.Decode(header, offset)
package nitf
