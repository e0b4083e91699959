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

// Package cbor provides the deterministic CBOR encoding used to export decoded
// NITF records.
//
// It wraps github.com/fxamacker/cbor/v2 with a fixed encoding mode: map keys are
// sorted using the core deterministic rules, so the snapshot of a record is the
// same bytes regardless of Go map iteration order. Snapshots are an export
// format only; the NITF wire form of a record always comes from its schema.
package cbor
