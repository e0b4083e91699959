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

// Package element implements the declarative fixed-width record engine used for
// NITF header blocks and Tagged Record Extensions (TREs).
//
// A Schema is an immutable, ordered list of Field descriptors declared once at
// package initialization. Decoding walks the ordering, asks each field for its
// effective length (static width, or the schema's conditional callback), and
// validates the bytes through the field's descriptor. Encoding walks the same
// ordering, so decode and encode are symmetric by construction.
//
// # Field kinds
//
//   - KindString: space filled text, left justified unless RightJustified
//   - KindEnum: text restricted to a declared allowed set (or the default)
//   - KindInteger: decimal digits, right justified and zero filled
//   - KindLoop: a sequence of sub-records whose multiplicity is an earlier
//     integer field
//
// # Declaring a schema
//
//	var par = element.MustSchema("PAR", []element.Field{
//	    element.String("PARVAL", 21),
//	})
//
//	var tags = element.MustSchema("Example", []element.Field{
//	    element.Enum("CLAS", 1, []string{"U", "C", "S"}, element.WithDefault("U")),
//	    element.String("DWNG", 6),
//	    element.String("DEVT", 40),
//	    element.Integer("NPAR", 2),
//	    element.Loop("PARs", "NPAR", par),
//	}, element.WithConditional("DEVT", func(prior element.Siblings) int {
//	    if prior.String("DWNG") == "999998" {
//	        return 40
//	    }
//	    return 0
//	}))
//
// Conditional callbacks only see fields positioned before the field they size.
// Schema construction problems surface as *SchemaDefinitionError from NewSchema
// (MustSchema panics with it), never at decode time.
package element
