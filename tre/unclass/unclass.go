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

// Package unclass declares unclassified TRE schemas.
//
// Each schema is a package-level variable, validated when the package is
// loaded. Definitions returns them all for a single registration pass.
package unclass

import (
	"github.com/nitfgo/nitf/tre"
)

// Definitions returns every TRE declared in this package
func Definitions() []tre.Definition {
	return []tre.Definition{
		{
			Tag:         "BLOCKA",
			Description: "Image block information",
			Schema:      BLOCKA,
		},
		{
			Tag:         "RSMAPA",
			Description: "Replacement sensor model adjustable parameters",
			Schema:      RSMAPA,
		},
		{
			Tag:         "USE00A",
			Description: "Exploitation usability",
			Schema:      USE00A,
		},
	}
}
