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

// Package security declares the NITF security tag blocks repeated in the file
// header and in every subheader.
//
// Two generations exist and the caller picks one from the file's version:
//   - V21: NITF 2.1 (MIL-STD-2500C), 167 bytes
//   - V20: NITF 2.0 (MIL-STD-2500A), 167 bytes plus a 40 byte downgrading event
//     present only when DWNG is DowngradeEvent
package security

import (
	"github.com/nitfgo/nitf/element"
)

var (
	classifications = []string{"U", "R", "C", "S", "T"}

	declassificationTypes = []string{"", "DD", "DE", "GD", "GE", "O", "X"}

	declassificationExemptions = []string{
		"",
		"X1", "X2", "X3", "X4", "X5", "X6", "X7", "X8",
		"25X1", "25X2", "25X3", "25X4", "25X5", "25X6", "25X7", "25X8", "25X9",
		"DN10", "DNI",
	}

	downgrades = []string{"", "S", "C", "R"}

	authorityTypes = []string{"", "O", "D", "M"}

	classificationReasons = []string{"", "A", "B", "C", "D", "E", "F", "G"}
)

// V21 is the NITF 2.1 security block
var V21 = element.MustSchema("NITFSecurityTags", []element.Field{
	element.Enum("CLAS", 1, classifications, element.WithDefault("U")),
	element.String("CLSY", 2),
	element.String("CODE", 11),
	element.String("CTLH", 2),
	element.String("REL", 20),
	element.Enum("DCTP", 2, declassificationTypes),
	element.String("DCDT", 8),
	element.Enum("DCXM", 4, declassificationExemptions),
	element.Enum("DG", 1, downgrades),
	element.String("DGDT", 8),
	element.String("CLTX", 43),
	element.Enum("CAPT", 1, authorityTypes),
	element.String("CAUT", 40),
	element.Enum("CRSN", 1, classificationReasons),
	element.String("SRDT", 8),
	element.String("CTLN", 15),
})

// DowngradeEvent is the NITF 2.0 DWNG value announcing a DEVT field
const DowngradeEvent = "999998"

const devtLength = 40

// V20 is the NITF 2.0 security block
var V20 = element.MustSchema("NITFSecurityTags0", []element.Field{
	element.Enum("CLAS", 1, classifications, element.WithDefault("U")),
	element.String("CODE", 40),
	element.String("CTLH", 40),
	element.String("REL", 40),
	element.String("CAUT", 20),
	element.String("CTLN", 20),
	element.String("DWNG", 6),
	element.String("DEVT", devtLength),
}, element.WithConditional("DEVT", func(prior element.Siblings) int {
	if prior.String("DWNG") == DowngradeEvent {
		return devtLength
	}
	return 0
}))
