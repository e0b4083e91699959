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

package unclass

import (
	"github.com/nitfgo/nitf/element"
)

// USE00A summarizes collection geometry for exploitation
var USE00A = element.MustSchema("USE00A", []element.Field{
	element.Integer("ANGLE_TO_NORTH", 3),
	element.String("MEAN_GSD", 5),
	element.String("RSRVD01", 1),
	element.Integer("DYNAMIC_RANGE", 5, element.Optional()),
	element.String("RSRVD02", 3),
	element.String("RSRVD03", 1),
	element.String("RSRVD04", 3),
	element.String("OBL_ANG", 5),
	element.String("ROLL_ANG", 6),
	element.String("RSRVD05", 12),
	element.String("RSRVD06", 15),
	element.String("RSRVD07", 4),
	element.String("RSRVD08", 1),
	element.String("RSRVD09", 3),
	element.String("RSRVD10", 1),
	element.String("RSRVD11", 1),
	element.Integer("N_REF", 2),
	element.Integer("REV_NUM", 5),
	element.Integer("N_SEG", 3),
	element.Integer("MAX_LP_SEG", 6),
	element.String("RSRVD12", 6),
	element.String("RSRVD13", 6),
	element.String("SUN_EL", 5),
	element.String("SUN_AZ", 5),
})
