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

// BLOCKA locates an image block on the ground
var BLOCKA = element.MustSchema("BLOCKA", []element.Field{
	element.Integer("BLOCK_INSTANCE", 2),
	element.Integer("N_GRAY", 5),
	element.Integer("L_LINES", 5),
	element.String("LAYOVER_ANGLE", 3),
	element.String("SHADOW_ANGLE", 3),
	element.String("RESERVED1", 16),
	element.String("FRLC_LOC", 21),
	element.String("LRLC_LOC", 21),
	element.String("LRFC_LOC", 21),
	element.String("FRFC_LOC", 21),
	element.String("RESERVED2", 5),
})
