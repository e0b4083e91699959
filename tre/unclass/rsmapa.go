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

var rsmapaPAR = element.MustSchema("RSMAPA.PAR", []element.Field{
	element.String("PARVAL", 21),
})

// RSMAPA carries the adjustable parameters of a replacement sensor model
var RSMAPA = element.MustSchema("RSMAPA", rsmapaFields())

func rsmapaFields() []element.Field {
	fields := []element.Field{
		element.String("IID", 80),
		element.String("EDITION", 40),
		element.String("TID", 40),
		element.Integer("NPAR", 2),
	}
	// Local coordinate system origin and unit vectors
	for _, name := range []string{
		"XUOL", "YUOL", "ZUOL",
		"XUXL", "XUYL", "XUZL",
		"YUXL", "YUYL", "YUZL",
		"ZUXL", "ZUYL", "ZUZL",
	} {
		fields = append(fields, element.String(name, 21))
	}
	// Parameter indices
	for _, name := range []string{
		"IR0", "IRX", "IRY", "IRZ", "IRXX", "IRXY", "IRXZ", "IRYY", "IRYZ", "IRZZ",
		"IC0", "ICX", "ICY", "ICZ", "ICXX", "ICXY", "ICXZ", "ICYY", "ICYZ", "ICZZ",
		"GX0", "GY0", "GZ0", "GXR", "GYR", "GZR", "GS",
		"GXX", "GXY", "GXZ", "GYX", "GYY", "GYZ", "GZX", "GZY", "GZZ",
	} {
		fields = append(fields, element.String(name, 2))
	}
	return append(fields, element.Loop("PARs", "NPAR", rsmapaPAR))
}
