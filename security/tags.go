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

package security

import (
	"github.com/jinzhu/copier"
	"github.com/nitfgo/nitf/element"
)

// TagsV21 is a typed view of a V21 record
type TagsV21 struct {
	CLAS string `nitf:"CLAS"`
	CLSY string `nitf:"CLSY"`
	CODE string `nitf:"CODE"`
	CTLH string `nitf:"CTLH"`
	REL  string `nitf:"REL"`
	DCTP string `nitf:"DCTP"`
	DCDT string `nitf:"DCDT"`
	DCXM string `nitf:"DCXM"`
	DG   string `nitf:"DG"`
	DGDT string `nitf:"DGDT"`
	CLTX string `nitf:"CLTX"`
	CAPT string `nitf:"CAPT"`
	CAUT string `nitf:"CAUT"`
	CRSN string `nitf:"CRSN"`
	SRDT string `nitf:"SRDT"`
	CTLN string `nitf:"CTLN"`
}

// TagsV20 is a typed view of a V20 record. DEVT is nil when absent.
type TagsV20 struct {
	CLAS string  `nitf:"CLAS"`
	CODE string  `nitf:"CODE"`
	CTLH string  `nitf:"CTLH"`
	REL  string  `nitf:"REL"`
	CAUT string  `nitf:"CAUT"`
	CTLN string  `nitf:"CTLN"`
	DWNG string  `nitf:"DWNG"`
	DEVT *string `nitf:"DEVT"`
}

// NewV21 builds a validated V21 record from its typed view. An empty CLAS
// takes the default.
func NewV21(tags TagsV21) (*element.Record, error) {
	if tags.CLAS == "" {
		tags.CLAS = "U"
	}
	rec := V21.New()
	if err := rec.Fill(&tags); err != nil {
		return nil, err
	}
	return rec, nil
}

// NewV20 builds a validated V20 record from its typed view
func NewV20(tags TagsV20) (*element.Record, error) {
	if tags.CLAS == "" {
		tags.CLAS = "U"
	}
	rec := V20.New()
	if err := rec.Fill(&tags); err != nil {
		return nil, err
	}
	return rec, nil
}

func ViewV21(rec *element.Record) (TagsV21, error) {
	var tags TagsV21
	if rec.Schema() != V21 {
		return tags, element.ErrSchemaMismatch
	}
	err := rec.Bind(&tags)
	return tags, err
}

func ViewV20(rec *element.Record) (TagsV20, error) {
	var tags TagsV20
	if rec.Schema() != V20 {
		return tags, element.ErrSchemaMismatch
	}
	err := rec.Bind(&tags)
	return tags, err
}

// UpgradeV20 maps a NITF 2.0 security block onto the 2.1 layout. Fields with
// the same name are copied; the downgrading event text moves to CLTX. Values
// that do not fit the narrower 2.1 widths fail validation.
func UpgradeV20(rec *element.Record) (*element.Record, error) {
	old, err := ViewV20(rec)
	if err != nil {
		return nil, err
	}
	var tags TagsV21
	if err := copier.Copy(&tags, &old); err != nil {
		return nil, err
	}
	if old.DEVT != nil {
		tags.CLTX = *old.DEVT
	}
	return NewV21(tags)
}
