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

package nitf_test

import (
	"testing"

	"github.com/nitfgo/nitf"
	"github.com/nitfgo/nitf/element"
	"github.com/nitfgo/nitf/security"
	"github.com/nitfgo/nitf/tre"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionsShared(t *testing.T) {
	reg := nitf.Extensions()
	assert.Same(t, reg, nitf.Extensions())
	assert.Equal(t, []string{"BLOCKA", "RSMAPA", "USE00A"}, reg.Tags())
}

func TestNewExtensions(t *testing.T) {
	extra := tre.Definition{
		Tag: "LOCAL",
		Schema: element.MustSchema("LOCAL", []element.Field{
			element.String("NOTE", 8),
		}),
	}
	reg, err := nitf.NewExtensions([]tre.Definition{extra})
	require.NoError(t, err)
	assert.Contains(t, reg.Tags(), "LOCAL")
	assert.Contains(t, reg.Tags(), "RSMAPA")
	// The default registry is unaffected
	assert.NotContains(t, nitf.Extensions().Tags(), "LOCAL")

	clash := tre.Definition{Tag: "BLOCKA", Schema: extra.Schema}
	_, err = nitf.NewExtensions([]tre.Definition{clash})
	assert.ErrorIs(t, err, tre.ErrRegistration)
}

var securitySchemaTests = []struct {
	version string
	schema  *element.Schema
}{
	{version: "NITF02.10", schema: security.V21},
	{version: "02.10", schema: security.V21},
	{version: "NITF02.00", schema: security.V20},
	{version: "02.00", schema: security.V20},
	{version: " 02.00 ", schema: security.V20},
}

func TestSecuritySchema(t *testing.T) {
	for _, tc := range securitySchemaTests {
		t.Run(tc.version, func(t *testing.T) {
			schema, err := nitf.SecuritySchema(tc.version)
			require.NoError(t, err)
			assert.Same(t, tc.schema, schema)
		})
	}
}

func TestSecuritySchemaUnknown(t *testing.T) {
	for _, version := range []string{"", "NSIF01.00", "02.20", "NITF"} {
		_, err := nitf.SecuritySchema(version)
		assert.ErrorIs(t, err, nitf.ErrUnknownVersion, version)
	}
	assert.Equal(t, nitf.VersionInvalid, nitf.VersionByName("bogus"))
}

func TestVersionByName(t *testing.T) {
	v := nitf.VersionByName("02.10")
	assert.Equal(t, "NITF02.10", v.Name)
	assert.Equal(t, "MIL-STD-2500C", v.Standard)
}
