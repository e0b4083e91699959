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

package element_test

import (
	"errors"
	"testing"

	"github.com/nitfgo/nitf/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pairSchema = element.MustSchema("Pair", []element.Field{
	element.String("A", 2),
})

var schemaDefinitionTests = []struct {
	name   string
	fields []element.Field
	opts   []element.SchemaOption
	field  string
}{
	{
		name: "no fields",
	},
	{
		name: "duplicate field",
		fields: []element.Field{
			element.String("A", 1),
			element.String("A", 2),
		},
		field: "A",
	},
	{
		name:   "zero width",
		fields: []element.Field{element.String("A", 0)},
		field:  "A",
	},
	{
		name: "default outside enumeration",
		fields: []element.Field{
			element.Enum("CLAS", 1, []string{"U", "S"}, element.WithDefault("X")),
		},
		field: "CLAS",
	},
	{
		name: "enumeration without default member",
		fields: []element.Field{
			element.Enum("CLAS", 1, []string{"U", "S"}),
		},
		field: "CLAS",
	},
	{
		name: "allowed value wider than field",
		fields: []element.Field{
			element.Enum("DCXM", 2, []string{"", "25X1"}),
		},
		field: "DCXM",
	},
	{
		name:   "string default too wide",
		fields: []element.Field{element.String("A", 2, element.WithDefault("abc"))},
		field:  "A",
	},
	{
		name:   "integer default of wrong type",
		fields: []element.Field{element.Integer("N", 2, element.WithDefault("1"))},
		field:  "N",
	},
	{
		name:   "loop without count field",
		fields: []element.Field{element.Loop("L", "N", pairSchema)},
		field:  "L",
	},
	{
		name: "loop count declared after loop",
		fields: []element.Field{
			element.Loop("L", "N", pairSchema),
			element.Integer("N", 1),
		},
		field: "L",
	},
	{
		name: "loop count is not an integer",
		fields: []element.Field{
			element.String("N", 1),
			element.Loop("L", "N", pairSchema),
		},
		field: "L",
	},
	{
		name: "loop without element schema",
		fields: []element.Field{
			element.Integer("N", 1),
			element.Loop("L", "N", nil),
		},
		field: "L",
	},
	{
		name: "count field shared by two loops",
		fields: []element.Field{
			element.Integer("N", 1),
			element.Loop("L1", "N", pairSchema),
			element.Loop("L2", "N", pairSchema),
		},
		field: "L2",
	},
	{
		name:   "conditional on undeclared field",
		fields: []element.Field{element.String("A", 1)},
		opts: []element.SchemaOption{
			element.WithConditional("B", func(element.Siblings) int { return 0 }),
		},
		field: "B",
	},
	{
		name: "conditional loop count",
		fields: []element.Field{
			element.Integer("N", 1),
			element.Loop("L", "N", pairSchema),
		},
		opts: []element.SchemaOption{
			element.WithConditional("N", func(element.Siblings) int { return 1 }),
		},
		field: "N",
	},
}

func TestSchemaDefinitionErrors(t *testing.T) {
	for _, tc := range schemaDefinitionTests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := element.NewSchema("Bad", tc.fields, tc.opts...)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, element.ErrSchemaDefinition)
			var defErr *element.SchemaDefinitionError
			require.True(t, errors.As(err, &defErr))
			assert.Equal(t, "Bad", defErr.Schema)
			assert.Equal(t, tc.field, defErr.Field)
		})
	}
}

func TestMustSchemaPanics(t *testing.T) {
	assert.Panics(t, func() {
		element.MustSchema("Bad", []element.Field{element.String("A", -1)})
	})
}

func TestSchemaIsolatedFromDeclaration(t *testing.T) {
	allowed := []string{"U", "S"}
	fields := []element.Field{
		element.Enum("CLAS", 1, allowed, element.WithDefault("U")),
	}
	s := element.MustSchema("Copy", fields)
	allowed[1] = "X"
	fields[0].Allowed[1] = "X"
	fields[0].Length = 9
	rec := s.New()
	assert.NoError(t, rec.Set("CLAS", "S"))
	assert.Error(t, rec.Set("CLAS", "X"))
	f, ok := s.Field("CLAS")
	require.True(t, ok)
	assert.Equal(t, 1, f.Length)
	_, ok = s.Field("MISSING")
	assert.False(t, ok)
}

const downgradeSentinel = "999998"

var downgradeSchema = element.MustSchema("Downgrade", []element.Field{
	element.Enum("CLAS", 1, []string{"U", "C", "S"}, element.WithDefault("U")),
	element.String("DWNG", 6),
	element.String("DEVT", 10),
}, element.WithConditional("DEVT", func(prior element.Siblings) int {
	if prior.String("DWNG") == downgradeSentinel {
		return 10
	}
	return 0
}))

func TestConditionalMinimumLength(t *testing.T) {
	assert.Equal(t, 17, downgradeSchema.Length())
	assert.Equal(t, 7, downgradeSchema.MinimumLength())
	assert.True(t, downgradeSchema.Conditional("DEVT"))
	assert.False(t, downgradeSchema.Conditional("DWNG"))
}

func TestConditionalPresent(t *testing.T) {
	data := []byte("S999998event text")
	rec, n, err := downgradeSchema.Decode(data, 0)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.True(t, rec.Present("DEVT"))
	assert.Equal(t, "event text", rec.String("DEVT"))
	out, err := rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestConditionalAbsent(t *testing.T) {
	data := []byte("U999999")
	rec, n, err := downgradeSchema.Decode(data, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.False(t, rec.Present("DEVT"))
	v, ok := rec.Get("DEVT")
	assert.True(t, ok)
	assert.Nil(t, v)
	out, err := rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestConditionalPresentButTruncated(t *testing.T) {
	_, _, err := downgradeSchema.Decode([]byte("S999998short"), 0)
	require.Error(t, err)
	var truncErr *element.TruncatedRecordError
	require.True(t, errors.As(err, &truncErr))
	assert.Equal(t, "DEVT", truncErr.Field)
	assert.Equal(t, 10, truncErr.Need)
	assert.Equal(t, 5, truncErr.Have)
}

func TestConditionalEncode(t *testing.T) {
	rec := downgradeSchema.New()
	assert.False(t, rec.Present("DEVT"))
	out, err := rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, "U      ", string(out))

	// Present but unset renders the default
	require.NoError(t, rec.Set("DWNG", downgradeSentinel))
	out, err = rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, "U999998          ", string(out))

	require.NoError(t, rec.Set("DEVT", "lifted"))
	out, err = rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, "U999998lifted    ", string(out))

	// A value on an absent field is never silently dropped
	require.NoError(t, rec.Set("DWNG", ""))
	_, err = rec.Encode()
	assert.ErrorIs(t, err, element.ErrFieldValidation)

	require.NoError(t, rec.Set("DEVT", nil))
	out, err = rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, "U      ", string(out))
}

func TestConditionalSeesOnlyEarlierFields(t *testing.T) {
	var sawLater, sawEarlier bool
	s := element.MustSchema("Forward", []element.Field{
		element.String("A", 1),
		element.String("B", 1),
		element.String("C", 1),
	}, element.WithConditional("B", func(prior element.Siblings) int {
		_, sawEarlier = prior.Get("A")
		_, sawLater = prior.Get("C")
		return 1
	}))
	rec := s.New()
	require.NoError(t, rec.Set("C", "z"))
	_, err := rec.Encode()
	require.NoError(t, err)
	assert.True(t, sawEarlier)
	assert.False(t, sawLater)
}

func TestConditionalWidthOutOfRange(t *testing.T) {
	s := element.MustSchema("Wide", []element.Field{
		element.String("A", 2),
	}, element.WithConditional("A", func(element.Siblings) int { return 3 }))
	_, _, err := s.Decode([]byte("abc"), 0)
	assert.ErrorIs(t, err, element.ErrFieldValidation)
}
