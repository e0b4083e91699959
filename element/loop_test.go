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
	"strings"
	"testing"

	"github.com/nitfgo/nitf/element"
	"github.com/nitfgo/nitf/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parSchema = element.MustSchema("PAR", []element.Field{
	element.String("PARVAL", 8),
})

var loopSchema = element.MustSchema("Looped", []element.Field{
	element.String("ID", 4),
	element.Integer("NPAR", 2),
	element.Loop("PARs", "NPAR", parSchema),
	element.String("END", 3),
})

func loopFixture(count int, values ...string) []byte {
	parts := []string{test.Text("id", 4), test.Digits(count, 2)}
	for _, v := range values {
		parts = append(parts, test.Text(v, 8))
	}
	parts = append(parts, "end")
	return test.Bytes(parts...)
}

func TestLoopLengths(t *testing.T) {
	assert.Equal(t, 9, loopSchema.Length())
	assert.Equal(t, 9, loopSchema.MinimumLength())
}

func TestLoopDecodeCount(t *testing.T) {
	data := loopFixture(3, "1.0", "2.0", "3.0")
	rec, n, err := loopSchema.Decode(data, 0)
	require.NoError(t, err)
	assert.Equal(t, 9+3*8, n)
	assert.Equal(t, 3, rec.Int("NPAR"))
	pars := rec.Records("PARs")
	require.Len(t, pars, 3)
	for i, want := range []string{"1.0", "2.0", "3.0"} {
		assert.Equal(t, want, pars[i].String("PARVAL"))
		assert.Same(t, parSchema, pars[i].Schema())
	}
	assert.Equal(t, "end", rec.String("END"))
	out, err := rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestLoopDecodeEmpty(t *testing.T) {
	data := loopFixture(0)
	rec, n, err := loopSchema.Decode(data, 0)
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Empty(t, rec.Records("PARs"))
}

func TestLoopDecodeCountExceedsBytes(t *testing.T) {
	data := loopFixture(5, "1.0", "2.0", "3.0")
	_, _, err := loopSchema.Decode(data, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, element.ErrCountMismatch)
	var countErr *element.CountMismatchError
	require.True(t, errors.As(err, &countErr))
	assert.Equal(t, "PARs", countErr.Field)
	assert.Equal(t, 5, countErr.Count)
}

func TestLoopEncodeCountMismatch(t *testing.T) {
	rec, _, err := loopSchema.Decode(loopFixture(3, "a", "b", "c"), 0)
	require.NoError(t, err)
	require.NoError(t, rec.Set("NPAR", 5))
	_, err = rec.Encode()
	require.Error(t, err)
	assert.ErrorIs(t, err, element.ErrCountMismatch)
	var countErr *element.CountMismatchError
	require.True(t, errors.As(err, &countErr))
	assert.Equal(t, 5, countErr.Count)
	assert.Equal(t, 3, countErr.Actual)
}

func TestLoopSetRecords(t *testing.T) {
	rec := loopSchema.New()
	assert.Equal(t, 0, rec.Int("NPAR"))
	var pars []*element.Record
	for _, v := range []string{"x", "y"} {
		par := parSchema.New()
		require.NoError(t, par.Set("PARVAL", v))
		pars = append(pars, par)
	}
	require.NoError(t, rec.SetRecords("PARs", pars))
	assert.Equal(t, 2, rec.Int("NPAR"))
	out, err := rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, "    02x       y          ", string(out))

	// The stored sequence is a copy of the caller's slice
	pars[0] = nil
	assert.NotNil(t, rec.Records("PARs")[0])
}

func TestLoopSetRecordsValidation(t *testing.T) {
	rec := loopSchema.New()
	err := rec.SetRecords("PARs", []*element.Record{pairSchema.New()})
	assert.ErrorIs(t, err, element.ErrFieldValidation)
	err = rec.SetRecords("ID", nil)
	assert.ErrorIs(t, err, element.ErrFieldValidation)
	err = rec.Set("PARs", []*element.Record{})
	assert.ErrorIs(t, err, element.ErrFieldValidation)

	// Two digit count cannot hold 100 entries
	many := make([]*element.Record, 100)
	for i := range many {
		many[i] = parSchema.New()
	}
	err = rec.SetRecords("PARs", many)
	assert.ErrorIs(t, err, element.ErrFieldValidation)
	assert.Empty(t, rec.Records("PARs"))
}

var cellSchema = element.MustSchema("Cell", []element.Field{
	element.String("KIND", 1),
	element.String("NOTE", 4),
}, element.WithConditional("NOTE", func(prior element.Siblings) int {
	if prior.String("KIND") == "N" {
		return 4
	}
	return 0
}))

var rowSchema = element.MustSchema("Row", []element.Field{
	element.Integer("NCELL", 1),
	element.Loop("CELLs", "NCELL", cellSchema),
})

var gridSchema = element.MustSchema("Grid", []element.Field{
	element.Integer("NROW", 1),
	element.Loop("ROWs", "NROW", rowSchema),
})

func TestNestedLoopsAndConditionals(t *testing.T) {
	// 2 rows: [N note, X] and [X]
	data := []byte("2" + "2" + "Nnote" + "X" + "1" + "X")
	rec, n, err := gridSchema.Decode(data, 0)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	rows := rec.Records("ROWs")
	require.Len(t, rows, 2)
	cells := rows[0].Records("CELLs")
	require.Len(t, cells, 2)
	assert.Equal(t, "note", cells[0].String("NOTE"))
	assert.False(t, cells[1].Present("NOTE"))
	require.Len(t, rows[1].Records("CELLs"), 1)

	out, err := rec.Encode()
	require.NoError(t, err)
	assert.Equal(t, data, out)

	again, _, err := gridSchema.Decode(out, 0)
	require.NoError(t, err)
	assert.True(t, rec.Equal(again))

	m := rec.Map()
	rowMaps, ok := m["ROWs"].([]map[string]any)
	require.True(t, ok)
	assert.Len(t, rowMaps, 2)
}

func TestNestedLoopTruncated(t *testing.T) {
	// Second row claims two cells but the buffer ends after one
	data := []byte("2" + "1" + "X" + "2" + "X")
	_, _, err := gridSchema.Decode(data, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, element.ErrCountMismatch)
}

func TestNestedEncodeMismatchPropagates(t *testing.T) {
	rec, _, err := gridSchema.Decode([]byte("1"+"1"+"X"), 0)
	require.NoError(t, err)
	row := rec.Records("ROWs")[0]
	require.NoError(t, row.Set("NCELL", 3))
	_, err = rec.Encode()
	assert.ErrorIs(t, err, element.ErrCountMismatch)
}

func TestRecordEqual(t *testing.T) {
	a, _, err := loopSchema.Decode(loopFixture(1, "v"), 0)
	require.NoError(t, err)
	b, _, err := loopSchema.Decode(loopFixture(1, "v"), 0)
	require.NoError(t, err)
	c, _, err := loopSchema.Decode(loopFixture(1, "w"), 0)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal(textSchema.New()))
	assert.True(t, strings.HasPrefix(string(mustEncode(t, a)), "id  01v"))
}

func mustEncode(t *testing.T, rec *element.Record) []byte {
	t.Helper()
	out, err := rec.Encode()
	require.NoError(t, err)
	return out
}

func TestLoopCountUnsigned(t *testing.T) {
	f, ok := loopSchema.Field("NPAR")
	require.True(t, ok)
	assert.True(t, f.Unsigned)
	data := test.Bytes(test.Text("id", 4), "-1", "end")
	_, _, err := loopSchema.Decode(data, 0)
	assert.ErrorIs(t, err, element.ErrFieldValidation)
}

var wideCountSchema = element.MustSchema("WideCount", []element.Field{
	element.Integer("N", 19),
	element.Loop("ITEMS", "N", element.MustSchema("Item", []element.Field{
		element.String("V", 21),
	})),
})

func TestLoopCountOverflow(t *testing.T) {
	data := test.Bytes("0439208192231179801", test.Text("x", 21))
	_, _, err := wideCountSchema.Decode(data, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, element.ErrCountMismatch)
	assert.ErrorIs(t, err, element.ErrTruncatedRecord)
	var countErr *element.CountMismatchError
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, 439208192231179801, countErr.Count)
}

var emptyElementSchema = element.MustSchema("EmptyElement", []element.Field{
	element.String("FLAG", 1),
	element.Integer("N", 9),
	element.Loop("ITEMS", "N", element.MustSchema("Maybe", []element.Field{
		element.String("V", 4),
	}, element.WithConditional("V", func(element.Siblings) int { return 0 }))),
})

func TestLoopZeroLengthElements(t *testing.T) {
	data := test.Bytes("x", "000100000")
	rec, n, err := emptyElementSchema.Decode(data, 0)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Len(t, rec.Records("ITEMS"), 100000)
}
