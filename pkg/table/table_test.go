// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package table

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntColumn_Coercions(t *testing.T) {
	c := NewIntColumn("id")
	// Integral values in their various disguises.
	require.NoError(t, c.Append(1))
	require.NoError(t, c.Append(int64(2)))
	require.NoError(t, c.Append(float64(3)))
	require.NoError(t, c.Append("4"))
	//
	for i := 0; i < 4; i++ {
		v, ok := c.Get(i)
		assert.True(t, ok)
		assert.Equal(t, int64(i+1), v)
	}
	// Narrower integer types convert losslessly.
	require.NoError(t, c.Append(int16(5)))
	require.NoError(t, c.Append(uint64(6)))
	// Lossy or nonsensical values are rejected.
	assert.ErrorContains(t, c.Append(1.5), "id")
	assert.ErrorContains(t, c.Append("five"), "id")
	assert.ErrorContains(t, c.Append(true), "id")
	// Unsigned values beyond the signed range must not wrap negative.
	assert.ErrorContains(t, c.Append(uint64(math.MaxInt64)+1), "out of range")
}

func TestBoolColumn_Coercions(t *testing.T) {
	c := NewBoolColumn("done")
	//
	require.NoError(t, c.Append(true))
	require.NoError(t, c.Append("false"))
	//
	v, _ := c.Get(0)
	assert.Equal(t, true, v)
	w, _ := c.Get(1)
	assert.Equal(t, false, w)
	//
	assert.ErrorContains(t, c.Append(1), "done")
	assert.ErrorContains(t, c.Append("maybe"), "done")
}

func TestStringColumn_Strictness(t *testing.T) {
	c := NewStringColumn("status")
	//
	require.NoError(t, c.Append("ok"))
	assert.ErrorContains(t, c.Append(42), "status")
}

func TestColumn_Nulls(t *testing.T) {
	c := NewIntColumn("id")
	//
	require.NoError(t, c.Append(1))
	c.AppendNull()
	//
	assert.Equal(t, 2, c.Len())
	//
	if _, ok := c.Get(1); ok {
		t.Errorf("expected null at row 1")
	}
}

func buildTable(t *testing.T) *Table {
	t.Helper()
	//
	id := NewIntColumn("id")
	status := NewStringColumn("status")
	//
	for i, s := range []string{"ok", "failed", "ok"} {
		require.NoError(t, id.Append(i))
		require.NoError(t, status.Append(s))
	}
	//
	return New(id, status)
}

func TestTable_Dimensions(t *testing.T) {
	tbl := buildTable(t)
	//
	assert.Equal(t, 2, tbl.Width())
	assert.Equal(t, 3, tbl.Height())
	assert.Equal(t, []string{"id", "status"}, tbl.ColumnNames())
	assert.True(t, tbl.HasColumn("status"))
	assert.False(t, tbl.HasColumn("extra"))
}

func TestTable_Select(t *testing.T) {
	tbl := buildTable(t)
	//
	selected, err := tbl.Select("status")
	require.NoError(t, err)
	//
	assert.Equal(t, []string{"status"}, selected.ColumnNames())
	assert.Equal(t, 3, selected.Height())
	// Row order and contents preserved.
	status, _ := selected.Column("status")
	v, _ := status.Get(1)
	assert.Equal(t, "failed", v)
	// Selection is a deep copy: growing the selected column leaves the
	// original alone.
	require.NoError(t, status.Append("extra"))
	//
	original, _ := tbl.Column("status")
	assert.Equal(t, 3, original.Len())
}

func TestTable_RaggedColumns(t *testing.T) {
	id := NewIntColumn("id")
	require.NoError(t, id.Append(1))
	require.NoError(t, id.Append(2))
	// A column of a different height cannot join the table.
	status := NewStringColumn("status")
	require.NoError(t, status.Append("ok"))
	//
	defer func() {
		if recover() == nil {
			t.Errorf("ragged column should panic")
		}
	}()
	//
	New(id, status)
}

func TestTable_SelectMissing(t *testing.T) {
	tbl := buildTable(t)
	//
	_, err := tbl.Select("id", "nonexistent")
	assert.ErrorContains(t, err, "nonexistent")
}

func TestTable_String(t *testing.T) {
	id := NewIntColumn("id")
	require.NoError(t, id.Append(1))
	id.AppendNull()
	//
	rendered := New(id).String()
	//
	assert.True(t, strings.Contains(rendered, "id"))
	assert.True(t, strings.Contains(rendered, "null"))
	// Header, separator, and one line per row.
	assert.Equal(t, 4, strings.Count(rendered, "\n"))
}
