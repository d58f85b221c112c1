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
package bop

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Descriptors shared across the tests in this package, mimicking a small
// code-evaluation column catalogue.
var (
	colID       = NewColumn("id", KindInteger)
	colStatus   = NewColumn("status", KindString)
	colCodeJava = NewColumn("codeJava", KindString)
	colDone     = NewColumn("done", KindBoolean)
)

func TestShape_OrderInvariance(t *testing.T) {
	base := NewBase("BoP")
	//
	s1, err := base.Shape(colID, colStatus, colCodeJava)
	require.NoError(t, err)
	//
	s2, err := base.Shape(colCodeJava, colID, colStatus)
	require.NoError(t, err)
	// Same object identity, not merely equal-by-value.
	if s1 != s2 {
		t.Errorf("permutations produced distinct shapes %s and %s", s1, s2)
	}
}

func TestShape_Memoization(t *testing.T) {
	base := NewBase("BoP")
	//
	s1 := base.MustShape(colID, colStatus)
	s2 := base.MustShape(colID, colStatus)
	//
	if s1 != s2 {
		t.Errorf("independent requests produced distinct shapes")
	}
	// Duplicates in the argument list collapse away.
	if s3 := base.MustShape(colStatus, colID, colID); s3 != s1 {
		t.Errorf("duplicated descriptor produced distinct shape %s", s3)
	}
}

func TestShape_DescriptorIdentity(t *testing.T) {
	base := NewBase("BoP")
	// Two descriptors with identical name/kind are nonetheless distinct.
	other := NewColumn("id", KindInteger)
	//
	s1 := base.MustShape(colID)
	s2 := base.MustShape(other)
	//
	if s1 == s2 {
		t.Errorf("distinct descriptors were conflated")
	}
}

func TestShape_Unparameterized(t *testing.T) {
	base := NewBase("BoP")
	//
	empty := base.MustShape()
	//
	assert.Equal(t, 0, empty.Width())
	assert.Equal(t, "BoP", empty.String())
	// Still a singleton.
	if empty != base.MustShape() {
		t.Errorf("empty shape is not a singleton")
	}
}

func TestShape_DisplayName(t *testing.T) {
	base := NewBase("BoP")
	shape := base.MustShape(colID, colCodeJava)
	// Columns are sorted by name.
	assert.Equal(t, "BoP[codeJava, id]", shape.String())
	assert.Equal(t, []string{"codeJava", "id"}, shape.ColumnNames())
}

// A descriptor which declares a kind but no usable name.
type namelessColumn struct{}

func (namelessColumn) Name() string { return "" }
func (namelessColumn) Kind() Kind   { return KindString }

// A descriptor which cannot act as a set member.
type sliceColumn []string

func (sliceColumn) Name() string { return "slices" }
func (sliceColumn) Kind() Kind   { return KindString }

func TestShape_InvalidDescriptors(t *testing.T) {
	base := NewBase("BoP")
	//
	_, err := base.Shape(nil)
	assert.ErrorContains(t, err, "not a column descriptor")
	//
	_, err = base.Shape(sliceColumn{})
	assert.ErrorContains(t, err, "not a column descriptor")
	//
	_, err = base.Shape(namelessColumn{})
	assert.ErrorContains(t, err, "malformed column descriptor")
	assert.ErrorContains(t, err, "namelessColumn")
	//
	_, err = base.Shape(NewColumn("x", Kind(99)))
	assert.ErrorContains(t, err, "malformed column descriptor")
	assert.ErrorContains(t, err, "x")
	// Distinct descriptors sharing a name cannot label one table.
	_, err = base.Shape(colID, NewColumn("id", KindString))
	assert.ErrorContains(t, err, "duplicate column name")
}

func TestShape_ErrorNamesOffender(t *testing.T) {
	base := NewBase("BoP")
	//
	_, err := base.Shape(colID, NewColumn("broken", Kind(42)))
	//
	var serr *ShapeError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "broken", serr.Column)
}

func TestShape_ConcurrentRequests(t *testing.T) {
	base := NewBase("BoP")
	columns := []Column{colID, colStatus, colCodeJava, colDone}
	shapes := make([]*ShapedType, 32)
	//
	var wg sync.WaitGroup
	//
	for i := range shapes {
		i := i
		wg.Add(1)
		//
		go func() {
			defer wg.Done()
			// Request the same column set in a random order.
			perm := rand.Perm(len(columns))
			shuffled := make([]Column, len(columns))
			//
			for j, k := range perm {
				shuffled[j] = columns[k]
			}
			//
			shapes[i] = base.MustShape(shuffled...)
		}()
	}
	//
	wg.Wait()
	// Exactly one canonical shape may ever be published for the key.
	for i := 1; i < len(shapes); i++ {
		if shapes[i] != shapes[0] {
			t.Fatalf("concurrent requests published distinct shapes")
		}
	}
}
