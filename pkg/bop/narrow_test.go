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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrow_Projection(t *testing.T) {
	base := NewBase("BoP")
	wide := base.MustShape(colID, colCodeJava)
	required := base.MustShape(colCodeJava)
	//
	bag, err := New(wide, Record{"id": 1, "codeJava": "class A {}"})
	require.NoError(t, err)
	//
	narrowed := Narrow(required, bag)
	// Fresh instance of exactly the required shape.
	assert.NotSame(t, bag, narrowed)
	assert.Same(t, required, narrowed.Shape())
	assert.Equal(t, []string{"codeJava"}, narrowed.Table().ColumnNames())
	// Row contents preserved.
	code, _ := narrowed.Table().Column("codeJava")
	v, ok := code.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "class A {}", v)
	// Original untouched: same shape, still both columns.
	assert.Same(t, wide, bag.Shape())
	assert.Equal(t, []string{"codeJava", "id"}, bag.Table().ColumnNames())
	//
	id, _ := bag.Table().Column("id")
	w, _ := id.Get(0)
	assert.Equal(t, int64(1), w)
}

func TestNarrow_SameShape(t *testing.T) {
	base := NewBase("BoP")
	shape := base.MustShape(colID)
	//
	bag, err := New(shape, Record{"id": 7})
	require.NoError(t, err)
	// Narrowing to its own shape still produces a fresh instance.
	narrowed := Narrow(shape, bag)
	assert.NotSame(t, bag, narrowed)
	assert.Same(t, shape, narrowed.Shape())
	assert.Equal(t, 1, narrowed.Height())
}

func TestNarrow_Refusal(t *testing.T) {
	base := NewBase("BoP")
	required := base.MustShape(colCodeJava)
	//
	bag, err := New(base.MustShape(colID), Record{"id": 1})
	require.NoError(t, err)
	// Required columns not present, so the argument passes through
	// unchanged rather than being rejected.
	narrowed := Narrow(required, bag)
	assert.Same(t, bag, narrowed)
	// Any shape check inside the consumer then evaluates false.
	assert.False(t, IsInstanceOf(narrowed, required))
}

func TestNarrow_OtherFamily(t *testing.T) {
	base := NewBase("BoP")
	other := NewBase("Other")
	//
	bag, err := New(other.MustShape(colID), Record{"id": 1})
	require.NoError(t, err)
	//
	assert.Same(t, bag, Narrow(base.MustShape(colID), bag))
}

func TestNarrowFirst_OnlyFirstMatch(t *testing.T) {
	base := NewBase("BoP")
	wide := base.MustShape(colID, colStatus)
	required := base.MustShape(colID)
	//
	first, err := New(wide, Record{"id": 1, "status": "ok"})
	require.NoError(t, err)
	second, err := New(wide, Record{"id": 2, "status": "ok"})
	require.NoError(t, err)
	//
	args := []*Bag{first, second}
	nargs := NarrowFirst(required, args)
	// First matching argument narrowed, all others untouched.
	assert.NotSame(t, first, nargs[0])
	assert.Same(t, required, nargs[0].Shape())
	assert.Same(t, second, nargs[1])
	// Caller's slice is not modified.
	assert.Same(t, first, args[0])
}

func TestNarrowFirst_SkipsNonMatches(t *testing.T) {
	base := NewBase("BoP")
	required := base.MustShape(colStatus)
	//
	mismatch, err := New(base.MustShape(colID), Record{"id": 1})
	require.NoError(t, err)
	match, err := New(base.MustShape(colID, colStatus), Record{"id": 2, "status": "ok"})
	require.NoError(t, err)
	//
	nargs := NarrowFirst(required, []*Bag{nil, mismatch, match})
	//
	assert.Nil(t, nargs[0])
	assert.Same(t, mismatch, nargs[1])
	assert.Same(t, required, nargs[2].Shape())
}

func TestNarrowing_Wrapper(t *testing.T) {
	base := NewBase("BoP")
	wide := base.MustShape(colID, colCodeJava)
	required := base.MustShape(colCodeJava)
	//
	bag, err := New(wide, Record{"id": 1, "codeJava": "class A {}"})
	require.NoError(t, err)
	// The callee observes an instance of exactly the required shape.
	callee := Narrowing(required, func(arg *Bag) bool {
		return arg.Shape() == required && !IsInstanceOf(arg, wide)
	})
	//
	assert.True(t, callee(bag))
	// And with a non-matching argument, the original arrives unchanged.
	small, err := New(base.MustShape(colID), Record{"id": 3})
	require.NoError(t, err)
	//
	passedThrough := Narrowing(required, func(arg *Bag) bool {
		return arg == small
	})
	//
	assert.True(t, passedThrough(small))
}

func TestNarrowingN_Wrapper(t *testing.T) {
	base := NewBase("BoP")
	wide := base.MustShape(colID, colStatus)
	required := base.MustShape(colID)
	//
	first, err := New(wide, Record{"id": 1, "status": "ok"})
	require.NoError(t, err)
	second, err := New(wide, Record{"id": 2, "status": "ok"})
	require.NoError(t, err)
	//
	callee := NarrowingN(required, func(args ...*Bag) bool {
		return args[0].Shape() == required && args[1] == second
	})
	//
	assert.True(t, callee(first, second))
}
