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
package set

import (
	"cmp"
	"sort"
)

// SortedSet is an array of unique sorted values (i.e. no duplicates).
type SortedSet[T cmp.Ordered] []T

// NewSortedSet returns an empty sorted set.
func NewSortedSet[T cmp.Ordered]() *SortedSet[T] {
	return &SortedSet[T]{}
}

// Len returns the number of elements in this set.
//
//nolint:revive
func (p *SortedSet[T]) Len() int {
	return len(*p)
}

// Contains returns true if a given element is in the set.
//
//nolint:revive
func (p *SortedSet[T]) Contains(element T) bool {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(*p), func(i int) bool {
		return element <= data[i]
	})
	// Check whether item existed or not.
	return i < len(data) && data[i] == element
}

// Insert an element into this sorted set.
//
//nolint:revive
func (p *SortedSet[T]) Insert(element T) {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(*p), func(i int) bool {
		return element <= data[i]
	})
	// Check whether item existed or not.
	if i >= len(data) || data[i] != element {
		// No, item was not found
		ndata := make([]T, len(data)+1)
		copy(ndata, data[0:i])
		ndata[i] = element
		copy(ndata[i+1:], data[i:])
		*p = ndata
	}
}

// InsertAll inserts zero or more elements into this sorted set.
//
//nolint:revive
func (p *SortedSet[T]) InsertAll(elements ...T) {
	for _, e := range elements {
		p.Insert(e)
	}
}

// SubsetOf checks whether this set is contained within another.  Since both
// sets are sorted, this amounts to a single linear walk over the larger set.
//
//nolint:revive
func (p *SortedSet[T]) SubsetOf(q *SortedSet[T]) bool {
	left := *p
	right := *q
	//
	if len(left) > len(right) {
		return false
	}
	//
	i := 0
	//
	for _, element := range left {
		// Advance right set until element could occur.
		for i < len(right) && right[i] < element {
			i++
		}
		// If it does not occur here, it occurs nowhere.
		if i >= len(right) || right[i] != element {
			return false
		}
	}
	//
	return true
}

// Equals checks whether two sets hold exactly the same elements.
//
//nolint:revive
func (p *SortedSet[T]) Equals(q *SortedSet[T]) bool {
	left := *p
	right := *q
	//
	if len(left) != len(right) {
		return false
	}
	//
	for i, element := range left {
		if right[i] != element {
			return false
		}
	}
	//
	return true
}
