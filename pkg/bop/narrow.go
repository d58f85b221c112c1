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

// Narrow reduces a bag to a required shape, where possible.  If the required
// column set is a subset of the bag's, the result is a fresh bag whose shape
// is exactly the required one (the canonical shape, so repeated narrowing to
// the same set yields the same shaped type) and whose table is a copy of the
// original projected down to the required columns, preserving row order and
// contents.  The original bag and its table are never touched.
//
// If the required columns are not all present (or the shapes belong to
// different families), the bag is returned unchanged.  That is deliberate:
// narrowing is a convenience, not a gate, and a mismatch is left to surface
// via whatever shape check the consumer itself performs.
func Narrow(required *ShapedType, bag *Bag) *Bag {
	if required == nil || bag == nil || !IsSubShape(bag.shape, required) {
		return bag
	}
	//
	projected, err := bag.data.Select(required.ColumnNames()...)
	// Cannot fail: the bag invariant guarantees every column of a sub-shape
	// is present in the table.
	if err != nil {
		panic(err)
	}
	//
	return &Bag{required, projected}
}

// NarrowFirst narrows the first argument (only) whose shape satisfies the
// required one, leaving all other arguments untouched.  The caller's slice
// is not modified.
func NarrowFirst(required *ShapedType, args []*Bag) []*Bag {
	nargs := make([]*Bag, len(args))
	copy(nargs, args)
	//
	for i, arg := range nargs {
		if arg == nil || !IsSubShape(arg.shape, required) {
			continue
		}
		//
		nargs[i] = Narrow(required, arg)
		//
		break
	}
	//
	return nargs
}

// Narrowing wraps a function requiring a bag of a particular shape, such
// that arguments are narrowed to that shape before every call.  Arguments
// whose shape does not satisfy the required one pass through unchanged (see
// Narrow).
func Narrowing[R any](required *ShapedType, fn func(*Bag) R) func(*Bag) R {
	return func(bag *Bag) R {
		return fn(Narrow(required, bag))
	}
}

// NarrowingN is a variant of Narrowing for functions taking any number of
// bags, where (as with the single-argument form) only the first argument
// satisfying the required shape is narrowed.
func NarrowingN[R any](required *ShapedType, fn func(...*Bag) R) func(...*Bag) R {
	return func(bags ...*Bag) R {
		return fn(NarrowFirst(required, bags)...)
	}
}
