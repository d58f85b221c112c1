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

// IsInstanceOf checks whether a given value is an instance of a given shaped
// type.  This deliberately does not mean "was constructed with exactly that
// shape": a bag satisfies every shape whose column set is a subset of its
// own, since a consumer expecting certain columns is satisfied by data which
// has at least those columns.  In particular, the unparameterized base shape
// (no columns) accepts every bag of its family, whilst values which are not
// bags of the family at all are never instances of anything.
func IsInstanceOf(value any, shape *ShapedType) bool {
	if shape == nil {
		return false
	}
	//
	bag, ok := value.(*Bag)
	if !ok || bag == nil || bag.shape == nil || bag.shape.base != shape.base {
		return false
	}
	//
	return shape.ids.SubsetOf(bag.shape.ids)
}

// IsSubShape checks whether shape a can stand in wherever shape b is
// required.  Note the direction: a shape with more columns is a sub-shape of
// one with fewer, because it can satisfy every consumer the narrower shape
// satisfies.  Thus IsSubShape(BoP[id, codeJava], BoP[id]) holds but the
// reverse does not.  Shapes of different families are never related, and the
// relation is reflexive: every shape is a sub-shape of itself.
func IsSubShape(a *ShapedType, b *ShapedType) bool {
	if a == nil || b == nil || a.base != b.base {
		return false
	}
	//
	return b.ids.SubsetOf(a.ids)
}
