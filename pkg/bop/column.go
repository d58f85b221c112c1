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
	"github.com/consensys/go-bop/pkg/table"
)

// Kind identifies the primitive datatype of a column.
type Kind uint8

const (
	// KindString is the kind of columns holding string values.
	KindString Kind = iota
	// KindInteger is the kind of columns holding integer values.
	KindInteger
	// KindBoolean is the kind of columns holding boolean values.
	KindBoolean
)

// Valid checks whether this kind is one of the recognised column kinds.
func (k Kind) Valid() bool {
	return k <= KindBoolean
}

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Column is a descriptor for a single named, typed column of a bag.  A
// descriptor is a capability: it carries no behaviour beyond its two
// accessors, and its identity (not its name/kind pair) determines membership
// of a column set.  Thus, two distinct descriptors with identical name and
// kind are distinct columns as far as shapes are concerned.
//
// Descriptors are expected to be defined once, statically, by domain code.
// Either declare a comparable type implementing this interface, or use
// NewColumn.
type Column interface {
	// Name returns the column name.
	Name() string
	// Kind returns the column datatype.
	Kind() Kind
}

// NewColumn constructs a fresh column descriptor with the given name and
// kind.  Every call yields a descriptor with a distinct identity, even for
// identical arguments.
func NewColumn(name string, kind Kind) Column {
	return &column{name, kind}
}

type column struct {
	name string
	kind Kind
}

func (p *column) Name() string { return p.name }

func (p *column) Kind() Kind { return p.kind }

// Construct an empty storage column matching a given descriptor.  Unknown
// kinds are rejected before this point (see Base.Shape), hence the panic.
func newTableColumn(c Column) table.Column {
	switch c.Kind() {
	case KindString:
		return table.NewStringColumn(c.Name())
	case KindInteger:
		return table.NewIntColumn(c.Name())
	case KindBoolean:
		return table.NewBoolColumn(c.Name())
	default:
		panic("unreachable")
	}
}
