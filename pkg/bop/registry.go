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
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/consensys/go-bop/pkg/util/collection/set"
	log "github.com/sirupsen/logrus"
)

// ShapeError signals that a shape was requested over something which is not a
// well-formed column descriptor.
type ShapeError struct {
	// Column identifies the offending descriptor, either by its column name
	// or (when no usable name exists) by its Go type.
	Column string
	// Reason describes what was wrong with the descriptor.
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid shape: %s: %s", e.Column, e.Reason)
}

// Base identifies a family of shaped types, and acts as the parameterization
// engine for that family: every shape of this base is obtained through
// Base.Shape, which memoizes shapes by their (order-invariant) column set.
// The shape with no columns at all is the unparameterized base itself, and
// every bag of the family is an instance of it.
type Base struct {
	name string
	// Guards both maps below.  The registry is append-only for the process
	// lifetime: once a shape has been published for a key, every subsequent
	// request for that key returns the identical *ShapedType.
	mu sync.Mutex
	// Interned identities of every descriptor ever seen by this base.
	ids map[Column]uint
	// Shapes registered so far, keyed by canonical column-id signature.
	shapes map[string]*ShapedType
}

// NewBase constructs a fresh family of shaped types with a given display
// name.
func NewBase(name string) *Base {
	return &Base{
		name:   name,
		ids:    make(map[Column]uint),
		shapes: make(map[string]*ShapedType),
	}
}

// Name returns the display name of this family.
func (p *Base) Name() string {
	return p.name
}

// Shape returns the canonical shaped type for the given set of column
// descriptors.  The result depends only on the set of descriptor identities:
// permutations and duplicates of the argument list all map to the identical
// *ShapedType (reference equality).  Calling Shape with no columns returns
// the unparameterized base shape.
//
// Descriptors are validated up front: anything which cannot act as a set
// member is rejected as "not a column descriptor", and a descriptor with an
// empty name or unrecognised kind is rejected as malformed.  Distinct
// descriptors sharing a name cannot coexist in one shape, since column names
// label the underlying table.
func (p *Base) Shape(columns ...Column) (*ShapedType, error) {
	names := make(map[string]Column, len(columns))
	//
	for _, c := range columns {
		if c == nil {
			return nil, &ShapeError{"<nil>", "not a column descriptor"}
		} else if !reflect.TypeOf(c).Comparable() {
			return nil, &ShapeError{fmt.Sprintf("%T", c), "not a column descriptor"}
		}
		//
		if c.Name() == "" {
			return nil, &ShapeError{fmt.Sprintf("%T", c), "malformed column descriptor (no name)"}
		} else if !c.Kind().Valid() {
			return nil, &ShapeError{c.Name(), "malformed column descriptor (unrecognised kind)"}
		}
		// Same name is fine for the same descriptor listed twice, but never
		// for two distinct descriptors.
		if prev, ok := names[c.Name()]; ok && prev != c {
			return nil, &ShapeError{c.Name(), "duplicate column name"}
		}
		//
		names[c.Name()] = c
	}
	//
	p.mu.Lock()
	defer p.mu.Unlock()
	// Determine order-invariant signature for this column set.
	ids := set.NewSortedSet[uint]()
	for _, c := range columns {
		ids.Insert(p.intern(c))
	}
	//
	key := signature(ids)
	// Return the canonical shape if one was already published.
	if existing, ok := p.shapes[key]; ok {
		return existing, nil
	}
	//
	shape := p.newShape(names, ids)
	p.shapes[key] = shape
	//
	log.Debugf("registered shape %s", shape.name)
	//
	return shape, nil
}

// MustShape is a version of Shape which panics on malformed descriptors, for
// shapes defined statically by domain code.
func (p *Base) MustShape(columns ...Column) *ShapedType {
	shape, err := p.Shape(columns...)
	if err != nil {
		panic(err)
	}
	//
	return shape
}

// Intern a descriptor, assigning it a fresh identity on first sight.  Caller
// must hold the lock.
func (p *Base) intern(c Column) uint {
	id, ok := p.ids[c]
	if !ok {
		id = uint(len(p.ids))
		p.ids[c] = id
	}
	//
	return id
}

// Construct (but do not publish) a new shaped type.  Caller must hold the
// lock.
func (p *Base) newShape(names map[string]Column, ids *set.SortedSet[uint]) *ShapedType {
	members := make(map[Column]struct{}, len(names))
	columns := make([]Column, 0, len(names))
	//
	for _, c := range names {
		members[c] = struct{}{}
		columns = append(columns, c)
	}
	// Sort columns by name, giving a deterministic display name and table
	// layout regardless of how the shape was requested.
	sort.Slice(columns, func(i, j int) bool {
		return columns[i].Name() < columns[j].Name()
	})
	//
	return &ShapedType{
		base:    p,
		name:    shapeName(p.name, columns),
		columns: columns,
		members: members,
		ids:     ids,
	}
}

// Determine the canonical registry key for a set of interned column
// identities.
func signature(ids *set.SortedSet[uint]) string {
	var builder strings.Builder
	//
	for i, id := range *ids {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	//
	return builder.String()
}

// Determine the display name for a shape, e.g. "BoP[codeJava, id]".  The
// unparameterized base renders as just the base name.
func shapeName(base string, columns []Column) string {
	if len(columns) == 0 {
		return base
	}
	//
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name()
	}
	//
	return fmt.Sprintf("%s[%s]", base, strings.Join(names, ", "))
}

// ===================================================================
// Shaped Type
// ===================================================================

// ShapedType is a concrete type of the bag family: a base paired with an
// unordered set of column descriptors.  Shaped types are singletons: for a
// fixed base and column set, exactly one ShapedType ever exists, so equality
// of shapes is simply pointer equality.  Use IsSubShape / IsInstanceOf for
// the subset-based membership relations.
type ShapedType struct {
	base *Base
	name string
	// Columns sorted by name.
	columns []Column
	// Column set, for membership queries.
	members map[Column]struct{}
	// Interned column identities, for subset queries.
	ids *set.SortedSet[uint]
}

// Base returns the family this shape belongs to.
func (p *ShapedType) Base() *Base {
	return p.base
}

// Width returns the number of columns in this shape.
func (p *ShapedType) Width() int {
	return len(p.columns)
}

// Columns returns the column descriptors of this shape, sorted by name.
func (p *ShapedType) Columns() []Column {
	columns := make([]Column, len(p.columns))
	copy(columns, p.columns)
	//
	return columns
}

// ColumnNames returns the column names of this shape, in sorted order.
func (p *ShapedType) ColumnNames() []string {
	names := make([]string, len(p.columns))
	for i, c := range p.columns {
		names[i] = c.Name()
	}
	//
	return names
}

// Has checks whether a given descriptor is a member of this shape's column
// set.
func (p *ShapedType) Has(c Column) bool {
	if c == nil || !reflect.TypeOf(c).Comparable() {
		return false
	}
	//
	_, ok := p.members[c]
	//
	return ok
}

func (p *ShapedType) String() string {
	return p.name
}
