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

	"github.com/consensys/go-bop/pkg/table"
	"github.com/pkg/errors"
)

// Record is a single raw row of data, as supplied by external loaders: a
// mapping from field name to scalar value.  The field set of a record need
// not match any shape; construction reconciles the two.
type Record = map[string]any

// Bag is a "bag of properties": an instance of a shaped type, owning one
// table of records whose columns are exactly the shape's column set.  That
// correspondence is an invariant: the table's column labels always equal the
// owning shape's column names, never more and never fewer.
//
// A bag is exclusively owned by whichever scope created (or narrowed) it, and
// is never mutated in place; narrowing always produces a fresh instance.
type Bag struct {
	shape *ShapedType
	data  *table.Table
}

// New constructs a bag of the given shape from zero or more raw records.
// For each record, fields declared by the shape are copied across, fields
// absent from the record become null, and undeclared fields are silently
// dropped.  Given no records, the result is an empty table which still
// carries the full set of correctly labelled columns.
func New(shape *ShapedType, records ...Record) (*Bag, error) {
	descriptors := shape.Columns()
	//
	columns := make([]table.Column, len(descriptors))
	for i, c := range descriptors {
		columns[i] = newTableColumn(c)
	}
	//
	for i, record := range records {
		for j, c := range descriptors {
			value, ok := record[c.Name()]
			//
			if !ok || value == nil {
				columns[j].AppendNull()
			} else if err := columns[j].Append(value); err != nil {
				return nil, fmt.Errorf("row %d: %s", i, err)
			}
		}
	}
	//
	return &Bag{shape, table.New(columns...)}, nil
}

// FromRecords constructs a bag of the given shape from a sequence of raw
// records.
func FromRecords(shape *ShapedType, records []Record) (*Bag, error) {
	return New(shape, records...)
}

// Shape returns the shaped type of this bag.
func (p *Bag) Shape() *ShapedType {
	return p.shape
}

// Columns returns the column descriptors of this bag's shape.
func (p *Bag) Columns() []Column {
	return p.shape.Columns()
}

// Table returns the underlying table of this bag.
func (p *Bag) Table() *table.Table {
	return p.data
}

// Height returns the number of rows in this bag.
func (p *Bag) Height() int {
	return p.data.Height()
}

// Show dumps a human-readable rendering of this bag to standard output.
func (p *Bag) Show() {
	fmt.Printf("%s (%d rows)\n", p.shape, p.data.Height())
	fmt.Print(p.data.String())
}

// Wrap an error arising whilst loading records from a given source.  Load
// failures always surface as errors naming the source; they never silently
// produce an empty bag.
func loadError(err error, source string) error {
	return errors.Wrapf(err, "loading %s", source)
}
