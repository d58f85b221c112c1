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
	"fmt"
)

// Table is a collection of equal-height columns of data, stored column-wise.
// Tables are exclusively owned by whatever constructed them; operations which
// derive one table from another (e.g. Select) always deep-copy the underlying
// column data.
type Table struct {
	// Holds the maximum height of any column in the table.
	height int
	// Columns of this table, in declaration order.
	columns []Column
}

// New constructs a table from a given set of columns.  Column names must be
// unique and all columns must have the same height; violating either is a
// programming error.
func New(columns ...Column) *Table {
	p := new(Table)
	//
	for _, c := range columns {
		p.AddColumn(c)
	}
	//
	return p
}

// Width returns the number of columns in this table.
func (p *Table) Width() int {
	return len(p.columns)
}

// Height returns the number of rows in this table.
func (p *Table) Height() int {
	return p.height
}

// ColumnNames returns the names of all columns, in declaration order.
func (p *Table) ColumnNames() []string {
	names := make([]string, len(p.columns))
	for i, c := range p.columns {
		names[i] = c.Name()
	}
	//
	return names
}

// Column returns the column with the given name, or false if no such column
// exists.
func (p *Table) Column(name string) (Column, bool) {
	for _, c := range p.columns {
		if c.Name() == name {
			return c, true
		}
	}
	// Column does not exist
	return nil, false
}

// ColumnIndex returns the ith column in this table.
func (p *Table) ColumnIndex(index int) Column {
	return p.columns[index]
}

// HasColumn checks whether the table has a given column or not.
func (p *Table) HasColumn(name string) bool {
	_, ok := p.Column(name)
	return ok
}

// AddColumn adds a new column of data to this table.  The first column fixes
// the height of the table; subsequent columns must match it.
func (p *Table) AddColumn(column Column) {
	// Sanity check the column does not already exist.
	if p.HasColumn(column.Name()) {
		panic(fmt.Sprintf("column %q already exists", column.Name()))
	}
	// Sanity check the column is not ragged.
	if len(p.columns) != 0 && column.Len() != p.height {
		panic(fmt.Sprintf("column %q has height %d, expected %d", column.Name(), column.Len(), p.height))
	}
	// Append it
	p.columns = append(p.columns, column)
	//
	p.height = column.Len()
}

// Select returns a new table restricted to the given columns (in the given
// order), preserving row order and contents.  Column data is deep-copied, so
// the original table is unaffected by anything done to the selection.  An
// error is returned if any requested column does not exist.
func (p *Table) Select(names ...string) (*Table, error) {
	selected := new(Table)
	//
	for _, name := range names {
		c, ok := p.Column(name)
		if !ok {
			return nil, fmt.Errorf("table has no column %q", name)
		}
		//
		selected.AddColumn(c.Clone())
	}
	// Selecting zero columns still preserves the height.
	selected.height = p.height
	//
	return selected, nil
}

// Clone creates an identical copy of this table.
func (p *Table) Clone() *Table {
	clone := new(Table)
	clone.height = p.height
	//
	for _, c := range p.columns {
		clone.columns = append(clone.columns, c.Clone())
	}
	//
	return clone
}
