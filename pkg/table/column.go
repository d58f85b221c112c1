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
	"math"
	"strconv"
)

// Column describes a single named, typed column of data and provides a
// mechanism for accessing its values at a given row.  A column distinguishes
// between a value being present and being null (i.e. missing from the source
// record).
type Column interface {
	// Name returns the name of this column.
	Name() string
	// Len returns the number of rows in this column.
	Len() int
	// Get returns the value at a given row, where false indicates the value
	// is null.  Row indices outside the column cause a panic.
	Get(row int) (any, bool)
	// Append adds a value to the end of this column, coercing it into the
	// column's type where that can be done without loss.  An error is
	// returned for values of an incompatible type.
	Append(value any) error
	// AppendNull adds a null value to the end of this column.
	AppendNull()
	// Clone returns a deep copy of this column.
	Clone() Column
}

// ===================================================================
// String Column
// ===================================================================

// StringColumn is a column holding (nullable) string values.
type StringColumn struct {
	name  string
	data  []string
	valid []bool
}

// NewStringColumn constructs an empty string column with a given name.
func NewStringColumn(name string) *StringColumn {
	return &StringColumn{name: name}
}

// Name returns the name of this column.
func (p *StringColumn) Name() string { return p.name }

// Len returns the number of rows in this column.
func (p *StringColumn) Len() int { return len(p.data) }

// Get returns the value at a given row, where false indicates null.
func (p *StringColumn) Get(row int) (any, bool) {
	if !p.valid[row] {
		return nil, false
	}
	//
	return p.data[row], true
}

// Append adds a value to the end of this column.
func (p *StringColumn) Append(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("column %q expects a string value, got %T", p.name, value)
	}
	//
	p.data = append(p.data, s)
	p.valid = append(p.valid, true)
	//
	return nil
}

// AppendNull adds a null value to the end of this column.
func (p *StringColumn) AppendNull() {
	p.data = append(p.data, "")
	p.valid = append(p.valid, false)
}

// Clone returns a deep copy of this column.
func (p *StringColumn) Clone() Column {
	return &StringColumn{p.name, cloneSlice(p.data), cloneSlice(p.valid)}
}

// ===================================================================
// Integer Column
// ===================================================================

// IntColumn is a column holding (nullable) 64bit integer values.
type IntColumn struct {
	name  string
	data  []int64
	valid []bool
}

// NewIntColumn constructs an empty integer column with a given name.
func NewIntColumn(name string) *IntColumn {
	return &IntColumn{name: name}
}

// Name returns the name of this column.
func (p *IntColumn) Name() string { return p.name }

// Len returns the number of rows in this column.
func (p *IntColumn) Len() int { return len(p.data) }

// Get returns the value at a given row, where false indicates null.
func (p *IntColumn) Get(row int) (any, bool) {
	if !p.valid[row] {
		return nil, false
	}
	//
	return p.data[row], true
}

// Append adds a value to the end of this column.  Floating-point values are
// accepted when they hold an integral value, since generic JSON decoding
// produces float64 for all numbers.  Likewise, strings are parsed since CSV
// sources supply all cells as text.
func (p *IntColumn) Append(value any) error {
	var converted int64
	//
	switch v := value.(type) {
	case int:
		converted = int64(v)
	case int8:
		converted = int64(v)
	case int16:
		converted = int64(v)
	case int32:
		converted = int64(v)
	case int64:
		converted = v
	case uint8:
		converted = int64(v)
	case uint16:
		converted = int64(v)
	case uint32:
		converted = int64(v)
	case uint:
		if uint64(v) > math.MaxInt64 {
			return fmt.Errorf("column %q expects an integer, got %d (out of range)", p.name, v)
		}
		//
		converted = int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return fmt.Errorf("column %q expects an integer, got %d (out of range)", p.name, v)
		}
		//
		converted = int64(v)
	case float64:
		if v != math.Trunc(v) {
			return fmt.Errorf("column %q expects an integer, got %v", p.name, v)
		}
		//
		converted = int64(v)
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("column %q expects an integer, got %q", p.name, v)
		}
		//
		converted = i
	default:
		return fmt.Errorf("column %q expects an integer, got %T", p.name, value)
	}
	//
	p.data = append(p.data, converted)
	p.valid = append(p.valid, true)
	//
	return nil
}

// AppendNull adds a null value to the end of this column.
func (p *IntColumn) AppendNull() {
	p.data = append(p.data, 0)
	p.valid = append(p.valid, false)
}

// Clone returns a deep copy of this column.
func (p *IntColumn) Clone() Column {
	return &IntColumn{p.name, cloneSlice(p.data), cloneSlice(p.valid)}
}

// ===================================================================
// Boolean Column
// ===================================================================

// BoolColumn is a column holding (nullable) boolean values.
type BoolColumn struct {
	name  string
	data  []bool
	valid []bool
}

// NewBoolColumn constructs an empty boolean column with a given name.
func NewBoolColumn(name string) *BoolColumn {
	return &BoolColumn{name: name}
}

// Name returns the name of this column.
func (p *BoolColumn) Name() string { return p.name }

// Len returns the number of rows in this column.
func (p *BoolColumn) Len() int { return len(p.data) }

// Get returns the value at a given row, where false indicates null.
func (p *BoolColumn) Get(row int) (any, bool) {
	if !p.valid[row] {
		return nil, false
	}
	//
	return p.data[row], true
}

// Append adds a value to the end of this column.  Strings are parsed since
// CSV sources supply all cells as text.
func (p *BoolColumn) Append(value any) error {
	var converted bool
	//
	switch v := value.(type) {
	case bool:
		converted = v
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("column %q expects a boolean, got %q", p.name, v)
		}
		//
		converted = b
	default:
		return fmt.Errorf("column %q expects a boolean, got %T", p.name, value)
	}
	//
	p.data = append(p.data, converted)
	p.valid = append(p.valid, true)
	//
	return nil
}

// AppendNull adds a null value to the end of this column.
func (p *BoolColumn) AppendNull() {
	p.data = append(p.data, false)
	p.valid = append(p.valid, false)
}

// Clone returns a deep copy of this column.
func (p *BoolColumn) Clone() Column {
	return &BoolColumn{p.name, cloneSlice(p.data), cloneSlice(p.valid)}
}

func cloneSlice[T any](data []T) []T {
	ndata := make([]T, len(data))
	copy(ndata, data)
	//
	return ndata
}
