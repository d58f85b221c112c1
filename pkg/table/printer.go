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
	"os"
	"strings"

	"golang.org/x/term"
)

// Printer is useful for printing tables to the terminal.
type Printer struct {
	widths []uint
	rows   [][]string
}

// NewPrinter constructs a new printer with given dimensions.
func NewPrinter(width uint, height uint) *Printer {
	widths := make([]uint, width)
	rows := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
	}

	return &Printer{widths, rows}
}

// SetRow sets the contents of an entire row in this table.
func (p *Printer) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	// Done
	p.rows[row] = vals
}

// SetMaxWidth puts an upper bound on the width of any column.
func (p *Printer) SetMaxWidth(m uint) {
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = min(p.widths[i], m)
	}
}

// String renders the table, with one line per row.
func (p *Printer) String() string {
	var builder strings.Builder
	//
	for i := 0; i < len(p.rows); i++ {
		row := p.rows[i]
		for j, col := range row {
			jth := col
			jth_width := p.widths[j]

			if uint(len(col)) > jth_width {
				jth = col[0:jth_width]
			}

			builder.WriteString(fmt.Sprintf(" %*s |", int(jth_width), jth))
		}

		builder.WriteString("\n")
	}
	//
	return builder.String()
}

// String renders this table in a human-readable form: a header row of column
// names, a separator, and one line per row of data.  Null values render as
// "null".  When standard output is a terminal, cell widths are capped so a
// single oversized cell cannot blow out the whole rendering.
func (p *Table) String() string {
	width := uint(len(p.columns))
	printer := NewPrinter(width, uint(p.height)+2)
	// Header row
	header := make([]string, width)
	separator := make([]string, width)
	//
	for j, c := range p.columns {
		header[j] = c.Name()
		separator[j] = strings.Repeat("-", len(c.Name()))
	}
	//
	printer.SetRow(0, header...)
	printer.SetRow(1, separator...)
	// Data rows
	for i := 0; i < p.height; i++ {
		row := make([]string, width)
		//
		for j, c := range p.columns {
			if v, ok := c.Get(i); ok {
				row[j] = fmt.Sprintf("%v", v)
			} else {
				row[j] = "null"
			}
		}
		//
		printer.SetRow(uint(i)+2, row...)
	}
	//
	printer.SetMaxWidth(maxCellWidth())
	//
	return printer.String()
}

// Determine a sensible cap on cell widths, based on the terminal width when
// standard output actually is a terminal.
func maxCellWidth() uint {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w >= 32 {
			return uint(w / 2)
		}
	}
	//
	return 64
}
