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
package termio

import (
	"fmt"
	"io"
	"strings"
)

// TablePrinter is useful for printing tables to the terminal.  Cells are right
// aligned within their column, and columns are separated by " |".
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]string
	rules         map[uint]bool
	enableEscapes bool
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	escapes := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		escapes[i] = make([]string, width)
	}

	return &TablePrinter{widths, rows, escapes, make(map[uint]bool), true}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(len(val)))
	p.rows[row][col] = val
}

// SetEscape set the colour to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// SetRule requests a horizontal rule to be printed underneath a given row.
func (p *TablePrinter) SetRule(row uint) {
	p.rules[row] = true
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible excape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
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

// Print the table to a given writer.
func (p *TablePrinter) Print(out io.Writer) error {
	var builder strings.Builder
	//
	for i, row := range p.rows {
		escapes := p.escapes[i]
		//
		for j, col := range row {
			// Print colour (if applicable)
			if p.enableEscapes && escapes[j] != "" {
				builder.WriteString(escapes[j])
			}
			//
			fmt.Fprintf(&builder, " %*s", p.widths[j], col)
			// Cancel colour (if applicable)
			if p.enableEscapes && escapes[j] != "" {
				builder.WriteString(ResetAnsiEscape().Build())
			}
			//
			builder.WriteString(" |")
		}
		//
		builder.WriteString("\n")
		//
		if p.rules[uint(i)] {
			p.printRule(&builder)
		}
	}
	//
	_, err := io.WriteString(out, builder.String())
	//
	return err
}

func (p *TablePrinter) printRule(builder *strings.Builder) {
	for _, w := range p.widths {
		builder.WriteString(strings.Repeat("-", int(w)+2))
		builder.WriteString("+")
	}
	//
	builder.WriteString("\n")
}
