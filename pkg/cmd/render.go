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
package cmd

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/consensys/go-logex/pkg/bexp"
	"github.com/consensys/go-logex/pkg/util/termio"
	"gopkg.in/yaml.v3"
)

// FORMATS lists the supported output formats.
var FORMATS = []string{"text", "grid", "json", "yaml", "csv", "minterms"}

// Render the truth table of a parsed expression in a given format.  Only rows
// accepted by the filter are rendered.  Colour is only used by the grid format.
func Render(out io.Writer, format string, result bexp.Result, filter *RowFilter, colour bool) error {
	switch format {
	case "text":
		return renderText(out, result, filter)
	case "grid":
		return renderGrid(out, result, filter, colour)
	case "json":
		return renderJson(out, result, filter)
	case "yaml":
		return renderYaml(out, result, filter)
	case "csv":
		return renderCsv(out, result, filter)
	case "minterms":
		return renderMinterms(out, result, filter)
	}
	//
	return fmt.Errorf("unknown output format \"%s\" (expected one of %s)", format, strings.Join(FORMATS, ", "))
}

// Visit every row of the table accepted by a given filter, in order.
func forEachRow(result bexp.Result, filter *RowFilter, fn func(row uint, value bool) error) error {
	for row := uint(0); row < result.Table.Len(); row++ {
		value := result.Table.Get(row)
		//
		if ok, err := filter.Accepts(row, value); err != nil {
			return err
		} else if ok {
			if err := fn(row, value); err != nil {
				return err
			}
		}
	}
	//
	return nil
}

// Produces the classic layout, where each row shows the bits of the row index
// from bit 0 upwards followed by the result:
//
//	A B | result
//	----+-------
//	0 0 |      0
func renderText(out io.Writer, result bexp.Result, filter *RowFilter) error {
	var (
		writer = bufio.NewWriter(out)
		width  = result.Table.Width()
	)
	//
	for _, name := range result.Identifiers.Names() {
		writer.WriteString(name)
		writer.WriteByte(' ')
	}
	//
	writer.WriteString("| result\n")
	writer.WriteString(strings.Repeat("-", int(2*result.Identifiers.Len())))
	writer.WriteString("+-------\n")
	//
	err := forEachRow(result, filter, func(row uint, value bool) error {
		for i := uint(0); i < width; i++ {
			writer.WriteByte(bitChar(row, i))
			writer.WriteByte(' ')
		}
		//
		_, err := fmt.Fprintf(writer, "| %6d\n", boolToUint(value))
		//
		return err
	})
	//
	if err != nil {
		return err
	}
	//
	return writer.Flush()
}

func renderGrid(out io.Writer, result bexp.Result, filter *RowFilter, colour bool) error {
	var (
		names  = result.Identifiers.Names()
		width  = uint(len(names)) + 1
		header = append(names, "result")
		rows   []uint
		values []bool
	)
	//
	err := forEachRow(result, filter, func(row uint, value bool) error {
		rows = append(rows, row)
		values = append(values, value)
		//
		return nil
	})
	//
	if err != nil {
		return err
	}
	//
	table := termio.NewTablePrinter(width, uint(len(rows))+1)
	table.AnsiEscapes(colour)
	table.SetRow(0, header...)
	table.SetRule(0)
	//
	for i, row := range rows {
		for j := uint(0); j < width-1; j++ {
			table.Set(j, uint(i+1), string(bitChar(row, j)))
		}
		//
		table.Set(width-1, uint(i+1), strconv.FormatUint(uint64(boolToUint(values[i])), 10))
		//
		if values[i] {
			table.SetEscape(width-1, uint(i+1), termio.BoldAnsiEscape().FgColour(termio.TERM_GREEN))
		} else {
			table.SetEscape(width-1, uint(i+1), termio.NewAnsiEscape().FgColour(termio.TERM_RED))
		}
	}
	//
	return table.Print(out)
}

// Document is the structured form of a truth table, as used for the json and
// yaml formats.
type Document struct {
	Variables []string      `json:"variables" yaml:"variables"`
	Rows      []DocumentRow `json:"rows" yaml:"rows"`
}

// DocumentRow is a single row of a Document.  Inputs are given in the same
// order as the variables.
type DocumentRow struct {
	Index  uint   `json:"index" yaml:"index"`
	Inputs []uint `json:"inputs" yaml:"inputs,flow"`
	Result uint   `json:"result" yaml:"result"`
}

// NewDocument constructs the structured form of a truth table, including only
// those rows accepted by the filter.
func NewDocument(result bexp.Result, filter *RowFilter) (Document, error) {
	var (
		width = result.Table.Width()
		doc   = Document{result.Identifiers.Names(), []DocumentRow{}}
	)
	//
	err := forEachRow(result, filter, func(row uint, value bool) error {
		inputs := make([]uint, width)
		//
		for i := range inputs {
			inputs[i] = (row >> i) & 1
		}
		//
		doc.Rows = append(doc.Rows, DocumentRow{row, inputs, boolToUint(value)})
		//
		return nil
	})
	//
	return doc, err
}

func renderJson(out io.Writer, result bexp.Result, filter *RowFilter) error {
	doc, err := NewDocument(result, filter)
	if err != nil {
		return err
	}
	//
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	//
	return encoder.Encode(doc)
}

func renderYaml(out io.Writer, result bexp.Result, filter *RowFilter) error {
	doc, err := NewDocument(result, filter)
	if err != nil {
		return err
	}
	//
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	//
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	//
	return encoder.Close()
}

func renderCsv(out io.Writer, result bexp.Result, filter *RowFilter) error {
	var (
		writer = csv.NewWriter(out)
		width  = result.Table.Width()
	)
	//
	if err := writer.Write(append(result.Identifiers.Names(), "result")); err != nil {
		return err
	}
	//
	err := forEachRow(result, filter, func(row uint, value bool) error {
		record := make([]string, width+1)
		//
		for i := uint(0); i < width; i++ {
			record[i] = string(bitChar(row, i))
		}
		//
		record[width] = strconv.FormatUint(uint64(boolToUint(value)), 10)
		//
		return writer.Write(record)
	})
	//
	if err != nil {
		return err
	}
	//
	writer.Flush()
	//
	return writer.Error()
}

// Lists the rows where the expression holds, as a sum of minterms.
func renderMinterms(out io.Writer, result bexp.Result, filter *RowFilter) error {
	var terms []string
	//
	err := forEachRow(result, filter, func(row uint, value bool) error {
		if value {
			terms = append(terms, strconv.FormatUint(uint64(row), 10))
		}
		//
		return nil
	})
	//
	if err != nil {
		return err
	}
	//
	_, err = fmt.Fprintf(out, "Σm(%s)\n", strings.Join(terms, ", "))
	//
	return err
}

func bitChar(row uint, bit uint) byte {
	return '0' + byte((row>>bit)&1)
}

func boolToUint(b bool) uint {
	if b {
		return 1
	}
	//
	return 0
}
