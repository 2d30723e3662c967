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
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/consensys/go-logex/pkg/bexp"
	"github.com/consensys/go-logex/pkg/truth"
	"github.com/consensys/go-logex/pkg/util/source"
	"github.com/consensys/go-logex/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var equivCmd = &cobra.Command{
	Use:   "equiv [flags] expression1 expression2",
	Short: "Check whether two boolean expressions are equivalent.",
	Long: `Check whether two boolean expressions have the same truth table.  Variables
with the same name are the same variable in both expressions.  When they are not
equivalent, the assignments on which they differ are printed.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configure(cmd)
		//
		var (
			lhs = source.NewSourceFile("<expression1>", []byte(args[0]))
			rhs = source.NewSourceFile("<expression2>", []byte(args[1]))
		)
		//
		equiv, err := CheckEquivalence(lhs, rhs, maxVars(cmd))
		if err != nil {
			exitWithParseError(err)
		}
		//
		if err := equiv.Print(os.Stdout, useColour(cmd, os.Stdout)); err != nil {
			log.Error(err)
			os.Exit(3)
		} else if !equiv.Holds() {
			os.Exit(1)
		}
	},
}

// Equivalence is the outcome of comparing the truth tables of two
// expressions.
type Equivalence struct {
	// Variables shared by both expressions
	Identifiers *bexp.Identifiers
	// Tables of both expressions, over all shared variables.
	Lhs, Rhs *truth.Table
	// Rows on which the tables differ.
	Differences []uint
}

// CheckEquivalence parses two expressions against a shared identifier table,
// and compares their truth tables row by row.
func CheckEquivalence(lhs *source.File, rhs *source.File, limit uint) (Equivalence, error) {
	ids := bexp.NewIdentifiers(limit)
	//
	left, err := bexp.Parse(lhs, ids)
	if err != nil {
		return Equivalence{}, err
	}
	//
	right, err := bexp.Parse(rhs, ids)
	if err != nil {
		return Equivalence{}, err
	}
	// The second expression may have introduced further variables.
	left.Table.Expand(ids.Len())
	//
	equiv := Equivalence{ids, left.Table, right.Table, nil}
	//
	for row := uint(0); row < equiv.Lhs.Len(); row++ {
		if equiv.Lhs.Get(row) != equiv.Rhs.Get(row) {
			equiv.Differences = append(equiv.Differences, row)
		}
	}
	//
	log.Debugf("compared %d row(s) over %s, %d differ", equiv.Lhs.Len(), ids, len(equiv.Differences))
	//
	return equiv, nil
}

// Holds determines whether the two expressions are equivalent.
func (p *Equivalence) Holds() bool {
	return len(p.Differences) == 0
}

// Print a summary of this equivalence check, listing any rows which differ.
func (p *Equivalence) Print(out io.Writer, colour bool) error {
	if p.Holds() {
		_, err := fmt.Fprintln(out, "equivalent")
		return err
	}
	//
	if _, err := fmt.Fprintf(out, "not equivalent (%d of %d rows differ)\n", len(p.Differences), p.Lhs.Len()); err != nil {
		return err
	}
	//
	var (
		names = p.Identifiers.Names()
		width = uint(len(names))
		table = termio.NewTablePrinter(width+2, uint(len(p.Differences))+1)
	)
	//
	table.AnsiEscapes(colour)
	table.SetRow(0, append(names, "lhs", "rhs")...)
	table.SetRule(0)
	//
	for i, row := range p.Differences {
		for j := uint(0); j < width; j++ {
			table.Set(j, uint(i+1), string(bitChar(row, j)))
		}
		//
		table.Set(width, uint(i+1), strconv.FormatUint(uint64(boolToUint(p.Lhs.Get(row))), 10))
		table.Set(width+1, uint(i+1), strconv.FormatUint(uint64(boolToUint(p.Rhs.Get(row))), 10))
		table.SetEscape(width, uint(i+1), termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW))
		table.SetEscape(width+1, uint(i+1), termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW))
	}
	//
	return table.Print(out)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(equivCmd)
}
