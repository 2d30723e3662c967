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
package truth

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// MaxWidth is the maximum number of variables over which a table can be
// defined.
const MaxWidth = 26

// Table represents a boolean function over the first w variables as a vector
// of 2^w truth values, one byte per row.  Row r holds the value of the function
// when variable i is assigned bit i of r.  Thus, the width of a table
// determines which variables it is defined over, namely 0..w-1, irrespective
// of whether the function actually depends on them.
//
// Tables are linearly owned: Combine consumes both of its operands.  A
// consumed table is detached from its storage and any further use of it
// panics.
type Table struct {
	vector []uint8
}

// Constant constructs a width-0 table holding a given value.
func Constant(val bool) *Table {
	vector := []uint8{0}
	//
	if val {
		vector[0] = 1
	}
	//
	return &Table{vector}
}

// Variable constructs a table of width i+1 which depends only on the iᵗʰ
// variable.  That is, the value at row r is bit i of r.  All lower variables
// are present as "don't care" dimensions.
func Variable(i uint) *Table {
	if i >= MaxWidth {
		panic(fmt.Sprintf("variable index out-of-bounds (%d)", i))
	}
	//
	var (
		half   = 1 << i
		vector = make([]uint8, 2*half)
	)
	//
	for r := half; r < len(vector); r++ {
		vector[r] = 1
	}
	//
	return &Table{vector}
}

// Len returns the number of rows in this table, which is always a power of two.
func (p *Table) Len() uint {
	return uint(len(p.live()))
}

// Width returns the number of variables this table is defined over.
func (p *Table) Width() uint {
	return uint(bits.TrailingZeros(uint(len(p.live()))))
}

// Get returns the value of this table at a given row.
func (p *Table) Get(row uint) bool {
	return p.live()[row] != 0
}

// Bytes returns a copy of the underlying truth values.
func (p *Table) Bytes() []uint8 {
	return slices.Clone(p.live())
}

// Minterms returns the rows of this table which evaluate to true, in
// ascending order.
func (p *Table) Minterms() []uint {
	var rows []uint
	//
	for r, v := range p.live() {
		if v != 0 {
			rows = append(rows, uint(r))
		}
	}
	//
	return rows
}

// Negate flips every value in this table in place.
func (p *Table) Negate() {
	vector := p.live()
	//
	for r := range vector {
		vector[r] ^= 1
	}
}

// Expand tiles this table up to a given width, such that row r of the expanded
// table equals row (r mod n) of the table before expansion (where n is its length).  This has
// no effect if the table is already at least as wide.
func (p *Table) Expand(width uint) {
	if width > MaxWidth {
		panic(fmt.Sprintf("table width out-of-bounds (%d)", width))
	}
	//
	vector := p.live()
	n := 1 << width
	//
	for len(vector) < n {
		vector = append(vector, vector...)
	}
	//
	p.vector = vector
}

// Equals determines whether two tables have the same width and the same
// values.
func (p *Table) Equals(other *Table) bool {
	return slices.Equal(p.live(), other.live())
}

// IsConsumed checks whether this table has been consumed by Combine.
func (p *Table) IsConsumed() bool {
	return p.vector == nil
}

func (p *Table) String() string {
	var builder strings.Builder
	//
	for _, v := range p.live() {
		builder.WriteByte('0' + v)
	}
	//
	return builder.String()
}

// Combine two tables with a given binary operator, consuming both.  The
// narrower table is broadcast across the wider one by indexing it modulo its
// own length, which replicates its values across every assignment of the
// higher variables it is not defined over.  The result has the width of the
// wider operand and reuses its storage.
func Combine(op Op, lhs *Table, rhs *Table) *Table {
	if lhs == rhs {
		panic("cannot combine a truth table with itself")
	}
	//
	var (
		wide   = lhs.live()
		narrow = rhs.live()
	)
	//
	if len(wide) < len(narrow) {
		wide, narrow = narrow, wide
	}
	//
	mask := len(narrow) - 1
	//
	for r := range wide {
		wide[r] = op.apply(wide[r], narrow[r&mask])
	}
	// Detach both operands
	lhs.vector, rhs.vector = nil, nil
	//
	return &Table{wide}
}

func (p *Table) live() []uint8 {
	if p.vector == nil {
		panic("use of consumed truth table")
	}
	//
	return p.vector
}
