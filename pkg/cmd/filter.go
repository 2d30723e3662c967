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

	"github.com/consensys/go-logex/pkg/bexp"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// RowFilter selects rows of a truth table using a predicate over the variables
// of the expression (as booleans), the row index (row) and the value of the
// expression (result).  For example, "result && !A".
type RowFilter struct {
	program *vm.Program
	names   []string
}

// NewRowFilter compiles a predicate for the rows of a table over the given
// identifiers.  An empty predicate yields a nil filter, which accepts every
// row.
func NewRowFilter(predicate string, ids *bexp.Identifiers) (*RowFilter, error) {
	if predicate == "" {
		return nil, nil
	}
	//
	filter := &RowFilter{nil, ids.Names()}
	//
	program, err := expr.Compile(predicate, expr.Env(filter.environment(0, false)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid row filter: %w", err)
	}
	//
	filter.program = program
	//
	return filter, nil
}

// Accepts determines whether a given row (with a given result) is selected by
// this filter.
func (p *RowFilter) Accepts(row uint, result bool) (bool, error) {
	if p == nil {
		return true, nil
	}
	//
	out, err := expr.Run(p.program, p.environment(row, result))
	if err != nil {
		return false, fmt.Errorf("row filter failed on row %d: %w", row, err)
	}
	//
	return out.(bool), nil
}

func (p *RowFilter) environment(row uint, result bool) map[string]any {
	env := make(map[string]any, len(p.names)+2)
	//
	for i, name := range p.names {
		env[name] = (row>>i)&1 == 1
	}
	//
	env["row"] = int(row)
	env["result"] = result
	//
	return env
}
