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

import "fmt"

// Op identifies one of the binary connectives which can be used to combine two
// truth tables.
type Op uint8

const (
	// AND represents logical conjunction
	AND Op = iota
	// OR represents logical disjunction
	OR
	// XOR represents exclusive disjunction
	XOR
)

func (op Op) apply(lhs, rhs uint8) uint8 {
	switch op {
	case AND:
		return lhs & rhs
	case OR:
		return lhs | rhs
	case XOR:
		return lhs ^ rhs
	}
	//
	panic(fmt.Sprintf("unknown operator (%d)", op))
}

func (op Op) String() string {
	switch op {
	case AND:
		return "∧"
	case OR:
		return "∨"
	case XOR:
		return "⊕"
	}
	//
	return "?"
}
