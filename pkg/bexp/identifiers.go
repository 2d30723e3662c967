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
package bexp

import (
	"errors"
	"fmt"
	"strings"
)

// MaxIdentifiers is the largest number of distinct variables which can appear
// in an expression.
const MaxIdentifiers = 26

// ErrResourceExhausted signals that some fixed capacity has been exceeded.
var ErrResourceExhausted = errors.New("resource exhausted")

// LimitError reports an attempt to register a variable beyond the capacity of
// an identifier table.
type LimitError struct {
	// Name of the variable which could not be registered.
	Name rune
	// Capacity of the table.
	Limit uint
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("too many variables (%c exceeds limit of %d)", e.Name, e.Limit)
}

// Unwrap allows a LimitError to be matched against ErrResourceExhausted.
func (e *LimitError) Unwrap() error {
	return ErrResourceExhausted
}

// Identifiers maps variable names to dense indices, allocated in order of first
// occurrence.  The index of a variable is also the bit it occupies in the row
// index of every truth table.
type Identifiers struct {
	names []rune
	limit uint
}

// NewIdentifiers constructs an empty identifier table with a given capacity,
// which cannot exceed MaxIdentifiers.
func NewIdentifiers(limit uint) *Identifiers {
	if limit > MaxIdentifiers {
		panic(fmt.Sprintf("identifier limit out-of-bounds (%d)", limit))
	}
	//
	return &Identifiers{make([]rune, 0, limit), limit}
}

// Register returns the index of a given variable, allocating the next free
// index if this is its first occurrence.
func (p *Identifiers) Register(name rune) (uint, error) {
	if index, ok := p.IndexOf(name); ok {
		return index, nil
	} else if p.Len() == p.limit {
		return 0, &LimitError{name, p.limit}
	}
	//
	p.names = append(p.names, name)
	//
	return p.Len() - 1, nil
}

// IndexOf returns the index of a given variable, or false if it has not been
// registered.
func (p *Identifiers) IndexOf(name rune) (uint, bool) {
	for i, n := range p.names {
		if n == name {
			return uint(i), true
		}
	}
	//
	return 0, false
}

// Name returns the name of the variable with a given index.
func (p *Identifiers) Name(index uint) string {
	return string(p.names[index])
}

// Names returns the names of all registered variables in order of first
// occurrence.
func (p *Identifiers) Names() []string {
	names := make([]string, len(p.names))
	//
	for i, n := range p.names {
		names[i] = string(n)
	}
	//
	return names
}

// Len returns the number of registered variables.
func (p *Identifiers) Len() uint {
	return uint(len(p.names))
}

func (p *Identifiers) String() string {
	return fmt.Sprintf("[%s]", strings.Join(p.Names(), ","))
}
