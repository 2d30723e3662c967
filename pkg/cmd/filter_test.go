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
	"testing"

	"github.com/consensys/go-logex/pkg/bexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Filter_01(t *testing.T) {
	checkFilter(t, "A B", "result", 3)
}

func Test_Filter_02(t *testing.T) {
	checkFilter(t, "A B", "!result && !A", 0, 2)
}

func Test_Filter_03(t *testing.T) {
	checkFilter(t, "A + B C", "row >= 2 and B", 2, 3, 6, 7)
}

func Test_Filter_04(t *testing.T) {
	checkFilter(t, "A", "true", 0, 1)
}

func Test_Filter_05(t *testing.T) {
	filter, err := NewRowFilter("", bexp.NewIdentifiers(bexp.MaxIdentifiers))
	require.NoError(t, err)
	assert.Nil(t, filter)
	// A nil filter accepts everything
	ok, err := filter.Accepts(7, false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func Test_Filter_Invalid_01(t *testing.T) {
	// unknown variable
	checkInvalidFilter(t, "A", "B")
}

func Test_Filter_Invalid_02(t *testing.T) {
	// not a boolean
	checkInvalidFilter(t, "A", "row + 1")
}

func Test_Filter_Invalid_03(t *testing.T) {
	checkInvalidFilter(t, "A", "result &&")
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkFilter(t *testing.T, input string, predicate string, expected ...uint) {
	t.Helper()
	//
	var rows []uint
	//
	result, err := bexp.ParseString(input)
	require.NoError(t, err)
	//
	filter, err := NewRowFilter(predicate, result.Identifiers)
	require.NoError(t, err)
	//
	err = forEachRow(result, filter, func(row uint, _ bool) error {
		rows = append(rows, row)
		return nil
	})
	//
	require.NoError(t, err)
	assert.Equal(t, expected, rows, "filtering %q by %q", input, predicate)
}

func checkInvalidFilter(t *testing.T, input string, predicate string) {
	t.Helper()
	//
	result, err := bexp.ParseString(input)
	require.NoError(t, err)
	//
	_, err = NewRowFilter(predicate, result.Identifiers)
	assert.ErrorContains(t, err, "invalid row filter")
}
