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
	"testing"

	"github.com/consensys/go-logex/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Scanner_01(t *testing.T) {
	checkScanner(t, "", END_OF)
}

func Test_Scanner_02(t *testing.T) {
	checkScanner(t, " \t\r\n", END_OF)
}

func Test_Scanner_03(t *testing.T) {
	checkScanner(t, "+|*&^~!()01", OR, OR, AND, AND, XOR, NOT, NOT, LBRACE, RBRACE, FALSE, TRUE, END_OF)
}

func Test_Scanner_04(t *testing.T) {
	checkScanner(t, "A $ b", VARIABLE, INVALID, INVALID, END_OF)
}

func Test_Scanner_05(t *testing.T) {
	checkScanner(t, "2A", INVALID, VARIABLE, END_OF)
}

func Test_Scanner_06(t *testing.T) {
	var (
		ids     = NewIdentifiers(MaxIdentifiers)
		scanner = NewScanner(source.NewSourceFile("test", []byte("C A C B")), ids)
	)
	//
	for _, expected := range []uint{0, 1, 0, 2} {
		token, err := scanner.Next()
		require.NoError(t, err)
		require.Equal(t, VARIABLE, token.Kind)
		assert.Equal(t, expected, token.Index)
	}
	//
	assert.Equal(t, []string{"C", "A", "B"}, ids.Names())
}

func Test_Scanner_07(t *testing.T) {
	var (
		ids     = NewIdentifiers(MaxIdentifiers)
		scanner = NewScanner(source.NewSourceFile("test", []byte(" (A)  $")), ids)
		spans   = []source.Span{
			source.NewSpan(1, 2), source.NewSpan(2, 3), source.NewSpan(3, 4),
			source.NewSpan(6, 7), source.NewSpan(7, 7), source.NewSpan(7, 7),
		}
	)
	//
	for _, expected := range spans {
		token, err := scanner.Next()
		require.NoError(t, err)
		assert.Equal(t, expected, token.Span)
	}
}

func Test_Scanner_08(t *testing.T) {
	var (
		ids     = NewIdentifiers(2)
		scanner = NewScanner(source.NewSourceFile("test", []byte("A B C")), ids)
	)
	//
	_, err := scanner.Next()
	require.NoError(t, err)
	_, err = scanner.Next()
	require.NoError(t, err)
	_, err = scanner.Next()
	assert.ErrorIs(t, err, ErrResourceExhausted)
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkScanner(t *testing.T, input string, expected ...uint) {
	t.Helper()
	//
	var (
		kinds   []uint
		scanner = NewScanner(source.NewSourceFile("test", []byte(input)), NewIdentifiers(MaxIdentifiers))
	)
	//
	for range expected {
		token, err := scanner.Next()
		require.NoError(t, err)
		//
		kinds = append(kinds, token.Kind)
	}
	//
	assert.Equal(t, expected, kinds, "scanning %q", input)
}
