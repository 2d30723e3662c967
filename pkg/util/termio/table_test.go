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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Table_01(t *testing.T) {
	var (
		out   strings.Builder
		table = NewTablePrinter(2, 3)
	)
	//
	table.SetRow(0, "A", "result")
	table.SetRow(1, "0", "1")
	table.Set(0, 2, "1")
	table.Set(1, 2, "0")
	table.SetRule(0)
	//
	require.NoError(t, table.Print(&out))
	assert.Equal(t, " A | result |\n---+--------+\n 0 |      1 |\n 1 |      0 |\n", out.String())
}

func Test_Table_02(t *testing.T) {
	var (
		out   strings.Builder
		table = NewTablePrinter(1, 1)
	)
	//
	table.Set(0, 0, "1")
	table.SetEscape(0, 0, NewAnsiEscape().FgColour(TERM_GREEN))
	require.NoError(t, table.Print(&out))
	assert.Equal(t, "\033[32m 1\033[0m |\n", out.String())
	//
	out.Reset()
	table.AnsiEscapes(false)
	require.NoError(t, table.Print(&out))
	assert.Equal(t, " 1 |\n", out.String())
}

func Test_Escape_01(t *testing.T) {
	assert.Equal(t, "\033[1;31m", BoldAnsiEscape().FgColour(TERM_RED).Build())
	assert.Equal(t, "\033[34;43m", NewAnsiEscape().FgColour(TERM_BLUE).BgColour(TERM_YELLOW).Build())
}
