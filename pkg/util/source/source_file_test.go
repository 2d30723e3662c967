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
package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SourceFile_01(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("A +\nB ^ C\n"))
	//
	checkEnclosingLine(t, srcfile, 0, 1, "A +")
	checkEnclosingLine(t, srcfile, 2, 1, "A +")
	checkEnclosingLine(t, srcfile, 4, 2, "B ^ C")
	checkEnclosingLine(t, srcfile, 8, 2, "B ^ C")
	// end of input
	checkEnclosingLine(t, srcfile, 10, 2, "B ^ C")
}

func Test_SourceFile_04(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("A +\n\n"))
	// trailing blank lines are skipped at end of input
	checkEnclosingLine(t, srcfile, 5, 1, "A +")
	// input which is entirely blank
	checkEnclosingLine(t, NewSourceFile("test", []byte(" \n")), 2, 2, "")
}

func Test_SourceFile_02(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("(A ∧ B"))
	// Spans are over characters, not bytes
	assert.Equal(t, 6, len(srcfile.Contents()))
	//
	err := srcfile.SyntaxError(NewSpan(6, 6), "expected ')'")
	assert.Equal(t, "test:6:6: expected ')'", err.Error())
	assert.Equal(t, "expected ')'", err.Message())
	assert.Same(t, srcfile, err.SourceFile())
	//
	line := err.FirstEnclosingLine()
	assert.Equal(t, 1, line.Number())
	assert.Equal(t, 0, line.Start())
	assert.Equal(t, 6, line.Length())
}

func Test_SourceFile_03(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "expr.txt")
	require.NoError(t, os.WriteFile(filename, []byte("A B"), 0o600))
	//
	srcfile, err := ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, filename, srcfile.Filename())
	assert.Equal(t, []rune("A B"), srcfile.Contents())
	//
	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func Test_Span_01(t *testing.T) {
	span := NewSpan(2, 5)
	assert.Equal(t, 2, span.Start())
	assert.Equal(t, 5, span.End())
	assert.Equal(t, 3, span.Length())
	assert.Panics(t, func() { NewSpan(5, 2) })
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkEnclosingLine(t *testing.T, srcfile *File, index int, number int, text string) {
	t.Helper()
	//
	line := srcfile.FindFirstEnclosingLine(NewSpan(index, index))
	assert.Equal(t, number, line.Number())
	assert.Equal(t, text, line.String())
}
