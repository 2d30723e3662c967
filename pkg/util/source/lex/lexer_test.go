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
package lex

import (
	"testing"

	"github.com/consensys/go-logex/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Lexer_00(t *testing.T) {
	checkLexer(t, "", 0, Token{END_OF, source.NewSpan(0, 0)})
}

func Test_Lexer_01(t *testing.T) {
	checkLexer(t, "(", 0,
		Token{LBRACE, source.NewSpan(0, 1)},
		Token{END_OF, source.NewSpan(1, 1)})
}

func Test_Lexer_02(t *testing.T) {
	checkLexer(t, "()", 0,
		Token{LBRACE, source.NewSpan(0, 1)},
		Token{RBRACE, source.NewSpan(1, 2)},
		Token{END_OF, source.NewSpan(2, 2)})
}

func Test_Lexer_03(t *testing.T) {
	checkLexer(t, "x", 1)
}

func Test_Lexer_04(t *testing.T) {
	checkLexer(t, "( \t)", 0,
		Token{LBRACE, source.NewSpan(0, 1)},
		Token{WSPACE, source.NewSpan(1, 3)},
		Token{RBRACE, source.NewSpan(3, 4)},
		Token{END_OF, source.NewSpan(4, 4)})
}

func Test_Lexer_05(t *testing.T) {
	checkLexer(t, "(90)", 0,
		Token{LBRACE, source.NewSpan(0, 1)},
		Token{NUMBER, source.NewSpan(1, 3)},
		Token{RBRACE, source.NewSpan(3, 4)},
		Token{END_OF, source.NewSpan(4, 4)})
}

func Test_Lexer_06(t *testing.T) {
	checkLexer(t, "(x", 1, Token{LBRACE, source.NewSpan(0, 1)})
}

func Test_Lexer_07(t *testing.T) {
	lexer := NewLexer([]rune("(x)"), rules...)
	//
	token, ok := lexer.Next()
	require.True(t, ok)
	assert.Equal(t, LBRACE, token.Kind)
	// stuck on x
	_, ok = lexer.Next()
	require.False(t, ok)
	assert.Equal(t, 1, lexer.Index())
	// step over it
	lexer.Skip(1)
	//
	token, ok = lexer.Next()
	require.True(t, ok)
	assert.Equal(t, Token{RBRACE, source.NewSpan(2, 3)}, token)
	//
	token, ok = lexer.Next()
	require.True(t, ok)
	assert.Equal(t, END_OF, token.Kind)
	// nothing after eof
	_, ok = lexer.Next()
	assert.False(t, ok)
}

func Test_Scanner_01(t *testing.T) {
	scanner := OneOf('+', '|')
	assert.Equal(t, uint(1), scanner([]rune("+")))
	assert.Equal(t, uint(1), scanner([]rune("|A")))
	assert.Equal(t, uint(0), scanner([]rune("&")))
	assert.Equal(t, uint(0), scanner([]rune("")))
}

func Test_Scanner_02(t *testing.T) {
	scanner := Unit('a', 'b')
	assert.Equal(t, uint(2), scanner([]rune("abc")))
	assert.Equal(t, uint(0), scanner([]rune("a")))
	assert.Equal(t, uint(0), scanner([]rune("ac")))
}

func Test_Scanner_03(t *testing.T) {
	scanner := Many(Or(Within('A', 'Z'), Unit('_')))
	assert.Equal(t, uint(4), scanner([]rune("AB_C+")))
	assert.Equal(t, uint(0), scanner([]rune("+AB")))
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const LBRACE uint = 2
const RBRACE uint = 3
const NUMBER uint = 4

// Rule for describing whitespace
var whitespace Scanner[rune] = Many(OneOf(' ', '\t'))

// Rule for describing numbers
var number Scanner[rune] = Many(Within('0', '9'))

// lexing rules
var rules = []LexRule[rune]{
	Rule(Unit('('), LBRACE),
	Rule(Unit(')'), RBRACE),
	Rule(whitespace, WSPACE),
	Rule(number, NUMBER),
	Rule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder int, expected ...Token) {
	items := []rune(input)
	lexer := NewLexer(items, rules...)
	//
	var tokens []Token
	//
	for token, ok := lexer.Next(); ok; token, ok = lexer.Next() {
		tokens = append(tokens, token)
	}
	//
	left := max(0, len(items)-lexer.Index())
	//
	assert.Equal(t, expected, tokens)
	assert.Equal(t, remainder, left, "unmatched items: %v", items[len(items)-left:])
}
