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
	"github.com/consensys/go-logex/pkg/util/source"
	"github.com/consensys/go-logex/pkg/util/source/lex"
)

// END_OF signals "end of input"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// VARIABLE signals a single-letter variable name
const VARIABLE uint = 2

// FALSE signals the literal 0
const FALSE uint = 3

// TRUE signals the literal 1
const TRUE uint = 4

// AND represents logical conjunction
const AND uint = 5

// OR represents logical disjunction
const OR uint = 6

// XOR represents exclusive disjunction
const XOR uint = 7

// NOT represents logical negation
const NOT uint = 8

// LBRACE signals "left brace"
const LBRACE uint = 9

// RBRACE signals "right brace"
const RBRACE uint = 10

// INVALID signals a character which is not part of the expression language.
const INVALID uint = 11

// FACTOR_STARTS captures the set of tokens which can begin a factor.
var FACTOR_STARTS = []uint{VARIABLE, FALSE, TRUE, NOT, LBRACE}

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.OneOf(' ', '\t', '\r', '\n'))

// lexing rules
var rules = []lex.LexRule[rune]{
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(lex.Within('A', 'Z'), VARIABLE),
	lex.Rule(lex.Unit('0'), FALSE),
	lex.Rule(lex.Unit('1'), TRUE),
	lex.Rule(lex.OneOf('+', '|'), OR),
	lex.Rule(lex.OneOf('*', '&'), AND),
	lex.Rule(lex.Unit('^'), XOR),
	lex.Rule(lex.OneOf('~', '!'), NOT),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Token is a lexical token of the expression language.  Variable tokens
// additionally carry the index assigned to the variable's name.
type Token struct {
	Kind uint
	Span source.Span
	// Identifier index (VARIABLE tokens only)
	Index uint
}

// Scanner turns the contents of a source file into a stream of tokens, one
// per call to Next.  Variable names are registered with the identifier table
// as they are scanned.
type Scanner struct {
	srcfile *source.File
	lexer   *lex.Lexer[rune]
	ids     *Identifiers
}

// NewScanner constructs a scanner for a given source file, which registers
// variables in the given identifier table.
func NewScanner(srcfile *source.File, ids *Identifiers) *Scanner {
	return &Scanner{srcfile, lex.NewLexer(srcfile.Contents(), rules...), ids}
}

// Next skips any whitespace and returns the next token.  Once the end of input
// is reached, every subsequent call returns END_OF.  An error is returned only
// when a variable cannot be registered.
func (p *Scanner) Next() (Token, error) {
	contents := p.srcfile.Contents()
	//
	for {
		token, ok := p.lexer.Next()
		//
		switch {
		case !ok && p.lexer.Index() > len(contents):
			n := len(contents)
			return Token{END_OF, source.NewSpan(n, n), 0}, nil
		case !ok:
			// Unknown character, so step over it.
			start := p.lexer.Index()
			p.lexer.Skip(1)
			//
			return Token{INVALID, source.NewSpan(start, start+1), 0}, nil
		case token.Kind == WHITESPACE:
			continue
		case token.Kind == VARIABLE:
			index, err := p.ids.Register(contents[token.Span.Start()])
			//
			return Token{VARIABLE, token.Span, index}, err
		default:
			return Token{token.Kind, token.Span, 0}, nil
		}
	}
}
