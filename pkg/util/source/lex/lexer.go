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

import "github.com/consensys/go-logex/pkg/util/source"

// Token associates a piece of information with a given range of characters in
// the string being scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule is simply a rule for associating groups of characters with a given
// tag.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer provides a top-level construct for tokenising a given input string.
// Tokens are produced lazily, one for each call to Next.  Rules are tried in
// order, and the first rule which matches determines the token produced.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules}
}

// Index returns the current index within the items array.
func (p *Lexer[T]) Index() int {
	return p.index
}

// Next scans the next token and advances the lexer past it.  This returns
// false when no rule matches at the current position, in which case the lexer
// does not move.  Once an end-of-input token has been produced, no further
// tokens are available.
func (p *Lexer[T]) Next() (Token, bool) {
	if p.index > len(p.items) {
		return Token{}, false
	}
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			token := Token{r.tag, source.NewSpan(p.index, end)}
			//
			if p.index == len(p.items) {
				// EOF condition
				p.index++
			} else {
				p.index = end
			}
			//
			return token, true
		}
	}
	// no match
	return Token{}, false
}

// Skip advances the lexer over n items without producing a token.  This is
// used to step over characters which no rule matches.
func (p *Lexer[T]) Skip(n int) {
	p.index = min(len(p.items), p.index+n)
}
