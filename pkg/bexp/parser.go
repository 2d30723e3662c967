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
	"slices"

	"github.com/consensys/go-logex/pkg/truth"
	"github.com/consensys/go-logex/pkg/util/source"
)

// Result captures the outcome of parsing an expression, namely the variables
// discovered (in order of first occurrence) and the expression's truth table.
// The table always has exactly 2^n rows, where n is the number of identifiers.
type Result struct {
	Identifiers *Identifiers
	Table       *truth.Table
}

// ParseString parses a given input string into its truth table.
func ParseString(input string) (Result, error) {
	return Parse(source.NewSourceFile("expr", []byte(input)), nil)
}

// Parse a given source file into its truth table.  Variables are registered
// in the given identifier table, which may already hold variables from a
// previous parse.  If no table is given, a fresh one of maximum capacity is
// used.  The returned error is either a *source.SyntaxError, or a *LimitError.
func Parse(srcfile *source.File, ids *Identifiers) (Result, error) {
	if ids == nil {
		ids = NewIdentifiers(MaxIdentifiers)
	}
	//
	parser := NewParser(srcfile, ids)
	//
	table, err := parser.Parse()
	if err != nil {
		return Result{}, err
	}
	// Cover variables registered outside this expression.
	table.Expand(ids.Len())
	//
	return Result{ids, table}, nil
}

// Parser is a recursive-descent parser which evaluates an expression as it
// goes.  Each reduction of the grammar builds or combines truth tables
// directly, so there is no intermediate syntax tree:
//
//	expression := term { OR term }
//	term       := factor { ( [AND] factor ) | XOR factor }
//	factor     := { NOT } primary
//	primary    := VARIABLE | FALSE | TRUE | '(' expression ')'
type Parser struct {
	srcfile *source.File
	scanner *Scanner
	// Current lookahead
	token Token
}

// NewParser constructs a parser for a given source file.
func NewParser(srcfile *source.File, ids *Identifiers) *Parser {
	return &Parser{srcfile, NewScanner(srcfile, ids), Token{}}
}

// Parse the entire contents of the source file as a single expression.
func (p *Parser) Parse() (*truth.Table, error) {
	// Initialise lookahead
	if err := p.advance(); err != nil {
		return nil, err
	}
	//
	table, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	// Check all parsed
	if err := p.expect(END_OF, "unexpected token"); err != nil {
		return nil, err
	}
	//
	return table, nil
}

func (p *Parser) parseExpression() (*truth.Table, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	//
	for p.follows(OR) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		//
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		//
		lhs = truth.Combine(truth.OR, lhs, rhs)
	}
	//
	return lhs, nil
}

// Juxtaposition is conjunction, and an explicit AND is just a separator.  An
// XOR requires a factor, after which juxtaposition is still checked for.
func (p *Parser) parseTerm() (*truth.Table, error) {
	lhs, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	//
	for {
		switch {
		case p.follows(AND):
			if err := p.advance(); err != nil {
				return nil, err
			}
		case p.follows(XOR):
			if err := p.advance(); err != nil {
				return nil, err
			}
			//
			rhs, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			//
			lhs = truth.Combine(truth.XOR, lhs, rhs)
		}
		//
		if !p.follows(FACTOR_STARTS...) {
			return lhs, nil
		}
		//
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		//
		lhs = truth.Combine(truth.AND, lhs, rhs)
	}
}

func (p *Parser) parseFactor() (*truth.Table, error) {
	var (
		table     *truth.Table
		err       error
		negations uint
	)
	//
	for p.follows(NOT) {
		if err = p.advance(); err != nil {
			return nil, err
		}
		//
		negations++
	}
	//
	switch p.token.Kind {
	case VARIABLE:
		table = truth.Variable(p.token.Index)
		err = p.advance()
	case FALSE:
		table = truth.Constant(false)
		err = p.advance()
	case TRUE:
		table = truth.Constant(true)
		err = p.advance()
	default:
		table, err = p.parseBracketedExpression()
	}
	//
	if err != nil {
		return nil, err
	} else if negations%2 == 1 {
		table.Negate()
	}
	//
	return table, nil
}

func (p *Parser) parseBracketedExpression() (*truth.Table, error) {
	if err := p.expect(LBRACE, "expected expression"); err != nil {
		return nil, err
	}
	//
	table, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	//
	if err := p.expect(RBRACE, "expected ')'"); err != nil {
		return nil, err
	}
	//
	return table, nil
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.token.Kind)
}

// Advance the lookahead by one token.
func (p *Parser) advance() error {
	var err error
	//
	p.token, err = p.scanner.Next()
	//
	return err
}

// Expect checks the lookahead is of a given kind and, if so, advances past it.
// Otherwise a syntax error is reported against the lookahead.
func (p *Parser) expect(kind uint, msg string) error {
	if p.token.Kind == kind {
		return p.advance()
	} else if p.token.Kind == INVALID {
		msg = "unknown character"
	} else if p.token.Kind == END_OF {
		msg = "unexpected end of input"
	}
	//
	return p.srcfile.SyntaxError(p.token.Span, msg)
}
