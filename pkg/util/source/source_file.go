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
	"fmt"
	"io"
	"os"
	"unicode"
)

// ReadFile reads a given file into a source file.  The special name "-"
// identifies the standard input stream.
func ReadFile(filename string) (*File, error) {
	var (
		bytes []byte
		err   error
	)
	//
	if filename == "-" {
		bytes, err = io.ReadAll(os.Stdin)
		filename = "<stdin>"
	} else {
		bytes, err = os.ReadFile(filename)
	}
	//
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	//
	return NewSourceFile(filename, bytes), nil
}

// Line provides information about a given line within the original string.
// This includes the line number (counting from 1), and the span of the line
// within the original string.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// Get the string representing this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line in a string
// has line number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original string.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// File represents a given source file (typically stored on disk, or read
// from standard input).
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	// Convert bytes into runes for easier parsing
	return &File{filename, []rune(string(bytes))}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// FindFirstEnclosingLine determines the first line in this source file which
// encloses the start of a span.  A span starting at the end of the file is
// reported against the last line which is not blank.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	if span.start >= len(s.contents) {
		if last := s.lastNonSpace(); last >= 0 {
			span = Span{last, last}
		}
	}
	// Num records the line number, counting from 1.
	num := 1
	// Start records the starting offset of the current line.
	start := 0
	//
	for i := 0; i < len(s.contents); i++ {
		if i == span.start {
			return Line{s.contents, Span{start, findEndOfLine(i, s.contents)}, num}
		} else if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{s.contents, Span{start, len(s.contents)}, num}
}

// Index of the last character which is not whitespace, or -1 if there is none.
func (s *File) lastNonSpace() int {
	for i := len(s.contents) - 1; i >= 0; i-- {
		if !unicode.IsSpace(s.contents[i]) {
			return i
		}
	}
	//
	return -1
}

// SyntaxError is a structured error which retains the span of the original
// text where the error arose, along with a message.
type SyntaxError struct {
	srcfile *File
	// Character range in the file where the error arose.
	span Span
	// Error message being reported
	msg string
}

// SourceFile returns the file against which this error is reported.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", p.srcfile.filename, p.span.Start(), p.span.End(), p.msg)
}

// FirstEnclosingLine determines the first line enclosing this error.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}

func findEndOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	// No end in sight!
	return len(text)
}
