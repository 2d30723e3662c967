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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-logex/pkg/bexp"
	"github.com/consensys/go-logex/pkg/util/source"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return r
}

// Apply the configuration file (if any) and the logging / colour settings
// common to all commands.
func configure(cmd *cobra.Command) {
	if filename := GetString(cmd, "config"); filename != "" {
		if err := applyConfigFile(cmd, filename); err != nil {
			log.Error(err)
			os.Exit(3)
		}
	}
	//
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	// Diagnostics go to stderr
	color.NoColor = !useColour(cmd, os.Stderr)
}

// Determine whether ANSI colours should be used when writing to a given file.
func useColour(cmd *cobra.Command, file *os.File) bool {
	switch mode := GetString(cmd, "color"); mode {
	case "always":
		return true
	case "never":
		return false
	case "auto":
		return term.IsTerminal(int(file.Fd()))
	default:
		log.Errorf("unknown colour mode \"%s\"", mode)
		os.Exit(1)
	}
	// unreachable
	return false
}

// Determine the identifier capacity requested by the user.
func maxVars(cmd *cobra.Command) uint {
	limit := GetUint(cmd, "max-vars")
	//
	if limit == 0 || limit > bexp.MaxIdentifiers {
		log.Errorf("--max-vars must be between 1 and %d", bexp.MaxIdentifiers)
		os.Exit(1)
	}
	//
	return limit
}

// Report a failed parse, and exit with an appropriate status.
func exitWithParseError(err error) {
	var (
		serr *source.SyntaxError
		lerr *bexp.LimitError
	)
	//
	switch {
	case errors.As(err, &serr):
		printSyntaxError(os.Stderr, serr)
		os.Exit(2)
	case errors.As(err, &lerr) && lerr.Limit < bexp.MaxIdentifiers:
		log.Errorf("%s (see --max-vars)", err)
	default:
		log.Error(err)
	}
	//
	os.Exit(3)
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *source.SyntaxError) {
	var (
		red        = color.New(color.FgRed, color.Bold).SprintFunc()
		span       = err.Span()
		line       = err.FirstEnclosingLine()
		lineOffset = min(span.Start()-line.Start(), line.Length())
		// Calculate length (ensures don't overflow line, but always highlight
		// something, even at the end of input).
		length = max(1, min(line.Length()-lineOffset, span.Length()))
	)
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, red(err.Message()))
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(out, red(strings.Repeat("^", length)))
}

// Read the expression to evaluate, which is either given directly on the
// command line, or read from a file (or stdin).
func readExpression(cmd *cobra.Command, args []string) *source.File {
	if len(args) == 1 {
		log.Debug("reading expression from command line")
		return source.NewSourceFile("<expression>", []byte(args[0]))
	}
	//
	filename := GetString(cmd, "file")
	log.Debugf("reading expression from %s", filename)
	//
	srcfile, err := source.ReadFile(filename)
	if err != nil {
		log.Error(err)
		os.Exit(3)
	}
	//
	return srcfile
}
