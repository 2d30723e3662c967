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
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/consensys/go-logex/pkg/bexp"
	"github.com/consensys/go-logex/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "logex [flags] [expression]",
	Short: "Print the truth table of a boolean expression.",
	Long: `Print the truth table of a boolean expression over the variables A-Z.
The expression is given as an argument, read from a file (--file) or read from
stdin.  Operators are ~ or ! (not), juxtaposition, * or & (and), ^ (xor) and
+ or | (or), in decreasing order of precedence.  Constants are 0 and 1.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			printVersion()
			return
		}
		//
		configure(cmd)
		runRootCmd(cmd, args)
	},
}

func runRootCmd(cmd *cobra.Command, args []string) {
	var (
		srcfile = readExpression(cmd, args)
		stats   = util.NewPerfStats()
		ids     = bexp.NewIdentifiers(maxVars(cmd))
	)
	//
	result, err := bexp.Parse(srcfile, ids)
	if err != nil {
		exitWithParseError(err)
	}
	//
	stats.Log("Parsing expression")
	log.Debugf("found %d variable(s) %s, table has %d row(s)", ids.Len(), ids, result.Table.Len())
	//
	filter, err := NewRowFilter(GetString(cmd, "where"), ids)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	//
	colour := useColour(cmd, os.Stdout)
	//
	if err := Render(os.Stdout, GetString(cmd, "format"), result, filter, colour); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Print("logex ")
	//
	if Version != "" {
		// Built via "make"
		fmt.Printf("%s", Version)
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		fmt.Printf("%s", info.Main.Version)
	} else {
		// Unknown, perhaps "go run"
		fmt.Printf("(unknown version)")
	}
	//
	fmt.Println()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.Flags().StringP("file", "f", "-", "read expression from file (\"-\" for stdin)")
	rootCmd.Flags().String("format", "text", fmt.Sprintf("output format (%s)", strings.Join(FORMATS, ", ")))
	rootCmd.Flags().String("where", "", "only show rows matching a predicate (e.g. \"result && !A\")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("config", "", "read default settings from a TOML file")
	rootCmd.PersistentFlags().String("color", "auto", "use ANSI colours (auto, always, never)")
	rootCmd.PersistentFlags().Uint("max-vars", bexp.MaxIdentifiers, "maximum number of distinct variables")
}
