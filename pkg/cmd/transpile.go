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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vyrn-lang/vyrnc/pkg/vyrn"
)

var transpileCmd = &cobra.Command{
	Use:   "transpile [flags] source_file",
	Short: "transpile a source file into C++.",
	Long: `Transpile a given source file into a complete C++ translation unit.  Statements
	 are transpiled independently, so a syntax error in one statement never poisons the rest.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var config vyrn.CompilationConfig
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		config.Fold = !GetFlag(cmd, "no-fold")
		output := GetString(cmd, "output")
		// Read and transpile the source file
		srcfile := ReadSourceFile(args[0])
		result := vyrn.CompileSource(srcfile, config)
		// Report any syntax errors, then emit what was generated anyway.
		printSyntaxErrors(result.Errors)
		//
		if output == "" {
			fmt.Print(result.Output)
		} else if err := os.WriteFile(output, []byte(result.Output), 0644); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if result.HasErrors() {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(transpileCmd)
	transpileCmd.Flags().StringP("output", "o", "", "write generated C++ to a given file (default stdout)")
	transpileCmd.Flags().Bool("no-fold", false, "disable boolean constant folding")
}
