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

var runCmd = &cobra.Command{
	Use:   "run [flags] source_file",
	Short: "evaluate a source file directly.",
	Long: `Evaluate a given source file with the tree-walking interpreter, without
	 generating any C++.  Log statements print their value to stdout.  The first
	 runtime fault aborts the run.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		// Read and evaluate the source file
		srcfile := ReadSourceFile(args[0])
		result := vyrn.EvaluateSource(srcfile)
		// Report any syntax errors
		printSyntaxErrors(result.SyntaxErrors)
		//
		for _, logged := range result.Logs {
			fmt.Println(logged)
		}
		//
		if result.Err != nil {
			fmt.Printf("Error: %s\n", result.Err)
			os.Exit(1)
		} else if len(result.SyntaxErrors) != 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
