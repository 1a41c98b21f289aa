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

	"github.com/spf13/cobra"

	"github.com/vyrn-lang/vyrnc/pkg/vyrn/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens source_file",
	Short: "print the token stream of a source file.",
	Long: `Print the token stream of a given source file, one token per line with its
	 classification and position.  Useful for debugging the surface syntax.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		srcfile := ReadSourceFile(args[0])
		//
		for _, token := range lexer.NewLexer(srcfile).Collect() {
			fmt.Printf("%d:%d\t%s\t%q\n", token.Line, token.Column, lexer.KindName(token.Kind), token.Text)
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
