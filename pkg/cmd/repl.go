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
	"bufio"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vyrn-lang/vyrnc/pkg/util/source"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/ast"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/eval"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/lexer"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/parser"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "evaluate statements interactively.",
	Long: `Read statements from stdin and evaluate them against a persistent environment,
	 printing the value of each.  The prompt is suppressed when stdin is not a
	 terminal, so the repl can also be driven by a pipe.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		repl()
	},
}

func repl() {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)
	env := eval.NewEnvironment()
	//
	for {
		if interactive {
			fmt.Print("vyrn> ")
		}
		//
		if !scanner.Scan() {
			break
		}
		//
		line := scanner.Text()
		if line == "exit" || line == "quit" {
			break
		}
		//
		evalLine(line, env)
	}
}

// evalLine evaluates a single line of input, which may contain several
// statements, printing the value of each.
func evalLine(line string, env *eval.Environment) {
	srcfile := source.NewSourceFile("repl", []byte(line))
	tokens := lexer.NewLexer(srcfile).Collect()
	//
	for _, fragment := range parser.SplitStatements(tokens) {
		node, errs := parser.ParseStatement(srcfile, fragment)
		if len(errs) != 0 {
			printSyntaxErrors(errs)
			continue
		}
		//
		value, err := eval.Eval(node, env)
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			continue
		}
		// Declarations and assignments evaluate silently.
		switch node.(type) {
		case *ast.Declaration, *ast.Assignment:
			// silent
		default:
			fmt.Println(value.String())
		}
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
}
