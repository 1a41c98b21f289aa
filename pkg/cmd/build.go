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
	"os/exec"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vyrn-lang/vyrnc/pkg/vyrn"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] source_file",
	Short: "transpile, compile and execute a source file.",
	Long: `Transpile a given source file into C++, hand the result to an external C++
	 compiler, and (by default) execute the compiled program, echoing its output.
	 The compiler invocation is controlled by a "vyrnc.toml" file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var config vyrn.CompilationConfig
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		config.Fold = !GetFlag(cmd, "no-fold")
		//
		buildConfig, err := ReadBuildConfig(GetString(cmd, "config"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Read and transpile the source file
		srcfile := ReadSourceFile(args[0])
		result := vyrn.CompileSource(srcfile, config)
		// Syntax errors abort the build before the external compiler runs.
		if result.HasErrors() {
			printSyntaxErrors(result.Errors)
			os.Exit(1)
		}
		//
		if err := buildAndRun(args[0], result.Output, buildConfig); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// buildAndRun writes the generated translation unit to disk, invokes the
// external C++ compiler on it and, when configured to, executes the resulting
// binary with its output echoed to stdout.
func buildAndRun(srcname string, generated string, config BuildConfig) error {
	stem := strings.TrimSuffix(path.Base(srcname), path.Ext(srcname))
	cppfile := path.Join(config.OutputDir, stem+".cpp")
	binfile := path.Join(config.OutputDir, stem)
	//
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return err
	}
	//
	if err := os.WriteFile(cppfile, []byte(generated), 0644); err != nil {
		return err
	}
	//
	log.Debugf("compiling %s with %s", cppfile, config.Compiler)
	//
	compileArgs := append(append([]string{}, config.Flags...), cppfile, "-o", binfile)
	compile := exec.Command(config.Compiler, compileArgs...)
	//
	if out, err := compile.CombinedOutput(); err != nil {
		return fmt.Errorf("compilation failed: %s\n%s", err, out)
	}
	//
	if !config.Run {
		return nil
	}
	//
	program := exec.Command(binfile)
	program.Stdout = os.Stdout
	program.Stderr = os.Stderr
	//
	if err := program.Run(); err != nil {
		return fmt.Errorf("execution failed: %s", err)
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().Bool("no-fold", false, "disable boolean constant folding")
	buildCmd.Flags().StringP("config", "c", "vyrnc.toml", "specify build configuration file")
}
