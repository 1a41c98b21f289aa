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
	"os"

	"github.com/BurntSushi/toml"
)

// BuildConfig determines how generated C++ is compiled and executed by the
// build command.  It is normally read from a "vyrnc.toml" file alongside the
// source being built.
type BuildConfig struct {
	// Compiler is the C++ compiler executable to invoke.
	Compiler string `toml:"compiler"`
	// Flags are passed verbatim to the compiler.
	Flags []string `toml:"flags"`
	// OutputDir is where generated and compiled artefacts are placed.
	OutputDir string `toml:"output_dir"`
	// Run determines whether the compiled program is executed after building.
	Run bool `toml:"run"`
}

// DefaultBuildConfig returns the configuration used when no config file is
// present.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		Compiler:  "g++",
		Flags:     []string{"-std=c++17", "-O0", "-pipe"},
		OutputDir: ".",
		Run:       true,
	}
}

// ReadBuildConfig reads a build configuration from a given TOML file, filling
// unset fields with their defaults.  A missing file is not an error: the
// defaults apply.
func ReadBuildConfig(filename string) (BuildConfig, error) {
	config := DefaultBuildConfig()
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		//
		return config, err
	}
	//
	if err := toml.Unmarshal(bytes, &config); err != nil {
		return config, err
	}
	//
	return config, nil
}
