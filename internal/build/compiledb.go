// Copyright 2026 Buster Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package build

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-json"
)

// CompileCommand is one entry of the clang-compatible compile_commands.json
// array named in §6 "On-disk layout".
type CompileCommand struct {
	Directory string `json:"directory"`
	Command   string `json:"command"`
	File      string `json:"file"`
}

// quoteCommand space-joins argv, escaping embedded double quotes with a
// backslash on POSIX; Windows needs no such escaping of its own command
// line (§4.G "Compile-commands emission").
func quoteCommand(argv []string) string {
	if runtime.GOOS == "windows" {
		return strings.Join(argv, " ")
	}
	escaped := make([]string, len(argv))
	for i, a := range argv {
		escaped[i] = strings.ReplaceAll(a, `"`, `\"`)
	}
	return strings.Join(escaped, " ")
}

// BuildCompileCommands converts the resolved compilation units into the
// JSON array clang tooling expects.
func BuildCompileCommands(cwd string, units []CompilationUnit) []CompileCommand {
	out := make([]CompileCommand, 0, len(units))
	for _, u := range units {
		out = append(out, CompileCommand{
			Directory: cwd,
			Command:   quoteCommand(u.Argv),
			File:      u.SourcePath,
		})
	}
	return out
}

// WriteCompileCommands marshals cmds deterministically (array order follows
// the compilation-unit order the caller built, making repeated builds of
// the same module table byte-identical per §8 property 10) and writes them
// to build/compile_commands.json.
func WriteCompileCommands(cwd string, cmds []CompileCommand, writeFile func(path string, data []byte) error) error {
	data, err := json.MarshalIndent(cmds, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(cwd, "build", "compile_commands.json"), data)
}
