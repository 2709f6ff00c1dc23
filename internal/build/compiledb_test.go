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
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCompileCommandsRoundTripsAsCompileCommandsJSON(t *testing.T) {
	units := []CompilationUnit{
		{SourcePath: "src/buster/arena.c", Argv: []string{"clang", "-o", "arena.o", "src/buster/arena.c"}},
	}
	cmds := BuildCompileCommands("/work", units)
	require.Len(t, cmds, 1)
	assert.Equal(t, "/work", cmds[0].Directory)
	assert.Equal(t, "src/buster/arena.c", cmds[0].File)
	assert.Contains(t, cmds[0].Command, "arena.o")

	var written []string
	write := func(path string, data []byte) error {
		written = append(written, path)
		var decoded []CompileCommand
		return json.Unmarshal(data, &decoded)
	}
	require.NoError(t, WriteCompileCommands("/work", cmds, write))
	assert.Equal(t, []string{"/work/build/compile_commands.json"}, written)
}

func TestQuoteCommandEscapesEmbeddedQuotesOnPosix(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("escaping only applies on POSIX hosts")
	}
	got := quoteCommand([]string{"clang", `-DNAME="value"`})
	assert.Contains(t, got, `\"value\"`)
}
