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
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trueFalseArgv returns the always-present probe commands used to drive
// the scheduler in tests without depending on clang/lld being installed.
func trueFalseArgv() (ok, fail []string) {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C", "exit 0"}, []string{"cmd", "/C", "exit 1"}
	}
	return []string{"/bin/true"}, []string{"/bin/false"}
}

func TestCompilePhaseAllSucceed(t *testing.T) {
	ok, _ := trueFalseArgv()
	units := []CompilationUnit{
		{SourcePath: "a.c", Argv: ok},
		{SourcePath: "b.c", Argv: ok},
	}
	result, err := CompilePhase(context.Background(), units)
	require.NoError(t, err)
	assert.True(t, result)
}

func TestCompilePhaseOneFailureFailsWholePhase(t *testing.T) {
	ok, fail := trueFalseArgv()
	units := []CompilationUnit{
		{SourcePath: "a.c", Argv: ok},
		{SourcePath: "b.c", Argv: fail},
	}
	result, err := CompilePhase(context.Background(), units)
	require.NoError(t, err)
	assert.False(t, result, "a failing sibling fails the phase even though siblings still ran")
}

func TestCompilePhaseEmptyIsTrivialSuccess(t *testing.T) {
	result, err := CompilePhase(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, result)
}

func TestLinkPhaseRejectsEmptyArgv(t *testing.T) {
	_, err := LinkPhase(context.Background(), []LinkJob{{LinkUnitName: "cc", Argv: nil}})
	assert.Error(t, err)
}
