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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsDefaultsToBuild(t *testing.T) {
	cmd, flags, err := ParseArgs(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, CommandBuild, cmd)
	assert.True(t, flags.HasDebugInformation, "has-debug-information defaults true")
	assert.False(t, flags.UnityBuild, "unity-build defaults to optimize, which is off")
}

func TestParseArgsPositionalCommand(t *testing.T) {
	cmd, flags, err := ParseArgs([]string{"test", "--optimize=1"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, CommandTest, cmd)
	assert.True(t, flags.Optimize)
	assert.True(t, flags.Verbose, "a recognized positional command implies verbose per the grammar")
	assert.True(t, flags.UnityBuild, "unity-build defaults to optimize when unset")
}

func TestParseArgsUnrecognizedCommandErrors(t *testing.T) {
	_, _, err := ParseArgs([]string{"launch"}, nil, nil)
	assert.Error(t, err)
}

func TestParseArgsBoolFlagRejectsNonBinary(t *testing.T) {
	_, _, err := ParseArgs([]string{"--optimize=yes"}, nil, nil)
	assert.Error(t, err)
}

func TestParseArgsFuzzDurationBasePrefixes(t *testing.T) {
	for _, tc := range []struct {
		arg     string
		want    int64
		wantHex bool
	}{
		{"--fuzz-duration=0x2A", 42, true},
		{"--fuzz-duration=0d42", 42, false},
		{"--fuzz-duration=0o52", 42, false},
		{"--fuzz-duration=0b101010", 42, false},
		{"--fuzz-duration=-5", -5, false},
	} {
		_, flags, err := ParseArgs([]string{tc.arg}, nil, nil)
		require.NoError(t, err, tc.arg)
		assert.Equal(t, tc.want, flags.FuzzDuration, tc.arg)
		assert.Equal(t, tc.wantHex, flags.FuzzDurationHex, tc.arg)
	}
}

func TestParseArgsUnrecognizedArgumentUsesHook(t *testing.T) {
	var seen []string
	hook := func(argv []string, envp []string, index int, arg string) error {
		seen = append(seen, arg)
		return nil
	}
	_, _, err := ParseArgs([]string{"-j8"}, nil, hook)
	require.NoError(t, err)
	assert.Equal(t, []string{"-j8"}, seen)
}

func TestParseArgsUnrecognizedArgumentNoHookErrors(t *testing.T) {
	_, _, err := ParseArgs([]string{"-j8"}, nil, nil)
	assert.Error(t, err)
}

func TestParseArgsXCSDKPath(t *testing.T) {
	_, flags, err := ParseArgs([]string{"--xc-sdk-path=/Applications/Xcode.app"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "/Applications/Xcode.app", flags.XCSDKPath)
}

func TestParseArgsExplicitDebugInformationOverridesDefault(t *testing.T) {
	_, flags, err := ParseArgs([]string{"--has-debug-information=0"}, nil, nil)
	require.NoError(t, err)
	assert.False(t, flags.HasDebugInformation)
}
