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
	"fmt"
	"strings"

	"github.com/buster-os/builder/internal/bytesx"
)

// Command is the optional positional argument named in §4.G.
type Command int

const (
	CommandBuild Command = iota
	CommandTest
	CommandDebug
	CommandTestAll
)

func (c Command) String() string {
	switch c {
	case CommandTest:
		return "test"
	case CommandDebug:
		return "debug"
	case CommandTestAll:
		return "test_all"
	default:
		return "build"
	}
}

var commandNames = map[string]Command{
	"build":    CommandBuild,
	"test":     CommandTest,
	"debug":    CommandDebug,
	"test_all": CommandTestAll,
}

// Flags is the resolved set of boolean/integer/string options from §4.G.
type Flags struct {
	Optimize             bool
	Fuzz                 bool
	CI                   bool
	HasDebugInformation  bool
	UnityBuild           bool
	JustPreprocessor     bool
	SelfHosted           bool
	Sanitize             bool
	MainBranch           bool
	FuzzDuration         int64
	FuzzDurationHex      bool // SUPPLEMENTED: S4 records the format the value was parsed in
	XCSDKPath            string
	Verbose              bool
	hasDebugInfoSet      bool
	unityBuildSet        bool
}

var boolFlagNames = map[string]bool{
	"optimize":               true,
	"fuzz":                   true,
	"ci":                     true,
	"has-debug-information":  true,
	"unity-build":            true,
	"just-preprocessor":      true,
	"self-hosted":            true,
	"sanitize":               true,
	"main-branch":            true,
}

// UnrecognizedHook is buster_argument_process from §4.G: a pluggable
// handler for any argument not recognized by the fixed flag set.
type UnrecognizedHook func(argv []string, envp []string, index int, arg string) error

// ParseArgs implements the §4.G argument grammar. argv excludes argv[0].
func ParseArgs(argv []string, envp []string, hook UnrecognizedHook) (Command, Flags, error) {
	var flags Flags
	cmd := CommandBuild

	start := 0
	if len(argv) > 0 && !strings.HasPrefix(argv[0], "--") {
		c, ok := commandNames[argv[0]]
		if !ok {
			return cmd, flags, fmt.Errorf("Unrecognized command: %q", argv[0])
		}
		cmd = c
		flags.Verbose = true
		start = 1
	}

	for i := start; i < len(argv); i++ {
		arg := argv[i]
		name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if !strings.HasPrefix(arg, "--") || !hasValue {
			if hook == nil {
				return cmd, flags, fmt.Errorf("Unrecognized argument: '%s'", arg)
			}
			if err := hook(argv, envp, i, arg); err != nil {
				return cmd, flags, err
			}
			continue
		}

		switch {
		case boolFlagNames[name]:
			b, err := parseBoolFlag(value)
			if err != nil {
				return cmd, flags, fmt.Errorf("--%s: %w", name, err)
			}
			setBoolFlag(&flags, name, b)
		case name == "fuzz-duration":
			v, isHex, err := parseIntFlag(value)
			if err != nil {
				return cmd, flags, fmt.Errorf("--fuzz-duration: %w", err)
			}
			flags.FuzzDuration = v
			flags.FuzzDurationHex = isHex
		case name == "xc-sdk-path":
			flags.XCSDKPath = value
		default:
			if hook == nil {
				return cmd, flags, fmt.Errorf("Unrecognized argument: '%s'", arg)
			}
			if err := hook(argv, envp, i, arg); err != nil {
				return cmd, flags, err
			}
		}
	}

	if !flags.hasDebugInfoSet {
		flags.HasDebugInformation = true
	}
	if !flags.unityBuildSet {
		flags.UnityBuild = flags.Optimize
	}
	return cmd, flags, nil
}

func setBoolFlag(f *Flags, name string, v bool) {
	switch name {
	case "optimize":
		f.Optimize = v
	case "fuzz":
		f.Fuzz = v
	case "ci":
		f.CI = v
	case "has-debug-information":
		f.HasDebugInformation = v
		f.hasDebugInfoSet = true
	case "unity-build":
		f.UnityBuild = v
		f.unityBuildSet = true
	case "just-preprocessor":
		f.JustPreprocessor = v
	case "self-hosted":
		f.SelfHosted = v
	case "sanitize":
		f.Sanitize = v
	case "main-branch":
		f.MainBranch = v
	}
}

func parseBoolFlag(value string) (bool, error) {
	switch value {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("expected 0 or 1, got %q", value)
	}
}

// parseIntFlag parses an optionally base-prefixed, optionally negative
// integer per §4.G ("integer options ... parsed with optional base prefix
// 0x|0d|0o|0b or leading - for negative").
func parseIntFlag(value string) (int64, bool, error) {
	neg := false
	s := value
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var res bytesx.ParseResult
	isHex := false
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		res = bytesx.ParseU64Hex([]byte(s[2:]))
		res.Consumed += 2
		isHex = true
	case strings.HasPrefix(s, "0d"):
		res = bytesx.ParseU64Dec([]byte(s[2:]))
		res.Consumed += 2
	case strings.HasPrefix(s, "0o"):
		res = bytesx.ParseU64Oct([]byte(s[2:]))
		res.Consumed += 2
	case strings.HasPrefix(s, "0b"):
		res = bytesx.ParseU64Bin([]byte(s[2:]))
		res.Consumed += 2
	default:
		res = bytesx.ParseU64Dec([]byte(s))
	}
	if res.Consumed != len(s) {
		return 0, false, fmt.Errorf("invalid integer %q", value)
	}

	v := int64(res.Value)
	if neg {
		v = -v
	}
	return v, isHex, nil
}
