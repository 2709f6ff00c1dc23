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

	"github.com/buster-os/builder/internal/target"
)

func linuxTarget() target.Target {
	return target.Target{Arch: target.ArchX86_64, Model: target.ModelZen3, OS: target.OSLinux}
}

func TestResolveDedupesSharedModulesAcrossLinkUnits(t *testing.T) {
	g, err := Resolve("/work", []target.Target{linuxTarget()}, Flags{}, "clang")
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, cu := range g.CompilationUnits {
		seen[cu.SourcePath]++
	}
	for path, n := range seen {
		assert.Equal(t, 1, n, "module %s compiled once despite being shared by multiple link units", path)
	}

	// bytesx.c belongs to every link unit's shared library, but should
	// appear exactly once across the whole resolved graph.
	assert.Equal(t, 1, seen["/work/src/buster/bytesx.c"])
}

func TestResolveUnityBuildTruncatesToFirstModule(t *testing.T) {
	g, err := Resolve("/work", []target.Target{linuxTarget()}, Flags{UnityBuild: true}, "clang")
	require.NoError(t, err)

	byUnit := make(map[string]int)
	for _, cu := range g.CompilationUnits {
		byUnit[cu.LinkUnit]++
	}
	for unit, n := range byUnit {
		assert.Equal(t, 1, n, "unity build compiles a single unit per link target for %s", unit)
	}
}

func TestResolveAssignsDistinctArtifactsPerLinkUnit(t *testing.T) {
	g, err := Resolve("/work", []target.Target{linuxTarget()}, Flags{}, "clang")
	require.NoError(t, err)

	triple := linuxTarget().Triple()
	builder := g.LinkArtifacts["builder|"+triple]
	cc := g.LinkArtifacts["cc|"+triple]
	asm := g.LinkArtifacts["asm|"+triple]
	assert.NotEmpty(t, builder)
	assert.NotEmpty(t, cc)
	assert.NotEmpty(t, asm)
	assert.NotEqual(t, cc, asm)
}

func TestSetupTargetsCreatesBuildDirAndObjectDirs(t *testing.T) {
	g, err := Resolve("/work", []target.Target{linuxTarget()}, Flags{}, "clang")
	require.NoError(t, err)

	var created []string
	mkdir := func(path string) error {
		created = append(created, path)
		return nil
	}
	require.NoError(t, SetupTargets("/work", g, mkdir))
	assert.Contains(t, created, "/work/build/"+linuxTarget().Triple())
}
