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
	"path/filepath"

	"github.com/buster-os/builder/internal/target"
)

// FileKind distinguishes the two halves of a module a TargetBuildFile can
// describe.
type FileKind int

const (
	FileSource FileKind = iota
	FileHeader
)

// TargetBuildFile is a source or header path resolved for one {module,
// target} pair, per §4.G "Module resolution".
type TargetBuildFile struct {
	Module ModuleID
	Target target.Target
	Kind   FileKind
	Path   string
}

// CompilationUnit is {target, source_path, object_path, compiler_path,
// argv, flags, process} from §3, minus the live process handle (owned by
// the scheduler, not the resolved graph).
type CompilationUnit struct {
	Target       target.Target
	SourcePath   string
	ObjectPath   string
	CompilerPath string
	Argv         []string
	Flags        UnitFlags
	LinkUnit     string
}

// UnitFlags is the per-compilation-unit flag propagation named in §4.G
// "Module resolution": {debug, optimize, fuzz, io_ring, include_tests}.
type UnitFlags struct {
	Debug        bool
	Optimize     bool
	Fuzz         bool
	IoRing       bool
	IncludeTests bool
}

func objectExtension(t target.Target) string {
	if t.OS == target.OSWindows {
		return "obj"
	}
	return "o"
}

func artifactExtension(t target.Target) string {
	if t.OS == target.OSWindows {
		return ".exe"
	}
	return ""
}

// ResolvedGraph is the output of resolving the static module/link-unit
// tables against a concrete set of build targets and flags.
type ResolvedGraph struct {
	Targets           []target.Target
	CompilationUnits  []CompilationUnit
	BuildFiles        []TargetBuildFile
	LinkArtifacts     map[string]string // link unit name -> artifact path
}

// Resolve walks every link unit (or just its first module if unity-build
// is set) and produces the compilation-unit list plus the per-{module,
// target} build files, per §4.G "Module resolution".
func Resolve(cwd string, targets []target.Target, flags Flags, clangPath string) (*ResolvedGraph, error) {
	g := &ResolvedGraph{
		Targets:       targets,
		LinkArtifacts: make(map[string]string),
	}

	type seenKey struct {
		module ModuleID
		target target.Target
	}
	seen := make(map[seenKey]bool)

	for _, unit := range linkUnits {
		modules := unit.Modules
		if flags.UnityBuild && len(modules) > 0 {
			modules = modules[:1]
		}

		for _, t := range targets {
			for _, modID := range modules {
				key := seenKey{modID, t}
				if seen[key] {
					continue
				}
				seen[key] = true

				mod, err := lookupModule(modID)
				if err != nil {
					return nil, err
				}

				dir := filepath.Join(cwd, mod.Directory.Path())
				if !mod.NoSource {
					srcPath := filepath.Join(dir, mod.Name+".c")
					g.BuildFiles = append(g.BuildFiles, TargetBuildFile{Module: modID, Target: t, Kind: FileSource, Path: srcPath})

					objPath := filepath.Join(cwd, "build", t.Triple(), relativeToCwd(cwd, srcPath)+"."+objectExtension(t))
					g.CompilationUnits = append(g.CompilationUnits, CompilationUnit{
						Target:       t,
						SourcePath:   srcPath,
						ObjectPath:   objPath,
						CompilerPath: clangPath,
						LinkUnit:     unit.Name,
						Flags: UnitFlags{
							Debug:        flags.HasDebugInformation,
							Optimize:     flags.Optimize,
							Fuzz:         flags.Fuzz,
							IoRing:       false,
							IncludeTests: unit.Name == "builder",
						},
					})
				}
				if !mod.NoHeader {
					hdrPath := filepath.Join(dir, mod.Name+".h")
					g.BuildFiles = append(g.BuildFiles, TargetBuildFile{Module: modID, Target: t, Kind: FileHeader, Path: hdrPath})
				}
			}

			artifactPath := filepath.Join(cwd, "build", t.Triple(), unit.ArtifactName+artifactExtension(t))
			g.LinkArtifacts[unit.Name+"|"+t.Triple()] = artifactPath
		}
	}

	for i := range g.CompilationUnits {
		cu := &g.CompilationUnits[i]
		cu.Argv = SynthesizeArgs(ArgSynthOptions{
			Destination:         cu.ObjectPath,
			Sources:             []string{cu.SourcePath},
			Target:              cu.Target,
			Optimize:            cu.Flags.Optimize,
			Fuzz:                cu.Flags.Fuzz,
			HasDebugInformation: cu.Flags.Debug,
			Sanitize:            flags.Sanitize,
			CI:                  flags.CI,
			UnityBuild:          flags.UnityBuild,
			UseIoRing:           cu.Flags.IoRing,
			JustPreprocessor:    flags.JustPreprocessor,
			Compile:             true,
			ForceColor:          !flags.CI,
			XCSDKPath:           flags.XCSDKPath,
			ClangPath:           clangPath,
			IncludeTests:        cu.Flags.IncludeTests,
		})
	}

	return g, nil
}

func relativeToCwd(cwd, path string) string {
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return filepath.Base(path)
	}
	return rel
}

// SetupTargets creates build/<triple> once per distinct target, per §4.G
// "Per-target setup", then ensures every compilation unit's object
// directory exists.
func SetupTargets(cwd string, g *ResolvedGraph, mkdir func(path string) error) error {
	for _, t := range g.Targets {
		if err := mkdir(filepath.Join(cwd, "build", t.Triple())); err != nil {
			return fmt.Errorf("build: setup target %s: %w", t.Triple(), err)
		}
	}
	for _, cu := range g.CompilationUnits {
		if err := mkdir(filepath.Dir(cu.ObjectPath)); err != nil {
			return fmt.Errorf("build: setup object dir for %s: %w", cu.SourcePath, err)
		}
	}
	return nil
}
