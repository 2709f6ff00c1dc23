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
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/buster-os/builder/internal/assertx"
	"github.com/buster-os/builder/internal/osx"
	"github.com/buster-os/builder/internal/target"
)

// Inputs bundles what the driver needs for one invocation: the working
// directory, the clang path, and the command/flags already parsed from
// argv by ParseArgs.
type Inputs struct {
	Cwd       string
	ClangPath string
	Command   Command
	Flags     Flags
}

// Run drives one full invocation end to end: resolve, per-target setup,
// compile-commands emission, compile phase, link phase, and (for test
// commands) the run phase. It returns the ProcessResult the CLI entrypoint
// should translate into an exit code per §6.
func Run(ctx context.Context, in Inputs) (osx.ProcessResult, error) {
	buildID := uuid.New().String()
	glog.V(1).Infof("build: invocation %s command=%s", buildID, in.Command)

	host := target.DetectHost()
	targets := []target.Target{host}

	g, err := Resolve(in.Cwd, targets, in.Flags, in.ClangPath)
	if err != nil {
		return osx.Failed, err
	}

	if err := SetupTargets(in.Cwd, g, mkdirAll); err != nil {
		return osx.Failed, err
	}

	if err := touchCacheManifest(in.Cwd, g, touchFile); err != nil {
		glog.Errorf("build: %v", err)
	}

	if !in.Flags.UnityBuild {
		cmds := BuildCompileCommands(in.Cwd, g.CompilationUnits)
		if err := WriteCompileCommands(in.Cwd, cmds, os.WriteFile); err != nil {
			return osx.Failed, err
		}
	}

	compileOK, err := CompilePhase(ctx, g.CompilationUnits)
	if err != nil {
		return osx.Unknown, err
	}
	if !compileOK {
		glog.Errorf("build: compile phase failed, skipping link phase")
		return osx.Failed, nil
	}

	linkJobs := linkJobsFor(g, targets, in)
	linkOK, err := LinkPhase(ctx, linkJobs)
	if err != nil {
		return osx.Unknown, err
	}
	if !linkOK {
		return osx.Failed, nil
	}

	switch in.Command {
	case CommandTest, CommandTestAll:
		selfOK := RunBuilderTests(assertx.TestArguments{Show: in.Flags.Verbose})
		runJobs := runJobsFor(g, targets, in)
		runOK, err := RunPhase(ctx, runJobs)
		if err != nil {
			return osx.Unknown, err
		}
		if !selfOK || !runOK {
			return osx.Failed, nil
		}
	case CommandDebug:
		// reserved; no-op per §4.G "RUN" pseudocode.
	case CommandBuild:
	}

	return osx.Success, nil
}

// linkJobsFor synthesizes every non-builder link unit's argv. Index 0 (the
// builder's own link unit) is always skipped, per §4.G "Ordering
// guarantee".
func linkJobsFor(g *ResolvedGraph, targets []target.Target, in Inputs) []LinkJob {
	var jobs []LinkJob
	for idx, unit := range linkUnits {
		if idx == 0 {
			continue
		}
		for _, t := range targets {
			var objs []string
			for _, modID := range unit.Modules {
				mod, err := lookupModule(modID)
				if err != nil {
					continue
				}
				src := filepath.Join(in.Cwd, mod.Directory.Path(), mod.Name+".c")
				for _, cu := range g.CompilationUnits {
					if cu.SourcePath == src && cu.Target == t {
						objs = append(objs, cu.ObjectPath)
					}
				}
			}
			artifact := g.LinkArtifacts[unit.Name+"|"+t.Triple()]
			argv := SynthesizeArgs(ArgSynthOptions{
				Destination:         artifact,
				Sources:             objs,
				Target:              t,
				Optimize:            in.Flags.Optimize,
				Fuzz:                in.Flags.Fuzz,
				HasDebugInformation: in.Flags.HasDebugInformation,
				Sanitize:            in.Flags.Sanitize,
				CI:                  in.Flags.CI,
				UnityBuild:          in.Flags.UnityBuild,
				Link:                true,
				ForceColor:          !in.Flags.CI,
				XCSDKPath:           in.Flags.XCSDKPath,
				ClangPath:           in.ClangPath,
			})
			jobs = append(jobs, LinkJob{LinkUnitName: unit.Name, Argv: argv})

			if in.Flags.Sanitize && t.OS == target.OSWindows {
				copyAsanDLL(t, filepath.Dir(artifact))
			}
		}
	}
	return jobs
}

// runJobsFor builds the test/fuzz invocation for every non-builder
// artifact, per §4.G's RUN pseudocode.
func runJobsFor(g *ResolvedGraph, targets []target.Target, in Inputs) []LinkJob {
	var jobs []LinkJob
	for idx, unit := range linkUnits {
		if idx == 0 {
			continue
		}
		for _, t := range targets {
			artifact := g.LinkArtifacts[unit.Name+"|"+t.Triple()]
			var argv []string
			if in.Flags.Fuzz {
				argv = []string{artifact, "-max_len=4096", "-max_total_time=" + strconv.FormatInt(in.Flags.FuzzDuration, 10)}
			} else {
				argv = []string{artifact, "test"}
			}
			jobs = append(jobs, LinkJob{LinkUnitName: unit.Name, Argv: argv})
		}
	}
	return jobs
}

// copyAsanDLL copies clang_rt.asan_dynamic-<arch>.dll next to a Windows
// artifact built with the sanitizer on, per §6 "On-disk layout".
func copyAsanDLL(t target.Target, destDir string) {
	name := fmt.Sprintf("clang_rt.asan_dynamic-%s.dll", t.Arch)
	src := filepath.Join(filepath.Dir(destDir), "lib", name)
	dst := filepath.Join(destDir, name)
	if err := osx.CopyFile(src, dst); err != nil {
		glog.Errorf("build: copy asan dll: %v", err)
	}
}

func mkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func touchFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
