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

// Package build is the build driver (component G): it walks the static
// module/link-unit tables, resolves them into compilation units, emits
// compile_commands.json, and runs the two-phase compile-then-link
// scheduler (and, for the test commands, the fuzz/test run phase).
package build

import "fmt"

// DirectoryID is the closed enum of source roots the module table indexes
// into.
type DirectoryID int

const (
	DirBuster DirectoryID = iota // shared systems library, consumed by every link unit
	DirCC                        // C frontend
	DirAsm                       // assembler
)

// directoryPaths is the directory-id -> path table named in §4.G inputs.
var directoryPaths = map[DirectoryID]string{
	DirBuster: "src/buster",
	DirCC:     "src/cc",
	DirAsm:    "src/asm",
}

func (d DirectoryID) Path() string {
	p, ok := directoryPaths[d]
	if !ok {
		return ""
	}
	return p
}

// ModuleID is the closed enum of named source/header pairs. The first nine
// mirror this repository's own components (A-I of the system overview):
// the build driver links itself out of the same module table it resolves
// for its siblings. The remaining two are the main-entry modules of the
// two sibling artifacts, whose internals are out of scope.
type ModuleID int

const (
	ModuleBytesx ModuleID = iota
	ModuleArena
	ModuleUstr
	ModuleOsx
	ModuleArgv
	ModulePrintx
	ModuleBuild
	ModuleAssertx
	ModuleTarget
	ModuleCCMain
	ModuleAsmMain
)

// Module is the static descriptor named in §3: {directory_id, no_header,
// no_source}.
type Module struct {
	ID        ModuleID
	Name      string
	Directory DirectoryID
	NoHeader  bool
	NoSource  bool
}

// moduleTable is the module table named in §4.G inputs.
var moduleTable = map[ModuleID]Module{
	ModuleBytesx:  {ID: ModuleBytesx, Name: "bytesx", Directory: DirBuster},
	ModuleArena:   {ID: ModuleArena, Name: "arena", Directory: DirBuster},
	ModuleUstr:    {ID: ModuleUstr, Name: "ustr", Directory: DirBuster},
	ModuleOsx:     {ID: ModuleOsx, Name: "osx", Directory: DirBuster},
	ModuleArgv:    {ID: ModuleArgv, Name: "argv", Directory: DirBuster},
	ModulePrintx:  {ID: ModulePrintx, Name: "printx", Directory: DirBuster},
	ModuleBuild:   {ID: ModuleBuild, Name: "build", Directory: DirBuster},
	ModuleAssertx: {ID: ModuleAssertx, Name: "assertx", Directory: DirBuster},
	ModuleTarget:  {ID: ModuleTarget, Name: "target", Directory: DirBuster},
	ModuleCCMain:  {ID: ModuleCCMain, Name: "main", Directory: DirCC, NoHeader: true},
	ModuleAsmMain: {ID: ModuleAsmMain, Name: "main", Directory: DirAsm, NoHeader: true},
}

func lookupModule(id ModuleID) (Module, error) {
	m, ok := moduleTable[id]
	if !ok {
		return Module{}, fmt.Errorf("build: unknown module id %d", id)
	}
	return m, nil
}

// LinkUnitSpec is {name, module_list, target, artifact_path, flags...} from
// §3, minus target (resolved separately per build, not baked into the
// static table) and flags (carried by the shared Flags value for the whole
// invocation, per §4.G's argument-synthesis option set).
type LinkUnitSpec struct {
	Name         string
	ArtifactName string
	Modules      []ModuleID
}

// sharedLibrary lists every module the build driver itself is made of;
// both sibling artifacts link against it, same as the driver links against
// itself.
var sharedLibrary = []ModuleID{
	ModuleBytesx, ModuleArena, ModuleUstr, ModuleOsx, ModuleArgv,
	ModulePrintx, ModuleBuild, ModuleAssertx, ModuleTarget,
}

// linkUnits is the link-unit specification table named in §4.G inputs.
// Index 0 is always the builder's own link unit (see §4.G "Ordering
// guarantee"): it is resolved into compilation units and appears in
// compile_commands.json like any other, but the scheduler's link phase
// skips it because the builder is the binary currently running, not
// something it re-links during its own invocation.
var linkUnits = []LinkUnitSpec{
	{Name: "builder", ArtifactName: "builder", Modules: append(append([]ModuleID{}, sharedLibrary...))},
	{Name: "cc", ArtifactName: "cc", Modules: append(append([]ModuleID{}, sharedLibrary...), ModuleCCMain)},
	{Name: "asm", ArtifactName: "asm", Modules: append(append([]ModuleID{}, sharedLibrary...), ModuleAsmMain)},
}
