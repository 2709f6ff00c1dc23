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

func TestLookupModuleKnownID(t *testing.T) {
	m, err := lookupModule(ModuleArena)
	require.NoError(t, err)
	assert.Equal(t, "arena", m.Name)
	assert.Equal(t, DirBuster, m.Directory)
}

func TestLookupModuleUnknownIDErrors(t *testing.T) {
	_, err := lookupModule(ModuleID(9999))
	assert.Error(t, err)
}

func TestLinkUnitsIndexZeroIsBuilder(t *testing.T) {
	require.NotEmpty(t, linkUnits)
	assert.Equal(t, "builder", linkUnits[0].Name)
}

func TestCCMainAndAsmMainHaveNoHeader(t *testing.T) {
	cc, err := lookupModule(ModuleCCMain)
	require.NoError(t, err)
	assert.True(t, cc.NoHeader)

	asm, err := lookupModule(ModuleAsmMain)
	require.NoError(t, err)
	assert.True(t, asm.NoHeader)
}
