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

func TestTouchCacheManifestOpensExactlyOncePerInvocation(t *testing.T) {
	g, err := Resolve("/work", []target.Target{linuxTarget()}, Flags{}, "clang")
	require.NoError(t, err)

	var opened []string
	open := func(path string) error {
		opened = append(opened, path)
		return nil
	}
	require.NoError(t, touchCacheManifest("/work", g, open))
	assert.Equal(t, []string{"/work/build/cache_manifest"}, opened)
}

func TestTouchCacheManifestPropagatesOpenError(t *testing.T) {
	g := &ResolvedGraph{}
	open := func(path string) error { return assert.AnError }
	assert.Error(t, touchCacheManifest("/work", g, open))
}
