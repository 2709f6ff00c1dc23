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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/golang/glog"
)

// touchCacheManifest opens (creating if absent) build/cache_manifest and
// hashes the resolved module table, logging the digest at verbose level.
// It never consults the hash to decide whether to skip work: there is no
// caching semantics here, only the bookkeeping the original build.c did at
// the same spot before its own TODO.
//
// TODO: wire this into incremental rebuilds once per-object dependency
// tracking exists (see the all-or-nothing link-gating decision in
// DESIGN.md).
func touchCacheManifest(cwd string, g *ResolvedGraph, openOrCreate func(path string) error) error {
	path := filepath.Join(cwd, "build", "cache_manifest")
	if err := openOrCreate(path); err != nil {
		return fmt.Errorf("build: cache manifest: %w", err)
	}

	h := sha256.New()
	for _, f := range g.BuildFiles {
		fmt.Fprintf(h, "%d|%s|%s\n", f.Module, f.Target.Triple(), f.Path)
	}
	glog.V(1).Infof("build: cache manifest digest %s", hex.EncodeToString(h.Sum(nil)))
	return nil
}
