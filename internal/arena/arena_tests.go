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

package arena

import "github.com/golang/glog"

// Tests is this package's `*_tests` entry point (§4.H). It takes a plain
// bool instead of the shared assertx.TestArguments: package assertx itself
// depends on arena (for TestArguments.Arena), so arena importing assertx
// back would cycle. The driver's self-test registry (internal/build)
// calls this directly instead of routing it through assertx.Run.
func Tests(show bool) bool {
	a, err := Create(Options{ReservedSize: 1 << 20, InitialSize: 1 << 16})
	if err != nil {
		if show {
			glog.Errorf("arena: Tests: create: %v", err)
		}
		return false
	}
	defer a.Destroy()

	result := true

	b, err := a.Allocate(64, 8)
	result = result && err == nil && len(b) == 64

	snapshot := a.Position()
	if _, err := a.Allocate(1<<14, 64); err != nil {
		result = false
	}
	if err := a.SetPosition(snapshot); err != nil {
		result = false
	}
	if a.Position() != snapshot {
		result = false
	}

	a.Reset()
	result = result && a.Position() == headerSize

	if show {
		glog.V(1).Infof("arena: Tests result=%v", result)
	}
	return result
}
