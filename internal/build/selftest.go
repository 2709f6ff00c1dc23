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
	"github.com/golang/glog"

	"github.com/buster-os/builder/internal/arena"
	"github.com/buster-os/builder/internal/argv"
	"github.com/buster-os/builder/internal/assertx"
	"github.com/buster-os/builder/internal/bytesx"
	"github.com/buster-os/builder/internal/osx"
	"github.com/buster-os/builder/internal/printx"
	"github.com/buster-os/builder/internal/target"
	"github.com/buster-os/builder/internal/ustr"
)

// RunBuilderTests is the driver's own `*_tests` aggregation point (§4.H):
// it runs every library's self-test entry point and AND-combines the
// results. bytesx/arena/osx predate package assertx in the import graph
// (assertx depends on them), so they get their own arena-free bool
// signature; everything downstream of assertx shares args.Arena.
func RunBuilderTests(args assertx.TestArguments) bool {
	result := true

	result = result && reportResult("bytesx", bytesx.Tests(args.Show))
	result = result && reportResult("arena", arena.Tests(args.Show))
	result = result && reportResult("osx", osx.Tests(args.Show))

	if args.Arena == nil {
		a, err := arena.Create(arena.Options{ReservedSize: 1 << 20, InitialSize: 1 << 16})
		if err != nil {
			glog.Errorf("build: RunBuilderTests: create arena: %v", err)
			return false
		}
		defer a.Destroy()
		args.Arena = a
	}

	result = result && reportResult("ustr", ustr.Tests(args))
	result = result && reportResult("argv", argv.Tests(args))
	result = result && reportResult("printx", printx.Tests(args))
	result = result && reportResult("target", target.Tests(args))

	return result
}

func reportResult(name string, ok bool) bool {
	if !ok {
		glog.Errorf("build: self-test failed: %s", name)
	}
	return ok
}
