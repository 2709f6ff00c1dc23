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
	"sync"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/buster-os/builder/internal/osx"
)

// spawnJob is one child the scheduler spawns then joins; it is shared by
// the compile and link phases, which differ only in what argv they hand
// in and what they do with the result.
type spawnJob struct {
	label string
	argv  []string
}

// runPhase implements the two-phase "spawn every job, then wait on every
// job" barrier from §4.G "Scheduling": every job is started before any
// join begins, matching "spawn order is the array order" and "there is no
// happens-before between two spawned children; they race." Joining fans
// out across goroutines via errgroup (grounded on the teacher's worker
// pool, generalized to a library scheduler), so the waits run concurrently
// rather than one after another in spawn order. Per-job results are not
// kept: each failure is logged as it is joined, and only the combined
// success flag is returned.
func runPhase(ctx context.Context, jobs []spawnJob) (bool, error) {
	if len(jobs) == 0 {
		return true, nil
	}

	handles := make([]*osx.ProcessHandle, len(jobs))
	for i, j := range jobs {
		if len(j.argv) == 0 {
			return false, fmt.Errorf("build: job %q has empty argv", j.label)
		}
		h, err := osx.Spawn(j.argv[0], j.argv[1:], nil, osx.Capture{Stdout: true, Stderr: true})
		if err != nil {
			return false, fmt.Errorf("build: spawn %q: %w", j.label, err)
		}
		handles[i] = h
		glog.V(1).Infof("build: spawned %s", j.label)
	}

	var mu sync.Mutex
	ok := true
	g, _ := errgroup.WithContext(ctx)
	for i := range jobs {
		i := i
		g.Go(func() error {
			res, err := osx.WaitSync(handles[i])
			if err != nil {
				return fmt.Errorf("build: wait %q: %w", jobs[i].label, err)
			}
			if res.Result != osx.Success {
				mu.Lock()
				ok = false
				mu.Unlock()
				glog.Errorf("build: %s failed (%s)\n%s", jobs[i].label, res.Result, res.Streams[2])
			} else {
				glog.V(1).Infof("build: %s ok", jobs[i].label)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}
	return ok, nil
}

// CompilePhase spawns every compilation unit's compiler invocation in
// parallel and waits on all of them, preserving the global failure flag
// even once a unit fails (siblings still run to completion).
func CompilePhase(ctx context.Context, units []CompilationUnit) (bool, error) {
	jobs := make([]spawnJob, len(units))
	for i, u := range units {
		jobs[i] = spawnJob{label: u.SourcePath, argv: u.Argv}
	}
	return runPhase(ctx, jobs)
}

// LinkJob is one linker invocation the scheduler drives.
type LinkJob struct {
	LinkUnitName string
	Argv         []string
}

// LinkPhase spawns every job in jobs in parallel and waits on all. The
// builder's own link unit (index 0, per §4.G "Ordering guarantee") is left
// out earlier, by linkJobsFor.
func LinkPhase(ctx context.Context, jobs []LinkJob) (bool, error) {
	spawnJobs := make([]spawnJob, len(jobs))
	for i, j := range jobs {
		spawnJobs[i] = spawnJob{label: j.LinkUnitName, argv: j.Argv}
	}
	return runPhase(ctx, spawnJobs)
}

// RunPhase spawns every non-builder artifact under test or fuzz arguments
// and waits on all, per §4.G's RUN pseudocode.
func RunPhase(ctx context.Context, jobs []LinkJob) (bool, error) {
	spawnJobs := make([]spawnJob, len(jobs))
	for i, j := range jobs {
		spawnJobs[i] = spawnJob{label: j.LinkUnitName, argv: j.Argv}
	}
	return runPhase(ctx, spawnJobs)
}
