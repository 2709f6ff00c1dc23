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

package osx

import "time"

// TimeValue is the opaque monotonic timestamp type; on every Go target it
// is backed by time.Time's monotonic reading, which already holds the
// platform-appropriate precision (the C original widens to 128 bits on
// POSIX only to hold {seconds, nanoseconds} separately — time.Time does
// that natively).
type TimeValue struct {
	t time.Time
}

// InitializeTime exists for API parity with the C contract ("capture
// monotonic frequency once"); Go's time package needs no such one-time
// setup, so this always succeeds.
func InitializeTime() bool { return true }

// TimestampTake captures the current monotonic instant.
func TimestampTake() TimeValue { return TimeValue{t: time.Now()} }

// NsBetween returns the elapsed nanoseconds between two timestamps.
func NsBetween(start, end TimeValue) uint64 {
	d := end.t.Sub(start.t)
	if d < 0 {
		return 0
	}
	return uint64(d.Nanoseconds())
}
