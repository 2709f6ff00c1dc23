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

package argv

import "strings"

// ParseWindowsCommandLine walks a flat Windows command line the same way
// the native iterator does (§4.E "Iterator"):
//
//  1. If the current code unit is '"', find the matching '"', emit the
//     contents between (exclusive), advance past the closing quote.
//  2. Else find the next space (or end); emit the preceding slice.
//  3. Skip runs of spaces before the next iteration.
//
// This is plain string logic with no OS dependency, so it is exercised on
// every host; only the real "where does the raw command line come from"
// step (list_windows.go) is Windows-only.
func ParseWindowsCommandLine(cmdline string) []string {
	var out []string
	i := 0
	n := len(cmdline)
	for i < n {
		for i < n && cmdline[i] == ' ' {
			i++
		}
		if i >= n {
			break
		}
		if cmdline[i] == '"' {
			start := i + 1
			end := strings.IndexByte(cmdline[start:], '"')
			if end < 0 {
				out = append(out, cmdline[start:])
				i = n
				break
			}
			end += start
			out = append(out, cmdline[start:end])
			i = end + 1
			continue
		}
		start := i
		end := strings.IndexByte(cmdline[start:], ' ')
		if end < 0 {
			out = append(out, cmdline[start:])
			i = n
			break
		}
		end += start
		out = append(out, cmdline[start:end])
		i = end
	}
	return out
}

// BuildWindowsCommandLine is the builder half: one flat, space-separated
// command line with a single logical terminator (Go strings are already
// length-delimited, so no literal zero byte is appended).
func BuildWindowsCommandLine(args []string) string {
	return strings.Join(args, " ")
}
