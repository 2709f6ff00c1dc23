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

//go:build arm64 && linux

package target

import (
	"os"
	"strconv"
	"strings"
)

const midrPath = "/sys/devices/system/cpu/cpu0/regs/identification/midr_el1"

// detectModelNative reads MIDR_EL1 and extracts the implementer (bits
// 31:24) and part number (bits 15:4), looking them up in a closed-enum
// switch. A missing or malformed file maps to ModelBaseline, matching the
// spec's "File missing or malformed -> Error sentinel" (ModelBaseline
// doubles as that sentinel since the total mapping in target.go always
// resolves to a real march/mcpu string).
func detectModelNative() Model {
	data, err := os.ReadFile(midrPath)
	if err != nil {
		return ModelBaseline
	}
	s := strings.TrimSpace(string(data))
	s = strings.TrimPrefix(s, "0x")
	midr, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return ModelBaseline
	}

	implementer := (midr >> 24) & 0xff
	partNum := (midr >> 4) & 0xfff

	switch implementer {
	case 0x41: // ARM Ltd.
		switch partNum {
		case 0xd08:
			return ModelCortexA72
		case 0xd0b:
			return ModelCortexA76
		case 0xd0c:
			return ModelNeoverseN1
		case 0xd40:
			return ModelGraviton3
		default:
			return ModelBaseline
		}
	default:
		return ModelBaseline
	}
}
