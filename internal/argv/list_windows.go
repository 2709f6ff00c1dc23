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

//go:build windows

package argv

import "golang.org/x/sys/windows"

// FromProcessArgv retrieves the raw Windows command line via
// GetCommandLine and walks it with ParseWindowsCommandLine, exercising the
// real §4.E "Iterator: Windows" path end to end.
func FromProcessArgv() List {
	raw := windows.UTF16PtrToString(windows.GetCommandLine())
	return FromStrings(ParseWindowsCommandLine(raw)...)
}
