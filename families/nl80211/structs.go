// Copyright (c) 2026 Tigera, Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nl80211

import (
	"fmt"
	"strings"

	"github.com/projectcalico/nldiag"
)

// patternSupport renders struct nl80211_pattern_support: four u32 fields
// giving max patterns, min and max pattern length, and max packet offset.
func patternSupport(sb *strings.Builder, payload nldiag.View, verbose bool) {
	maxPatterns, ok1 := payload.Uint32(0)
	minLen, ok2 := payload.Uint32(4)
	maxLen, ok3 := payload.Uint32(8)
	maxOffset, ok4 := payload.Uint32(12)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		sb.WriteString("invalid structure")
		return
	}
	fmt.Fprintf(sb, "{%d,%d,%d,%d}", maxPatterns, minLen, maxLen, maxOffset)
}

// uint32Array renders the payload as a braced list of u32 values.  A
// payload that is not a whole number of u32s ends with an ERR marker.
func uint32Array(sb *strings.Builder, payload nldiag.View, verbose bool) {
	sb.WriteByte('{')
	for offset := 0; offset < payload.Len(); offset += 4 {
		if offset > 0 {
			sb.WriteString(", ")
		}
		u, ok := payload.Uint32(offset)
		if !ok {
			sb.WriteString("ERR")
			break
		}
		fmt.Fprintf(sb, "%d", u)
	}
	sb.WriteByte('}')
}
