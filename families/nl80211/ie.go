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

// informationElements renders an 802.11 information element blob.  Each
// element is a 1-byte element ID, a 1-byte length and that many bytes of
// body, with no alignment padding between elements.
//
// A full expansion of a scan result is mostly noise, so compact output
// summarizes the blob as its length and checksum and only pulls out the
// SSID, which is the element people actually look for.  Verbose output
// lists every element as id:length/crc.  Any truncated element,
// including a dangling partial header, ends the walk with an ERR
// marker; the format has no padding that could account for stray bytes.
func informationElements(sb *strings.Builder, payload nldiag.View, verbose bool) {
	sb.WriteByte('{')
	first := true
	sep := func() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
	}

	if !verbose {
		sep()
		fmt.Fprintf(sb, "len=%d, crc=%04x", payload.Len(), nldiag.Checksum16(payload.Bytes()))
	}

	for offset := 0; offset < payload.Len(); {
		eid, ok := payload.Uint8(offset)
		elen, ok2 := payload.Uint8(offset + 1)
		if !ok || !ok2 {
			sep()
			sb.WriteString("ERR")
			break
		}
		body, ok := payload.Slice(offset+2, int(elen))
		if !ok {
			sep()
			sb.WriteString("ERR")
			break
		}

		switch {
		case eid == WLAN_EID_SSID:
			sep()
			sb.WriteString(`SSID="`)
			sb.WriteString(nldiag.SanitizeText(body.Bytes()))
			sb.WriteByte('"')
		case verbose:
			sep()
			fmt.Fprintf(sb, "%d:%d/%04x", eid, body.Len(), nldiag.Checksum16(body.Bytes()))
		}

		offset += 2 + int(elen)
	}
	sb.WriteByte('}')
}
