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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/projectcalico/nldiag"
)

func renderIEs(data []byte, verbose bool) string {
	var sb strings.Builder
	informationElements(&sb, nldiag.NewView(data), verbose)
	return sb.String()
}

func TestInformationElementsCompact(t *testing.T) {
	ies := stream(
		[]byte{WLAN_EID_SSID, 4, 't', 'e', 's', 't'},
		[]byte{221, 3, 1, 2, 3}, // vendor specific
	)
	want := fmt.Sprintf(`{len=%d, crc=%04x, SSID="test"}`, len(ies), nldiag.Checksum16(ies))
	require.Equal(t, want, renderIEs(ies, false))
}

func TestInformationElementsVerbose(t *testing.T) {
	vendor := []byte{1, 2, 3}
	ies := stream(
		[]byte{WLAN_EID_SSID, 4, 't', 'e', 's', 't'},
		append([]byte{221, 3}, vendor...),
	)
	want := fmt.Sprintf(`{SSID="test", 221:3/%04x}`, nldiag.Checksum16(vendor))
	require.Equal(t, want, renderIEs(ies, true))
}

func TestInformationElementsSanitizesSSID(t *testing.T) {
	ies := []byte{WLAN_EID_SSID, 3, 'a', 0x00, 0xff}
	require.Equal(t, `{SSID="a??"}`, renderIEs(ies, true))
}

func TestInformationElementsEmpty(t *testing.T) {
	require.Equal(t, "{}", renderIEs(nil, true))
	require.Equal(t, "{len=0, crc=0000}", renderIEs(nil, false))
}

func TestInformationElementsTruncated(t *testing.T) {
	// Declared element length overruns the blob.
	require.Equal(t, "{ERR}", renderIEs([]byte{WLAN_EID_SSID, 10, 'a'}, true))

	// A dangling element header with no length byte is also malformed;
	// IEs have no padding that could explain it.
	require.Equal(t, "{ERR}", renderIEs([]byte{221}, true))

	// Elements before the damage still render.
	ies := stream([]byte{WLAN_EID_SSID, 2, 'h', 'i'}, []byte{7, 200, 1})
	require.Equal(t, `{SSID="hi", ERR}`, renderIEs(ies, true))
}
