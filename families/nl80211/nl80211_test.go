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
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/projectcalico/nldiag"
)

func nla(id uint16, payload []byte) []byte {
	attrLen := 4 + len(payload)
	buf := make([]byte, (attrLen+3) & ^3)
	binary.LittleEndian.PutUint16(buf, uint16(attrLen))
	binary.LittleEndian.PutUint16(buf[2:], id)
	copy(buf[4:], payload)
	return buf
}

func stream(attrs ...[]byte) []byte {
	var buf []byte
	for _, a := range attrs {
		buf = append(buf, a...)
	}
	return buf
}

func u32le(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func TestFamilySingleton(t *testing.T) {
	f := Family()
	require.Equal(t, "nl80211", f.Name())
	require.Same(t, f, Family())
}

func TestDescribeTriggerScan(t *testing.T) {
	payload := nla(NL80211_ATTR_IFINDEX, u32le(3))
	cmd, attrs := Family().Describe(NL80211_CMD_TRIGGER_SCAN, payload)
	require.Equal(t, "TRIGGER_SCAN", cmd)
	require.Equal(t, "{IFINDEX=3}", attrs)
}

func TestDescribeUnknownCommand(t *testing.T) {
	cmd, attrs := Family().Describe(9999, nil)
	require.Equal(t, "#9999", cmd)
	require.Equal(t, "{}", attrs)
}

func TestScanResultSSID(t *testing.T) {
	ies := []byte{WLAN_EID_SSID, 4, 't', 'e', 's', 't'}
	payload := nla(NL80211_ATTR_BSS, nla(NL80211_BSS_INFORMATION_ELEMENTS, ies))

	cmd, attrs := Family().Describe(NL80211_CMD_NEW_SCAN_RESULTS, payload)
	require.Equal(t, "NEW_SCAN_RESULTS", cmd)

	want := fmt.Sprintf(`{BSS={INFORMATION_ELEMENTS={len=6, crc=%04x, SSID="test"}}}`,
		nldiag.Checksum16(ies))
	if diff := cmp.Diff(want, attrs); diff != "" {
		t.Fatalf("unexpected rendering (-want +got):\n%s", diff)
	}
}

func TestSupportedIftypes(t *testing.T) {
	payload := nla(NL80211_ATTR_SUPPORTED_IFTYPES, stream(
		nla(NL80211_IFTYPE_STATION, nil),
		nla(NL80211_IFTYPE_AP, nil),
	))
	_, attrs := Family().Describe(NL80211_CMD_NEW_WIPHY, payload)
	require.Equal(t, "{SUPPORTED_IFTYPES={STATION, AP}}", attrs)
}

func TestScanFrequenciesVerbosity(t *testing.T) {
	freqs := stream(nla(0, u32le(2412)), nla(1, u32le(2437)))
	payload := nla(NL80211_ATTR_SCAN_FREQUENCIES, freqs)

	// The frequency list is marked noisy, so compact output shows just
	// a fingerprint of it.
	_, compact := Family().Describe(NL80211_CMD_NEW_SCAN_RESULTS, payload)
	wantCompact := fmt.Sprintf("{SCAN_FREQUENCIES={len=%d, crc=%04x}}",
		len(freqs), nldiag.Checksum16(freqs))
	require.Equal(t, wantCompact, compact)

	_, verbose := Family().Describe(NL80211_CMD_NEW_SCAN_RESULTS, payload,
		nldiag.OptVerbose())
	require.Equal(t, "{SCAN_FREQUENCIES={FQ=2412, FQ=2437}}", verbose)
}

func TestWowlanPatternSupport(t *testing.T) {
	support := stream(u32le(20), u32le(16), u32le(128), u32le(0))
	payload := nla(NL80211_ATTR_WOWLAN_TRIGGERS_SUPPORTED,
		nla(NL80211_WOWLAN_TRIG_PKT_PATTERN, support))

	_, attrs := Family().Describe(NL80211_CMD_NEW_WIPHY, payload)
	require.Equal(t, "{WOWLAN_TRIGGERS_SUPPORTED={PKT_PATTERN={20,16,128,0}}}", attrs)
}
