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

package nldiag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum16(t *testing.T) {
	// CRC-16/ARC check value.
	require.Equal(t, uint16(0xbb3d), Checksum16([]byte("123456789")))
	require.Equal(t, uint16(0), Checksum16(nil))
	require.Equal(t, uint16(0), Checksum16([]byte{}))

	// The fingerprint is sensitive to byte order, not just content.
	require.NotEqual(t, Checksum16([]byte("ab")), Checksum16([]byte("ba")))
}

func TestSanitizeText(t *testing.T) {
	require.Equal(t, "", SanitizeText(nil))
	require.Equal(t, "wlan0", SanitizeText([]byte("wlan0")))

	// Printable ASCII boundaries: 0x20 and 0x7E pass, their neighbors
	// do not.
	require.Equal(t, "? ~?", SanitizeText([]byte{0x1f, 0x20, 0x7e, 0x7f}))

	// Embedded NULs and high bytes are masked, not truncated.
	require.Equal(t, "a?b?", SanitizeText([]byte{'a', 0, 'b', 0xff}))
}
