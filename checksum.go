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
	"strings"

	"github.com/sigurn/crc16"
)

// CRC-16/ARC: poly 0x8005 reflected, init 0.  An empty input checksums
// to 0.
var crcTable = crc16.MakeTable(crc16.CRC16_ARC)

// Checksum16 returns a short, order-sensitive fingerprint of a byte
// range.  The formatter uses it to summarize blobs it elects not to
// print in full.
func Checksum16(data []byte) uint16 {
	return crc16.Checksum(data, crcTable)
}

// SanitizeText maps arbitrary bytes to a printable string.  Bytes in the
// printable ASCII range 0x20..0x7E pass through; everything else,
// including embedded NULs, becomes '?'.  No encoding beyond raw byte
// filtering is assumed.
func SanitizeText(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		if b < 0x20 || b > 0x7E {
			sb.WriteByte('?')
		} else {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}
