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

package nlctrl

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
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

func u16le(v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return b[:]
}

func u32le(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func TestFamilySingleton(t *testing.T) {
	require.Equal(t, "nlctrl", Family().Name())
	require.Same(t, Family(), Family())
}

func TestDescribeNewFamily(t *testing.T) {
	payload := stream(
		nla(CTRL_ATTR_FAMILY_ID, u16le(0x19)),
		nla(CTRL_ATTR_FAMILY_NAME, []byte("nl80211\x00")),
		nla(CTRL_ATTR_VERSION, u32le(1)),
		nla(CTRL_ATTR_OPS, nla(1, stream(
			nla(CTRL_ATTR_OP_ID, u32le(1)),
			nla(CTRL_ATTR_OP_FLAGS, u32le(11)),
		))),
		nla(CTRL_ATTR_MCAST_GROUPS, nla(1, stream(
			nla(CTRL_ATTR_MCAST_GRP_NAME, []byte("scan\x00")),
			nla(CTRL_ATTR_MCAST_GRP_ID, u32le(5)),
		))),
	)

	cmd, attrs := Family().Describe(CTRL_CMD_NEWFAMILY, payload)
	require.Equal(t, "NEWFAMILY", cmd)
	require.Equal(t,
		`{FAMILY_ID=25, FAMILY_NAME="nl80211", VERSION=1, `+
			`OPS={OP={ID=1, FLAGS=11}}, `+
			`MCAST_GROUPS={GRP={NAME="scan", ID=5}}}`,
		attrs)
}

func TestDescribeUnknownCommand(t *testing.T) {
	cmd, attrs := Family().Describe(200, nil)
	require.Equal(t, "#200", cmd)
	require.Equal(t, "{}", attrs)
}
