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
	"encoding/binary"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// nla encodes one netlink attribute: a 4-byte header followed by the
// payload, padded out to the 4-byte alignment boundary.
func nla(id uint16, payload []byte) []byte {
	attrLen := nlaHeaderLen + len(payload)
	buf := make([]byte, nlaAlignOf(attrLen))
	binary.LittleEndian.PutUint16(buf, uint16(attrLen))
	binary.LittleEndian.PutUint16(buf[2:], id)
	copy(buf[nlaHeaderLen:], payload)
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

func rawSummary(b []byte) string {
	return fmt.Sprintf("{len=%d, crc=%04x}", len(b), Checksum16(b))
}

var testMap = AttributeMap{
	1: {Name: "UP", Type: TypeFlag},
	2: {Name: "MTU", Type: TypeUint},
	3: {Name: "NAME", Type: TypeString},
	4: {Name: "ALIAS", Type: TypeStringNul},
	5: {Name: "ADDR", Type: TypeRaw},
	6: {Name: "STATS", Type: TypeRaw, Flags: FlagVerbose},
	7: {Name: "LINK", Type: TypeNested,
		Children: AttributeMap{2: {Name: "MTU", Type: TypeUint}}},
	8:  {Name: "AUTO"},
	9:  {Name: "EXT", Type: TypeNested},
	10: {Name: "HDR", Type: TypeStruct},
}

func TestDumpAttributes(t *testing.T) {
	for _, tc := range []struct {
		name    string
		data    []byte
		verbose bool
		want    string
	}{
		{
			name: "empty stream",
			want: "{}",
		},
		{
			name: "flag is presence only",
			data: nla(1, nil),
			want: "{UP}",
		},
		{
			name: "uint u8",
			data: nla(2, []byte{200}),
			want: "{MTU=200}",
		},
		{
			name: "uint u16",
			data: nla(2, u16le(9000)),
			want: "{MTU=9000}",
		},
		{
			name: "uint u32",
			data: nla(2, u32le(1500)),
			want: "{MTU=1500}",
		},
		{
			name: "uint u64",
			data: nla(2, []byte{0, 0, 0, 0, 1, 0, 0, 0}),
			want: "{MTU=4294967296}",
		},
		{
			name: "uint odd width compact",
			data: nla(2, []byte{1, 2, 3}),
			want: "{MTU=" + rawSummary([]byte{1, 2, 3}) + "}",
		},
		{
			name:    "uint odd width verbose",
			data:    nla(2, []byte{1, 2, 3}),
			verbose: true,
			want:    "{MTU=010203}",
		},
		{
			name: "string quoted and sanitized",
			data: nla(3, []byte("eth\x010")),
			want: `{NAME="eth?0"}`,
		},
		{
			name: "stringnul drops one trailing nul",
			data: nla(4, []byte("eth0\x00")),
			want: `{ALIAS="eth0"}`,
		},
		{
			name: "stringnul without terminator",
			data: nla(4, []byte("eth0")),
			want: `{ALIAS="eth0"}`,
		},
		{
			name: "stringnul masks embedded nul",
			data: nla(4, []byte("a\x00b\x00")),
			want: `{ALIAS="a?b"}`,
		},
		{
			name: "raw compact summarizes",
			data: nla(5, []byte{0xde, 0xad, 0xbe, 0xef}),
			want: "{ADDR=" + rawSummary([]byte{0xde, 0xad, 0xbe, 0xef}) + "}",
		},
		{
			name:    "raw verbose dumps hex",
			data:    nla(5, []byte{0xde, 0xad, 0xbe, 0xef}),
			verbose: true,
			want:    "{ADDR=deadbeef}",
		},
		{
			name: "verbose-flagged attr summarized in compact output",
			data: nla(6, u32le(7)),
			want: "{STATS=" + rawSummary(u32le(7)) + "}",
		},
		{
			name:    "verbose-flagged attr expanded in verbose output",
			data:    nla(6, u32le(7)),
			verbose: true,
			want:    "{STATS=07000000}",
		},
		{
			name: "auto decodes canonical widths",
			data: nla(8, u32le(42)),
			want: "{AUTO=42}",
		},
		{
			name: "auto falls back on odd widths",
			data: nla(8, []byte{1, 2, 3, 4, 5}),
			want: "{AUTO=" + rawSummary([]byte{1, 2, 3, 4, 5}) + "}",
		},
		{
			name: "struct with no formatter summarized",
			data: nla(10, []byte{9, 9}),
			want: "{HDR=" + rawSummary([]byte{9, 9}) + "}",
		},
		{
			name: "nested recurses through child map",
			data: nla(7, nla(2, u16le(9000))),
			want: "{LINK={MTU=9000}}",
		},
		{
			name: "nested without child map uses fallback",
			data: nla(9, nla(2, u32le(5))),
			want: "{EXT={#2=" + rawSummary(u32le(5)) + "}}",
		},
		{
			name: "unknown id renders numeric fallback",
			data: nla(99, []byte{1, 2}),
			want: "{#99=" + rawSummary([]byte{1, 2}) + "}",
		},
		{
			name: "type high bits are not part of the id",
			data: nla(2|nlaFlagNested|nlaFlagNetByteorder, u16le(1280)),
			want: "{MTU=1280}",
		},
		{
			name: "siblings joined in wire order",
			data: stream(nla(3, []byte("eth0")), nla(1, nil), nla(2, u32le(1500))),
			want: `{NAME="eth0", UP, MTU=1500}`,
		},
		{
			name: "padding between attrs skipped",
			data: stream(nla(3, []byte("lo")), nla(2, []byte{64})),
			want: `{NAME="lo", MTU=64}`,
		},
		{
			name: "declared length below header is an error",
			data: []byte{2, 0, 1, 0},
			want: "{ERR}",
		},
		{
			name: "declared length overrunning stream is an error",
			data: stream(nla(1, nil), []byte{100, 0, 2, 0}),
			want: "{UP, ERR}",
		},
		{
			name: "error preserves rendered siblings",
			data: stream(nla(2, u32le(1500)), []byte{0, 0, 2, 0}),
			want: "{MTU=1500, ERR}",
		},
		{
			name: "dangling partial header ignored",
			data: stream(nla(1, nil), []byte{8, 0}),
			want: "{UP}",
		},
		{
			name: "bare partial header ignored",
			data: []byte{8, 0, 1},
			want: "{}",
		},
		{
			name: "inner error does not leak outward",
			data: stream(nla(7, []byte{0, 0, 2, 0}), nla(1, nil)),
			want: "{LINK={ERR}, UP}",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := DumpAttributes(NewView(tc.data), testMap, tc.verbose)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDumpAttributesWildcard(t *testing.T) {
	m := AttributeMap{
		AnyID: {Name: "FQ", Type: TypeUint},
	}
	data := stream(nla(0, u32le(2412)), nla(1, u32le(2437)), nla(7, u32le(2462)))
	got := DumpAttributes(NewView(data), m, false)
	require.Equal(t, "{FQ=2412, FQ=2437, FQ=2462}", got)
}

func TestDumpAttributesStructFormatter(t *testing.T) {
	m := AttributeMap{
		1: {Name: "VER", Type: TypeStruct,
			Formatter: func(sb *strings.Builder, payload View, verbose bool) {
				u, ok := payload.Uint()
				if !ok {
					sb.WriteString("invalid structure")
					return
				}
				fmt.Fprintf(sb, "v%d", u)
			}},
	}
	require.Equal(t, "{VER=v3}", DumpAttributes(NewView(nla(1, []byte{3})), m, false))
	require.Equal(t, "{VER=invalid structure}",
		DumpAttributes(NewView(nla(1, []byte{3, 0, 0})), m, false))
}

func TestDumpAttributesDeterministic(t *testing.T) {
	data := stream(nla(3, []byte("eth0")), nla(7, nla(2, u16le(1500))), nla(99, []byte{1}))
	first := DumpAttributes(NewView(data), testMap, true)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, DumpAttributes(NewView(data), testMap, true))
	}
}

func FuzzDumpAttributes(f *testing.F) {
	f.Add([]byte{})
	f.Add(nla(1, nil))
	f.Add(stream(nla(3, []byte("eth0")), nla(7, nla(2, u16le(9000)))))
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 1, 2, 3})
	f.Fuzz(func(t *testing.T, data []byte) {
		// Arbitrary input must never panic or escape the braces, in
		// either mode.
		for _, verbose := range []bool{false, true} {
			out := DumpAttributes(NewView(data), testMap, verbose)
			if !strings.HasPrefix(out, "{") || !strings.HasSuffix(out, "}") {
				t.Fatalf("unbracketed output %q", out)
			}
		}
	})
}
