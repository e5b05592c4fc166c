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
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Wire constants for struct nlattr, from uapi/linux/netlink.h.  Defined
// locally so the decoder builds on every platform.
const (
	nlaHeaderLen = 4
	nlaAlignTo   = 4
	nlaTypeMask  = 0x3fff

	// High bits of the attribute type field; not part of the ID.
	nlaFlagNested       = 1 << 15
	nlaFlagNetByteorder = 1 << 14
)

// nlaAlignOf rounds an attribute length up to the netlink attribute
// alignment boundary.
func nlaAlignOf(attrlen int) int {
	return (attrlen + nlaAlignTo - 1) & ^(nlaAlignTo - 1)
}

// DumpAttributes walks one TLV attribute stream under the governing map
// and renders it as a single bracketed group of "name=value" entries.
//
// The walk is fail-stop per nesting level: a header whose declared
// length overruns the stream emits an ERR marker and ends this level,
// leaving already-rendered siblings and all ancestor levels intact.  A
// dangling partial header at end-of-stream is treated as padding and
// ignored.  Decoding never returns an error; every malformation is
// reported in-band in the returned text.
func DumpAttributes(v View, m AttributeMap, verbose bool) string {
	var sb strings.Builder
	dumpAttrs(&sb, v, m, verbose)
	return sb.String()
}

func dumpAttrs(sb *strings.Builder, v View, m AttributeMap, verbose bool) {
	sb.WriteByte('{')
	first := true
	sep := func() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
	}

	for offset := 0; offset < v.Len(); {
		declaredLen, ok := v.Uint16(offset)
		typ, ok2 := v.Uint16(offset + 2)
		if !ok || !ok2 {
			// Not enough room for a full header: trailing padding.
			break
		}
		// The declared length covers the header itself.
		if int(declaredLen) < nlaHeaderLen {
			sep()
			sb.WriteString("ERR")
			countMalformedStream.Inc()
			break
		}
		payload, ok := v.Slice(offset+nlaHeaderLen, int(declaredLen)-nlaHeaderLen)
		if !ok {
			sep()
			sb.WriteString("ERR")
			countMalformedStream.Inc()
			break
		}

		id := typ & nlaTypeMask
		def := m.Resolve(id)
		if _, known := m[AttributeID(id)]; !known {
			if _, wild := m[AnyID]; !wild {
				countUnknownAttrs.Inc()
			}
		}

		sep()
		dumpOne(sb, def, payload, verbose)

		offset += nlaAlignOf(int(declaredLen))
	}
	sb.WriteByte('}')
}

// dumpOne renders a single attribute according to its definition.
func dumpOne(sb *strings.Builder, def AttributeDefinition, payload View, verbose bool) {
	if def.Type == TypeFlag {
		// Presence only, whatever the payload length says.
		sb.WriteString(def.Name)
		return
	}

	sb.WriteString(def.Name)
	sb.WriteByte('=')

	// Compact output summarizes attributes flagged as noisy instead of
	// expanding them.
	if def.Flags&FlagVerbose != 0 && !verbose {
		writeRawSummary(sb, payload)
		return
	}

	switch def.Type {
	case TypeUint:
		writeUint(sb, payload, verbose)
	case TypeString:
		writeQuoted(sb, payload.Bytes())
	case TypeStringNul:
		b := payload.Bytes()
		if n := len(b); n > 0 && b[n-1] == 0 {
			b = b[:n-1]
		}
		writeQuoted(sb, b)
	case TypeRaw:
		if verbose {
			sb.WriteString(hex.EncodeToString(payload.Bytes()))
		} else {
			writeRawSummary(sb, payload)
		}
	case TypeNested:
		dumpAttrs(sb, payload, def.Children, verbose)
	case TypeStruct:
		if def.Formatter == nil {
			writeRawSummary(sb, payload)
			return
		}
		def.Formatter(sb, payload, verbose)
	default: // TypeAuto
		writeUint(sb, payload, verbose)
	}
}

// writeUint renders the payload as an unsigned integer sized by its
// length, falling back to raw rendering for widths with no canonical
// integer size.
func writeUint(sb *strings.Builder, payload View, verbose bool) {
	if u, ok := payload.Uint(); ok {
		sb.WriteString(strconv.FormatUint(u, 10))
		return
	}
	if verbose {
		sb.WriteString(hex.EncodeToString(payload.Bytes()))
		return
	}
	writeRawSummary(sb, payload)
}

// writeRawSummary renders a blob as its length and checksum rather than
// its full bytes.
func writeRawSummary(sb *strings.Builder, payload View) {
	fmt.Fprintf(sb, "{len=%d, crc=%04x}", payload.Len(), Checksum16(payload.Bytes()))
}

func writeQuoted(sb *strings.Builder, b []byte) {
	sb.WriteByte('"')
	sb.WriteString(SanitizeText(b))
	sb.WriteByte('"')
}
