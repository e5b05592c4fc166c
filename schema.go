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
	"fmt"
	"strings"
)

// AttributeID keys an AttributeMap.  Concrete protocol IDs occupy the
// 16-bit netlink attribute ID space; AnyID sits outside it.
type AttributeID uint32

// AnyID is the wildcard key.  A map entry under AnyID matches every
// attribute ID not listed explicitly, which is how homogeneous arrays
// (repeated children sharing one definition) are described.
const AnyID AttributeID = 0x10000

// DataType selects how an attribute's payload is interpreted and
// rendered.  The zero value deliberately gives the best-effort
// interpretation so that a definition carrying just a name is useful.
type DataType int

const (
	// TypeAuto renders 1/2/4/8-byte payloads as unsigned integers and
	// everything else as a raw summary.
	TypeAuto DataType = iota
	// TypeFlag is presence-only; the payload, normally empty, is
	// ignored.
	TypeFlag
	// TypeUint is an unsigned integer whose width is the payload length.
	TypeUint
	// TypeString is text, rendered sanitized and quoted.
	TypeString
	// TypeStringNul is NUL-terminated text; one trailing NUL is dropped.
	TypeStringNul
	// TypeRaw is opaque bytes, summarized by length and checksum.
	TypeRaw
	// TypeNested is a TLV stream decoded through the child map.
	TypeNested
	// TypeStruct is a fixed binary layout decoded by the definition's
	// custom formatter.
	TypeStruct
)

// Flags carries auxiliary rendering hints.
type Flags uint8

const (
	// FlagVerbose marks large or noisy attributes (frequency lists,
	// vendor blobs) that compact output summarizes instead of expanding.
	FlagVerbose Flags = 1 << iota
)

// StructFormatter renders one fixed-layout payload into the output
// being built.  The payload view is the formatter's only window onto the
// message; a formatter handed fewer bytes than its layout needs must
// write an "invalid structure" marker rather than fail.
type StructFormatter func(sb *strings.Builder, payload View, verbose bool)

// AttributeDefinition describes how one attribute ID is interpreted and
// labeled.  Definitions are immutable once placed in a map.
type AttributeDefinition struct {
	Name string
	Type DataType

	// Children decodes the payload when Type is TypeNested.  A nested
	// definition with no child map still decodes; every inner attribute
	// then resolves to the unknown-attribute fallback.
	Children AttributeMap

	// Formatter renders the payload when Type is TypeStruct.
	Formatter StructFormatter

	Flags Flags
}

// AttributeMap maps attribute IDs to their definitions.  Maps are built
// once, typically in static initializers, and never mutated afterwards,
// so they are safe for concurrent readers.  At most one AnyID entry is
// meaningful per map.
type AttributeMap map[AttributeID]AttributeDefinition

// Resolve returns the definition governing an attribute ID: the explicit
// entry if present, else the wildcard entry, else a built-in unknown
// definition that renders the ID and a raw summary.  Lookup is total, so
// the decoder has no missing-schema error path.
func (m AttributeMap) Resolve(id uint16) AttributeDefinition {
	if def, ok := m[AttributeID(id)]; ok {
		return def
	}
	if def, ok := m[AnyID]; ok {
		return def
	}
	return AttributeDefinition{
		Name: fmt.Sprintf("#%d", id),
		Type: TypeRaw,
	}
}
