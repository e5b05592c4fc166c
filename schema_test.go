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

func TestResolveExplicit(t *testing.T) {
	m := AttributeMap{
		3:     {Name: "IFINDEX", Type: TypeUint},
		AnyID: {Name: "ELEM", Type: TypeString},
	}

	def := m.Resolve(3)
	require.Equal(t, "IFINDEX", def.Name)
	require.Equal(t, TypeUint, def.Type)
}

func TestResolveWildcard(t *testing.T) {
	m := AttributeMap{
		3:     {Name: "IFINDEX", Type: TypeUint},
		AnyID: {Name: "ELEM", Type: TypeString},
	}

	// Any ID without an explicit entry falls through to the wildcard,
	// including ID 0.
	for _, id := range []uint16{0, 1, 4, 0x3fff} {
		def := m.Resolve(id)
		require.Equal(t, "ELEM", def.Name, "id %d", id)
		require.Equal(t, TypeString, def.Type)
	}
}

func TestResolveUnknown(t *testing.T) {
	m := AttributeMap{3: {Name: "IFINDEX", Type: TypeUint}}

	def := m.Resolve(99)
	require.Equal(t, "#99", def.Name)
	require.Equal(t, TypeRaw, def.Type)

	// A nil map is usable; everything resolves to the fallback.
	var empty AttributeMap
	def = empty.Resolve(0)
	require.Equal(t, "#0", def.Name)
	require.Equal(t, TypeRaw, def.Type)
}
