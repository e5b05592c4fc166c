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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/projectcalico/nldiag"
)

func TestPatternSupport(t *testing.T) {
	var sb strings.Builder
	patternSupport(&sb, nldiag.NewView(stream(u32le(20), u32le(16), u32le(128), u32le(0))), false)
	require.Equal(t, "{20,16,128,0}", sb.String())
}

func TestPatternSupportShortPayload(t *testing.T) {
	for _, n := range []int{0, 4, 12, 15} {
		var sb strings.Builder
		patternSupport(&sb, nldiag.NewView(make([]byte, n)), false)
		require.Equal(t, "invalid structure", sb.String(), "payload length %d", n)
	}
}

func TestUint32Array(t *testing.T) {
	var sb strings.Builder
	uint32Array(&sb, nldiag.NewView(stream(u32le(1), u32le(48))), false)
	require.Equal(t, "{1, 48}", sb.String())
}

func TestUint32ArrayEmpty(t *testing.T) {
	var sb strings.Builder
	uint32Array(&sb, nldiag.NewView(nil), false)
	require.Equal(t, "{}", sb.String())
}

func TestUint32ArrayRaggedTail(t *testing.T) {
	var sb strings.Builder
	uint32Array(&sb, nldiag.NewView(stream(u32le(1), []byte{2, 0})), false)
	require.Equal(t, "{1, ERR}", sb.String())
}
