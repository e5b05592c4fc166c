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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewEmpty(t *testing.T) {
	v := NewView(nil)
	require.Equal(t, 0, v.Len())
	require.Empty(t, v.Bytes())

	_, ok := v.Uint8(0)
	require.False(t, ok)

	sub, ok := v.Slice(0, 0)
	require.True(t, ok)
	require.Equal(t, 0, sub.Len())
}

func TestViewSliceBounds(t *testing.T) {
	v := NewView([]byte{1, 2, 3, 4})

	sub, ok := v.Slice(1, 2)
	require.True(t, ok)
	require.Equal(t, []byte{2, 3}, sub.Bytes())

	// Full range and empty tail are both in bounds.
	_, ok = v.Slice(0, 4)
	require.True(t, ok)
	_, ok = v.Slice(4, 0)
	require.True(t, ok)

	// One past the end is not.
	_, ok = v.Slice(4, 1)
	require.False(t, ok)
	_, ok = v.Slice(5, 0)
	require.False(t, ok)
	_, ok = v.Slice(1, 4)
	require.False(t, ok)

	// Negative and overflowing requests fail rather than wrap.
	_, ok = v.Slice(-1, 2)
	require.False(t, ok)
	_, ok = v.Slice(0, -1)
	require.False(t, ok)
	_, ok = v.Slice(2, math.MaxInt)
	require.False(t, ok)
	_, ok = v.Slice(math.MaxInt, math.MaxInt)
	require.False(t, ok)
}

func TestViewTypedReads(t *testing.T) {
	v := NewView([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})

	b, ok := v.Uint8(2)
	require.True(t, ok)
	require.Equal(t, uint8(0x03), b)

	u16, ok := v.Uint16(0)
	require.True(t, ok)
	require.Equal(t, uint16(0x0201), u16)

	u32, ok := v.Uint32(2)
	require.True(t, ok)
	require.Equal(t, uint32(0x06050403), u32)

	u64, ok := v.Uint64(0)
	require.True(t, ok)
	require.Equal(t, uint64(0x0807060504030201), u64)

	// Reads that would run past the end fail.
	_, ok = v.Uint16(7)
	require.False(t, ok)
	_, ok = v.Uint32(5)
	require.False(t, ok)
	_, ok = v.Uint64(1)
	require.False(t, ok)
	_, ok = v.Uint8(-1)
	require.False(t, ok)
}

func TestViewUintWholeWidth(t *testing.T) {
	for _, tc := range []struct {
		data []byte
		want uint64
	}{
		{[]byte{0xff}, 0xff},
		{[]byte{0x34, 0x12}, 0x1234},
		{[]byte{0x78, 0x56, 0x34, 0x12}, 0x12345678},
		{[]byte{8, 7, 6, 5, 4, 3, 2, 1}, 0x0102030405060708},
	} {
		u, ok := NewView(tc.data).Uint()
		require.True(t, ok)
		require.Equal(t, tc.want, u)
	}

	// Non-canonical widths do not decode.
	for _, n := range []int{0, 3, 5, 6, 7, 9} {
		_, ok := NewView(make([]byte, n)).Uint()
		require.False(t, ok, "width %d should not decode", n)
	}
}
