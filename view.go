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

import "encoding/binary"

// View is an immutable, bounds-checked window onto a byte buffer.  It is
// the only way the decoder touches message bytes; every access either
// stays inside the window or reports failure, so arbitrarily corrupted
// input can never cause an out-of-range read.
//
// A View does not copy or own the underlying buffer.  The caller must
// keep the buffer alive and unmodified while the View is in use.
type View struct {
	data []byte
}

// NewView wraps a raw buffer.  A nil buffer gives an empty view.
func NewView(data []byte) View {
	return View{data: data}
}

// Len returns the number of bytes visible through the view.
func (v View) Len() int {
	return len(v.data)
}

// Bytes returns the visible bytes.  Callers must not mutate the result.
func (v View) Bytes() []byte {
	return v.data
}

// Slice returns the sub-view [offset, offset+length).  The second result
// is false if the requested range is not fully contained in the view.
// The containment check is written subtraction-first so that offset+length
// cannot overflow.
func (v View) Slice(offset, length int) (View, bool) {
	if offset < 0 || length < 0 || offset > len(v.data) || length > len(v.data)-offset {
		return View{}, false
	}
	return View{data: v.data[offset : offset+length]}, true
}

// Uint8 reads the byte at the given offset.
func (v View) Uint8(offset int) (uint8, bool) {
	if offset < 0 || offset >= len(v.data) {
		return 0, false
	}
	return v.data[offset], true
}

// Uint16 reads a native-order (little-endian) 16-bit value at the given
// offset.
func (v View) Uint16(offset int) (uint16, bool) {
	if offset < 0 || offset > len(v.data)-2 {
		return 0, false
	}
	return binary.LittleEndian.Uint16(v.data[offset:]), true
}

// Uint32 reads a native-order 32-bit value at the given offset.
func (v View) Uint32(offset int) (uint32, bool) {
	if offset < 0 || offset > len(v.data)-4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(v.data[offset:]), true
}

// Uint64 reads a native-order 64-bit value at the given offset.
func (v View) Uint64(offset int) (uint64, bool) {
	if offset < 0 || offset > len(v.data)-8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(v.data[offset:]), true
}

// Uint reads an unsigned integer whose width is the whole view.  Only the
// four canonical widths decode; any other view length reports failure.
func (v View) Uint() (uint64, bool) {
	switch len(v.data) {
	case 1:
		return uint64(v.data[0]), true
	case 2:
		return uint64(binary.LittleEndian.Uint16(v.data)), true
	case 4:
		return uint64(binary.LittleEndian.Uint32(v.data)), true
	case 8:
		return binary.LittleEndian.Uint64(v.data), true
	}
	return 0, false
}
