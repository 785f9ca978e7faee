// Copyright 2026 kvmesh contributors.
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

package segment

// entryHeader is the single byte immediately preceding every entry's
// variable-length length field. The low 6 bits hold the entry's type
// ordinal; the high 2 bits hold (lengthBytes-1), i.e. how many bytes the
// following little-endian length field occupies.
type entryHeader uint8

// newEntryHeader builds the header byte for an entry of the given type and
// payload length. t must be < MaxTypes; callers (Segment.Append) are
// expected to have already rejected out-of-range types as a programmer
// error before reaching here.
func newEntryHeader(t EntryType, length uint32) entryHeader {
	return entryHeader(uint8(t) | (lengthBytesFor(length)-1)<<6)
}

func (h entryHeader) entryType() EntryType {
	return EntryType(h & 0x3f)
}

func (h entryHeader) lengthBytes() uint8 {
	return uint8(h>>6) + 1
}

// lengthBytesFor returns the minimum number of little-endian bytes (1-4)
// needed to represent length.
func lengthBytesFor(length uint32) uint8 {
	switch {
	case length < 1<<8:
		return 1
	case length < 1<<16:
		return 2
	case length < 1<<24:
		return 3
	default:
		return 4
	}
}

// putLength writes length into dst using exactly len(dst) little-endian
// bytes. dst must be 1-4 bytes long.
func putLength(dst []byte, length uint32) {
	for i := range dst {
		dst[i] = byte(length >> (8 * uint(i)))
	}
}

// getLength decodes a little-endian length field of the given width.
func getLength(src []byte) uint32 {
	var length uint32
	for i, b := range src {
		length |= uint32(b) << (8 * uint(i))
	}
	return length
}

// entryOverhead returns the number of framing bytes (header + length
// field) an entry of the given payload length requires.
func entryOverhead(length uint32) uint32 {
	return 1 + uint32(lengthBytesFor(length))
}
