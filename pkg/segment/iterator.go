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

// SegmentIterator is a forward, single-pass cursor over the entries of a
// segment prefix. It holds only a borrowed reference to its Segment and
// never mutates it; the caller must ensure the segment outlives the
// iterator.
//
// Usage is HasNext/Next/Get*, in that order: Next loads the entry the
// cursor is about to expose, and the Get* accessors read back whatever
// Next most recently loaded.
type SegmentIterator struct {
	seg   *Segment
	limit uint32
	valid bool

	// pos is the offset of the next entry Next will load. curOffset is
	// the offset of the entry currently exposed through the Get*
	// accessors, meaningful only once Next has been called at least
	// once.
	pos       uint32
	curOffset uint32
	curType   EntryType
	curLen    uint32
	curTotal  uint32
}

// NewSegmentIterator constructs an iterator over seg bounded by seg's
// current appended length (head).
func NewSegmentIterator(seg *Segment) *SegmentIterator {
	return &SegmentIterator{seg: seg, limit: seg.head, valid: true}
}

// NewCertifiedSegmentIterator constructs an iterator over seg bounded by
// cert. If cert fails CheckMetadataIntegrity, the iterator is marked
// invalid and yields zero entries; callers should check Valid.
func NewCertifiedSegmentIterator(seg *Segment, cert Certificate) *SegmentIterator {
	it := &SegmentIterator{seg: seg, limit: cert.SegmentLength}
	it.valid = seg.CheckMetadataIntegrity(cert)
	return it
}

// Valid reports whether the certificate supplied at construction (if
// any) passed integrity verification. An iterator built with
// NewSegmentIterator is always valid.
func (it *SegmentIterator) Valid() bool {
	return it.valid
}

// HasNext reports whether there is another entry to read.
func (it *SegmentIterator) HasNext() bool {
	return it.valid && it.pos < it.limit
}

// Next advances the cursor to the next entry, loading its framing so
// GetType/GetLength/AppendToBuffer/GetContiguousBytes can read it back.
// It must not be called when HasNext is false.
func (it *SegmentIterator) Next() {
	if !it.HasNext() {
		return
	}

	var hdrBuf [1]byte
	it.seg.readAt(it.pos, hdrBuf[:])
	hdr := entryHeader(hdrBuf[0])
	lb := uint32(hdr.lengthBytes())

	lenBuf := make([]byte, lb)
	it.seg.readAt(it.pos+1, lenBuf)
	payloadLen := getLength(lenBuf)

	it.curOffset = it.pos
	it.curType = hdr.entryType()
	it.curLen = payloadLen
	it.curTotal = 1 + lb + payloadLen
	it.pos += it.curTotal
}

// GetType returns the entry type at the current cursor position.
func (it *SegmentIterator) GetType() EntryType {
	return it.curType
}

// GetLength returns the payload length of the entry at the current
// cursor position.
func (it *SegmentIterator) GetLength() uint32 {
	return it.curLen
}

func (it *SegmentIterator) payloadOffset() uint32 {
	lb := it.curTotal - it.curLen - 1
	return it.curOffset + 1 + lb
}

// AppendToBuffer appends zero-copy views of the current entry's payload
// to buf.
func (it *SegmentIterator) AppendToBuffer(buf Buffer) {
	// Error is impossible: the payload range was validated by
	// CheckMetadataIntegrity (certified case) or bounded by seg.head
	// (uncertified case, since Next only ever reads within [0, limit)
	// and limit <= seg.head).
	_ = it.seg.AppendToBuffer(buf, it.payloadOffset(), it.curLen)
}

// GetContiguousBytes resolves the current entry's payload to a direct
// pointer (view) and returns how many contiguous bytes are available
// there, mirroring Segment.Peek for the entry currently under the
// cursor.
func (it *SegmentIterator) GetContiguousBytes() []byte {
	return it.seg.Peek(it.payloadOffset())
}
