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

// Buffer is the gather-style byte container a Segment reads payloads from
// (Segment.AppendChunks) and writes views into (Segment.AppendToBuffer,
// SegmentIterator.AppendToBuffer). Chunks handed to Append may alias
// Segment-owned seglet memory; implementations must not retain them past
// the lifetime the caller promises to keep the owning Segment alive.
type Buffer interface {
	Append(chunk []byte)
}

// GatherBuffer is a minimal Buffer that just accumulates chunk views, the
// simplest thing that satisfies the interface. It is the reference
// implementation used by this package's own tests and by callers that
// don't already have a gather-buffer type of their own.
type GatherBuffer struct {
	chunks [][]byte
}

// Append records a chunk view.
func (b *GatherBuffer) Append(chunk []byte) {
	b.chunks = append(b.chunks, chunk)
}

// Chunks returns the accumulated chunk views in order.
func (b *GatherBuffer) Chunks() [][]byte {
	return b.chunks
}

// Bytes flattens the accumulated chunks into a single contiguous copy.
func (b *GatherBuffer) Bytes() []byte {
	total := 0
	for _, c := range b.chunks {
		total += len(c)
	}
	out := make([]byte, 0, total)
	for _, c := range b.chunks {
		out = append(out, c...)
	}
	return out
}
