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

import (
	"bytes"
	"testing"
)

func TestIteratorOverEmptySegment(t *testing.T) {
	seg := NewSegment()
	it := NewSegmentIterator(seg)
	if it.HasNext() {
		t.Fatal("empty segment should have no entries")
	}
}

func TestAppendChunksGathersPayload(t *testing.T) {
	seg := NewSegment()
	chunks := [][]byte{[]byte("hello, "), []byte("wor"), []byte("ld")}
	offset, ok := seg.AppendChunks(testType, chunks)
	if !ok {
		t.Fatal("AppendChunks failed")
	}
	typ, payload, _, err := seg.GetEntry(offset - 2) // header(1) + length(1) = 2 bytes before payload
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if typ != testType || string(payload) != "hello, world" {
		t.Fatalf("got (%d, %q), want (%d, %q)", typ, payload, testType, "hello, world")
	}
}

func TestIteratorGetContiguousBytes(t *testing.T) {
	seg := NewSegment()
	if _, ok := seg.Append(testType, []byte("hello")); !ok {
		t.Fatal("append failed")
	}
	it := NewSegmentIterator(seg)
	it.Next()
	view := it.GetContiguousBytes()
	if !bytes.HasPrefix(view, []byte("hello")) {
		t.Fatalf("GetContiguousBytes = %q, want a view starting with %q", view, "hello")
	}
}

func TestCertifiedIteratorRejectsLengthMismatch(t *testing.T) {
	seg := NewSegmentSize(64)
	for _, p := range [][]byte{[]byte("abcdef"), []byte("ghijkl")} {
		if _, ok := seg.Append(testType, p); !ok {
			t.Fatal("append failed")
		}
	}
	cert := seg.Certificate() // witnesses length 16

	shrunk := NewSegmentSize(seg.capacity())
	seg.CopyOut(0, shrunk.segletBlocks[0])
	shrunk.head = 8 // a proper byte-prefix of seg, i.e. only the first entry

	if shrunk.CheckMetadataIntegrity(cert) {
		t.Fatal("a certificate for a longer segment must not validate against a shorter prefix")
	}
	it := NewCertifiedSegmentIterator(shrunk, cert)
	if it.Valid() {
		t.Fatal("iterator should be invalid when the certificate outlives the segment's data")
	}
}
