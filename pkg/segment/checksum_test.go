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
	"hash/crc32"
	"testing"
)

func TestChecksumMatchesOneShot(t *testing.T) {
	var c checksumState
	c.update([]byte("hello, "))
	c.update([]byte("world"))

	want := crc32.Checksum([]byte("hello, world"), crc32cTable)
	if c.value != want {
		t.Fatalf("incremental checksum = %#x, want %#x", c.value, want)
	}
}

func TestChecksumExtendedDoesNotMutate(t *testing.T) {
	var c checksumState
	c.update([]byte("abc"))
	before := c.value

	extended := c.extended([]byte("def"))
	if c.value != before {
		t.Fatalf("extended() mutated the receiver: value changed from %#x to %#x", before, c.value)
	}

	want := crc32.Checksum([]byte("abcdef"), crc32cTable)
	if extended != want {
		t.Fatalf("extended() = %#x, want %#x", extended, want)
	}
}
