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

// Package segment implements the append-only, checksummed, seglet-backed
// container that every other storage subsystem (log manager, cleaner,
// replica manager, recovery iterator) builds on. A Segment owns no
// transport, no persistence, and no background goroutines: every method
// runs to completion on the caller's goroutine.
package segment

// EntryType identifies the logical kind of an appended entry (object,
// tombstone, digest, ...). The segment treats types opaquely beyond
// counting per-type statistics; callers define the meaning of each value.
type EntryType uint8

// MaxTypes is the hard limit on distinct EntryType values, fixed by the
// 6-bit type field in EntryHeader.
const MaxTypes = 64

// InvalidEntryType is the zero value of EntryType, used as a sentinel for
// headers that have not yet been populated and for failed reads.
const InvalidEntryType EntryType = 0

// DefaultSegmentSize is the capacity NewSegment gives a self-allocated
// segment.
const DefaultSegmentSize = 8 * 1024 * 1024

// DiagnosticSegmentSize is a smaller capacity for memory-constrained or
// diagnostic use. Nothing in this package selects it: NewSegment always
// uses DefaultSegmentSize, and no build option switches between the two;
// a caller wanting this size passes it to NewSegmentSize.
const DiagnosticSegmentSize = 1 * 1024 * 1024
