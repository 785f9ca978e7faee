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

import "errors"

// ErrOffsetOutOfRange is returned when a read references a logical offset
// that does not fall within the segment's appended range. Peek and
// CopyOut, which are bounded by allocated capacity instead, do not return
// it: they report an out-of-range offset with a nil view or a zero count.
var ErrOffsetOutOfRange = errors.New("segment: offset out of range")

// ErrCorruptEntry is returned when an entry's framing claims a length that
// would run past the segment's appended length.
var ErrCorruptEntry = errors.New("segment: entry framing runs past appended length")

// ErrShortCertificate is returned when decoding a certificate from fewer
// than 8 bytes.
var ErrShortCertificate = errors.New("segment: certificate requires 8 bytes")
