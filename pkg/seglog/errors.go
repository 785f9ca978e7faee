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

package seglog

import "errors"

// ErrPoolExhausted is returned when rolling over to a new segment
// requires more seglets than the SegletPool currently has available.
// The allocation policy that follows from this (wait, evict, page to
// another pool) belongs to the enclosing log manager, not this package;
// callers should treat it like a capacity-exhausted condition and roll
// over to a different resource.
var ErrPoolExhausted = errors.New("seglog: seglet pool exhausted")

// ErrEntryTooLarge is returned when a single entry's framing plus
// payload exceeds the capacity of a freshly rolled, otherwise-empty
// segment, so no amount of rolling over would make it fit.
var ErrEntryTooLarge = errors.New("seglog: entry exceeds a single segment's capacity")

// ErrUnknownSegment is returned by Certificate for a SegmentID this log
// never assigned. Lookup reports the same case with ok=false.
var ErrUnknownSegment = errors.New("seglog: unknown segment id")
