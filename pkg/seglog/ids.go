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

// Package seglog is the ambient layer around pkg/segment: it rolls a
// sequence of segments over a SegletPool, bounds how much closed-segment
// memory stays mapped before seglets are handed back to the pool, and
// wires in the logging, metrics, and configuration a standalone segment
// has no business owning itself.
package seglog

// SegmentID names one segment within a SegmentLog. The identifier
// namespace lives here rather than in the core Segment object, since a
// bare segment has no notion of its position within a larger log.
type SegmentID uint64

// InvalidSegmentID is the zero value of SegmentID, never assigned to a
// real segment.
const InvalidSegmentID SegmentID = 0
