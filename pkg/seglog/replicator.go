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

import "github.com/kvmesh/seglog/pkg/segment"

// Replicator is the seam where a caller plugs in replica transport or
// backup-to-object-storage upload. Replica transport and RPC dispatch
// belong to the enclosing deployment, not this package, so no concrete
// Replicator ships here; SegmentLog only calls it, at the moment a
// segment's prefix becomes immutable, with exactly the (certificate,
// segment) pair that needs to reach a replica.
type Replicator interface {
	// Replicate is called once per rolled-over segment, after it has
	// been closed and before it is handed to the cache, so before its
	// seglets can be evicted. Implementations should copy whatever bytes
	// they need out of seg (via CopyOut, or by copying the chunks
	// AppendToBuffer/AppendAllToBuffer return, which alias seglet memory)
	// rather than retaining seg itself, since it may be released back to
	// the pool once evicted.
	Replicate(id SegmentID, cert segment.Certificate, seg *segment.Segment) error
}

// SetReplicator installs r to be notified on every subsequent roll-over.
// A nil r (the default) disables replication entirely.
func (l *SegmentLog) SetReplicator(r Replicator) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.replicator = r
}
