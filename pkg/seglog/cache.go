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

import (
	"container/list"
	"sync"

	"github.com/kvmesh/seglog/pkg/segment"
)

// segmentCache is an LRU, byte-bounded cache of closed segments, keyed
// by SegmentID and storing live *segment.Segment values. When a segment
// is evicted, onEvict is called so the owning SegmentLog can release its
// seglets back to the pool; re-fetching an evicted segment from another
// replica is the enclosing deployment's responsibility, not this
// package's.
type segmentCache struct {
	mu       sync.Mutex
	capacity int64
	size     int64
	ll       *list.List
	items    map[SegmentID]*list.Element
	onEvict  func(SegmentID, *segment.Segment)
}

type cacheEntry struct {
	id   SegmentID
	seg  *segment.Segment
	size int64
}

func newSegmentCache(capacityBytes int64, onEvict func(SegmentID, *segment.Segment)) *segmentCache {
	if capacityBytes <= 0 {
		capacityBytes = 1
	}
	return &segmentCache{
		capacity: capacityBytes,
		ll:       list.New(),
		items:    make(map[SegmentID]*list.Element),
		onEvict:  onEvict,
	}
}

// get returns the cached segment for id, if still mapped, and marks it
// most-recently-used.
func (c *segmentCache) get(id SegmentID) (*segment.Segment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[id]; ok {
		c.ll.MoveToFront(elem)
		return elem.Value.(*cacheEntry).seg, true
	}
	return nil, false
}

// put inserts or refreshes a segment of the given logical size, evicting
// the least-recently-used entries (calling onEvict on each) until the
// cache fits within capacity.
func (c *segmentCache) put(id SegmentID, seg *segment.Segment, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[id]; ok {
		c.ll.MoveToFront(elem)
		return
	}
	entry := &cacheEntry{id: id, seg: seg, size: size}
	elem := c.ll.PushFront(entry)
	c.items[id] = elem
	c.size += size
	c.evictIfNeeded()
}

// remove drops id from the cache without invoking onEvict; used when the
// owning SegmentLog is tearing the segment down itself.
func (c *segmentCache) remove(id SegmentID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[id]; ok {
		entry := elem.Value.(*cacheEntry)
		c.ll.Remove(elem)
		delete(c.items, id)
		c.size -= entry.size
	}
}

func (c *segmentCache) evictIfNeeded() {
	for c.size > c.capacity && c.ll.Len() > 0 {
		elem := c.ll.Back()
		entry := elem.Value.(*cacheEntry)
		c.ll.Remove(elem)
		delete(c.items, entry.id)
		c.size -= entry.size
		if c.onEvict != nil {
			c.onEvict(entry.id, entry.seg)
		}
	}
}
