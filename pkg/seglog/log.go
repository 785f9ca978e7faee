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
	"log/slog"
	"sync"

	"github.com/kvmesh/seglog/pkg/segment"
)

// SegmentLog coordinates a sequence of segment.Segment values over a
// SegletPool: it rolls to a fresh segment whenever the current one
// reports !HasSpaceFor, keeps closed segments reachable by SegmentID
// until the in-memory cache evicts them, and is where logging, metrics,
// and configuration attach. Shipping a closed segment's bytes to
// replicas is the job of whatever Replicator the caller installs; this
// type only notifies it once a segment's prefix becomes immutable.
//
// A SegmentLog has a single logical producer; it serializes its own
// bookkeeping with a mutex so that a background reader goroutine can
// safely call Lookup and Certificate concurrently with the producer's
// Append calls, but it does not support multiple concurrent appenders.
type SegmentLog struct {
	mu      sync.Mutex
	pool    segment.SegletPool
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics

	nextID SegmentID
	openID SegmentID
	open   *segment.Segment

	certs map[SegmentID]segment.Certificate
	order []SegmentID

	cache      *segmentCache
	replicator Replicator
}

// NewSegmentLog constructs a SegmentLog and rolls its first open segment.
// logger and metrics may be nil; a nil logger falls back to slog.Default,
// and a nil metrics disables instrumentation entirely.
func NewSegmentLog(pool segment.SegletPool, cfg Config, logger *slog.Logger, metrics *Metrics) (*SegmentLog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l := &SegmentLog{
		pool:    pool,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		certs:   make(map[SegmentID]segment.Certificate),
	}
	l.cache = newSegmentCache(cfg.CacheBytes, l.onEvict)
	if err := l.rollover(); err != nil {
		return nil, err
	}
	return l, nil
}

// onEvict is called by the cache when a closed segment's bytes are no
// longer being kept mapped. It releases the segment's seglets back to
// the pool; the caller is expected to have already fetched (or not
// need) anything from this segment, since a subsequent Lookup of an
// evicted id returns ok=false.
func (l *SegmentLog) onEvict(id SegmentID, seg *segment.Segment) {
	seg.Release()
	l.logger.Debug("segment evicted from cache", "id", id)
}

// Append writes one entry to the log's currently open segment, rolling
// over to a fresh one first if the entry wouldn't fit. It returns the
// SegmentID the entry landed in and the logical offset of its payload
// within that segment.
func (l *SegmentLog) Append(t segment.EntryType, payload []byte) (SegmentID, uint32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open.HasSpaceFor([]uint32{uint32(len(payload))}) {
		if err := l.rollover(); err != nil {
			l.recordRejected("pool_exhausted")
			return InvalidSegmentID, 0, err
		}
	}

	offset, ok := l.open.Append(t, payload)
	if !ok {
		l.recordRejected("capacity_exhausted")
		return InvalidSegmentID, 0, ErrEntryTooLarge
	}
	if l.metrics != nil {
		l.metrics.Appends.Inc()
	}
	return l.openID, offset, nil
}

func (l *SegmentLog) recordRejected(reason string) {
	if l.metrics != nil {
		l.metrics.AppendsRejected.WithLabelValues(reason).Inc()
	}
}

// rollover closes the current open segment (if any), files it under its
// SegmentID with a witnessing certificate, and claims a fresh set of
// seglets from the pool for a new open segment. Callers must hold l.mu.
func (l *SegmentLog) rollover() error {
	// Claim the new segment's seglets before touching the current open
	// one, so that a pool exhaustion failure leaves the log exactly as
	// it was: still appending to the same (unclosed, uncached) segment.
	seglets := make([]segment.Seglet, 0, l.cfg.SegletsPerSegment)
	for i := 0; i < l.cfg.SegletsPerSegment; i++ {
		sg, ok := l.pool.Alloc()
		if !ok {
			for _, s := range seglets {
				s.Free()
			}
			return ErrPoolExhausted
		}
		seglets = append(seglets, sg)
	}

	if l.open != nil {
		l.open.Close()
		cert := l.open.Certificate()
		l.certs[l.openID] = cert
		l.order = append(l.order, l.openID)
		// Replicate before caching: cache.put may evict (and release)
		// the segment at once when it exceeds the cache budget.
		if l.replicator != nil {
			if err := l.replicator.Replicate(l.openID, cert, l.open); err != nil {
				l.logger.Warn("replication failed", "id", l.openID, "error", err)
			}
		}
		l.cache.put(l.openID, l.open, int64(cert.SegmentLength))
		if l.metrics != nil {
			l.metrics.Rollovers.Inc()
		}
		l.logger.Debug("segment rolled", "id", l.openID, "cert", cert.String())
	}

	l.nextID++
	l.openID = l.nextID
	l.open = segment.NewSegmentFromSeglets(seglets, l.cfg.SegletSize)
	if l.metrics != nil {
		l.metrics.OpenSegments.Set(1)
		l.metrics.SegletsInUse.Add(float64(len(seglets)))
	}
	return nil
}

// OpenID returns the SegmentID currently accepting appends.
func (l *SegmentLog) OpenID() SegmentID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.openID
}

// Certificate returns the witnessing certificate for id: the open
// segment's live AppendedLength for the current open id, or the
// certificate captured at roll-over time for a closed one.
func (l *SegmentLog) Certificate(id SegmentID) (segment.Certificate, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if id == l.openID && l.open != nil {
		return l.open.Certificate(), nil
	}
	cert, ok := l.certs[id]
	if !ok {
		return segment.Certificate{}, ErrUnknownSegment
	}
	return cert, nil
}

// Lookup returns the segment for id, consulting the closed-segment cache
// when id isn't the currently open segment. ok is false if id was never
// assigned by this log, or if it was but its cache entry has since been
// evicted (its seglets already returned to the pool).
func (l *SegmentLog) Lookup(id SegmentID) (*segment.Segment, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if id == l.openID && l.open != nil {
		return l.open, true
	}
	if _, known := l.certs[id]; !known {
		return nil, false
	}
	return l.cache.get(id)
}

// CheckIntegrity verifies id's certificate against its current bytes,
// incrementing the integrity-failure counter on mismatch. It returns
// false both when the segment is unreachable and when its certificate
// fails to verify.
func (l *SegmentLog) CheckIntegrity(id SegmentID) bool {
	seg, ok := l.Lookup(id)
	if !ok {
		return false
	}
	cert, err := l.Certificate(id)
	if err != nil {
		return false
	}
	if seg.CheckMetadataIntegrity(cert) {
		return true
	}
	l.mu.Lock()
	if l.metrics != nil {
		l.metrics.IntegrityFailures.Inc()
	}
	l.mu.Unlock()
	return false
}

// SegmentIDs returns every SegmentID this log has ever assigned, in
// roll-over order, followed by the currently open one.
func (l *SegmentLog) SegmentIDs() []SegmentID {
	l.mu.Lock()
	defer l.mu.Unlock()
	ids := make([]SegmentID, len(l.order), len(l.order)+1)
	copy(ids, l.order)
	if l.open != nil {
		ids = append(ids, l.openID)
	}
	return ids
}

// Shutdown closes the currently open segment and releases every seglet
// this log still holds, closed or open, back to the pool.
func (l *SegmentLog) Shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.open != nil {
		l.open.Close()
		cert := l.open.Certificate()
		l.certs[l.openID] = cert
		l.order = append(l.order, l.openID)
		l.open.Release()
		l.open = nil
		if l.metrics != nil {
			l.metrics.OpenSegments.Set(0)
		}
	}
	for _, id := range l.order {
		if seg, ok := l.cache.get(id); ok {
			l.cache.remove(id)
			seg.Release()
		}
	}
}
