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

// Package segletpool provides a reference SegletPool: a fixed-capacity
// freelist of equally sized blocks. It is an in-memory stand-in for the
// segment.SegletPool interface, suitable for tests, demos, and small
// single-process deployments, but not a production allocation policy —
// that belongs to the enclosing log manager.
package segletpool

import (
	"fmt"
	"sync"

	"github.com/kvmesh/seglog/pkg/segment"
)

// Pool is a non-thread-safe-by-contract (per segment.SegletPool's docs)
// freelist of fixed-size blocks. Pool itself serializes access with a
// mutex so it can be shared across multiple segments' lifetimes within
// one process even though no single segment calls it concurrently.
type Pool struct {
	mu         sync.Mutex
	segletSize uint32
	free       [][]byte
	allocated  int
	capacity   int
}

// New creates a pool that can hand out up to capacity blocks of
// segletSize bytes each, allocated lazily on first Alloc.
func New(segletSize uint32, capacity int) *Pool {
	if segletSize == 0 {
		panic("segletpool: segletSize must be non-zero")
	}
	return &Pool{
		segletSize: segletSize,
		capacity:   capacity,
	}
}

// Alloc returns a fresh or recycled seglet, or ok=false once the pool has
// handed out capacity blocks and none have been freed back.
func (p *Pool) Alloc() (segment.Seglet, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.free); n > 0 {
		block := p.free[n-1]
		p.free = p.free[:n-1]
		return &seglet{pool: p, block: block}, true
	}
	if p.allocated >= p.capacity {
		return nil, false
	}
	p.allocated++
	return &seglet{pool: p, block: make([]byte, p.segletSize)}, true
}

// InUse returns the number of blocks currently on loan.
func (p *Pool) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.allocated - len(p.free)
}

func (p *Pool) release(block []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if uint32(len(block)) != p.segletSize {
		panic(fmt.Sprintf("segletpool: freed block of length %d, want %d", len(block), p.segletSize))
	}
	for i := range block {
		block[i] = 0
	}
	p.free = append(p.free, block)
}

type seglet struct {
	pool  *Pool
	block []byte
	freed bool
}

func (s *seglet) Block() []byte {
	if s.freed {
		panic("segletpool: Block called on a freed seglet")
	}
	return s.block
}

func (s *seglet) Free() {
	if s.freed {
		panic("segletpool: double free of seglet")
	}
	s.freed = true
	s.pool.release(s.block)
}
