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
	"os"
	"strconv"
	"strings"

	"github.com/kvmesh/seglog/pkg/segment"
)

// Config controls a SegmentLog's seglet geometry and in-memory footprint.
// Every field has a usable default; callers embedding this package in
// their own config surface need not set any of them.
type Config struct {
	// SegletSize is the size, in bytes, of every seglet the log's pool
	// hands out. Must be a power of two when SegletsPerSegment > 1.
	SegletSize uint32
	// SegletsPerSegment is how many seglets back each rolled segment.
	SegletsPerSegment int
	// CacheBytes bounds how many bytes of closed-segment data the log
	// keeps mapped in memory before releasing seglets back to the pool.
	CacheBytes int64
}

// DefaultConfig returns the configuration cmd/segdemo falls back to when
// no SEGLOG_* environment variables are set.
func DefaultConfig() Config {
	return Config{
		SegletSize:        segment.DefaultSegmentSize,
		SegletsPerSegment: 1,
		CacheBytes:        64 * 1024 * 1024,
	}
}

// LoadConfig builds a Config from SEGLOG_-prefixed environment variables,
// falling back to DefaultConfig's values for anything unset or
// unparsable. It uses a small envIntOrDefault helper rather than pulling
// in a flags or config library.
func LoadConfig() Config {
	cfg := DefaultConfig()
	cfg.SegletSize = uint32(envIntOrDefault("SEGLOG_SEGLET_SIZE", int(cfg.SegletSize)))
	cfg.SegletsPerSegment = envIntOrDefault("SEGLOG_SEGLETS_PER_SEGMENT", cfg.SegletsPerSegment)
	cfg.CacheBytes = int64(envIntOrDefault("SEGLOG_CACHE_BYTES", int(cfg.CacheBytes)))
	return cfg
}

func envIntOrDefault(name string, fallback int) int {
	if val := strings.TrimSpace(os.Getenv(name)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}
