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

// Command segdemo exercises the seglog stack end to end: it appends a
// stream of records to a SegmentLog, rolls segments as they fill,
// prints each rolled segment's certificate, and verifies integrity
// before iterating the entries back out. It is a demo binary, not a
// server; option parsing and network exposure belong to the enclosing
// deployment.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kvmesh/seglog/pkg/seglog"
	"github.com/kvmesh/seglog/pkg/segment"
	"github.com/kvmesh/seglog/pkg/segment/segletpool"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	entryTypeRecord segment.EntryType = 1
)

func main() {
	logger := newLogger()
	cfg := seglog.LoadConfig()
	poolCapacity := envIntOrDefault("SEGLOG_POOL_CAPACITY", 64)

	pool := segletpool.New(cfg.SegletSize, poolCapacity)
	reg := prometheus.NewRegistry()
	metrics := seglog.NewMetrics(reg)

	l, err := seglog.NewSegmentLog(pool, cfg, logger, metrics)
	if err != nil {
		logger.Error("failed to start segment log", "error", err)
		os.Exit(1)
	}
	defer l.Shutdown()

	recordCount := envIntOrDefault("SEGLOG_DEMO_RECORDS", 10000)
	for i := 0; i < recordCount; i++ {
		payload := []byte(fmt.Sprintf("record-%d", i))
		id, _, err := l.Append(entryTypeRecord, payload)
		if err != nil {
			logger.Error("append failed", "record", i, "error", err)
			os.Exit(1)
		}
		if i%1000 == 0 {
			logger.Debug("appended record", "record", i, "segment", id)
		}
	}

	ids := l.SegmentIDs()
	logger.Info("append phase complete", "records", recordCount, "segments", len(ids))

	for _, id := range ids {
		cert, err := l.Certificate(id)
		if err != nil {
			logger.Error("missing certificate", "segment", id, "error", err)
			os.Exit(1)
		}
		ok := l.CheckIntegrity(id)
		logger.Info("segment certificate", "segment", id, "certificate", cert.String(), "integrity_ok", ok)
		if !ok {
			continue
		}

		seg, found := l.Lookup(id)
		if !found {
			logger.Warn("segment evicted from cache, skipping iteration", "segment", id)
			continue
		}
		var total, count int
		it := segment.NewCertifiedSegmentIterator(seg, cert)
		for it.HasNext() {
			it.Next()
			total += int(it.GetLength())
			count++
		}
		logger.Info("iterated segment", "segment", id, "entries", count, "payload_bytes", total)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("SEGLOG_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With("component", "segdemo")
}

func envIntOrDefault(name string, fallback int) int {
	if val := strings.TrimSpace(os.Getenv(name)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}
