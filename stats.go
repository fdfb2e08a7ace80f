// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"fmt"
	"sync"

	"github.com/dlodbc/odbc/api"
)

// Stats counts the live handles allocated by this package.
type Stats struct {
	EnvCount  int
	ConnCount int
	StmtCount int
	DescCount int
	mu        sync.Mutex
}

func (s *Stats) updateHandleCount(handleType api.SQLSMALLINT, change int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch handleType {
	case api.SQL_HANDLE_ENV:
		s.EnvCount += change
	case api.SQL_HANDLE_DBC:
		s.ConnCount += change
	case api.SQL_HANDLE_STMT:
		s.StmtCount += change
	case api.SQL_HANDLE_DESC:
		s.DescCount += change
	default:
		return fmt.Errorf("unexpected handle type %d", handleType)
	}
	return nil
}

// Snapshot returns a copy of the counters.
func (s *Stats) Snapshot() (env, conn, stmt, desc int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.EnvCount, s.ConnCount, s.StmtCount, s.DescCount
}

// HandleStats returns the handle counters of the package.
func HandleStats() *Stats {
	return &drv.Stats
}
