// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"context"
	"database/sql/driver"
	"errors"
	"sync"
)

type Stmt struct {
	c     *Conn
	query string
	os    *ODBCStmt
	mu    sync.Mutex
}

func (c *Conn) Prepare(query string) (driver.Stmt, error) {
	return c.PrepareContext(context.Background(), query)
}

func (s *Stmt) NumInput() int {
	if s.os == nil {
		return -1
	}
	return len(s.os.Parameters)
}

func (s *Stmt) Close() error {
	if s.os == nil {
		return errors.New("Stmt is already closed")
	}
	ret := s.os.closeByStmt()
	s.os = nil
	return ret
}

// reprepare gives s a fresh statement handle when Rows still use the
// current one.
func (s *Stmt) reprepare() error {
	if !s.os.usedByRows {
		return nil
	}
	s.os.closeByStmt()
	s.os = nil
	os, err := s.c.PrepareODBCStmt(s.query)
	if err != nil {
		return err
	}
	s.os = os
	return nil
}

func (s *Stmt) Exec(args []driver.Value) (driver.Result, error) {
	return s.ExecContext(context.Background(), valuesToNamed(args))
}

func (s *Stmt) Query(args []driver.Value) (driver.Rows, error) {
	return s.QueryContext(context.Background(), valuesToNamed(args))
}

// implement driver.StmtExecContext
func (s *Stmt) ExecContext(ctx context.Context, args []driver.NamedValue) (driver.Result, error) {
	if s.os == nil {
		return nil, errors.New("Stmt is closed")
	}
	dargs, err := namedValueToValue(args)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reprepare(); err != nil {
		return nil, err
	}
	if err := s.os.Exec(ctx, dargs, s.c); err != nil {
		return nil, s.c.newError(err)
	}
	n, err := s.os.RowsAffected()
	if err != nil {
		return nil, s.c.newError(err)
	}
	return &Result{rowCount: n}, nil
}

// implement driver.StmtQueryContext
func (s *Stmt) QueryContext(ctx context.Context, args []driver.NamedValue) (driver.Rows, error) {
	if s.os == nil {
		return nil, errors.New("Stmt is closed")
	}
	dargs, err := namedValueToValue(args)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reprepare(); err != nil {
		return nil, err
	}
	if err := s.os.Exec(ctx, dargs, s.c); err != nil {
		return nil, s.c.newError(err)
	}
	if err := s.os.BindColumns(); err != nil {
		return nil, s.c.newError(err)
	}
	s.os.usedByRows = true // now both Stmt and Rows refer to it
	return &Rows{os: s.os, c: s.c}, nil
}

func valuesToNamed(args []driver.Value) []driver.NamedValue {
	named := make([]driver.NamedValue, len(args))
	for i, v := range args {
		named[i] = driver.NamedValue{Ordinal: i + 1, Value: v}
	}
	return named
}
