// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dlodbc/odbc/api"
)

type ODBCStmt struct {
	dm         *api.DriverManager
	h          api.SQLHSTMT
	Parameters []Parameter
	Cols       []Column
	// locking/lifetime
	mu         sync.Mutex
	usedByStmt bool
	usedByRows bool
}

func (c *Conn) PrepareODBCStmt(query string) (*ODBCStmt, error) {
	out, err := allocHandle(c.dm, api.SQL_HANDLE_STMT, c.h)
	if err != nil {
		return nil, c.newError(err)
	}
	h := api.SQLHSTMT(out)

	ret, err := c.dm.Prepare(h, query)
	if err := check(c.dm, "SQLPrepare", h, ret, err); err != nil {
		defer releaseHandle(c.dm, h)
		return nil, c.newError(err)
	}
	ps, err := ExtractParameters(c.dm, h)
	if err != nil {
		defer releaseHandle(c.dm, h)
		return nil, c.newError(err)
	}
	return &ODBCStmt{
		dm:         c.dm,
		h:          h,
		Parameters: ps,
		usedByStmt: true,
	}, nil
}

func (s *ODBCStmt) closeByStmt() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.usedByStmt {
		defer func() { s.usedByStmt = false }()
		if !s.usedByRows {
			return s.releaseHandle()
		}
	}
	return nil
}

func (s *ODBCStmt) closeByRows() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.usedByRows {
		defer func() { s.usedByRows = false }()
		if s.usedByStmt {
			ret, err := s.dm.SQLFreeStmt(s.h, api.SQL_CLOSE)
			return check(s.dm, "SQLFreeStmt", s.h, ret, err)
		}
		return s.releaseHandle()
	}
	return nil
}

func (s *ODBCStmt) releaseHandle() error {
	h := s.h
	s.h = api.SQLHSTMT(api.SQL_NULL_HSTMT)
	return releaseHandle(s.dm, h)
}

// setTimeout turns the deadline of ctx into SQL_ATTR_QUERY_TIMEOUT.
// Drivers enforce it themselves; nothing watches ctx while the
// statement runs.
func (s *ODBCStmt) setTimeout(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return nil
	}
	secs := (time.Until(deadline) + time.Second - 1) / time.Second
	if secs < 1 {
		return context.DeadlineExceeded
	}
	ret, err := s.dm.SQLSetStmtAttr(s.h, api.SQL_ATTR_QUERY_TIMEOUT, api.SQLPOINTER(secs), api.SQL_IS_UINTEGER)
	if errors.Is(err, api.ErrNotImplemented) {
		return nil
	}
	return check(s.dm, "SQLSetStmtAttr", s.h, ret, err)
}

func (s *ODBCStmt) Exec(ctx context.Context, args []driver.Value, conn *Conn) error {
	if len(args) != len(s.Parameters) {
		return fmt.Errorf("wrong number of arguments %d, %d expected", len(args), len(s.Parameters))
	}
	for i, a := range args {
		// this could be done in 2 steps:
		// 1) bind vars right after prepare;
		// 2) set their (vars) values here;
		// but rebinding parameters for every new parameter value
		// should be efficient enough for our purpose.
		if err := s.Parameters[i].BindValue(s.dm, s.h, i, a, conn); err != nil {
			return err
		}
	}
	if err := s.setTimeout(ctx); err != nil {
		return err
	}
	ret, err := s.dm.SQLExecute(s.h)
	if err == nil && ret == api.SQL_NO_DATA {
		// success but no data to report
		return nil
	}
	return check(s.dm, "SQLExecute", s.h, ret, err)
}

// RowsAffected sums the row counts of every result of the last
// execution.
func (s *ODBCStmt) RowsAffected() (int64, error) {
	var sum int64
	for {
		var c api.SQLLEN
		ret, err := s.dm.SQLRowCount(s.h, &c)
		if err := check(s.dm, "SQLRowCount", s.h, ret, err); err != nil {
			return 0, err
		}
		if n := s.dm.Types().Len(c); n > 0 {
			sum += int64(n)
		}
		ret, err = s.dm.SQLMoreResults(s.h)
		if errors.Is(err, api.ErrNotImplemented) || ret == api.SQL_NO_DATA {
			break
		}
		if err := check(s.dm, "SQLMoreResults", s.h, ret, err); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

func (s *ODBCStmt) BindColumns() error {
	// count columns
	var n api.SQLSMALLINT
	ret, err := s.dm.SQLNumResultCols(s.h, &n)
	if err := check(s.dm, "SQLNumResultCols", s.h, ret, err); err != nil {
		return err
	}
	if n < 1 {
		return errors.New("Stmt did not create a result set")
	}
	// fetch column descriptions
	s.Cols = make([]Column, n)
	binding := true
	for i := range s.Cols {
		c, err := NewColumn(s.dm, s.h, i)
		if err != nil {
			return err
		}
		s.Cols[i] = c
		// Once we found one non-bindable column, we will not bind the rest.
		// http://www.easysoft.com/developer/languages/c/odbc-tutorial-fetching-results.html
		// ... One common restriction is that SQLGetData may only be called on columns after the last bound column. ...
		if !binding {
			continue
		}
		bound, err := s.Cols[i].Bind(s.dm, s.h, i)
		if err != nil {
			return err
		}
		if !bound {
			binding = false
		}
	}
	return nil
}

// NextResultSet moves to the next result set that has columns and
// binds them. It returns io.EOF when there are no more.
func (s *ODBCStmt) NextResultSet() error {
	for {
		ret, err := s.dm.SQLMoreResults(s.h)
		if err == nil && ret == api.SQL_NO_DATA {
			return io.EOF
		}
		if err := check(s.dm, "SQLMoreResults", s.h, ret, err); err != nil {
			return err
		}
		var n api.SQLSMALLINT
		ret, err = s.dm.SQLNumResultCols(s.h, &n)
		if err := check(s.dm, "SQLNumResultCols", s.h, ret, err); err != nil {
			return err
		}
		if n < 1 {
			continue
		}
		ret, err = s.dm.SQLFreeStmt(s.h, api.SQL_UNBIND)
		if err := check(s.dm, "SQLFreeStmt", s.h, ret, err); err != nil {
			return err
		}
		return s.BindColumns()
	}
}
