// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"log/slog"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/dlodbc/odbc/api"
)

// ConnOption configures Connect.
type ConnOption func(*connOptions)

type connOptions struct {
	loginTimeout time.Duration
}

// WithLoginTimeout sets SQL_ATTR_LOGIN_TIMEOUT, in whole seconds,
// before connecting.
func WithLoginTimeout(d time.Duration) ConnOption {
	return func(o *connOptions) { o.loginTimeout = d }
}

// Connection is a connection handle connected to a data source.
// All native calls made through a Connection and its cursors are
// serialised by one mutex.
type Connection struct {
	env   *Environment
	dm    *api.DriverManager
	h     api.SQLHDBC
	log   *slog.Logger
	freed atomic.Bool

	mu         sync.Mutex
	autocommit bool
	cursors    map[*Cursor]struct{}
}

// Connect allocates a connection handle under env and connects it
// with connStr, without prompting. The connection starts with
// autocommit off.
func Connect(env *Environment, connStr string, opts ...ConnOption) (*Connection, error) {
	if env == nil {
		return nil, interfaceError("no environment handle", nil)
	}
	var o connOptions
	for _, opt := range opts {
		opt(&o)
	}
	henv, err := env.acquire()
	if err != nil {
		return nil, interfaceError("no environment handle", err)
	}
	dm := env.dm
	out, err := allocHandle(dm, api.SQL_HANDLE_DBC, henv)
	if err != nil {
		env.release()
		env.log.Warn("unable to allocate connection handle", "error", err)
		return nil, interfaceError("unable to alloc connection", err)
	}
	h := api.SQLHDBC(out)
	fail := func(err error) (*Connection, error) {
		releaseHandle(dm, h)
		env.release()
		return nil, interfaceError("bad connection", err)
	}

	if o.loginTimeout > 0 {
		ret, err := dm.SQLSetConnectAttr(h, api.SQL_ATTR_LOGIN_TIMEOUT,
			api.SQLPOINTER(o.loginTimeout/time.Second), api.SQL_IS_UINTEGER)
		if err := check(dm, "SQLSetConnectAttr", h, ret, err); err != nil {
			return fail(err)
		}
	}
	ret, err := dm.DriverConnect(h, connStr, api.SQL_DRIVER_NOPROMPT)
	if err := check(dm, "SQLDriverConnect", h, ret, err); err != nil {
		return fail(err)
	}

	c := &Connection{
		env:     env,
		dm:      dm,
		h:       h,
		log:     env.log,
		cursors: make(map[*Cursor]struct{}),
	}
	if err := c.setAutocommit(false); err != nil {
		dm.SQLDisconnect(h)
		return fail(err)
	}
	return c, nil
}

// DriverManager returns the driver manager c was allocated from.
func (c *Connection) DriverManager() *api.DriverManager { return c.dm }

// Handle returns the native connection handle.
func (c *Connection) Handle() api.SQLHDBC { return c.h }

func (c *Connection) setAutocommit(on bool) error {
	v := api.SQLPOINTER(api.SQL_AUTOCOMMIT_OFF)
	if on {
		v = api.SQL_AUTOCOMMIT_ON
	}
	ret, err := c.dm.SQLSetConnectAttr(c.h, api.SQL_ATTR_AUTOCOMMIT, v, api.SQL_IS_INTEGER)
	if err := check(c.dm, "SQLSetConnectAttr", c.h, ret, err); err != nil {
		return err
	}
	c.autocommit = on
	return nil
}

// SetAutocommit switches autocommit mode.
func (c *Connection) SetAutocommit(on bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.freed.Load() {
		return ErrHandleFreed
	}
	return c.setAutocommit(on)
}

// Autocommit reports whether autocommit mode is on.
func (c *Connection) Autocommit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autocommit
}

// SetAttr sets connection attribute attr to the integer value v.
func (c *Connection) SetAttr(attr api.SQLINTEGER, v uintptr) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.freed.Load() {
		return ErrHandleFreed
	}
	ret, err := c.dm.SQLSetConnectAttr(c.h, attr, api.SQLPOINTER(v), api.SQL_IS_UINTEGER)
	return check(c.dm, "SQLSetConnectAttr", c.h, ret, err)
}

func (c *Connection) endTran(completion api.SQLSMALLINT) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.freed.Load() {
		return ErrHandleFreed
	}
	ret, err := c.dm.SQLEndTran(api.SQL_HANDLE_DBC, api.SQLHANDLE(c.h), completion)
	return check(c.dm, "SQLEndTran", c.h, ret, err)
}

// Commit commits the current transaction.
func (c *Connection) Commit() error {
	return c.endTran(api.SQL_COMMIT)
}

// Rollback rolls the current transaction back.
func (c *Connection) Rollback() error {
	return c.endTran(api.SQL_ROLLBACK)
}

// Cursor allocates a statement handle on c.
func (c *Connection) Cursor() (*Cursor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.freed.Load() {
		return nil, ErrHandleFreed
	}
	out, err := allocHandle(c.dm, api.SQL_HANDLE_STMT, c.h)
	if err != nil {
		c.log.Warn("unable to allocate statement handle", "error", err)
		return nil, interfaceError("unable to alloc statement", err)
	}
	cur := newCursor(c, api.SQLHSTMT(out))
	c.cursors[cur] = struct{}{}
	return cur, nil
}

// Close closes the open cursors of c, disconnects and frees the
// connection handle.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.freed.Swap(true) {
		return ErrHandleFreed
	}
	var first error
	for cur := range c.cursors {
		if err := cur.free(); err != nil && first == nil {
			first = err
		}
	}
	c.cursors = nil
	ret, err := c.dm.SQLDisconnect(c.h)
	if err := check(c.dm, "SQLDisconnect", c.h, ret, err); err != nil && first == nil {
		first = err
	}
	if err := releaseHandle(c.dm, c.h); err != nil && first == nil {
		first = err
	}
	c.env.release()
	return first
}

// TPCBegin returns ErrNotSupported; ODBC has no two phase commit.
func (c *Connection) TPCBegin(xid string) error { return notSupported("tpc_begin") }

// TPCPrepare returns ErrNotSupported.
func (c *Connection) TPCPrepare() error { return notSupported("tpc_prepare") }

// TPCCommit returns ErrNotSupported.
func (c *Connection) TPCCommit(xid string) error { return notSupported("tpc_commit") }

// TPCRollback returns ErrNotSupported.
func (c *Connection) TPCRollback(xid string) error { return notSupported("tpc_rollback") }

// TPCRecover returns ErrNotSupported.
func (c *Connection) TPCRecover() ([]string, error) {
	return nil, notSupported("tpc_recover")
}
