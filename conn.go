// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/dlodbc/odbc/api"
)

var ErrTXAlreadyStarted = errors.New("already in a transaction")

var sqlIsolationLevel = map[sql.IsolationLevel]uintptr{
	sql.LevelReadCommitted:   api.SQL_TXN_READ_COMMITTED,
	sql.LevelReadUncommitted: api.SQL_TXN_READ_UNCOMMITTED,
	sql.LevelRepeatableRead:  api.SQL_TXN_REPEATABLE_READ,
	sql.LevelSerializable:    api.SQL_TXN_SERIALIZABLE,
}

type Conn struct {
	conn             *Connection
	dm               *api.DriverManager
	h                api.SQLHDBC
	tx               *Tx
	bad              atomic.Bool
	isMSAccessDriver bool
}

var accessDriverSubstr = strings.ToUpper(strings.Replace("DRIVER={Microsoft Access Driver", " ", "", -1))

// openConn connects to dsn and switches autocommit on, as
// database/sql expects outside transactions.
func openConn(env *Environment, dsn string) (*Conn, error) {
	c, err := Connect(env, dsn)
	if err != nil {
		return nil, err
	}
	if err := c.SetAutocommit(true); err != nil {
		c.Close()
		return nil, err
	}
	isAccess := strings.Contains(strings.ToUpper(strings.Replace(dsn, " ", "", -1)), accessDriverSubstr)
	return &Conn{conn: c, dm: c.dm, h: c.h, isMSAccessDriver: isAccess}, nil
}

func (c *Conn) Close() (err error) {
	if c.tx != nil {
		c.tx.Rollback()
	}
	return c.conn.Close()
}

// newError marks c bad on communication failures and returns the
// error database/sql should see.
func (c *Conn) newError(err error) error {
	if isBadConn(err) {
		c.bad.Store(true)
	}
	return driverError(err)
}

func (c *Conn) setAttr(attr api.SQLINTEGER, v uintptr) error {
	if err := c.conn.SetAttr(attr, v); err != nil {
		c.bad.Store(true)
		return c.newError(err)
	}
	return nil
}

// implement driver.ConnBeginTx
func (c *Conn) BeginTx(ctx context.Context, opts driver.TxOptions) (tx driver.Tx, err error) {
	if c.bad.Load() {
		return nil, driver.ErrBadConn
	}
	if c.tx != nil {
		return nil, ErrTXAlreadyStarted
	}
	if err := c.conn.SetAutocommit(false); err != nil {
		c.bad.Store(true)
		return nil, c.newError(err)
	}
	if isolation, modeAvailable := sqlIsolationLevel[sql.IsolationLevel(opts.Isolation)]; modeAvailable {
		if err := c.setAttr(api.SQL_ATTR_TXN_ISOLATION, isolation); err != nil {
			return nil, err
		}
	}
	if opts.ReadOnly {
		if err := c.setAttr(api.SQL_ATTR_ACCESS_MODE, api.SQL_MODE_READ_ONLY); err != nil {
			return nil, err
		}
	}
	c.tx = &Tx{c: c, opts: opts}
	return c.tx, nil
}

func (c *Conn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

// implement driver.ConnPrepareContext
func (c *Conn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	if c.bad.Load() {
		return nil, driver.ErrBadConn
	}
	os, err := c.PrepareODBCStmt(query)
	if err != nil {
		return nil, err
	}
	return &Stmt{c: c, os: os, query: query}, nil
}

// implement driver.ExecerContext
func (c *Conn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	if c.bad.Load() {
		return nil, driver.ErrBadConn
	}
	dargs, err := namedValueToValue(args)
	if err != nil {
		return nil, err
	}
	os, err := c.PrepareODBCStmt(query)
	if err != nil {
		return nil, err
	}
	defer os.closeByStmt()
	if err := os.Exec(ctx, dargs, c); err != nil {
		return nil, c.newError(err)
	}
	n, err := os.RowsAffected()
	if err != nil {
		return nil, c.newError(err)
	}
	return &Result{rowCount: n}, nil
}

// implement driver.QueryerContext
func (c *Conn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	if c.bad.Load() {
		return nil, driver.ErrBadConn
	}
	dargs, err := namedValueToValue(args)
	if err != nil {
		return nil, err
	}
	os, err := c.PrepareODBCStmt(query)
	if err != nil {
		return nil, err
	}
	defer os.closeByStmt()
	if err := os.Exec(ctx, dargs, c); err != nil {
		return nil, c.newError(err)
	}
	if err := os.BindColumns(); err != nil {
		return nil, c.newError(err)
	}
	os.usedByRows = true
	return &Rows{os: os, c: c}, nil
}

// namedValueToValue is a utility function that converts a driver.NamedValue into a driver.Value.
// Source:
// https://github.com/golang/go/blob/03ac39ce5e6af4c4bca58b54d5b160a154b7aa0e/src/database/sql/ctxutil.go#L137-L146
func namedValueToValue(named []driver.NamedValue) ([]driver.Value, error) {
	dargs := make([]driver.Value, len(named))
	for n, param := range named {
		if len(param.Name) > 0 {
			return nil, errors.New("sql: driver does not support the use of Named Parameters")
		}
		dargs[n] = param.Value
	}
	return dargs, nil
}

// implement driver.NamedValueChecker
func (c *Conn) CheckNamedValue(nv *driver.NamedValue) error {
	if _, ok := nv.Value.(uuid.UUID); ok {
		return nil
	}
	return driver.ErrSkip
}

// implement driver.SessionResetter
func (c *Conn) ResetSession(ctx context.Context) error {
	if c.bad.Load() {
		return driver.ErrBadConn
	}
	return nil
}

// implement driver.Validator
func (c *Conn) IsValid() bool {
	return !c.bad.Load()
}

// implement driver.Pinger
func (c *Conn) Ping(ctx context.Context) error {
	if c.bad.Load() {
		return driver.ErrBadConn
	}
	stmt, err := c.PrepareContext(ctx, ";")
	if err != nil {
		return driver.ErrBadConn
	}
	defer stmt.Close()

	if _, err := stmt.(*Stmt).ExecContext(ctx, nil); err != nil {
		return driver.ErrBadConn
	}
	return nil
}
