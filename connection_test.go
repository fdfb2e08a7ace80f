// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlodbc/odbc/api"
	"github.com/dlodbc/odbc/internal/odbctest"
)

func TestConnectWithoutEnvironment(t *testing.T) {
	_, err := Connect(nil, "DSN=test")
	assert.ErrorIs(t, err, ErrInterface)
	assert.Contains(t, err.Error(), "no environment handle")

	lib, env := newTestEnv(t)
	require.NoError(t, env.Close())
	calls := len(lib.Calls())

	_, err = Connect(env, "DSN=test")
	assert.ErrorIs(t, err, ErrInterface)
	assert.ErrorIs(t, err, ErrHandleFreed)
	assert.Len(t, lib.Calls(), calls, "no native call expected")
}

func TestConnectFailure(t *testing.T) {
	lib, env := newTestEnv(t)

	_, err := Connect(env, "DSN=FAIL")
	assert.ErrorIs(t, err, ErrInterface)
	assert.ErrorIs(t, err, ErrDatabase)
	assert.Contains(t, err.Error(), "bad connection")
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "08001", e.State())

	_, conns, _ := lib.Handles()
	assert.Zero(t, conns)
	// the environment is not held by the failed connection
	require.NoError(t, env.Close())
}

func TestConnect(t *testing.T) {
	lib, env := newTestEnv(t)
	c, err := Connect(env, "DSN=test;UID=scott", WithLoginTimeout(5*time.Second))
	require.NoError(t, err)
	defer c.Close()

	st, ok := lib.Conn(uintptr(c.Handle()))
	require.True(t, ok)
	assert.True(t, st.Connected)
	assert.Equal(t, "DSN=test;UID=scott", st.ConnStr)
	assert.False(t, st.Autocommit)
	assert.False(t, c.Autocommit())
	assert.Equal(t, uintptr(5), st.Attrs[api.SQL_ATTR_LOGIN_TIMEOUT])
	assert.Same(t, env.DriverManager(), c.DriverManager())
}

func TestConnectionTransactions(t *testing.T) {
	lib, env := newTestEnv(t)
	c := newTestConn(t, env)
	h := uintptr(c.Handle())

	require.NoError(t, c.Commit())
	require.NoError(t, c.Commit())
	require.NoError(t, c.Rollback())
	st, _ := lib.Conn(h)
	assert.Equal(t, 2, st.Commits)
	assert.Equal(t, 1, st.Rollbacks)

	require.NoError(t, c.SetAutocommit(true))
	assert.True(t, c.Autocommit())
	st, _ = lib.Conn(h)
	assert.True(t, st.Autocommit)

	require.NoError(t, c.SetAttr(api.SQL_ATTR_TXN_ISOLATION, api.SQL_TXN_SERIALIZABLE))
	st, _ = lib.Conn(h)
	assert.Equal(t, uintptr(api.SQL_TXN_SERIALIZABLE), st.Attrs[api.SQL_ATTR_TXN_ISOLATION])
}

func TestConnectionCloseFreesCursors(t *testing.T) {
	lib, env := newTestEnv(t)
	c, err := Connect(env, "DSN=test")
	require.NoError(t, err)

	cur1, err := c.Cursor()
	require.NoError(t, err)
	cur2, err := c.Cursor()
	require.NoError(t, err)
	require.NoError(t, cur1.Execute("SELECT 1"))
	_, conns, stmts := lib.Handles()
	assert.Equal(t, 1, conns)
	assert.Equal(t, 2, stmts)

	require.NoError(t, c.Close())
	_, conns, stmts = lib.Handles()
	assert.Zero(t, conns)
	assert.Zero(t, stmts)

	assert.ErrorIs(t, c.Close(), ErrHandleFreed)
	assert.ErrorIs(t, c.Commit(), ErrHandleFreed)
	assert.ErrorIs(t, c.SetAutocommit(true), ErrHandleFreed)
	_, err = c.Cursor()
	assert.ErrorIs(t, err, ErrHandleFreed)
	assert.ErrorIs(t, cur2.Execute("SELECT 1"), ErrHandleFreed)
	assert.ErrorIs(t, cur1.Close(), ErrHandleFreed)
}

func TestConnectionTwoPhaseCommit(t *testing.T) {
	_, env := newTestEnv(t)
	c := newTestConn(t, env)
	assert.ErrorIs(t, c.TPCBegin("xid"), ErrNotSupported)
	assert.ErrorIs(t, c.TPCPrepare(), ErrNotSupported)
	assert.ErrorIs(t, c.TPCCommit("xid"), ErrNotSupported)
	assert.ErrorIs(t, c.TPCRollback("xid"), ErrNotSupported)
	_, err := c.TPCRecover()
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestConnectionODBC2Handles(t *testing.T) {
	// SQLFreeHandle missing: statements are dropped with SQLFreeStmt
	lib, env := newTestEnv(t, odbctest.Without("SQLFreeHandle"))
	c, err := Connect(env, "DSN=test")
	require.NoError(t, err)
	cur, err := c.Cursor()
	require.NoError(t, err)
	require.NoError(t, cur.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, lib.CallCount("SQLFreeConnect"))
	envs, conns, stmts := lib.Handles()
	assert.Equal(t, 1, envs)
	assert.Zero(t, conns+stmts)
}
