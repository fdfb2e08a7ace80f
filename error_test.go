// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlodbc/odbc/api"
	"github.com/dlodbc/odbc/internal/odbctest"
)

func TestToHandleAndType(t *testing.T) {
	h, ht, err := ToHandleAndType(nil)
	assert.Error(t, err)
	assert.Zero(t, h)
	assert.Zero(t, ht)

	var tests = []struct {
		in interface{}
		ht api.SQLSMALLINT
	}{
		{api.SQLHENV(1), api.SQL_HANDLE_ENV},
		{api.SQLHENV(api.SQL_NULL_HENV), 0},
		{api.SQLHDBC(2), api.SQL_HANDLE_DBC},
		{api.SQLHSTMT(3), api.SQL_HANDLE_STMT},
		{api.SQLHDESC(4), api.SQL_HANDLE_DESC},
	}
	for _, test := range tests {
		_, ht, err := ToHandleAndType(test.in)
		require.NoError(t, err)
		assert.Equal(t, test.ht, ht, "%T", test.in)
	}
}

func TestParameterBindValueBadType(t *testing.T) {
	var p Parameter
	var badValueType uint64
	err := p.BindValue(nil, 0, 0, badValueType, nil)
	assert.ErrorIs(t, err, ErrProgramming)
}

func TestStatsUpdateHandleCount(t *testing.T) {
	var s Stats
	assert.Error(t, s.updateHandleCount(0, 0))

	require.NoError(t, s.updateHandleCount(api.SQL_HANDLE_STMT, 2))
	require.NoError(t, s.updateHandleCount(api.SQL_HANDLE_DESC, 1))
	require.NoError(t, s.updateHandleCount(api.SQL_HANDLE_STMT, -1))
	env, conn, stmt, desc := s.Snapshot()
	assert.Equal(t, [4]int{0, 0, 1, 1}, [4]int{env, conn, stmt, desc})
}

func TestErrorDiagnostics(t *testing.T) {
	e := &Error{
		APIName: "SQLExecute",
		Ret:     api.SQL_ERROR,
		Diag: []DiagRecord{
			{State: "23000", NativeError: 2627, Message: "duplicate key"},
			{State: "01000", Message: "statement has been terminated"},
		},
	}
	assert.Equal(t, "SQLExecute: {23000} duplicate key\n{01000} statement has been terminated", e.Error())
	assert.Equal(t, "23000", e.State())
	assert.ErrorIs(t, e, ErrDatabase)
	assert.NotErrorIs(t, e, ErrInterface)

	empty := &Error{APIName: "SQLFetch", Ret: api.SQL_INVALID_HANDLE}
	assert.Equal(t, "SQLFetch: returned -2", empty.Error())
	assert.Empty(t, empty.State())
}

func TestCheckNotImplemented(t *testing.T) {
	err := check(nil, "SQLFetchScroll", api.SQLHSTMT(1), api.SQL_ERROR, api.ErrNotImplemented)
	assert.ErrorIs(t, err, api.ErrNotImplemented)
	assert.NoError(t, check(nil, "SQLFetch", api.SQLHSTMT(1), api.SQL_SUCCESS_WITH_INFO, nil))
}

func TestErrorsFromHandler(t *testing.T) {
	lib, env := newTestEnv(t)
	lib.Handler = func(query string, args []interface{}) ([]*odbctest.ResultSet, error) {
		switch query {
		case "SELECT dropped":
			return nil, &odbctest.Error{State: "08S01", Message: "communication link failure"}
		case "SELECT broken":
			return nil, errors.New("broken")
		}
		return nil, nil
	}
	cur := newTestCursor(t, env)

	err := cur.Execute("SELECT dropped")
	require.Error(t, err)
	assert.True(t, isBadConn(err))
	assert.Equal(t, driver.ErrBadConn, driverError(err))

	err = cur.Execute("SELECT broken")
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "HY000", e.State())
	assert.False(t, isBadConn(err))
	assert.Equal(t, err, driverError(err))
}
