// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlodbc/odbc/api"
	"github.com/dlodbc/odbc/internal/odbctest"
)

func numbers(n int) *odbctest.ResultSet {
	rows := make([][]interface{}, n)
	for i := range rows {
		rows[i] = []interface{}{i + 1}
	}
	return odbctest.Rows([]odbctest.Column{odbctest.Integer("n")}, rows...)
}

func TestCursorExecuteBindsTextParameters(t *testing.T) {
	lib, env := newTestEnv(t)
	cur := newTestCursor(t, env)

	require.NoError(t, cur.Execute("SELECT ?", 1337))

	require.Len(t, cur.params, 1)
	p := cur.params[0]
	assert.Equal(t, api.SQLSMALLINT(api.SQL_C_CHAR), p.CType)
	assert.Equal(t, api.SQLSMALLINT(api.SQL_CHAR), p.SQLType)
	assert.Equal(t, api.SQLULEN(512), p.Size)
	assert.Equal(t, []odbctest.Execution{{Query: "SELECT ?", Args: []interface{}{"1337"}}}, lib.Executed())

	row, err := cur.FetchOne()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"1337"}, row)

	desc := cur.Description()
	require.Len(t, desc, 1)
	assert.Equal(t, "col1", desc[0].Name)
	assert.Equal(t, api.SQLSMALLINT(api.SQL_VARCHAR), desc[0].DataType)
}

func TestCursorFetchOneUntilExhausted(t *testing.T) {
	lib, env := newTestEnv(t)
	lib.SetResult("SELECT name FROM users", odbctest.Rows(
		[]odbctest.Column{odbctest.Varchar("name", 20)},
		[]interface{}{"ann"},
		[]interface{}{"bob"},
	))
	cur := newTestCursor(t, env)
	require.NoError(t, cur.Execute("SELECT name FROM users"))
	assert.Equal(t, int64(2), cur.RowCount())

	for _, want := range []string{"ann", "bob"} {
		row, err := cur.FetchOne()
		require.NoError(t, err)
		assert.Equal(t, []interface{}{want}, row)
	}
	row, err := cur.FetchOne()
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestCursorNullValues(t *testing.T) {
	lib, env := newTestEnv(t)
	lib.SetResult("SELECT a, b", odbctest.Rows(
		[]odbctest.Column{odbctest.Varchar("a", 10), odbctest.Integer("b")},
		[]interface{}{nil, nil},
	))
	cur := newTestCursor(t, env)
	require.NoError(t, cur.Execute("SELECT a, b"))
	row, err := cur.FetchOne()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{nil, nil}, row)
}

func TestCursorPreparedUsesDescribedTypes(t *testing.T) {
	lib, env := newTestEnv(t)
	lib.SetParams("SELECT ? AS id", odbctest.ParamDesc{SQLType: api.SQL_INTEGER, Size: 10})
	cur := newTestCursor(t, env)

	require.NoError(t, cur.Prepare("SELECT ? AS id"))
	require.NoError(t, cur.ExecutePrepared(42))

	require.Len(t, cur.params, 1)
	assert.Equal(t, api.SQLSMALLINT(api.SQL_C_LONG), cur.params[0].CType)
	assert.Equal(t, api.SQLSMALLINT(api.SQL_INTEGER), cur.params[0].SQLType)
	assert.Equal(t, []interface{}{int64(42)}, lib.Executed()[0].Args)

	row, err := cur.FetchOne()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"42"}, row)

	// the statement stays prepared
	require.NoError(t, cur.ExecutePrepared("7"))
	row, err = cur.FetchOne()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"7"}, row)
	assert.Equal(t, 1, lib.CallCount("SQLPrepareW"))
}

func TestCursorPreparedWithoutDescribeParam(t *testing.T) {
	lib, env := newTestEnv(t, odbctest.Without("SQLDescribeParam"))
	cur := newTestCursor(t, env)

	require.NoError(t, cur.Prepare("SELECT ?"))
	assert.Nil(t, cur.paramDesc)
	require.NoError(t, cur.ExecutePrepared(3.5))
	assert.Equal(t, clientParam().SQLType, cur.params[0].SQLType)
	assert.Equal(t, []interface{}{"3.5"}, lib.Executed()[0].Args)
}

func TestCursorExecutePreparedRebindsParameters(t *testing.T) {
	lib, env := newTestEnv(t, odbctest.Without("SQLDescribeParam"))
	cur := newTestCursor(t, env)
	h := uintptr(cur.Handle())

	require.NoError(t, cur.Prepare("SELECT ?, ?"))
	require.NoError(t, cur.ExecutePrepared(1, 2))
	params, _ := lib.Bound(h)
	assert.Equal(t, 2, params)

	// fewer arguments must not reuse the old binding of position 2
	err := cur.ExecutePrepared(3)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "07002", e.State())
	assert.Len(t, lib.Executed(), 1)
	params, _ = lib.Bound(h)
	assert.Equal(t, 1, params)
	assert.Len(t, cur.params, 1)
}

func TestCursorParameterCountMismatch(t *testing.T) {
	lib, env := newTestEnv(t)
	cur := newTestCursor(t, env)

	require.NoError(t, cur.Prepare("SELECT ?, ?"))
	err := cur.ExecutePrepared(1)
	assert.ErrorIs(t, err, ErrProgramming)
	assert.Empty(t, lib.Executed())

	// without descriptions the driver reports the missing binding
	err = cur.Execute("SELECT ?, ?", 1)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "07002", e.State())
}

func TestCursorExecutePreparedNeedsPrepare(t *testing.T) {
	_, env := newTestEnv(t)
	cur := newTestCursor(t, env)
	assert.ErrorIs(t, cur.ExecutePrepared(), ErrProgramming)

	require.NoError(t, cur.Prepare("SELECT 1"))
	require.NoError(t, cur.Execute("SELECT 1"))
	assert.ErrorIs(t, cur.ExecutePrepared(), ErrProgramming)
}

func TestCursorExecuteError(t *testing.T) {
	_, env := newTestEnv(t)
	cur := newTestCursor(t, env)

	err := cur.Execute("FAIL please")
	assert.ErrorIs(t, err, ErrDatabase)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "SQLExecDirect", e.APIName)
	assert.Equal(t, api.SQLRETURN(api.SQL_ERROR), e.Ret)
	assert.Equal(t, "42000", e.State())
	assert.Contains(t, err.Error(), "statement failed")

	err = cur.Prepare("BAD query")
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "SQLPrepare", e.APIName)

	_, err = cur.FetchOne()
	assert.ErrorIs(t, err, ErrProgramming)
}

func TestCursorExecuteMany(t *testing.T) {
	lib, env := newTestEnv(t)
	cur := newTestCursor(t, env)

	err := cur.ExecuteMany("INSERT INTO t VALUES (?, ?)", [][]interface{}{
		{1, "one"},
		{2, "two"},
		{3, nil},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), cur.RowCount())
	assert.Equal(t, 1, lib.CallCount("SQLPrepareW"))
	assert.Equal(t, 3, lib.CallCount("SQLExecute"))

	ex := lib.Executed()
	require.Len(t, ex, 3)
	assert.Equal(t, []interface{}{"3", nil}, ex[2].Args)
	assert.Empty(t, cur.Description())
}

func TestCursorFetchManyAndAll(t *testing.T) {
	lib, env := newTestEnv(t)
	lib.SetResult("SELECT n", numbers(5))
	cur := newTestCursor(t, env)
	require.NoError(t, cur.Execute("SELECT n"))

	rows, err := cur.FetchMany(0)
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{{int32(1)}}, rows)

	cur.SetArraySize(0)
	assert.Equal(t, 1, cur.ArraySize())
	cur.SetArraySize(2)
	rows, err = cur.FetchMany(0)
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{{int32(2)}, {int32(3)}}, rows)

	rows, err = cur.FetchAll()
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{{int32(4)}, {int32(5)}}, rows)

	rows, err = cur.FetchMany(3)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCursorNext(t *testing.T) {
	lib, env := newTestEnv(t)
	lib.SetResult("SELECT n", numbers(3))
	cur := newTestCursor(t, env)
	require.NoError(t, cur.Execute("SELECT n"))

	var got []interface{}
	for cur.Next() {
		got = append(got, cur.Row()[0])
	}
	require.NoError(t, cur.Err())
	assert.Equal(t, []interface{}{int32(1), int32(2), int32(3)}, got)
}

func TestCursorScroll(t *testing.T) {
	lib, env := newTestEnv(t)
	lib.SetResult("SELECT n", numbers(5))
	cur := newTestCursor(t, env)
	require.NoError(t, cur.Execute("SELECT n"))

	row, err := cur.Scroll(4, ScrollAbsolute)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int32(4)}, row)

	row, err = cur.Scroll(-2, ScrollRelative)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int32(2)}, row)

	row, err = cur.FetchOne()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int32(3)}, row)

	row, err = cur.Scroll(10, ScrollRelative)
	require.NoError(t, err)
	assert.Nil(t, row)

	_, err = cur.Scroll(1, ScrollMode(7))
	assert.ErrorIs(t, err, ErrProgramming)
}

func TestCursorScrollNotImplemented(t *testing.T) {
	lib, env := newTestEnv(t, odbctest.Without("SQLFetchScroll"))
	lib.SetResult("SELECT n", numbers(2))
	cur := newTestCursor(t, env)
	require.NoError(t, cur.Execute("SELECT n"))

	_, err := cur.Scroll(1, ScrollAbsolute)
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestCursorNextSet(t *testing.T) {
	lib, env := newTestEnv(t)
	lib.SetResult("EXEC report",
		numbers(2),
		odbctest.Rows([]odbctest.Column{odbctest.Varchar("name", 10)}, []interface{}{"total"}),
	)
	cur := newTestCursor(t, env)
	require.NoError(t, cur.Execute("EXEC report"))

	rows, err := cur.FetchAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	ok, err := cur.NextSet()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "name", cur.Description()[0].Name)
	rows, err = cur.FetchAll()
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{{"total"}}, rows)

	ok, err = cur.NextSet()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, cur.Description())
}

func TestCursorNextSetErrorUnbindsColumns(t *testing.T) {
	lib, env := newTestEnv(t, odbctest.Without("SQLMoreResults"))
	lib.SetResult("EXEC report", numbers(2), numbers(1))
	cur := newTestCursor(t, env)
	h := uintptr(cur.Handle())
	require.NoError(t, cur.Execute("EXEC report"))
	_, cols := lib.Bound(h)
	require.Equal(t, 1, cols)

	_, err := cur.NextSet()
	assert.ErrorIs(t, err, api.ErrNotImplemented)
	_, cols = lib.Bound(h)
	assert.Zero(t, cols)
	assert.Empty(t, cur.Description())
}

func TestCursorTruncationMessages(t *testing.T) {
	lib, env := newTestEnv(t)
	long := strings.Repeat("n", 100)
	lib.SetResult("SELECT note", odbctest.Rows(
		[]odbctest.Column{odbctest.Varchar("note", 10)},
		[]interface{}{long},
	))
	cur := newTestCursor(t, env)
	require.NoError(t, cur.Execute("SELECT note"))
	assert.Empty(t, cur.Messages())

	row, err := cur.FetchOne()
	require.NoError(t, err)
	assert.Equal(t, long[:minStringBuffer-1], row[0])

	msgs := cur.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "01004", msgs[0].State)

	// a new execution clears them
	require.NoError(t, cur.Execute("SELECT 1"))
	assert.Empty(t, cur.Messages())
}

func TestCursorQueryTimeout(t *testing.T) {
	lib, env := newTestEnv(t)
	cur := newTestCursor(t, env)
	h := uintptr(cur.Handle())

	for _, test := range []struct {
		d    time.Duration
		want uintptr
	}{
		{3 * time.Second, 3},
		{1500 * time.Millisecond, 1},
		{time.Millisecond, 1},
		{0, 0},
	} {
		require.NoError(t, cur.SetQueryTimeout(test.d))
		v, ok := lib.StmtAttr(h, api.SQL_ATTR_QUERY_TIMEOUT)
		require.True(t, ok)
		assert.Equal(t, test.want, v, "timeout %v", test.d)
	}
}

func TestCursorUnsupported(t *testing.T) {
	_, env := newTestEnv(t)
	cur := newTestCursor(t, env)
	assert.ErrorIs(t, cur.CallProc("proc", 1), ErrNotSupported)
	assert.ErrorIs(t, cur.SetInputSizes(10), ErrNotSupported)
	assert.ErrorIs(t, cur.SetOutputSize(10, 1), ErrNotSupported)
}

func TestCursorClose(t *testing.T) {
	lib, env := newTestEnv(t)
	cur := newTestCursor(t, env)
	require.NoError(t, cur.Execute("SELECT 1"))
	_, _, stmts := lib.Handles()
	assert.Equal(t, 1, stmts)

	require.NoError(t, cur.Close())
	_, _, stmts = lib.Handles()
	assert.Zero(t, stmts)

	assert.ErrorIs(t, cur.Close(), ErrHandleFreed)
	assert.ErrorIs(t, cur.Execute("SELECT 1"), ErrHandleFreed)
	_, err := cur.FetchOne()
	assert.ErrorIs(t, err, ErrHandleFreed)
}
