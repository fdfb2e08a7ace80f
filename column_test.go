// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlodbc/odbc/api"
	"github.com/dlodbc/odbc/internal/odbctest"
)

// fetchedStmt executes query on a fresh statement and fetches the
// first row without binding any column.
func fetchedStmt(t *testing.T, env *Environment, query string) (*api.DriverManager, api.SQLHSTMT) {
	t.Helper()
	c := newTestConn(t, env)
	dm := c.DriverManager()
	out, err := allocHandle(dm, api.SQL_HANDLE_STMT, c.Handle())
	require.NoError(t, err)
	h := api.SQLHSTMT(out)
	t.Cleanup(func() { releaseHandle(dm, h) })

	ret, err := dm.ExecDirect(h, query)
	require.NoError(t, check(dm, "SQLExecDirect", h, ret, err))
	ret, err = dm.SQLFetch(h)
	require.NoError(t, check(dm, "SQLFetch", h, ret, err))
	return dm, h
}

func TestColumnChoosesBinding(t *testing.T) {
	lib, env := newTestEnv(t)
	lib.SetResult("SELECT *", odbctest.Rows([]odbctest.Column{
		odbctest.Integer("id"),
		odbctest.Varchar("name", 40),
		odbctest.Varchar("unbounded", 0),
		odbctest.Varchar("wide", 4000),
		{Name: "doc", SQLType: api.SQL_LONGVARCHAR, Size: 100},
		{Name: "ts", SQLType: api.SQL_TYPE_TIMESTAMP, Size: 23},
	}, []interface{}{1, "a", "b", "c", "d", "2024-01-02 03:04:05"}))
	dm, h := fetchedStmt(t, env, "SELECT *")

	var tests = []struct {
		name     string
		bindable bool
		ctype    api.SQLSMALLINT
	}{
		{"id", true, api.SQL_C_LONG},
		{"name", true, api.SQL_C_CHAR},
		{"unbounded", false, api.SQL_C_CHAR},
		{"wide", false, api.SQL_C_CHAR},
		{"doc", false, api.SQL_C_CHAR},
		{"ts", true, api.SQL_C_CHAR},
	}
	for i, test := range tests {
		col, err := NewColumn(dm, h, i)
		require.NoError(t, err)
		assert.Equal(t, test.name, col.Name())
		switch c := col.(type) {
		case *BindableColumn:
			assert.True(t, test.bindable, test.name)
			assert.Equal(t, test.ctype, c.CType, test.name)
		case *NonBindableColumn:
			assert.False(t, test.bindable, test.name)
			assert.Equal(t, test.ctype, c.CType, test.name)
		}
	}
}

func TestColumnUnboundBindableUsesGetData(t *testing.T) {
	lib, env := newTestEnv(t)
	lib.SetResult("SELECT id", odbctest.Rows([]odbctest.Column{odbctest.Integer("id")}, []interface{}{77}))
	dm, h := fetchedStmt(t, env, "SELECT id")

	col, err := NewColumn(dm, h, 0)
	require.NoError(t, err)
	v, err := col.Value(dm, h, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(77), v)
}

func TestNonBindableColumnReadsInChunks(t *testing.T) {
	long := strings.Repeat("0123456789", 300)
	wide := strings.Repeat("ж", 700)
	lib, env := newTestEnv(t)
	lib.SetResult("SELECT docs", odbctest.Rows([]odbctest.Column{
		{Name: "doc", SQLType: api.SQL_LONGVARCHAR},
		{Name: "wdoc", SQLType: api.SQL_WLONGVARCHAR},
		{Name: "blob", SQLType: api.SQL_LONGVARBINARY},
		{Name: "empty", SQLType: api.SQL_LONGVARCHAR, Nullable: true},
	}, []interface{}{long, wide, []byte(long), nil}))
	dm, h := fetchedStmt(t, env, "SELECT docs")

	want := []interface{}{[]byte(long), wide, []byte(long), nil}
	for i := range want {
		col, err := NewColumn(dm, h, i)
		require.NoError(t, err)
		require.IsType(t, &NonBindableColumn{}, col)
		ok, err := col.Bind(dm, h, i)
		require.NoError(t, err)
		assert.False(t, ok)

		v, err := col.Value(dm, h, i)
		require.NoError(t, err)
		assert.Equal(t, want[i], v, col.Name())
	}
	assert.Greater(t, lib.CallCount("SQLGetData"), len(want))
}

func TestBaseColumnValue(t *testing.T) {
	u := uuid.New()
	var tests = []struct {
		col  BaseColumn
		in   interface{}
		want interface{}
	}{
		{BaseColumn{SQLType: api.SQL_INTEGER, CType: api.SQL_C_LONG}, int32(-5), int64(-5)},
		{BaseColumn{SQLType: api.SQL_TINYINT, CType: api.SQL_C_UTINYINT}, uint8(200), int64(200)},
		{BaseColumn{SQLType: api.SQL_BIGINT, CType: api.SQL_C_UBIGINT}, uint64(9), int64(9)},
		{BaseColumn{SQLType: api.SQL_REAL, CType: api.SQL_C_FLOAT}, float32(0.5), 0.5},
		{BaseColumn{SQLType: api.SQL_BIT, CType: api.SQL_C_BIT}, true, true},
		{BaseColumn{SQLType: api.SQL_GUID, CType: api.SQL_C_GUID}, u, u.String()},
		{BaseColumn{SQLType: api.SQL_VARCHAR, CType: api.SQL_C_CHAR}, "abc", []byte("abc")},
		{BaseColumn{SQLType: api.SQL_WVARCHAR, CType: api.SQL_C_WCHAR}, "abc", "abc"},
		{BaseColumn{SQLType: api.SQL_VARCHAR, CType: api.SQL_C_CHAR}, nil, nil},
		{BaseColumn{SQLType: api.SQL_TYPE_DATE, CType: api.SQL_C_CHAR}, "2024-03-01",
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)},
		{BaseColumn{SQLType: api.SQL_TYPE_TIMESTAMP, CType: api.SQL_C_CHAR}, "2024-03-01 10:11:12.5",
			time.Date(2024, 3, 1, 10, 11, 12, 500000000, time.Local)},
		{BaseColumn{SQLType: api.SQL_TYPE_TIME, CType: api.SQL_C_CHAR}, "12:30:45",
			time.Date(1, 1, 1, 12, 30, 45, 0, time.Local)},
		{BaseColumn{SQLType: api.SQL_SS_TIME2, CType: api.SQL_C_CHAR}, "12:30:45.25",
			time.Date(1, 1, 1, 12, 30, 45, 250000000, time.Local)},
	}
	for _, test := range tests {
		got, err := test.col.Value(test.in)
		require.NoError(t, err, "%v", test.in)
		if want, ok := test.want.(time.Time); ok {
			assert.True(t, want.Equal(got.(time.Time)), "got %v, want %v", got, want)
			continue
		}
		assert.Equal(t, test.want, got)
	}

	_, err := (&BaseColumn{}).Value(struct{}{})
	assert.Error(t, err)

	_, err = (&BaseColumn{SQLType: api.SQL_TYPE_DATE}).Value("yesterday-ish")
	assert.Error(t, err)
}
