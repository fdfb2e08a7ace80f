// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlodbc/odbc/api"
	"github.com/dlodbc/odbc/internal/odbctest"
)

func TestTextVariants(t *testing.T) {
	var tests = []struct {
		name    string
		unicode bool
		opts    []odbctest.Option
		want    string
	}{
		{"unicode", true, nil, "SQLExecDirectW"},
		{"ansi", false, nil, "SQLExecDirect"},
		{"unicode without W functions", true, []odbctest.Option{odbctest.WithoutWide()}, "SQLExecDirect"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Unicode = test.unicode
			dm, lib := newDriverManager(t, cfg, test.opts...)
			lib.SetResult("SELECT name FROM t", odbctest.Rows(
				[]odbctest.Column{odbctest.Varchar("näme", 20)},
				[]interface{}{"x"},
			))

			_, dbc := connect(t, dm)
			var stmt api.SQLHANDLE
			_, err := dm.SQLAllocHandle(api.SQL_HANDLE_STMT, dbc, &stmt)
			require.NoError(t, err)

			ret, err := dm.ExecDirect(api.SQLHSTMT(stmt), "SELECT name FROM t")
			require.NoError(t, err)
			require.True(t, api.SQL_SUCCEEDED(ret))
			assert.Equal(t, 1, lib.CallCount(test.want))
			require.Len(t, lib.Executed(), 1)
			assert.Equal(t, "SELECT name FROM t", lib.Executed()[0].Query)

			d, ret, err := dm.DescribeCol(api.SQLHSTMT(stmt), 1)
			require.NoError(t, err)
			require.True(t, api.SQL_SUCCEEDED(ret))
			assert.Equal(t, "näme", d.Name)
			assert.Equal(t, api.SQLSMALLINT(api.SQL_VARCHAR), d.DataType)
			assert.Equal(t, api.SQLULEN(20), d.Size)
			assert.Equal(t, api.SQLSMALLINT(api.SQL_NULLABLE), d.Nullable)
		})
	}
}

func TestTextRejectsNUL(t *testing.T) {
	dm, lib := newDriverManager(t, testConfig())
	_, err := dm.ExecDirect(0, "SELECT 1\x00")
	assert.Error(t, err)
	assert.Zero(t, lib.CallCount("SQLExecDirectW"))
}

func TestGetDiagRec(t *testing.T) {
	for _, unicode := range []bool{true, false} {
		cfg := testConfig()
		cfg.Unicode = unicode
		dm, _ := newDriverManager(t, cfg)

		_, dbc := connect(t, dm)
		var stmt api.SQLHANDLE
		_, err := dm.SQLAllocHandle(api.SQL_HANDLE_STMT, dbc, &stmt)
		require.NoError(t, err)

		ret, err := dm.ExecDirect(api.SQLHSTMT(stmt), "FAIL now")
		require.NoError(t, err)
		require.Equal(t, api.SQLRETURN(api.SQL_ERROR), ret)

		r, ret, err := dm.GetDiagRec(api.SQL_HANDLE_STMT, stmt, 1)
		require.NoError(t, err)
		require.True(t, api.SQL_SUCCEEDED(ret))
		assert.Equal(t, "42000", r.State)
		assert.Equal(t, api.SQLINTEGER(1), r.NativeError)
		assert.Contains(t, r.Message, "statement failed")

		_, ret, err = dm.GetDiagRec(api.SQL_HANDLE_STMT, stmt, 2)
		require.NoError(t, err)
		assert.Equal(t, api.SQLRETURN(api.SQL_NO_DATA), ret)
	}
}

func TestDataSourcesAndDrivers(t *testing.T) {
	for _, unicode := range []bool{true, false} {
		cfg := testConfig()
		cfg.Unicode = unicode
		dm, lib := newDriverManager(t, cfg)
		lib.SetDataSources(
			odbctest.DataSource{Name: "pg", Description: "PostgreSQL Unicode"},
			odbctest.DataSource{Name: "lite", Description: "SQLite3"},
		)
		lib.SetDrivers(odbctest.Driver{Description: "SQLite3", Attributes: []string{"UsageCount=1", "Setup=libsqlite3odbc.so"}})

		env, _ := connect(t, dm)
		name, desc, ret, err := dm.DataSources(api.SQLHENV(env), api.SQL_FETCH_FIRST)
		require.NoError(t, err)
		require.True(t, api.SQL_SUCCEEDED(ret))
		assert.Equal(t, "pg", name)
		assert.Equal(t, "PostgreSQL Unicode", desc)
		name, _, _, _ = dm.DataSources(api.SQLHENV(env), api.SQL_FETCH_NEXT)
		assert.Equal(t, "lite", name)
		_, _, ret, _ = dm.DataSources(api.SQLHENV(env), api.SQL_FETCH_NEXT)
		assert.Equal(t, api.SQLRETURN(api.SQL_NO_DATA), ret)

		d, attrs, ret, err := dm.Drivers(api.SQLHENV(env), api.SQL_FETCH_FIRST)
		require.NoError(t, err)
		require.True(t, api.SQL_SUCCEEDED(ret))
		assert.Equal(t, "SQLite3", d)
		assert.Equal(t, []string{"UsageCount=1", "Setup=libsqlite3odbc.so"}, attrs)
	}
}
