// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlodbc/odbc/api"
	"github.com/dlodbc/odbc/internal/logger"
	"github.com/dlodbc/odbc/internal/odbctest"
)

func testConfig() api.Config {
	return api.Config{
		Library:    odbctest.Name,
		SizeOfLong: 8,
		Unicode:    true,
		Legacy:     true,
		Logger:     logger.Discard(),
	}
}

func newDriverManager(t *testing.T, cfg api.Config, opts ...odbctest.Option) (*api.DriverManager, *odbctest.Library) {
	t.Helper()
	lib := odbctest.New(opts...)
	dm, err := api.New(lib, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { dm.Close() })
	return dm, lib
}

func cstr(s string) *api.SQLCHAR {
	b := append([]byte(s), 0)
	return (*api.SQLCHAR)(&b[0])
}

// connect allocates an ODBC 3 environment and a connected dbc handle
// using plain entry point calls.
func connect(t *testing.T, dm *api.DriverManager) (env, dbc api.SQLHANDLE) {
	t.Helper()
	ret, err := dm.SQLAllocHandle(api.SQL_HANDLE_ENV, api.SQL_NULL_HANDLE, &env)
	require.NoError(t, err)
	require.True(t, api.SQL_SUCCEEDED(ret))
	ret, err = dm.SQLSetEnvAttr(api.SQLHENV(env), api.SQL_ATTR_ODBC_VERSION, api.SQL_OV_ODBC3, api.SQL_IS_UINTEGER)
	require.NoError(t, err)
	require.True(t, api.SQL_SUCCEEDED(ret))
	ret, err = dm.SQLAllocHandle(api.SQL_HANDLE_DBC, env, &dbc)
	require.NoError(t, err)
	require.True(t, api.SQL_SUCCEEDED(ret))
	ret, err = dm.SQLConnect(api.SQLHDBC(dbc), cstr("testdsn"), api.SQL_NTS, nil, 0, nil, 0)
	require.NoError(t, err)
	require.Equal(t, api.SQLRETURN(api.SQL_SUCCESS), ret)
	return env, dbc
}

func TestOpenRegisteredLibrary(t *testing.T) {
	assert.Contains(t, api.Libraries(), odbctest.Name)

	dm, err := api.Open(testConfig())
	require.NoError(t, err)
	defer dm.Close()

	assert.Equal(t, 0, api.SQL_SUCCESS)
	assert.Equal(t, -3, api.SQL_NTS)
	assert.Equal(t, odbctest.Name, dm.Config().Library)
}

func TestOpenMissingLibrary(t *testing.T) {
	cfg := testConfig()
	cfg.Library = "libodbc-does-not-exist.so.42"
	_, err := api.Open(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "libodbc-does-not-exist.so.42")
}

func TestOpenBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.SizeOfLong = 2
	_, err := api.Open(cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Library = ""
	_, err = api.Open(cfg)
	assert.Error(t, err)
}

func TestRegisterLibraryTwice(t *testing.T) {
	assert.Panics(t, func() {
		api.RegisterLibrary(odbctest.Name, func() (api.Library, error) { return odbctest.New(), nil })
	})
	assert.Panics(t, func() {
		api.RegisterLibrary("mock_odbc_nil", nil)
	})
}

func TestEveryEntryPointPresent(t *testing.T) {
	dm, lib := newDriverManager(t, testConfig())

	eps := dm.EntryPoints()
	require.Len(t, eps, 152)

	seen := make(map[string]bool)
	for _, e := range eps {
		assert.False(t, seen[e.Name], "duplicate entry point %s", e.Name)
		seen[e.Name] = true

		got, ok := dm.EntryPoint(e.Name)
		require.True(t, ok, e.Name)
		assert.Same(t, e, got)
	}
	for _, name := range lib.Exports() {
		e, ok := dm.EntryPoint(name)
		if assert.True(t, ok, "mock exports unknown function %s", name) {
			assert.True(t, e.Bound(), name)
		}
	}
	for _, name := range []string{"SQLBrowseConnect", "SQLGetInfo", "SQLColumns", "SQLTablesW", "SQLAllocHandleStd"} {
		assert.True(t, seen[name], name)
	}

	_, ok := dm.EntryPoint("SQLDoesNotExist")
	assert.False(t, ok)
}

func TestNotImplemented(t *testing.T) {
	dm, _ := newDriverManager(t, testConfig())

	e, ok := dm.EntryPoint("SQLBrowseConnect")
	require.True(t, ok)
	assert.False(t, e.Bound())
	assert.Contains(t, e.String(), "not implemented")

	ret, err := dm.SQLBrowseConnect(0, cstr("DSN=x"), api.SQL_NTS, nil, 0, nil)
	assert.Equal(t, api.SQLRETURN(api.SQL_ERROR), ret)
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrNotImplemented))

	var nie *api.NotImplementedError
	require.True(t, errors.As(err, &nie))
	assert.Equal(t, "SQLBrowseConnect", nie.Name)
}

func TestMissingSymbolsAreStandIns(t *testing.T) {
	dm, lib := newDriverManager(t, testConfig(), odbctest.Without("SQLDescribeParam", "SQLAllocHandle"))

	for _, name := range []string{"SQLDescribeParam", "SQLAllocHandle"} {
		e, _ := dm.EntryPoint(name)
		assert.False(t, e.Bound(), name)
	}
	var env api.SQLHANDLE
	_, err := dm.SQLAllocHandle(api.SQL_HANDLE_ENV, 0, &env)
	assert.ErrorIs(t, err, api.ErrNotImplemented)
	assert.Zero(t, lib.CallCount("SQLAllocHandle"))

	var henv api.SQLHENV
	ret, err := dm.SQLAllocEnv(&henv)
	require.NoError(t, err)
	assert.True(t, api.SQL_SUCCEEDED(ret))
	assert.NotZero(t, henv)
	assert.Equal(t, 1, lib.CallCount("SQLAllocEnv"))
}

func TestConnectAndBrowseConnect(t *testing.T) {
	dm, lib := newDriverManager(t, testConfig())

	env, dbc := connect(t, dm)
	v, ok := lib.EnvVersion(uintptr(env))
	require.True(t, ok)
	assert.Equal(t, api.SQL_OV_ODBC3, v)
	st, ok := lib.Conn(uintptr(dbc))
	require.True(t, ok)
	assert.True(t, st.Connected)
	assert.Equal(t, "DSN=testdsn", st.ConnStr)

	_, err := dm.SQLBrowseConnect(api.SQLHDBC(dbc), cstr("DSN=testdsn"), api.SQL_NTS, nil, 0, nil)
	assert.ErrorIs(t, err, api.ErrNotImplemented)

	ret, err := dm.SQLDisconnect(api.SQLHDBC(dbc))
	require.NoError(t, err)
	assert.True(t, api.SQL_SUCCEEDED(ret))
	ret, _ = dm.SQLFreeHandle(api.SQL_HANDLE_DBC, dbc)
	assert.True(t, api.SQL_SUCCEEDED(ret))
	ret, _ = dm.SQLFreeHandle(api.SQL_HANDLE_ENV, env)
	assert.True(t, api.SQL_SUCCEEDED(ret))

	envs, conns, stmts := lib.Handles()
	assert.Zero(t, envs+conns+stmts)
}

func TestCallArity(t *testing.T) {
	dm, lib := newDriverManager(t, testConfig())

	e, _ := dm.EntryPoint("SQLFetch")
	_, err := e.Call()
	assert.Error(t, err)
	_, err = e.Call(1, 2)
	assert.Error(t, err)
	assert.Zero(t, lib.CallCount("SQLFetch"))
}

func TestCallReturnsSQLRETURN(t *testing.T) {
	dm, _ := newDriverManager(t, testConfig())

	e, _ := dm.EntryPoint("SQLFetch")
	// unknown handle
	ret, err := e.Call(0xdead)
	require.NoError(t, err)
	assert.Equal(t, api.SQLRETURN(api.SQL_INVALID_HANDLE), ret)
}

func TestClosedDriverManager(t *testing.T) {
	lib := odbctest.New()
	dm, err := api.New(lib, testConfig())
	require.NoError(t, err)
	require.NoError(t, dm.Close())
	assert.ErrorIs(t, dm.Close(), api.ErrClosed)

	var env api.SQLHANDLE
	_, err = dm.SQLAllocHandle(api.SQL_HANDLE_ENV, 0, &env)
	assert.ErrorIs(t, err, api.ErrClosed)
}

func TestSQLCTCHAR(t *testing.T) {
	cfg := testConfig()
	dm, _ := newDriverManager(t, cfg)
	assert.Equal(t, api.SQLSMALLINT(api.SQL_C_WCHAR), dm.SQL_C_TCHAR())

	cfg.Unicode = false
	dm, _ = newDriverManager(t, cfg)
	assert.Equal(t, api.SQLSMALLINT(api.SQL_C_CHAR), dm.SQL_C_TCHAR())
}

func TestSQLSucceeded(t *testing.T) {
	assert.True(t, api.SQL_SUCCEEDED(api.SQL_SUCCESS))
	assert.True(t, api.SQL_SUCCEEDED(api.SQL_SUCCESS_WITH_INFO))
	for _, ret := range []api.SQLRETURN{api.SQL_ERROR, api.SQL_INVALID_HANDLE, api.SQL_NO_DATA, api.SQL_NEED_DATA, api.SQL_STILL_EXECUTING} {
		assert.False(t, api.SQL_SUCCEEDED(ret), "%d", ret)
	}
	assert.Equal(t, api.SQLLEN(-110), api.SQL_LEN_DATA_AT_EXEC(10))
	assert.Equal(t, api.SQLINTEGER(-104), api.SQL_LEN_BINARY_ATTR(4))
}
