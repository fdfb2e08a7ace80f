// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"os"
	"path/filepath"
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

// newTestEnv returns an Environment over a fresh mock driver manager.
func newTestEnv(t *testing.T, opts ...odbctest.Option) (*odbctest.Library, *Environment) {
	t.Helper()
	return newTestEnvConfig(t, testConfig(), opts...)
}

func newTestEnvConfig(t *testing.T, cfg api.Config, opts ...odbctest.Option) (*odbctest.Library, *Environment) {
	t.Helper()
	lib := odbctest.New(opts...)
	dm, err := api.New(lib, cfg)
	require.NoError(t, err)
	env, err := NewEnvironment(dm)
	require.NoError(t, err)
	t.Cleanup(func() {
		env.Close()
		dm.Close()
	})
	return lib, env
}

func newTestConn(t *testing.T, env *Environment) *Connection {
	t.Helper()
	c, err := Connect(env, "DSN=test")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func newTestCursor(t *testing.T, env *Environment) *Cursor {
	t.Helper()
	cur, err := newTestConn(t, env).Cursor()
	require.NoError(t, err)
	return cur
}

func TestEnvironmentNegotiatesODBC3(t *testing.T) {
	lib, env := newTestEnv(t)
	v, ok := lib.EnvVersion(uintptr(env.h))
	require.True(t, ok)
	assert.Equal(t, api.SQL_OV_ODBC3, v)
}

func TestEnvironmentIsUnique(t *testing.T) {
	_, env := newTestEnv(t)
	_, err := NewEnvironment(env.DriverManager())
	assert.ErrorIs(t, err, ErrEnvironmentExists)
	assert.ErrorIs(t, err, ErrProgramming)
}

func TestEnvironmentCloseWhileBusy(t *testing.T) {
	lib, env := newTestEnv(t)
	c, err := Connect(env, "DSN=test")
	require.NoError(t, err)

	assert.ErrorIs(t, env.Close(), ErrEnvironmentBusy)

	require.NoError(t, c.Close())
	require.NoError(t, env.Close())
	assert.ErrorIs(t, env.Close(), ErrHandleFreed)

	envs, conns, stmts := lib.Handles()
	assert.Zero(t, envs)
	assert.Zero(t, conns)
	assert.Zero(t, stmts)

	// the driver manager may get a new environment now
	env2, err := NewEnvironment(env.DriverManager())
	require.NoError(t, err)
	require.NoError(t, env2.Close())
}

func TestEnvironmentODBC2Fallback(t *testing.T) {
	lib, env := newTestEnv(t, odbctest.Without("SQLAllocHandle", "SQLFreeHandle"))
	cur := newTestCursor(t, env)
	require.NoError(t, cur.Execute("SELECT 1"))
	require.NoError(t, cur.conn.Close())

	assert.Equal(t, 1, lib.CallCount("SQLAllocEnv"))
	assert.Equal(t, 1, lib.CallCount("SQLAllocConnect"))
	assert.Equal(t, 1, lib.CallCount("SQLAllocStmt"))
	assert.Equal(t, 1, lib.CallCount("SQLFreeConnect"))

	require.NoError(t, env.Close())
	assert.Equal(t, 1, lib.CallCount("SQLFreeEnv"))
	envs, conns, stmts := lib.Handles()
	assert.Zero(t, envs+conns+stmts)
}

func TestDataSources(t *testing.T) {
	lib, env := newTestEnv(t)
	lib.SetDataSources(
		odbctest.DataSource{Name: "warehouse", Description: "PostgreSQL Unicode"},
		odbctest.DataSource{Name: "orders", Description: "SQLite3"},
	)
	dsns, err := env.DataSources()
	require.NoError(t, err)
	assert.Equal(t, []DSN{
		{Name: "warehouse", Description: "PostgreSQL Unicode"},
		{Name: "orders", Description: "SQLite3"},
	}, dsns)
}

func TestDataSourcesFromIniFile(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.ini")
	require.NoError(t, os.WriteFile(user, []byte(`
[ODBC Data Sources]
warehouse = warehouse database

[warehouse]
Driver = PostgreSQL Unicode
Servername = db.example.com

[orders]
Description = order entry ; not a comment
Driver = SQLite3
`), 0o600))
	t.Setenv("ODBCINI", user)
	t.Setenv("ODBCSYSINI", filepath.Join(dir, "missing"))

	_, env := newTestEnv(t, odbctest.Without("SQLDataSources", "SQLDataSourcesW"))
	dsns, err := env.DataSources()
	require.NoError(t, err)
	assert.Equal(t, []DSN{
		{Name: "warehouse", Description: "warehouse database"},
		{Name: "orders", Description: "order entry ; not a comment"},
	}, dsns)
}

func TestDrivers(t *testing.T) {
	lib, env := newTestEnv(t)
	lib.SetDrivers(odbctest.Driver{
		Description: "SQLite3",
		Attributes:  []string{"Driver=libsqlite3odbc.so", "UsageCount=1"},
	})
	drivers, err := env.Drivers()
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, "SQLite3", drivers[0].Description)
	assert.Equal(t, []string{"Driver=libsqlite3odbc.so", "UsageCount=1"}, drivers[0].Attributes)
}
