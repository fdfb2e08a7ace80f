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
)

func writeIni(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestDataSourceFiles(t *testing.T) {
	t.Setenv("ODBCINI", "/tmp/user.ini")
	t.Setenv("ODBCSYSINI", "/opt/odbc")
	assert.Equal(t, []string{"/tmp/user.ini", "/opt/odbc/odbc.ini"}, DataSourceFiles())

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ODBCINI", "")
	t.Setenv("ODBCSYSINI", "")
	assert.Equal(t, []string{filepath.Join(home, ".odbc.ini"), "/etc/odbc.ini"}, DataSourceFiles())
}

func TestReadDataSources(t *testing.T) {
	dir := t.TempDir()
	user := writeIni(t, dir, "user.ini", `
[ODBC]
Trace = No

[reports]
Driver = PostgreSQL
Description = monthly reports
`)
	system := writeIni(t, dir, "system.ini", `
[ODBC Data Sources]
inventory = stock levels

[reports]
Driver = MySQL

[inventory]
Driver = SQLite3

[scratch]
Driver = SQLite3
`)
	dsns, err := ReadDataSources(user, filepath.Join(dir, "missing.ini"), system)
	require.NoError(t, err)
	assert.Equal(t, []DSN{
		{Name: "reports", Description: "monthly reports"},
		{Name: "inventory", Description: "stock levels"},
		{Name: "scratch", Description: "SQLite3"},
	}, dsns)
}

func TestReadDataSourcesBadFile(t *testing.T) {
	dir := t.TempDir()
	bad := writeIni(t, dir, "bad.ini", "[unterminated\nDriver = x\n")
	_, err := ReadDataSources(bad)
	assert.Error(t, err)
}
