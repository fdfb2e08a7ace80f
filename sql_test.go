// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlodbc/odbc/api"
	"github.com/dlodbc/odbc/internal/odbctest"
)

var usersResult = odbctest.Rows(
	[]odbctest.Column{odbctest.Integer("id"), odbctest.Varchar("name", 20)},
	[]interface{}{1, "ann"},
	[]interface{}{2, "bob"},
)

// openTestDB returns a single connection pool over a mock driver
// manager.
func openTestDB(t *testing.T, opts ...odbctest.Option) (*odbctest.Library, *sql.DB) {
	t.Helper()
	lib, env := newTestEnv(t, opts...)
	db := sql.OpenDB(NewConnector(env, "DSN=test"))
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return lib, db
}

// connHandle returns the native handle of the pooled connection.
func connHandle(t *testing.T, db *sql.DB) uintptr {
	t.Helper()
	c, err := db.Conn(context.Background())
	require.NoError(t, err)
	defer c.Close()
	var h uintptr
	require.NoError(t, c.Raw(func(dc interface{}) error {
		h = uintptr(dc.(*Conn).h)
		return nil
	}))
	return h
}

func TestSQLExec(t *testing.T) {
	lib, db := openTestDB(t)

	res, err := db.Exec("INSERT INTO users (id, name) VALUES (?, ?)", 1, "ann")
	require.NoError(t, err)
	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = res.LastInsertId()
	assert.ErrorIs(t, err, ErrNotSupported)

	ex := lib.Executed()
	require.Len(t, ex, 1)
	assert.Equal(t, []interface{}{int64(1), "ann"}, ex[0].Args)

	st, ok := lib.Conn(connHandle(t, db))
	require.True(t, ok)
	assert.True(t, st.Autocommit)
}

func TestSQLQuery(t *testing.T) {
	lib, db := openTestDB(t)
	lib.SetResult("SELECT id, name FROM users", usersResult)

	rows, err := db.Query("SELECT id, name FROM users")
	require.NoError(t, err)
	defer rows.Close()

	cols, err := rows.Columns()
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, cols)

	types, err := rows.ColumnTypes()
	require.NoError(t, err)
	assert.Equal(t, "INTEGER", types[0].DatabaseTypeName())
	assert.Equal(t, "VARCHAR", types[1].DatabaseTypeName())
	length, ok := types[1].Length()
	assert.True(t, ok)
	assert.Equal(t, int64(20), length)
	nullable, ok := types[1].Nullable()
	assert.True(t, ok)
	assert.True(t, nullable)

	type user struct {
		id   int64
		name string
	}
	var got []user
	for rows.Next() {
		var u user
		require.NoError(t, rows.Scan(&u.id, &u.name))
		got = append(got, u)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []user{{1, "ann"}, {2, "bob"}}, got)
}

func TestSQLParameterTypes(t *testing.T) {
	_, db := openTestDB(t)
	u := uuid.MustParse("0b9d7c9e-4f7d-4bb4-9f3b-6f16b6b4b4a1")
	ts := time.Date(2024, 5, 6, 7, 8, 9, 123000000, time.UTC)

	var tests = []struct {
		arg  interface{}
		want string
	}{
		{"hello", "hello"},
		{int64(-7), "-7"},
		{2.5, "2.5"},
		{true, "1"},
		{ts, "2024-05-06 07:08:09.123"},
		{u, u.String()},
		{[]byte("raw"), "raw"},
	}
	for _, test := range tests {
		var got string
		require.NoError(t, db.QueryRow("SELECT ?", test.arg).Scan(&got), "%T", test.arg)
		assert.Equal(t, test.want, got, "%T", test.arg)
	}

	var null sql.NullString
	require.NoError(t, db.QueryRow("SELECT ?", nil).Scan(&null))
	assert.False(t, null.Valid)
}

func TestSQLStatementReuse(t *testing.T) {
	lib, db := openTestDB(t)

	stmt, err := db.Prepare("SELECT ?")
	require.NoError(t, err)
	defer stmt.Close()

	for _, want := range []string{"a", "b", "c"} {
		var got string
		require.NoError(t, stmt.QueryRow(want).Scan(&got))
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 1, lib.CallCount("SQLPrepareW"))

	_, err = stmt.Exec("a", "b")
	assert.Error(t, err)
}

func TestSQLTransactions(t *testing.T) {
	lib, db := openTestDB(t)
	h := connHandle(t, db)

	tx, err := db.BeginTx(context.Background(), &sql.TxOptions{Isolation: sql.LevelSerializable})
	require.NoError(t, err)
	st, _ := lib.Conn(h)
	assert.False(t, st.Autocommit)
	assert.Equal(t, uintptr(api.SQL_TXN_SERIALIZABLE), st.Attrs[api.SQL_ATTR_TXN_ISOLATION])

	_, err = tx.Exec("UPDATE users SET name = ?", "carl")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.ErrorIs(t, tx.Commit(), sql.ErrTxDone)

	tx, err = db.BeginTx(context.Background(), &sql.TxOptions{ReadOnly: true})
	require.NoError(t, err)
	st, _ = lib.Conn(h)
	assert.Equal(t, uintptr(api.SQL_MODE_READ_ONLY), st.Attrs[api.SQL_ATTR_ACCESS_MODE])
	require.NoError(t, tx.Rollback())

	st, _ = lib.Conn(h)
	assert.Equal(t, 1, st.Commits)
	assert.Equal(t, 1, st.Rollbacks)
	assert.True(t, st.Autocommit)
	assert.Equal(t, uintptr(api.SQL_MODE_READ_WRITE), st.Attrs[api.SQL_ATTR_ACCESS_MODE])
}

func TestSQLNextResultSet(t *testing.T) {
	lib, db := openTestDB(t)
	lib.SetResult("EXEC report",
		numbers(2),
		&odbctest.ResultSet{RowCount: 5},
		odbctest.Rows([]odbctest.Column{odbctest.Varchar("name", 10)}, []interface{}{"total"}),
	)

	rows, err := db.Query("EXEC report")
	require.NoError(t, err)
	defer rows.Close()

	var ns []int64
	for rows.Next() {
		var n int64
		require.NoError(t, rows.Scan(&n))
		ns = append(ns, n)
	}
	assert.Equal(t, []int64{1, 2}, ns)

	require.True(t, rows.NextResultSet())
	require.True(t, rows.Next())
	var name string
	require.NoError(t, rows.Scan(&name))
	assert.Equal(t, "total", name)
	assert.False(t, rows.Next())

	assert.False(t, rows.NextResultSet())
	require.NoError(t, rows.Err())
}

func TestSQLQueryTimeout(t *testing.T) {
	lib, db := openTestDB(t)

	_, err := db.Exec("UPDATE users SET name = 'x'")
	require.NoError(t, err)
	assert.Zero(t, lib.CallCount("SQLSetStmtAttr"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err = db.ExecContext(ctx, "UPDATE users SET name = 'y'")
	require.NoError(t, err)
	assert.Equal(t, 1, lib.CallCount("SQLSetStmtAttr"))
}

func TestSQLBadConnection(t *testing.T) {
	lib, db := openTestDB(t)
	lib.Handler = func(query string, args []interface{}) ([]*odbctest.ResultSet, error) {
		if query == "SELECT dropped" {
			return nil, &odbctest.Error{State: "08S01", Message: "communication link failure"}
		}
		return []*odbctest.ResultSet{{RowCount: 0}}, nil
	}
	require.NoError(t, db.Ping())

	_, err := db.Exec("SELECT dropped")
	assert.ErrorIs(t, err, driver.ErrBadConn)

	// the pool replaces the broken connection
	_, err = db.Exec("UPDATE users SET name = 'z'")
	require.NoError(t, err)
}

func TestSQLHandleStats(t *testing.T) {
	_, conns0, stmts0, _ := HandleStats().Snapshot()
	lib, db := openTestDB(t)
	lib.SetResult("SELECT id, name FROM users", usersResult)

	rows, err := db.Query("SELECT id, name FROM users")
	require.NoError(t, err)
	_, conns, stmts, _ := HandleStats().Snapshot()
	assert.Equal(t, conns0+1, conns)
	assert.Equal(t, stmts0+1, stmts)
	require.NoError(t, rows.Close())

	require.NoError(t, db.Close())
	_, conns, stmts, _ = HandleStats().Snapshot()
	assert.Equal(t, conns0, conns)
	assert.Equal(t, stmts0, stmts)
}

func TestSQLX(t *testing.T) {
	lib, db := openTestDB(t)
	lib.SetResult("SELECT id, name FROM users", usersResult)
	dbx := sqlx.NewDb(db, "odbc")

	type user struct {
		ID   int64  `db:"id"`
		Name string `db:"name"`
	}
	var users []user
	require.NoError(t, dbx.Select(&users, "SELECT id, name FROM users"))
	assert.Equal(t, []user{{1, "ann"}, {2, "bob"}}, users)

	var name string
	require.NoError(t, dbx.Get(&name, dbx.Rebind("SELECT ?"), "ann"))
	assert.Equal(t, "ann", name)
}

func TestConnCheckNamedValue(t *testing.T) {
	var c Conn
	assert.NoError(t, c.CheckNamedValue(&driver.NamedValue{Value: uuid.New()}))
	assert.Equal(t, driver.ErrSkip, c.CheckNamedValue(&driver.NamedValue{Value: 1}))

	_, err := namedValueToValue([]driver.NamedValue{{Name: "id", Value: 1}})
	assert.Error(t, err)
}
