// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"database/sql"
	"flag"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mysrv  = flag.String("mysrv", "", "mysql server name, tests are skipped when empty")
	mydb   = flag.String("mydb", "dbname", "mysql database name")
	myuser = flag.String("myuser", "", "mysql user name")
	mypass = flag.String("mypass", "", "mysql password")
)

// mysqlConnect opens a database through the system driver manager
// and the MySQL ODBC driver. It returns the statement count to expect
// once the database is closed.
func mysqlConnect(t *testing.T) (db *sql.DB, stmtCount int) {
	if *mysrv == "" {
		t.Skip("no mysql server given, use -mysrv")
	}
	// from https://dev.mysql.com/doc/connector-odbc/en/connector-odbc-configuration-connection-parameters.html
	conn := fmt.Sprintf("driver=mysql;server=%s;database=%s;user=%s;password=%s;",
		*mysrv, *mydb, *myuser, *mypass)
	db, err := sql.Open("odbc", conn)
	require.NoError(t, err)
	_, _, stmtCount, _ = HandleStats().Snapshot()
	return db, stmtCount
}

// closeDB closes db and checks every statement handle was freed.
func closeDB(t *testing.T, db *sql.DB, shouldStmtCount int) {
	require.NoError(t, db.Close())
	_, _, n, _ := HandleStats().Snapshot()
	assert.Equal(t, shouldStmtCount, n, "unexpected StmtCount")
}

func exec(t *testing.T, db *sql.DB, query string, args ...interface{}) {
	s, err := db.Prepare(query)
	require.NoError(t, err, "db.Prepare(%q)", query)
	defer s.Close()
	r, err := s.Exec(args...)
	require.NoError(t, err, "s.Exec(%q)", query)
	_, err = r.RowsAffected()
	require.NoError(t, err, "r.RowsAffected(%q)", query)
}

func TestMYSQLTime(t *testing.T) {
	db, sc := mysqlConnect(t)
	defer closeDB(t, db, sc)

	db.Exec("drop table temp")
	exec(t, db, "create table temp(id int not null auto_increment primary key, time time)")
	now := time.Now()
	// SQL_TIME_STRUCT only supports hours, minutes and seconds
	now = time.Date(1, time.January, 1, now.Hour(), now.Minute(), now.Second(), 0, time.Local)
	exec(t, db, "insert into temp (time) values(?)", now)

	var ret time.Time
	require.NoError(t, db.QueryRow("select time from temp where id = ?", 1).Scan(&ret))
	assert.True(t, now.Equal(ret), "want=%v, is=%v", now, ret)

	exec(t, db, "drop table temp")
}

func TestMYSQLTypes(t *testing.T) {
	db, sc := mysqlConnect(t)
	defer closeDB(t, db, sc)

	db.Exec("drop table temp")
	exec(t, db, "create table temp(id int not null primary key, name varchar(20), score double, note text)")
	long := ""
	for len(long) < 5000 {
		long += "0123456789"
	}
	exec(t, db, "insert into temp (id, name, score, note) values(?, ?, ?, ?)", 1, "ann", 2.5, long)
	exec(t, db, "insert into temp (id, name, score, note) values(?, ?, ?, ?)", 2, nil, nil, nil)

	rows, err := db.Query("select id, name, score, note from temp order by id")
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var (
		id    int64
		name  sql.NullString
		score sql.NullFloat64
		note  sql.NullString
	)
	require.NoError(t, rows.Scan(&id, &name, &score, &note))
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "ann", name.String)
	assert.Equal(t, 2.5, score.Float64)
	assert.Equal(t, long, note.String)

	require.True(t, rows.Next())
	require.NoError(t, rows.Scan(&id, &name, &score, &note))
	assert.False(t, name.Valid)
	assert.False(t, score.Valid)
	assert.False(t, note.Valid)
	require.NoError(t, rows.Close())

	exec(t, db, "drop table temp")
}
