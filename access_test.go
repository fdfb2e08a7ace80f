// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package odbc

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessMemo(t *testing.T) {
	dbfilename := filepath.Join(t.TempDir(), "db.mdb")
	createAccessDB(t, dbfilename)

	db, err := sql.Open("odbc", fmt.Sprintf("DRIVER={Microsoft Access Driver (*.mdb)};DBQ=%s;", dbfilename))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Ping())

	_, err = db.Exec("create table mytable (id integer, m memo, t datetime)")
	require.NoError(t, err)
	var s string
	for i := 0; len(s) < 1000; i++ {
		s += "0123456789"
		_, err = db.Exec("insert into mytable (id, m) values (?, ?)", i, s)
		require.NoError(t, err)
	}

	// memo columns are read with SQLGetData
	var m string
	require.NoError(t, db.QueryRow("select m from mytable where id = ?", 99).Scan(&m))
	assert.Equal(t, s, m)

	// Access rejects fractional seconds
	now := time.Date(2020, 1, 2, 3, 4, 5, 600000000, time.Local)
	_, err = db.Exec("update mytable set t = ? where id = 0", now)
	require.NoError(t, err)
	var got time.Time
	require.NoError(t, db.QueryRow("select t from mytable where id = 0").Scan(&got))
	assert.True(t, now.Truncate(time.Second).Equal(got), "got %v", got)
}

func createAccessDB(t *testing.T, dbfilename string) {
	err := ole.CoInitialize(0)
	require.NoError(t, err)
	defer ole.CoUninitialize()

	unk, err := oleutil.CreateObject("adox.catalog")
	if err != nil {
		t.Skipf("ADOX is not available: %v", err)
	}
	cat, err := unk.QueryInterface(ole.IID_IDispatch)
	require.NoError(t, err)
	_, err = oleutil.CallMethod(cat, "create", fmt.Sprintf("provider=microsoft.jet.oledb.4.0;data source=%s;", dbfilename))
	require.NoError(t, err)
}
