// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlodbc/odbc/api"
	"github.com/dlodbc/odbc/internal/odbctest"
)

func lookup(t *testing.T, tt api.TypeTable, name string) api.NativeType {
	t.Helper()
	nt, ok := tt.Lookup(name)
	require.True(t, ok, name)
	return nt
}

func TestTypeTableWidths(t *testing.T) {
	var tests = []struct {
		cfg     api.Config
		integer uintptr
		long    uintptr
		sqllen  uintptr
		tchar   uintptr
	}{
		{api.Config{SizeOfLong: 8, Unicode: true, Legacy: true}, 4, 8, 4, 2},
		{api.Config{SizeOfLong: 8, Unicode: false, Legacy: false}, 4, 8, 8, 1},
		{api.Config{SizeOfLong: 4, Unicode: true, Legacy: false}, 4, 4, 4, 2},
		{api.Config{SizeOfLong: 4, Unicode: false, Legacy: true}, 4, 4, 4, 1},
	}
	for _, test := range tests {
		tt := api.NewTypeTable(test.cfg)
		assert.Equal(t, test.integer, lookup(t, tt, "SQLINTEGER").Size, "%+v", test.cfg)
		assert.Equal(t, test.integer, lookup(t, tt, "SQLUINTEGER").Size, "%+v", test.cfg)
		assert.Equal(t, test.long, lookup(t, tt, "SDWORD").Size, "%+v", test.cfg)
		assert.Equal(t, test.long, lookup(t, tt, "UDWORD").Size, "%+v", test.cfg)
		assert.Equal(t, test.sqllen, lookup(t, tt, "SQLLEN").Size, "%+v", test.cfg)
		assert.Equal(t, test.sqllen, lookup(t, tt, "SQLULEN").Size, "%+v", test.cfg)
		assert.Equal(t, test.tchar, lookup(t, tt, "SQLTCHAR").Size, "%+v", test.cfg)

		assert.Equal(t, api.Signed, lookup(t, tt, "SQLLEN").Kind)
		assert.Equal(t, api.Unsigned, lookup(t, tt, "SQLULEN").Kind)
		assert.Equal(t, uintptr(2), lookup(t, tt, "SQLSMALLINT").Size)
		assert.Equal(t, uintptr(8), lookup(t, tt, "SQLBIGINT").Size)
		assert.Equal(t, api.Float, lookup(t, tt, "SQLDOUBLE").Kind)
		assert.Equal(t, unsafe.Sizeof(uintptr(0)), lookup(t, tt, "SQLHSTMT").Size)
	}
}

func TestTypeTablePointers(t *testing.T) {
	tt := api.NewTypeTable(api.Config{SizeOfLong: 8})
	nt := lookup(t, tt, "*SQLSMALLINT")
	assert.Equal(t, api.Pointer, nt.Kind)
	assert.Equal(t, "*SQLSMALLINT", nt.Name)
	assert.Equal(t, unsafe.Sizeof(uintptr(0)), nt.Size)

	_, ok := tt.Lookup("*NOSUCHTYPE")
	assert.False(t, ok)
	_, ok = tt.Lookup("NOSUCHTYPE")
	assert.False(t, ok)
	assert.Contains(t, tt.Names(), "SQLWCHAR")
}

func TestEncode(t *testing.T) {
	minus1 := ^uintptr(0)
	var tests = []struct {
		nt   api.NativeType
		in   uintptr
		want uintptr
	}{
		{api.NativeType{Size: 2, Kind: api.Signed}, 0xfffd, minus1 - 2},
		{api.NativeType{Size: 2, Kind: api.Signed}, 0x12345, 0x2345},
		{api.NativeType{Size: 2, Kind: api.Unsigned}, minus1, 0xffff},
		{api.NativeType{Size: 4, Kind: api.Signed}, 0xffffffff, minus1},
		{api.NativeType{Size: 4, Kind: api.Unsigned}, minus1, 0xffffffff},
		{api.NativeType{Size: 1, Kind: api.Signed}, 0x80, minus1 - 0x7f},
		{api.NativeType{Size: 1, Kind: api.Unsigned}, 0x1ff, 0xff},
		{api.NativeType{Size: unsafe.Sizeof(uintptr(0)), Kind: api.Pointer}, minus1, minus1},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.nt.Encode(test.in), "%+v %#x", test.nt, test.in)
	}
}

func TestLegacyLenNormalization(t *testing.T) {
	const cell = api.SQLLEN(0x00000000ffffffff)

	legacy := api.NewTypeTable(api.Config{SizeOfLong: 8, Legacy: true})
	assert.Equal(t, api.SQLLEN(-1), legacy.Len(cell))
	assert.Equal(t, api.SQLLEN(42), legacy.Len(42))
	assert.Equal(t, api.SQLULEN(7), legacy.ULen(0xdead00000007))

	wide := api.NewTypeTable(api.Config{SizeOfLong: 8, Legacy: false})
	assert.Equal(t, cell, wide.Len(cell))
}

func TestLegacyRowCount(t *testing.T) {
	for _, lenSize := range []int{4, 8} {
		dm, lib := newDriverManager(t, testConfig(), odbctest.WithLenSize(lenSize))
		lib.SetResult("UPDATE t SET a = 1", &odbctest.ResultSet{RowCount: -1})

		_, dbc := connect(t, dm)
		var stmt api.SQLHANDLE
		ret, err := dm.SQLAllocHandle(api.SQL_HANDLE_STMT, dbc, &stmt)
		require.NoError(t, err)
		require.True(t, api.SQL_SUCCEEDED(ret))
		ret, err = dm.ExecDirect(api.SQLHSTMT(stmt), "UPDATE t SET a = 1")
		require.NoError(t, err)
		require.True(t, api.SQL_SUCCEEDED(ret))

		var n api.SQLLEN
		ret, err = dm.SQLRowCount(api.SQLHSTMT(stmt), &n)
		require.NoError(t, err)
		require.True(t, api.SQL_SUCCEEDED(ret))
		assert.Equal(t, api.SQLLEN(-1), dm.Types().Len(n), "len size %d", lenSize)
	}
}
