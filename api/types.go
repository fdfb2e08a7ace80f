// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

// Go side storage for the ODBC scalar types. SQLLEN and SQLULEN are
// always stored in 8 bytes; the driver manager writes them at the
// width chosen by Config, see TypeTable.Len and TypeTable.ULen.
type (
	SQLCHAR      uint8
	SQLSCHAR     int8
	SQLWCHAR     uint16
	SQLSMALLINT  int16
	SQLUSMALLINT uint16
	SQLINTEGER   int32
	SQLUINTEGER  uint32
	SQLBIGINT    int64
	SQLUBIGINT   uint64
	SQLREAL      float32
	SQLDOUBLE    float64
	SQLLEN       int64
	SQLULEN      uint64
	SQLRETURN    SQLSMALLINT

	SQLSETPOSIROW SQLUSMALLINT
	SQLINTERVAL   int32

	SQLPOINTER uintptr
	SQLHANDLE  uintptr
	SQLHENV    SQLHANDLE
	SQLHDBC    SQLHANDLE
	SQLHSTMT   SQLHANDLE
	SQLHDESC   SQLHANDLE
	SQLHWND    uintptr
)

const (
	SQL_NULL_HANDLE = 0
	SQL_NULL_HENV   = 0
	SQL_NULL_HDBC   = 0
	SQL_NULL_HSTMT  = 0
	SQL_NULL_HDESC  = 0

	// Microsoft SQL Server specific types.
	SQL_SS_XML   = -152
	SQL_SS_TIME2 = -154
)

// SQL_SUCCEEDED reports whether ret is SQL_SUCCESS or
// SQL_SUCCESS_WITH_INFO.
func SQL_SUCCEEDED(ret SQLRETURN) bool {
	return ret&^1 == 0
}

// SQL_LEN_DATA_AT_EXEC returns the length indicator announcing length
// bytes of data at execution time.
func SQL_LEN_DATA_AT_EXEC(length SQLLEN) SQLLEN {
	return -length + SQL_LEN_DATA_AT_EXEC_OFFSET
}

// SQL_LEN_BINARY_ATTR returns the length of a binary attribute passed
// to SQLColAttributes style calls.
func SQL_LEN_BINARY_ATTR(length SQLINTEGER) SQLINTEGER {
	return -length + SQL_LEN_BINARY_ATTR_OFFSET
}
