// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"strings"
	"unicode/utf16"
	"unsafe"
)

// The methods in this file take and return Go strings. They call the
// wide character variant of a function when the configuration prefers
// unicode and the library exports it, and the ANSI variant otherwise.

// UTF16ToString returns the UTF-8 encoding of the UTF-16 sequence s,
// with a terminating NUL removed.
func UTF16ToString(s []uint16) string {
	for i, v := range s {
		if v == 0 {
			s = s[0:i]
			break
		}
	}
	return string(utf16.Decode(s))
}

// StringToUTF16 returns the UTF-16 encoding of the UTF-8 string s,
// with a terminating NUL added.
func StringToUTF16(s string) []uint16 { return utf16.Encode([]rune(s + "\x00")) }

// BytesToString returns b up to the first NUL as a string.
func BytesToString(b []byte) string {
	for i, v := range b {
		if v == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func wptr(b []uint16) *SQLWCHAR { return (*SQLWCHAR)(unsafe.Pointer(&b[0])) }
func cptr(b []byte) *SQLCHAR    { return (*SQLCHAR)(unsafe.Pointer(&b[0])) }

// DriverConnect connects h using connStr without showing any dialog
// unless completion asks for one.
func (m *DriverManager) DriverConnect(h SQLHDBC, connStr string, completion SQLUSMALLINT) (SQLRETURN, error) {
	if m.wide(procSQLDriverConnectW) {
		b, err := wstring(connStr)
		if err != nil {
			return SQL_ERROR, err
		}
		return m.SQLDriverConnectW(h, 0, wptr(b), SQL_NTS, nil, 0, nil, completion)
	}
	b, err := cstring(connStr)
	if err != nil {
		return SQL_ERROR, err
	}
	return m.SQLDriverConnect(h, 0, cptr(b), SQL_NTS, nil, 0, nil, completion)
}

// Prepare prepares query on statement h.
func (m *DriverManager) Prepare(h SQLHSTMT, query string) (SQLRETURN, error) {
	if m.wide(procSQLPrepareW) {
		b, err := wstring(query)
		if err != nil {
			return SQL_ERROR, err
		}
		return m.SQLPrepareW(h, wptr(b), SQL_NTS)
	}
	b, err := cstring(query)
	if err != nil {
		return SQL_ERROR, err
	}
	return m.SQLPrepare(h, cptr(b), SQL_NTS)
}

// ExecDirect executes query on statement h without preparing it.
func (m *DriverManager) ExecDirect(h SQLHSTMT, query string) (SQLRETURN, error) {
	if m.wide(procSQLExecDirectW) {
		b, err := wstring(query)
		if err != nil {
			return SQL_ERROR, err
		}
		return m.SQLExecDirectW(h, wptr(b), SQL_NTS)
	}
	b, err := cstring(query)
	if err != nil {
		return SQL_ERROR, err
	}
	return m.SQLExecDirect(h, cptr(b), SQL_NTS)
}

// ColumnDesc is a result column as reported by SQLDescribeCol.
type ColumnDesc struct {
	Name          string
	DataType      SQLSMALLINT
	Size          SQLULEN
	DecimalDigits SQLSMALLINT
	Nullable      SQLSMALLINT
}

// DescribeCol describes result column col (1 based) of statement h.
func (m *DriverManager) DescribeCol(h SQLHSTMT, col SQLUSMALLINT) (ColumnDesc, SQLRETURN, error) {
	var (
		d    ColumnDesc
		l    SQLSMALLINT
		size SQLULEN
		ret  SQLRETURN
		err  error
	)
	n := 150
	for try := 0; try < 2; try++ {
		if m.wide(procSQLDescribeColW) {
			buf := make([]uint16, n)
			ret, err = m.SQLDescribeColW(h, col, wptr(buf), SQLSMALLINT(len(buf)), &l,
				&d.DataType, &size, &d.DecimalDigits, &d.Nullable)
			d.Name = UTF16ToString(buf)
		} else {
			buf := make([]byte, n)
			ret, err = m.SQLDescribeCol(h, col, cptr(buf), SQLSMALLINT(len(buf)), &l,
				&d.DataType, &size, &d.DecimalDigits, &d.Nullable)
			d.Name = BytesToString(buf)
		}
		if err != nil || !SQL_SUCCEEDED(ret) || int(l) < n {
			break
		}
		// name was truncated, try again with a bigger buffer
		n = int(l) + 1
	}
	d.Size = m.types.ULen(size)
	return d, ret, err
}

// DiagRec is one diagnostic record.
type DiagRec struct {
	State       string
	NativeError SQLINTEGER
	Message     string
}

// GetDiagRec returns diagnostic record rec (1 based) of handle h of
// type ht. It returns SQL_NO_DATA once there are no more records.
func (m *DriverManager) GetDiagRec(ht SQLSMALLINT, h SQLHANDLE, rec SQLSMALLINT) (DiagRec, SQLRETURN, error) {
	var (
		r   DiagRec
		l   SQLSMALLINT
		ret SQLRETURN
		err error
	)
	n := SQL_MAX_MESSAGE_LENGTH
	for try := 0; try < 2; try++ {
		if m.wide(procSQLGetDiagRecW) {
			state := make([]uint16, 6)
			msg := make([]uint16, n)
			ret, err = m.SQLGetDiagRecW(ht, h, rec, wptr(state), &r.NativeError, wptr(msg), SQLSMALLINT(len(msg)), &l)
			r.State, r.Message = UTF16ToString(state), UTF16ToString(msg)
		} else {
			state := make([]byte, 6)
			msg := make([]byte, n)
			ret, err = m.SQLGetDiagRec(ht, h, rec, cptr(state), &r.NativeError, cptr(msg), SQLSMALLINT(len(msg)), &l)
			r.State, r.Message = BytesToString(state), BytesToString(msg)
		}
		if err != nil || !SQL_SUCCEEDED(ret) || int(l) < n {
			break
		}
		n = int(l) + 1
	}
	return r, ret, err
}

// DataSources returns the next data source of environment h.
// direction is SQL_FETCH_FIRST, SQL_FETCH_FIRST_USER,
// SQL_FETCH_FIRST_SYSTEM or SQL_FETCH_NEXT.
func (m *DriverManager) DataSources(h SQLHENV, direction SQLUSMALLINT) (name, description string, ret SQLRETURN, err error) {
	var l1, l2 SQLSMALLINT
	if m.wide(procSQLDataSourcesW) {
		nb := make([]uint16, SQL_MAX_DSN_LENGTH+1)
		db := make([]uint16, 512)
		ret, err = m.SQLDataSourcesW(h, direction, wptr(nb), SQLSMALLINT(len(nb)), &l1, wptr(db), SQLSMALLINT(len(db)), &l2)
		return UTF16ToString(nb), UTF16ToString(db), ret, err
	}
	nb := make([]byte, SQL_MAX_DSN_LENGTH+1)
	db := make([]byte, 512)
	ret, err = m.SQLDataSources(h, direction, cptr(nb), SQLSMALLINT(len(nb)), &l1, cptr(db), SQLSMALLINT(len(db)), &l2)
	return BytesToString(nb), BytesToString(db), ret, err
}

// Drivers returns the next installed driver of environment h with
// its key=value attributes.
func (m *DriverManager) Drivers(h SQLHENV, direction SQLUSMALLINT) (description string, attributes []string, ret SQLRETURN, err error) {
	var l1, l2 SQLSMALLINT
	var raw string
	if m.wide(procSQLDriversW) {
		db := make([]uint16, 256)
		ab := make([]uint16, 4096)
		ret, err = m.SQLDriversW(h, direction, wptr(db), SQLSMALLINT(len(db)), &l1, wptr(ab), SQLSMALLINT(len(ab)), &l2)
		if int(l2) > len(ab) {
			l2 = SQLSMALLINT(len(ab))
		}
		description, raw = UTF16ToString(db), string(utf16.Decode(ab[:max(l2, 0)]))
	} else {
		db := make([]byte, 256)
		ab := make([]byte, 4096)
		ret, err = m.SQLDrivers(h, direction, cptr(db), SQLSMALLINT(len(db)), &l1, cptr(ab), SQLSMALLINT(len(ab)), &l2)
		if int(l2) > len(ab) {
			l2 = SQLSMALLINT(len(ab))
		}
		description, raw = BytesToString(db), string(ab[:max(l2, 0)])
	}
	for _, a := range strings.Split(raw, "\x00") {
		if a != "" {
			attributes = append(attributes, a)
		}
	}
	return description, attributes, ret, err
}
