// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbctest

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"time"
	"unsafe"

	"github.com/google/uuid"

	"github.com/dlodbc/odbc/api"
)

// Column describes one column of a canned result set.
type Column struct {
	Name     string
	SQLType  api.SQLSMALLINT
	Size     api.SQLULEN
	Digits   api.SQLSMALLINT
	Nullable bool
}

// ResultSet is what a statement produces when executed. Rows hold
// plain Go values (string, []byte, integers, floats, bool, uuid.UUID)
// or nil for NULL.
type ResultSet struct {
	Columns  []Column
	Rows     [][]interface{}
	RowCount int64
}

// Varchar returns a character column named name.
func Varchar(name string, size int) Column {
	return Column{Name: name, SQLType: api.SQL_VARCHAR, Size: api.SQLULEN(size), Nullable: true}
}

// Integer returns an SQL_INTEGER column named name.
func Integer(name string) Column {
	return Column{Name: name, SQLType: api.SQL_INTEGER, Size: 10, Nullable: true}
}

// Rows builds a result set with the given columns and rows.
func Rows(cols []Column, rows ...[]interface{}) *ResultSet {
	return &ResultSet{Columns: cols, Rows: rows, RowCount: int64(len(rows))}
}

// echo returns the result of "SELECT ?, ..." style queries: one row
// holding the parameter values.
func echo(args []interface{}) *ResultSet {
	rs := &ResultSet{RowCount: 1}
	row := make([]interface{}, len(args))
	for i, a := range args {
		s := ""
		if a != nil {
			s = fmt.Sprint(a)
		}
		rs.Columns = append(rs.Columns, Varchar(fmt.Sprintf("col%d", i+1), len(s)))
		row[i] = a
	}
	rs.Rows = [][]interface{}{row}
	return rs
}

func toString(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		if x {
			return "1"
		}
		return "0"
	case time.Time:
		return x.Format("2006-01-02 15:04:05.999999999")
	}
	return fmt.Sprint(v)
}

func toInt64(v interface{}) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return int64(x)
	case float64:
		return int64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		n, _ := strconv.ParseInt(x, 10, 64)
		return n
	}
	return 0
}

func toFloat64(v interface{}) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case string:
		f, _ := strconv.ParseFloat(x, 64)
		return f
	}
	return float64(toInt64(v))
}

// writeValue stores v into the bound column cell and returns the
// indicator value. truncated is set when character or binary data did
// not fit.
func writeValue(b *colBinding, v interface{}) (ind int64, truncated bool) {
	if v == nil {
		return api.SQL_NULL_DATA, false
	}
	cell := mem(b.ptr, int(b.buflen))
	switch b.ctype {
	case api.SQL_C_CHAR:
		n := putString(b.ptr, int(b.buflen), toString(v))
		return int64(n), n >= int(b.buflen)
	case api.SQL_C_WCHAR:
		n := putWString(b.ptr, int(b.buflen)/2, toString(v))
		return int64(2 * n), n >= int(b.buflen)/2
	case api.SQL_C_BINARY:
		var data []byte
		if x, ok := v.([]byte); ok {
			data = x
		} else {
			data = []byte(toString(v))
		}
		copy(cell, data)
		return int64(len(data)), len(data) > len(cell)
	case api.SQL_C_SHORT, api.SQL_C_SSHORT, api.SQL_C_USHORT:
		binary.NativeEndian.PutUint16(cell, uint16(toInt64(v)))
		return 2, false
	case api.SQL_C_LONG, api.SQL_C_SLONG, api.SQL_C_ULONG:
		binary.NativeEndian.PutUint32(cell, uint32(toInt64(v)))
		return 4, false
	case api.SQL_C_SBIGINT, api.SQL_C_UBIGINT:
		if u, ok := v.(uint64); ok {
			binary.NativeEndian.PutUint64(cell, u)
		} else {
			binary.NativeEndian.PutUint64(cell, uint64(toInt64(v)))
		}
		return 8, false
	case api.SQL_C_TINYINT, api.SQL_C_UTINYINT, api.SQL_C_STINYINT, api.SQL_C_BIT:
		cell[0] = byte(toInt64(v))
		return 1, false
	case api.SQL_C_FLOAT:
		binary.NativeEndian.PutUint32(cell, math.Float32bits(float32(toFloat64(v))))
		return 4, false
	case api.SQL_C_DOUBLE:
		binary.NativeEndian.PutUint64(cell, math.Float64bits(toFloat64(v)))
		return 8, false
	case api.SQL_C_GUID:
		var u uuid.UUID
		switch x := v.(type) {
		case uuid.UUID:
			u = x
		default:
			u, _ = uuid.Parse(toString(v))
		}
		*(*api.SQLGUID)(unsafe.Pointer(b.ptr)) = api.NewGUID(u)
		return 16, false
	}
	return api.SQL_NULL_DATA, false
}
