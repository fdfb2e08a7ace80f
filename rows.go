// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"database/sql/driver"
	"io"
	"reflect"
	"time"

	"github.com/dlodbc/odbc/api"
)

type Rows struct {
	os *ODBCStmt
	c  *Conn
}

func (r *Rows) Columns() []string {
	names := make([]string, len(r.os.Cols))
	for i := 0; i < len(names); i++ {
		names[i] = r.os.Cols[i].Name()
	}
	return names
}

func (r *Rows) Next(dest []driver.Value) error {
	dm, h := r.os.dm, r.os.h
	ret, err := dm.SQLFetch(h)
	if err == nil && ret == api.SQL_NO_DATA {
		return io.EOF
	}
	if err := check(dm, "SQLFetch", h, ret, err); err != nil {
		return r.c.newError(err)
	}
	for i := range dest {
		v, err := r.os.Cols[i].Value(dm, h, i)
		if err != nil {
			return err
		}
		dest[i] = v
	}
	return nil
}

func (r *Rows) Close() error {
	return r.os.closeByRows()
}

// implement driver.RowsNextResultSet
func (r *Rows) HasNextResultSet() bool {
	return true
}

// implement driver.RowsNextResultSet
func (r *Rows) NextResultSet() error {
	return r.os.NextResultSet()
}

func (r *Rows) base(index int) *BaseColumn {
	switch x := r.os.Cols[index].(type) {
	case *BindableColumn:
		return x.BaseColumn
	case *NonBindableColumn:
		return x.BaseColumn
	}
	return nil
}

// ColumnTypeDatabaseTypeName return the database system type name.
func (r *Rows) ColumnTypeDatabaseTypeName(index int) string {
	if b := r.base(index); b != nil {
		return SQLTypeName(b.SQLType)
	}
	return ""
}

// ColumnTypeNullable reports whether the column may hold NULL.
func (r *Rows) ColumnTypeNullable(index int) (nullable, ok bool) {
	b := r.base(index)
	if b == nil || b.Nullable == api.SQL_NULLABLE_UNKNOWN {
		return false, false
	}
	return b.Nullable == api.SQL_NULLABLE, true
}

// ColumnTypeLength returns the size of variable width columns.
func (r *Rows) ColumnTypeLength(index int) (length int64, ok bool) {
	b := r.base(index)
	if b == nil {
		return 0, false
	}
	switch b.CType {
	case api.SQL_C_CHAR, api.SQL_C_WCHAR, api.SQL_C_BINARY:
		if _, isTime := timeTypes[b.SQLType]; !isTime {
			return int64(b.Size), true
		}
	}
	return 0, false
}

var timeTypes = map[api.SQLSMALLINT]struct{}{
	api.SQL_TYPE_TIMESTAMP: {},
	api.SQL_TYPE_DATE:      {},
	api.SQL_TYPE_TIME:      {},
	api.SQL_SS_TIME2:       {},
}

// ColumnTypeScanType returns the Go type Next stores for the column.
func (r *Rows) ColumnTypeScanType(index int) reflect.Type {
	b := r.base(index)
	if b == nil {
		return reflect.TypeOf(new(interface{})).Elem()
	}
	if _, isTime := timeTypes[b.SQLType]; isTime {
		return reflect.TypeOf(time.Time{})
	}
	switch b.CType {
	case api.SQL_C_BIT:
		return reflect.TypeOf(false)
	case api.SQL_C_LONG, api.SQL_C_SBIGINT:
		return reflect.TypeOf(int64(0))
	case api.SQL_C_DOUBLE:
		return reflect.TypeOf(float64(0))
	case api.SQL_C_WCHAR, api.SQL_C_GUID:
		return reflect.TypeOf("")
	}
	return reflect.TypeOf([]byte(nil))
}
