// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
	"unsafe"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"

	"github.com/dlodbc/odbc/api"
)

// maxBindableWidth is the widest character or binary column that is
// bound; wider columns are read with SQLGetData.
const maxBindableWidth = 1024

// Column provides access to row columns.
type Column interface {
	Name() string
	Bind(dm *api.DriverManager, h api.SQLHSTMT, idx int) (bool, error)
	Value(dm *api.DriverManager, h api.SQLHSTMT, idx int) (driver.Value, error)
}

// columnCType picks the C type result columns of sqltype are read as.
// Text of the driver manager's preferred width is used for character
// data; date and time values come as text and are parsed.
func columnCType(dm *api.DriverManager, sqltype api.SQLSMALLINT) (ctype api.SQLSMALLINT, variable bool) {
	switch sqltype {
	case api.SQL_BIT:
		return api.SQL_C_BIT, false
	case api.SQL_TINYINT, api.SQL_SMALLINT, api.SQL_INTEGER:
		return api.SQL_C_LONG, false
	case api.SQL_BIGINT:
		return api.SQL_C_SBIGINT, false
	case api.SQL_NUMERIC, api.SQL_DECIMAL, api.SQL_FLOAT, api.SQL_REAL, api.SQL_DOUBLE:
		return api.SQL_C_DOUBLE, false
	case api.SQL_GUID:
		return api.SQL_C_GUID, false
	case api.SQL_TYPE_TIMESTAMP, api.SQL_TYPE_DATE, api.SQL_TYPE_TIME, api.SQL_SS_TIME2:
		return api.SQL_C_CHAR, false
	case api.SQL_CHAR, api.SQL_VARCHAR, api.SQL_LONGVARCHAR:
		return api.SQL_C_CHAR, true
	case api.SQL_WCHAR, api.SQL_WVARCHAR, api.SQL_WLONGVARCHAR, api.SQL_SS_XML:
		return dm.SQL_C_TCHAR(), true
	case api.SQL_BINARY, api.SQL_VARBINARY, api.SQL_LONGVARBINARY:
		return api.SQL_C_BINARY, true
	}
	return CTypeFor(sqltype), true
}

func NewColumn(dm *api.DriverManager, h api.SQLHSTMT, idx int) (Column, error) {
	d, ret, err := dm.DescribeCol(h, api.SQLUSMALLINT(idx+1))
	if err := check(dm, "SQLDescribeCol", h, ret, err); err != nil {
		return nil, err
	}
	b := &BaseColumn{
		name:     d.Name,
		SQLType:  d.DataType,
		Nullable: d.Nullable,
		Size:     d.Size,
	}
	ctype, variable := columnCType(dm, d.DataType)
	b.CType = ctype
	switch d.DataType {
	case api.SQL_LONGVARCHAR, api.SQL_WLONGVARCHAR, api.SQL_SS_XML, api.SQL_LONGVARBINARY:
		return &NonBindableColumn{b}, nil
	}
	if variable && (d.Size == 0 || d.Size > maxBindableWidth) {
		return &NonBindableColumn{b}, nil
	}
	buf, err := NewBuffer(dm.Types(), ctype, int(d.Size))
	if err != nil {
		return nil, err
	}
	return &BindableColumn{BaseColumn: b, Buffer: buf}, nil
}

// BaseColumn implements common column functionality.
type BaseColumn struct {
	name     string
	SQLType  api.SQLSMALLINT
	CType    api.SQLSMALLINT
	Nullable api.SQLSMALLINT
	Size     api.SQLULEN
}

func (c *BaseColumn) Name() string {
	return c.name
}

// Value converts a decoded buffer value into a driver.Value.
func (c *BaseColumn) Value(v interface{}) (driver.Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case int8:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint64:
		return int64(x), nil
	case float32:
		return float64(x), nil
	case float64, bool, []byte:
		return x, nil
	case uuid.UUID:
		return x.String(), nil
	case string:
		switch c.SQLType {
		case api.SQL_TYPE_TIMESTAMP, api.SQL_TYPE_DATE, api.SQL_TYPE_TIME, api.SQL_SS_TIME2:
			return parseTime(x)
		}
		if c.CType == api.SQL_C_CHAR {
			return []byte(x), nil
		}
		return x, nil
	}
	return nil, fmt.Errorf("unsupported column value %T", v)
}

// parseTime reads date, time and timestamp text in local time.
// Times of day are placed on 0001-01-01.
func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{"15:04:05.999999999", "15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.AddDate(1, 0, 0), nil
		}
	}
	return dateparse.ParseIn(s, time.Local)
}

// BindableColumn allows access to columns that can have their buffers
// bound. Once bound at start, they are written to by odbc driver every
// time it fetches new row. This saves on syscall and, perhaps, some
// buffer copying. BindableColumn can be left unbound, then it behaves
// like NonBindableColumn when user reads data from it.
type BindableColumn struct {
	*BaseColumn
	IsBound bool
	Buffer  Buffer
}

func (c *BindableColumn) Bind(dm *api.DriverManager, h api.SQLHSTMT, idx int) (bool, error) {
	ret, err := dm.SQLBindCol(h, api.SQLUSMALLINT(idx+1), c.CType,
		c.Buffer.Ptr(), api.SQLLEN(c.Buffer.Size()), c.Buffer.Indicator())
	if err := check(dm, "SQLBindCol", h, ret, err); err != nil {
		return false, err
	}
	c.IsBound = true
	return true, nil
}

func (c *BindableColumn) Value(dm *api.DriverManager, h api.SQLHSTMT, idx int) (driver.Value, error) {
	if !c.IsBound {
		ret, err := dm.SQLGetData(h, api.SQLUSMALLINT(idx+1), c.CType,
			c.Buffer.Ptr(), api.SQLLEN(c.Buffer.Size()), c.Buffer.Indicator())
		if err := check(dm, "SQLGetData", h, ret, err); err != nil {
			return nil, err
		}
	}
	return c.BaseColumn.Value(c.Buffer.Value())
}

// NonBindableColumn provide access to columns, that can't be bound.
// These are of character or binary type, and, usually, there is no
// limit for their width.
type NonBindableColumn struct {
	*BaseColumn
}

func (c *NonBindableColumn) Bind(dm *api.DriverManager, h api.SQLHSTMT, idx int) (bool, error) {
	return false, nil
}

func (c *NonBindableColumn) Value(dm *api.DriverManager, h api.SQLHSTMT, idx int) (driver.Value, error) {
	var l api.SQLLEN
	var total []byte
	b := make([]byte, 1024)
	types := dm.Types()
	getData := func() (api.SQLRETURN, error) {
		return dm.SQLGetData(h, api.SQLUSMALLINT(idx+1), c.CType,
			api.SQLPOINTER(unsafe.Pointer(&b[0])), api.SQLLEN(len(b)), &l)
	}
loop:
	for {
		ret, err := getData()
		if err != nil {
			return nil, err
		}
		n := types.Len(l)
		switch ret {
		case api.SQL_SUCCESS:
			if n == api.SQL_NULL_DATA {
				return nil, nil
			}
			if int(n) > len(b) {
				return nil, fmt.Errorf("too much data returned: %d bytes returned, but buffer size is %d", n, cap(b))
			}
			total = append(total, b[:n]...)
			break loop
		case api.SQL_NO_DATA:
			break loop
		case api.SQL_SUCCESS_WITH_INFO:
			err := NewError(dm, "SQLGetData", h)
			var e *Error
			if errors.As(err, &e) && len(e.Diag) > 0 && e.Diag[0].State != "01004" {
				return nil, err
			}
			i := len(b)
			switch c.CType {
			case api.SQL_C_WCHAR:
				i -= 2 // remove wchar (2 bytes) null-termination character
			case api.SQL_C_CHAR:
				i-- // remove null-termination character
			}
			total = append(total, b[:i]...)
			if n != api.SQL_NO_TOTAL {
				// odbc gives us a hint about remaining data,
				// lets get it in one go.
				m := int(n) // total bytes for our data
				m -= i      // subtract already received
				m += 2      // room for biggest (wchar) null-terminator
				if len(b) < m {
					b = make([]byte, m)
				}
			}
		default:
			return nil, NewError(dm, "SQLGetData", h)
		}
	}
	switch c.CType {
	case api.SQL_C_WCHAR:
		s := unsafe.Slice((*uint16)(unsafe.Pointer(unsafe.SliceData(total))), len(total)/2)
		return c.BaseColumn.Value(api.UTF16ToString(s))
	case api.SQL_C_CHAR:
		return c.BaseColumn.Value(string(total))
	}
	return c.BaseColumn.Value(total)
}
