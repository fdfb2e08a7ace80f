// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dlodbc/odbc/api"
)

type Parameter struct {
	SQLType     api.SQLSMALLINT
	Decimal     api.SQLSMALLINT
	Size        api.SQLULEN
	Buffer      Buffer // keeps bound data alive until the next bind
	isDescribed bool
}

func (p *Parameter) BindValue(dm *api.DriverManager, h api.SQLHSTMT, idx int, v driver.Value, conn *Conn) error {
	var ctype, sqltype, decimal api.SQLSMALLINT
	var size api.SQLULEN
	bufSize := 0
	switch d := v.(type) {
	case nil:
		ctype = api.SQL_C_BIT
		sqltype = api.SQL_BIT
		size = 1
	case string:
		ctype = dm.SQL_C_TCHAR()
		if ctype == api.SQL_C_WCHAR {
			bufSize = len(api.StringToUTF16(d)) - 1 // remove terminating 0
			sqltype = api.SQL_WCHAR
		} else {
			bufSize = len(d)
			sqltype = api.SQL_CHAR
		}
		size = api.SQLULEN(bufSize)
	case int64:
		ctype = api.SQL_C_SBIGINT
		sqltype = api.SQL_BIGINT
	case bool:
		ctype = api.SQL_C_BIT
		sqltype = api.SQL_BIT
	case float64:
		ctype = api.SQL_C_DOUBLE
		sqltype = api.SQL_DOUBLE
	case time.Time:
		// sent as text, the driver converts it
		ctype = api.SQL_C_CHAR
		sqltype = api.SQL_TYPE_TIMESTAMP
		if conn != nil && conn.isMSAccessDriver {
			// Access rejects fractional seconds
			v = d.Format("2006-01-02 15:04:05")
			size = 19
		} else {
			v = d.Format("2006-01-02 15:04:05.000")
			size = 23 // 20 + s (the number of characters in the yyyy-mm-dd hh:mm:ss[.fff...] format, where s is the seconds precision).
			decimal = 3
		}
		bufSize = int(size)
	case []byte:
		ctype = api.SQL_C_BINARY
		sqltype = api.SQL_BINARY
		bufSize = len(d)
		size = api.SQLULEN(len(d))
	case uuid.UUID:
		ctype = api.SQL_C_GUID
		sqltype = api.SQL_GUID
		size = 16
	default:
		return fmt.Errorf("%w: unsupported parameter type %T", ErrProgramming, v)
	}
	if p.isDescribed {
		sqltype = p.SQLType
		decimal = p.Decimal
		size = p.Size
	}
	buf, err := NewBuffer(dm.Types(), ctype, bufSize)
	if err != nil {
		return err
	}
	if err := buf.SetValue(v); err != nil {
		return err
	}
	p.Buffer = buf
	buflen := api.SQLLEN(0)
	switch ctype {
	case api.SQL_C_CHAR, api.SQL_C_WCHAR, api.SQL_C_BINARY:
		buflen = *buf.Indicator()
	}
	ret, err := dm.SQLBindParameter(h, api.SQLUSMALLINT(idx+1),
		api.SQL_PARAM_INPUT, ctype, sqltype, size, decimal,
		buf.Ptr(), buflen, buf.Indicator())
	return check(dm, "SQLBindParameter", h, ret, err)
}

// ExtractParameters counts the parameters of prepared statement h and
// describes them when the driver manager can. Undescribed parameters
// get their types from the bound values.
func ExtractParameters(dm *api.DriverManager, h api.SQLHSTMT) ([]Parameter, error) {
	// count parameters
	var n, nullable api.SQLSMALLINT
	ret, err := dm.SQLNumParams(h, &n)
	if err := check(dm, "SQLNumParams", h, ret, err); err != nil {
		return nil, err
	}
	if n <= 0 {
		// no parameters
		return nil, nil
	}
	ps := make([]Parameter, n)
	// fetch param descriptions
	for i := range ps {
		p := &ps[i]
		var size api.SQLULEN
		ret, err := dm.SQLDescribeParam(h, api.SQLUSMALLINT(i+1),
			&p.SQLType, &size, &p.Decimal, &nullable)
		if errors.Is(err, api.ErrNotImplemented) || (err == nil && IsError(ret)) {
			// SQLDescribeParam is not implemented by freetds and others
			dm.Logger().Debug("parameters not described", "param", i+1, "error", err)
			for j := range ps {
				ps[j] = Parameter{}
			}
			return ps, nil
		}
		if err != nil {
			return nil, err
		}
		p.Size = dm.Types().ULen(size)
		p.isDescribed = true
	}
	return ps, nil
}
