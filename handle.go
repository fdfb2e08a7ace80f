// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"errors"
	"fmt"

	"github.com/dlodbc/odbc/api"
)

func ToHandleAndType(handle interface{}) (h api.SQLHANDLE, ht api.SQLSMALLINT, err error) {
	switch v := handle.(type) {
	case api.SQLHENV:
		if v == api.SQLHENV(api.SQL_NULL_HANDLE) {
			ht = 0
		} else {
			ht = api.SQL_HANDLE_ENV
		}
		h = api.SQLHANDLE(v)
	case api.SQLHDBC:
		ht = api.SQL_HANDLE_DBC
		h = api.SQLHANDLE(v)
	case api.SQLHSTMT:
		ht = api.SQL_HANDLE_STMT
		h = api.SQLHANDLE(v)
	case api.SQLHDESC:
		ht = api.SQL_HANDLE_DESC
		h = api.SQLHANDLE(v)
	default:
		err = fmt.Errorf("unexpected handle type %T", v)
	}
	return h, ht, err
}

// allocHandle allocates a handle of type ht under parent and counts
// it. Driver managers without SQLAllocHandle are asked with the
// ODBC 2 SQLAllocEnv, SQLAllocConnect and SQLAllocStmt instead.
func allocHandle(dm *api.DriverManager, ht api.SQLSMALLINT, parent interface{}) (api.SQLHANDLE, error) {
	in, _, err := ToHandleAndType(parent)
	if err != nil {
		return 0, err
	}
	var out api.SQLHANDLE
	apiName := "SQLAllocHandle"
	ret, err := dm.SQLAllocHandle(ht, in, &out)
	if errors.Is(err, api.ErrNotImplemented) {
		dm.Logger().Debug("SQLAllocHandle not implemented, using ODBC 2 allocation", "type", ht)
		switch ht {
		case api.SQL_HANDLE_ENV:
			apiName = "SQLAllocEnv"
			ret, err = dm.SQLAllocEnv((*api.SQLHENV)(&out))
		case api.SQL_HANDLE_DBC:
			apiName = "SQLAllocConnect"
			ret, err = dm.SQLAllocConnect(api.SQLHENV(in), (*api.SQLHDBC)(&out))
		case api.SQL_HANDLE_STMT:
			apiName = "SQLAllocStmt"
			ret, err = dm.SQLAllocStmt(api.SQLHDBC(in), (*api.SQLHSTMT)(&out))
		}
	}
	if err != nil {
		return 0, err
	}
	if IsError(ret) {
		if ht == api.SQL_HANDLE_ENV {
			return 0, fmt.Errorf("%s failed: ret=%d", apiName, ret)
		}
		return 0, NewError(dm, apiName, parent)
	}
	drv.Stats.updateHandleCount(ht, 1)
	return out, nil
}

// releaseHandle frees handle and uncounts it, falling back to the
// ODBC 2 free functions when SQLFreeHandle is not exported.
func releaseHandle(dm *api.DriverManager, handle interface{}) error {
	h, ht, err := ToHandleAndType(handle)
	if err != nil {
		return err
	}
	apiName := "SQLFreeHandle"
	var ret api.SQLRETURN
	if ep, _ := dm.EntryPoint(apiName); ep.Bound() {
		ret, err = dm.SQLFreeHandle(ht, h)
	} else {
		switch ht {
		case api.SQL_HANDLE_ENV:
			apiName = "SQLFreeEnv"
			ret, err = dm.SQLFreeEnv(api.SQLHENV(h))
		case api.SQL_HANDLE_DBC:
			apiName = "SQLFreeConnect"
			ret, err = dm.SQLFreeConnect(api.SQLHDBC(h))
		case api.SQL_HANDLE_STMT:
			apiName = "SQLFreeStmt"
			ret, err = dm.SQLFreeStmt(api.SQLHSTMT(h), api.SQL_DROP)
		default:
			ret, err = dm.SQLFreeHandle(ht, h)
		}
	}
	if err != nil {
		return err
	}
	if ret == api.SQL_INVALID_HANDLE {
		return fmt.Errorf("%s(%d, %d) returns SQL_INVALID_HANDLE", apiName, ht, h)
	}
	if IsError(ret) {
		return NewError(dm, apiName, handle)
	}
	drv.Stats.updateHandleCount(ht, -1)
	return nil
}
