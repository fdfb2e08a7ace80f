// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import "github.com/dlodbc/odbc/api"

// sqlTypeMap selects the C type a column or parameter of a given SQL
// type is exchanged as. Character, binary, exact numeric and datetime
// types travel as text and are converted by the driver.
var sqlTypeMap = map[api.SQLSMALLINT]api.SQLSMALLINT{
	api.SQL_DECIMAL:        api.SQL_C_LONG,
	api.SQL_INTEGER:        api.SQL_C_LONG,
	api.SQL_CHAR:           api.SQL_C_CHAR,
	api.SQL_VARCHAR:        api.SQL_C_CHAR,
	api.SQL_LONGVARCHAR:    api.SQL_C_CHAR,
	api.SQL_WCHAR:          api.SQL_C_CHAR,
	api.SQL_WVARCHAR:       api.SQL_C_CHAR,
	api.SQL_WLONGVARCHAR:   api.SQL_C_CHAR,
	api.SQL_BINARY:         api.SQL_C_CHAR,
	api.SQL_VARBINARY:      api.SQL_C_CHAR,
	api.SQL_LONGVARBINARY:  api.SQL_C_CHAR,
	api.SQL_BIGINT:         api.SQL_C_SBIGINT,
	api.SQL_TINYINT:        api.SQL_C_TINYINT,
	api.SQL_SMALLINT:       api.SQL_C_SHORT,
	api.SQL_BIT:            api.SQL_C_BIT,
	api.SQL_REAL:           api.SQL_C_FLOAT,
	api.SQL_DOUBLE:         api.SQL_C_DOUBLE,
	api.SQL_FLOAT:          api.SQL_C_DOUBLE,
	api.SQL_NUMERIC:        api.SQL_C_CHAR,
	api.SQL_TYPE_DATE:      api.SQL_C_CHAR,
	api.SQL_TYPE_TIME:      api.SQL_C_CHAR,
	api.SQL_TYPE_TIMESTAMP: api.SQL_C_CHAR,
}

// CTypeFor returns the C type used for SQL type sqlType.
// Unknown types are exchanged as text.
func CTypeFor(sqlType api.SQLSMALLINT) api.SQLSMALLINT {
	if c, ok := sqlTypeMap[sqlType]; ok {
		return c
	}
	return api.SQL_C_CHAR
}

// Client side parameter binding, used when the driver cannot describe
// parameters: every value is sent as text and converted by the driver.
const (
	clientParamSQLType = api.SQL_CHAR
	clientParamSize    = 512
)

var sqlTypeNames = map[api.SQLSMALLINT]string{
	api.SQL_CHAR:           "CHAR",
	api.SQL_VARCHAR:        "VARCHAR",
	api.SQL_LONGVARCHAR:    "LONGVARCHAR",
	api.SQL_WCHAR:          "WCHAR",
	api.SQL_WVARCHAR:       "WVARCHAR",
	api.SQL_WLONGVARCHAR:   "WLONGVARCHAR",
	api.SQL_DECIMAL:        "DECIMAL",
	api.SQL_NUMERIC:        "NUMERIC",
	api.SQL_SMALLINT:       "SMALLINT",
	api.SQL_INTEGER:        "INTEGER",
	api.SQL_REAL:           "REAL",
	api.SQL_FLOAT:          "FLOAT",
	api.SQL_DOUBLE:         "DOUBLE",
	api.SQL_BIT:            "BIT",
	api.SQL_TINYINT:        "TINYINT",
	api.SQL_BIGINT:         "BIGINT",
	api.SQL_BINARY:         "BINARY",
	api.SQL_VARBINARY:      "VARBINARY",
	api.SQL_LONGVARBINARY:  "LONGVARBINARY",
	api.SQL_TYPE_DATE:      "DATE",
	api.SQL_TYPE_TIME:      "TIME",
	api.SQL_TYPE_TIMESTAMP: "TIMESTAMP",
	api.SQL_GUID:           "GUID",
	api.SQL_SS_XML:         "XML",
	api.SQL_SS_TIME2:       "TIME2",
}

// SQLTypeName returns the name of SQL type t, or "" if unknown.
func SQLTypeName(t api.SQLSMALLINT) string {
	return sqlTypeNames[t]
}
