// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

const (
	// SQL datatypes - Unicode
	SQL_WCHAR        = -8
	SQL_WVARCHAR     = -9
	SQL_WLONGVARCHAR = -10
	SQL_C_WCHAR      = SQL_WCHAR

	// SQLTablesW
	SQL_ALL_CATALOGSW    = "%"
	SQL_ALL_SCHEMASW     = "%"
	SQL_ALL_TABLE_TYPESW = "%"

	// SQL_SQLSTATE_SIZEW
	SQL_SQLSTATE_SIZEW = 10
)
