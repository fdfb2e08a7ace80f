// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

const (
	TRUE  = 1
	FALSE = 0

	// ODBC Specification
	ODBCVER = 0x0351

	// enumeration for DATETIME_INTERVAL_SUBCODE
	SQL_IS_YEAR             = 1
	SQL_IS_MONTH            = 2
	SQL_IS_DAY              = 3
	SQL_IS_HOUR             = 4
	SQL_IS_MINUTE           = 5
	SQL_IS_SECOND           = 6
	SQL_IS_YEAR_TO_MONTH    = 7
	SQL_IS_DAY_TO_HOUR      = 8
	SQL_IS_DAY_TO_MINUTE    = 9
	SQL_IS_DAY_TO_SECOND    = 10
	SQL_IS_HOUR_TO_MINUTE   = 11
	SQL_IS_HOUR_TO_SECOND   = 12
	SQL_IS_MINUTE_TO_SECOND = 13

	// Numeric Data Type
	SQL_MAX_NUMERIC_LEN = 16
)
