// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"math"
	"time"

	"github.com/dlodbc/odbc/api"
)

// Date returns the SQL date year-month-day.
func Date(year, month, day int) api.SQL_DATE_STRUCT {
	return api.SQL_DATE_STRUCT{
		Year:  api.SQLSMALLINT(year),
		Month: api.SQLUSMALLINT(month),
		Day:   api.SQLUSMALLINT(day),
	}
}

// Time returns the SQL time hour:minute:second.
func Time(hour, minute, second int) api.SQL_TIME_STRUCT {
	return api.SQL_TIME_STRUCT{
		Hour:   api.SQLUSMALLINT(hour),
		Minute: api.SQLUSMALLINT(minute),
		Second: api.SQLUSMALLINT(second),
	}
}

// Timestamp returns the SQL timestamp; nsec is the fraction in
// nanoseconds.
func Timestamp(year, month, day, hour, minute, second, nsec int) api.SQL_TIMESTAMP_STRUCT {
	return api.SQL_TIMESTAMP_STRUCT{
		Year:     api.SQLSMALLINT(year),
		Month:    api.SQLUSMALLINT(month),
		Day:      api.SQLUSMALLINT(day),
		Hour:     api.SQLUSMALLINT(hour),
		Minute:   api.SQLUSMALLINT(minute),
		Second:   api.SQLUSMALLINT(second),
		Fraction: api.SQLUINTEGER(nsec),
	}
}

// ticks converts seconds since the Unix epoch to local time, like the
// C library localtime. Whole seconds are split off first; nanoseconds
// since the epoch do not fit a float64 mantissa.
func ticks(sec float64) time.Time {
	s, f := math.Modf(sec)
	return time.Unix(int64(s), int64(math.Round(f*1e9))).Local()
}

// DateFromTicks returns the local date of sec seconds since the epoch.
func DateFromTicks(sec float64) api.SQL_DATE_STRUCT {
	t := ticks(sec)
	return Date(t.Year(), int(t.Month()), t.Day())
}

// TimeFromTicks returns the local time of day of sec seconds since the
// epoch, without the fraction.
func TimeFromTicks(sec float64) api.SQL_TIME_STRUCT {
	t := ticks(sec)
	return Time(t.Hour(), t.Minute(), t.Second())
}

// TimestampFromTicks returns the local timestamp of sec seconds since
// the epoch.
func TimestampFromTicks(sec float64) api.SQL_TIMESTAMP_STRUCT {
	return api.NewTimestamp(ticks(sec))
}
