// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlodbc/odbc/api"
)

func TestDateTimeConstructors(t *testing.T) {
	assert.Equal(t, api.SQL_DATE_STRUCT{Year: 1999, Month: 12, Day: 31}, Date(1999, 12, 31))
	assert.Equal(t, api.SQL_TIME_STRUCT{Hour: 23, Minute: 59, Second: 58}, Time(23, 59, 58))
	ts := Timestamp(2000, 1, 2, 3, 4, 5, 6000)
	assert.Equal(t, time.Date(2000, 1, 2, 3, 4, 5, 6000, time.UTC), ts.Time(time.UTC))
}

func TestFromTicks(t *testing.T) {
	sec := 1700000000.25
	local := time.Unix(1700000000, 250000000).Local()

	d := DateFromTicks(sec)
	assert.Equal(t, Date(local.Year(), int(local.Month()), local.Day()), d)
	tm := TimeFromTicks(sec)
	assert.Equal(t, Time(local.Hour(), local.Minute(), local.Second()), tm)
	ts := TimestampFromTicks(sec)
	assert.True(t, local.Equal(ts.Time(time.Local)), "got %v", ts)
	assert.Equal(t, api.SQLUINTEGER(250000000), ts.Fraction)
}

func TestFromTicksKeepsFraction(t *testing.T) {
	for _, test := range []struct {
		sec  float64
		want time.Time
	}{
		{1700000000.5, time.Unix(1700000000, 500000000)},
		{1700000000.125, time.Unix(1700000000, 125000000)},
		{0, time.Unix(0, 0)},
		{-1.25, time.Unix(-2, 750000000)},
	} {
		ts := TimestampFromTicks(test.sec)
		got := ts.Time(time.Local)
		assert.True(t, test.want.Equal(got), "%v: got %v", test.sec, got)
	}
}

func TestDateTimeParameters(t *testing.T) {
	lib, env := newTestEnv(t)
	cur := newTestCursor(t, env)
	require.NoError(t, cur.Execute("SELECT ?, ?, ?",
		Date(2024, 2, 29), Time(8, 0, 1), Timestamp(2024, 2, 29, 8, 0, 1, 0)))
	assert.Equal(t, []interface{}{"2024-02-29", "08:00:01", "2024-02-29 08:00:01"}, lib.Executed()[0].Args)
}
