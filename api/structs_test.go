// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api_test

import (
	"testing"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dlodbc/odbc/api"
)

func TestStructLayout(t *testing.T) {
	var (
		date     api.SQL_DATE_STRUCT
		tm       api.SQL_TIME_STRUCT
		tm2      api.SQL_SS_TIME2_STRUCT
		ts       api.SQL_TIMESTAMP_STRUCT
		num      api.SQL_NUMERIC_STRUCT
		guid     api.SQLGUID
		ym       api.SQL_YEAR_MONTH_STRUCT
		ds       api.SQL_DAY_SECOND_STRUCT
		interval api.SQL_INTERVAL_STRUCT
	)
	assert.Equal(t, uintptr(6), unsafe.Sizeof(date))
	assert.Equal(t, uintptr(6), unsafe.Sizeof(tm))
	assert.Equal(t, uintptr(12), unsafe.Sizeof(tm2))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(tm2.Fraction))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(ts))
	assert.Equal(t, uintptr(12), unsafe.Offsetof(ts.Fraction))
	assert.Equal(t, uintptr(19), unsafe.Sizeof(num))
	assert.Equal(t, uintptr(3), unsafe.Offsetof(num.Val))
	assert.Len(t, num.Val, api.SQL_MAX_NUMERIC_LEN)
	assert.Equal(t, uintptr(16), unsafe.Sizeof(guid))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(guid.Data4))
	assert.Equal(t, uintptr(8), unsafe.Sizeof(ym))
	assert.Equal(t, uintptr(20), unsafe.Sizeof(ds))
	assert.Equal(t, uintptr(28), unsafe.Sizeof(interval))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(interval.Intval))
}

func TestIntervalUnion(t *testing.T) {
	var iv api.SQL_INTERVAL_STRUCT
	iv.IntervalType = api.SQL_IS_YEAR_TO_MONTH
	iv.YearMonth().Year = 3
	iv.YearMonth().Month = 4
	assert.True(t, iv.IsYearMonth())
	assert.Equal(t, api.SQLUINTEGER(3), iv.Intval[0])
	assert.Equal(t, api.SQLUINTEGER(4), iv.Intval[1])

	iv = api.SQL_INTERVAL_STRUCT{IntervalType: api.SQL_IS_DAY_TO_SECOND, IntervalSign: api.SQL_TRUE}
	ds := iv.DaySecond()
	ds.Day, ds.Hour, ds.Minute, ds.Second, ds.Fraction = 1, 2, 3, 4, 5
	assert.False(t, iv.IsYearMonth())
	assert.Equal(t, -(26*time.Hour + 3*time.Minute + 4*time.Second + 5), iv.Duration())
}

func TestGUID(t *testing.T) {
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	g := api.NewGUID(u)
	assert.Equal(t, uint32(0x6ba7b810), g.Data1)
	assert.Equal(t, uint16(0x9dad), g.Data2)
	assert.Equal(t, uint16(0x11d1), g.Data3)
	assert.Equal(t, [8]byte{0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}, g.Data4)
	assert.Equal(t, u, g.UUID())
	assert.Equal(t, u.String(), g.String())
}

func TestTimestamp(t *testing.T) {
	tm := time.Date(2024, time.February, 29, 13, 14, 15, 123456789, time.UTC)
	ts := api.NewTimestamp(tm)
	assert.Equal(t, api.SQL_TIMESTAMP_STRUCT{
		Year: 2024, Month: 2, Day: 29, Hour: 13, Minute: 14, Second: 15, Fraction: 123456789,
	}, ts)
	assert.True(t, tm.Equal(ts.Time(time.UTC)))

	d := api.SQL_DATE_STRUCT{Year: 1999, Month: 12, Day: 31}
	assert.Equal(t, time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC), d.Time(time.UTC))
	tt := api.SQL_TIME_STRUCT{Hour: 23, Minute: 59, Second: 58}
	assert.Equal(t, 23, tt.Time(time.UTC).Hour())
}
