// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"time"
	"unsafe"

	"github.com/google/uuid"
)

type (
	SQL_DATE_STRUCT struct {
		Year  SQLSMALLINT
		Month SQLUSMALLINT
		Day   SQLUSMALLINT
	}

	SQL_TIME_STRUCT struct {
		Hour   SQLUSMALLINT
		Minute SQLUSMALLINT
		Second SQLUSMALLINT
	}

	SQL_SS_TIME2_STRUCT struct {
		Hour     SQLUSMALLINT
		Minute   SQLUSMALLINT
		Second   SQLUSMALLINT
		Fraction SQLUINTEGER
	}

	SQL_TIMESTAMP_STRUCT struct {
		Year     SQLSMALLINT
		Month    SQLUSMALLINT
		Day      SQLUSMALLINT
		Hour     SQLUSMALLINT
		Minute   SQLUSMALLINT
		Second   SQLUSMALLINT
		Fraction SQLUINTEGER
	}

	SQL_NUMERIC_STRUCT struct {
		Precision SQLCHAR
		Scale     SQLSCHAR
		Sign      SQLCHAR // 1 if positive, 0 if negative
		Val       [SQL_MAX_NUMERIC_LEN]SQLCHAR
	}

	SQLGUID struct {
		Data1 uint32
		Data2 uint16
		Data3 uint16
		Data4 [8]byte
	}

	SQL_YEAR_MONTH_STRUCT struct {
		Year  SQLUINTEGER
		Month SQLUINTEGER
	}

	SQL_DAY_SECOND_STRUCT struct {
		Day      SQLUINTEGER
		Hour     SQLUINTEGER
		Minute   SQLUINTEGER
		Second   SQLUINTEGER
		Fraction SQLUINTEGER
	}

	// SQL_INTERVAL_STRUCT holds either a SQL_YEAR_MONTH_STRUCT or
	// a SQL_DAY_SECOND_STRUCT in Intval, depending on IntervalType.
	SQL_INTERVAL_STRUCT struct {
		IntervalType SQLINTERVAL
		IntervalSign SQLSMALLINT
		Intval       [5]SQLUINTEGER
	}
)

// YearMonth returns the year-month member of the interval union.
func (s *SQL_INTERVAL_STRUCT) YearMonth() *SQL_YEAR_MONTH_STRUCT {
	return (*SQL_YEAR_MONTH_STRUCT)(unsafe.Pointer(&s.Intval[0]))
}

// DaySecond returns the day-second member of the interval union.
func (s *SQL_INTERVAL_STRUCT) DaySecond() *SQL_DAY_SECOND_STRUCT {
	return (*SQL_DAY_SECOND_STRUCT)(unsafe.Pointer(&s.Intval[0]))
}

// IsYearMonth reports whether IntervalType selects the year-month member.
func (s *SQL_INTERVAL_STRUCT) IsYearMonth() bool {
	switch s.IntervalType {
	case SQL_IS_YEAR, SQL_IS_MONTH, SQL_IS_YEAR_TO_MONTH:
		return true
	}
	return false
}

// Duration converts a day-second interval to a time.Duration.
// Fraction is taken as nanoseconds.
func (s *SQL_INTERVAL_STRUCT) Duration() time.Duration {
	ds := s.DaySecond()
	d := time.Duration(ds.Day)*24*time.Hour +
		time.Duration(ds.Hour)*time.Hour +
		time.Duration(ds.Minute)*time.Minute +
		time.Duration(ds.Second)*time.Second +
		time.Duration(ds.Fraction)
	if s.IntervalSign == SQL_TRUE {
		d = -d
	}
	return d
}

// UUID returns g as a uuid.UUID. Data1, Data2 and Data3 are stored in
// host byte order by the driver manager, uuid.UUID is big endian.
func (g SQLGUID) UUID() uuid.UUID {
	var u uuid.UUID
	u[0], u[1], u[2], u[3] = byte(g.Data1>>24), byte(g.Data1>>16), byte(g.Data1>>8), byte(g.Data1)
	u[4], u[5] = byte(g.Data2>>8), byte(g.Data2)
	u[6], u[7] = byte(g.Data3>>8), byte(g.Data3)
	copy(u[8:], g.Data4[:])
	return u
}

func (g SQLGUID) String() string {
	return g.UUID().String()
}

// NewGUID converts u into the SQLGUID layout.
func NewGUID(u uuid.UUID) SQLGUID {
	g := SQLGUID{
		Data1: uint32(u[0])<<24 | uint32(u[1])<<16 | uint32(u[2])<<8 | uint32(u[3]),
		Data2: uint16(u[4])<<8 | uint16(u[5]),
		Data3: uint16(u[6])<<8 | uint16(u[7]),
	}
	copy(g.Data4[:], u[8:])
	return g
}

func (d SQL_DATE_STRUCT) Time(loc *time.Location) time.Time {
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, loc)
}

func (t SQL_TIME_STRUCT) Time(loc *time.Location) time.Time {
	return time.Date(1, time.January, 1, int(t.Hour), int(t.Minute), int(t.Second), 0, loc)
}

func (t SQL_SS_TIME2_STRUCT) Time(loc *time.Location) time.Time {
	return time.Date(1, time.January, 1, int(t.Hour), int(t.Minute), int(t.Second), int(t.Fraction), loc)
}

func (t SQL_TIMESTAMP_STRUCT) Time(loc *time.Location) time.Time {
	return time.Date(int(t.Year), time.Month(t.Month), int(t.Day),
		int(t.Hour), int(t.Minute), int(t.Second), int(t.Fraction), loc)
}

// NewTimestamp converts t into the SQL_TIMESTAMP_STRUCT layout.
// Fraction is in nanoseconds.
func NewTimestamp(t time.Time) SQL_TIMESTAMP_STRUCT {
	y, m, d := t.Date()
	return SQL_TIMESTAMP_STRUCT{
		Year:     SQLSMALLINT(y),
		Month:    SQLUSMALLINT(m),
		Day:      SQLUSMALLINT(d),
		Hour:     SQLUSMALLINT(t.Hour()),
		Minute:   SQLUSMALLINT(t.Minute()),
		Second:   SQLUSMALLINT(t.Second()),
		Fraction: SQLUINTEGER(t.Nanosecond()),
	}
}
