// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlodbc/odbc/api"
)

func TestBufferRoundTrip(t *testing.T) {
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	var tests = []struct {
		ctype api.SQLSMALLINT
		in    interface{}
		want  interface{}
	}{
		{api.SQL_C_SHORT, -12, int16(-12)},
		{api.SQL_C_SSHORT, int64(300), int16(300)},
		{api.SQL_C_USHORT, 65535, uint16(65535)},
		{api.SQL_C_LONG, "1337", int32(1337)},
		{api.SQL_C_SLONG, int32(math.MinInt32), int32(math.MinInt32)},
		{api.SQL_C_ULONG, uint32(math.MaxUint32), uint32(math.MaxUint32)},
		{api.SQL_C_FLOAT, 1.5, float32(1.5)},
		{api.SQL_C_DOUBLE, float32(0.25), 0.25},
		{api.SQL_C_DOUBLE, "2.5", 2.5},
		{api.SQL_C_TINYINT, 255, uint8(255)},
		{api.SQL_C_UTINYINT, true, uint8(1)},
		{api.SQL_C_STINYINT, -128, int8(-128)},
		{api.SQL_C_SBIGINT, int64(math.MinInt64), int64(math.MinInt64)},
		{api.SQL_C_UBIGINT, uint64(math.MaxUint64), uint64(math.MaxUint64)},
		{api.SQL_C_BIT, true, true},
		{api.SQL_C_BIT, 0, false},
		{api.SQL_C_GUID, u, u},
		{api.SQL_C_GUID, u.String(), u},
		{api.SQL_C_CHAR, "hello", "hello"},
		{api.SQL_C_CHAR, 42, "42"},
		{api.SQL_C_CHAR, false, "0"},
		{api.SQL_C_WCHAR, "привет", "привет"},
		{api.SQL_C_BINARY, []byte{0, 1, 2, 0}, []byte{0, 1, 2, 0}},
		{api.SQL_C_TYPE_TIMESTAMP, time.Date(2024, 2, 29, 13, 14, 15, 500000000, time.UTC), "2024-02-29 13:14:15.5"},
		{api.SQL_C_TYPE_DATE, api.SQL_DATE_STRUCT{Year: 2024, Month: 1, Day: 2}, "2024-01-02"},
	}
	for _, test := range tests {
		b, err := NewBuffer(api.TypeTable{}, test.ctype, 10)
		require.NoError(t, err, "C type %d", test.ctype)
		assert.Equal(t, test.ctype, b.CType())
		require.NoError(t, b.SetValue(test.in), "C type %d, value %v", test.ctype, test.in)
		assert.Equal(t, test.want, b.Value(), "C type %d, value %v", test.ctype, test.in)
	}
}

func TestBufferNull(t *testing.T) {
	for _, ctype := range []api.SQLSMALLINT{
		api.SQL_C_LONG, api.SQL_C_DOUBLE, api.SQL_C_BIT, api.SQL_C_GUID,
		api.SQL_C_CHAR, api.SQL_C_WCHAR, api.SQL_C_BINARY,
	} {
		b, err := NewBuffer(api.TypeTable{}, ctype, 10)
		require.NoError(t, err)
		require.NoError(t, b.SetValue(nil))
		assert.Equal(t, api.SQLLEN(api.SQL_NULL_DATA), *b.Indicator())
		assert.Nil(t, b.Value(), "C type %d", ctype)
	}
}

func TestBufferLegacyIndicator(t *testing.T) {
	legacy := api.NewTypeTable(api.Config{SizeOfLong: 8, Legacy: true})
	b, err := NewBuffer(legacy, api.SQL_C_LONG, 0)
	require.NoError(t, err)

	// a 4 byte SQL_NULL_DATA leaves the high half of the cell alone
	*b.Indicator() = api.SQLLEN(uint32(0xffffffff))
	assert.Nil(t, b.Value())

	wide, err := NewBuffer(api.NewTypeTable(api.Config{SizeOfLong: 8}), api.SQL_C_LONG, 0)
	require.NoError(t, err)
	*wide.Indicator() = api.SQLLEN(uint32(0xffffffff))
	assert.NotNil(t, wide.Value())
}

func TestBufferStringSizes(t *testing.T) {
	var tests = []struct {
		ctype api.SQLSMALLINT
		size  int
		want  int
	}{
		{api.SQL_C_CHAR, 0, minStringBuffer},
		{api.SQL_C_CHAR, 10, minStringBuffer},
		{api.SQL_C_CHAR, 100, 101},
		{api.SQL_C_CHAR, -1, maxStringBuffer},
		{api.SQL_C_CHAR, 1 << 30, maxStringBuffer},
		{api.SQL_C_WCHAR, 100, 202},
		{api.SQL_C_BINARY, 0, minStringBuffer},
	}
	for _, test := range tests {
		b, err := NewBuffer(api.TypeTable{}, test.ctype, test.size)
		require.NoError(t, err)
		assert.Equal(t, test.want, b.Size(), "C type %d, size %d", test.ctype, test.size)
	}
}

func TestBufferTruncatedValue(t *testing.T) {
	b, err := NewBuffer(api.TypeTable{}, api.SQL_C_CHAR, 0)
	require.NoError(t, err)
	copy(b.(*stringBuffer).buf, strings.Repeat("x", minStringBuffer-1))
	*b.Indicator() = 100
	assert.Equal(t, strings.Repeat("x", minStringBuffer-1), b.Value())

	*b.Indicator() = api.SQL_NO_TOTAL
	assert.Len(t, b.Value(), minStringBuffer-1)
}

func TestBufferErrors(t *testing.T) {
	var tests = []struct {
		ctype api.SQLSMALLINT
		in    interface{}
	}{
		{api.SQL_C_SHORT, 40000},
		{api.SQL_C_USHORT, -1},
		{api.SQL_C_LONG, int64(math.MaxInt32) + 1},
		{api.SQL_C_LONG, 1.5},
		{api.SQL_C_LONG, "twelve"},
		{api.SQL_C_LONG, []byte("1")},
		{api.SQL_C_TINYINT, 256},
		{api.SQL_C_SBIGINT, uint64(math.MaxUint64)},
		{api.SQL_C_BIT, 2},
		{api.SQL_C_GUID, "not-a-uuid"},
		{api.SQL_C_GUID, 12},
		{api.SQL_C_CHAR, strings.Repeat("x", minStringBuffer)},
	}
	for _, test := range tests {
		b, err := NewBuffer(api.TypeTable{}, test.ctype, 0)
		require.NoError(t, err)
		assert.ErrorIs(t, b.SetValue(test.in), ErrProgramming, "C type %d, value %v", test.ctype, test.in)
	}

	_, err := NewBuffer(api.TypeTable{}, api.SQL_C_INTERVAL_DAY, 0)
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestBufferBinaryIsNotTerminated(t *testing.T) {
	b, err := NewBuffer(api.TypeTable{}, api.SQL_C_BINARY, 0)
	require.NoError(t, err)
	data := []byte(strings.Repeat("b", minStringBuffer))
	require.NoError(t, b.SetValue(data))
	assert.Equal(t, data, b.Value())
	assert.Equal(t, api.SQLLEN(minStringBuffer), *b.Indicator())
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "12:30:00", stringify(api.SQL_TIME_STRUCT{Hour: 12, Minute: 30}))
	assert.Equal(t, "2001-02-03 04:05:06", stringify(api.SQL_TIMESTAMP_STRUCT{Year: 2001, Month: 2, Day: 3, Hour: 4, Minute: 5, Second: 6}))
	assert.Equal(t, "1e+21", stringify(1e21))
	assert.Equal(t, "0.1", stringify(float32(0.1)))
	assert.Equal(t, "3s", stringify(3*time.Second))
	assert.Equal(t, "7", stringify(uint8(7)))
}
