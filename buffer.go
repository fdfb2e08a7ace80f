// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"fmt"
	"math"
	"strconv"
	"time"
	"unicode/utf16"
	"unsafe"

	"github.com/google/uuid"

	"github.com/dlodbc/odbc/api"
)

const (
	// minStringBuffer is the smallest character buffer allocated,
	// drivers report size 0 for unbounded text columns.
	minStringBuffer = 64

	// maxStringBuffer caps the character buffer of huge columns.
	// Longer values are truncated and reported in Cursor.Messages.
	maxStringBuffer = 1 << 20
)

// Buffer is a native cell bound to a parameter or result column,
// paired with its length/indicator cell. The driver reads and writes
// both through the addresses returned by Ptr and Indicator, so a
// Buffer must stay reachable while it is bound.
type Buffer interface {
	// CType is the C type code the cell holds.
	CType() api.SQLSMALLINT

	// Size is the capacity of the cell in bytes.
	Size() int

	Ptr() api.SQLPOINTER
	Indicator() *api.SQLLEN

	// SetValue encodes v into the cell. nil stores SQL_NULL_DATA.
	SetValue(v interface{}) error

	// Value decodes the cell, or returns nil for SQL_NULL_DATA.
	Value() interface{}
}

// NewBuffer allocates the buffer for C type ctype. size is the column
// or parameter size reported by the driver; it only matters for
// character and binary types. types normalizes indicators written by
// legacy driver managers; its zero value leaves them alone.
func NewBuffer(types api.TypeTable, ctype api.SQLSMALLINT, size int) (Buffer, error) {
	ind := indicator{types: types, ctype: ctype}
	switch ctype {
	case api.SQL_C_SHORT, api.SQL_C_SSHORT:
		return &fixedBuffer[int16]{indicator: ind}, nil
	case api.SQL_C_USHORT:
		return &fixedBuffer[uint16]{indicator: ind}, nil
	case api.SQL_C_LONG, api.SQL_C_SLONG:
		return &fixedBuffer[int32]{indicator: ind}, nil
	case api.SQL_C_ULONG:
		return &fixedBuffer[uint32]{indicator: ind}, nil
	case api.SQL_C_FLOAT:
		return &fixedBuffer[float32]{indicator: ind}, nil
	case api.SQL_C_DOUBLE:
		return &fixedBuffer[float64]{indicator: ind}, nil
	case api.SQL_C_TINYINT, api.SQL_C_UTINYINT:
		return &fixedBuffer[uint8]{indicator: ind}, nil
	case api.SQL_C_STINYINT:
		return &fixedBuffer[int8]{indicator: ind}, nil
	case api.SQL_C_SBIGINT:
		return &fixedBuffer[int64]{indicator: ind}, nil
	case api.SQL_C_UBIGINT:
		return &fixedBuffer[uint64]{indicator: ind}, nil
	case api.SQL_C_BIT:
		return &bitBuffer{indicator: ind}, nil
	case api.SQL_C_GUID:
		return &guidBuffer{indicator: ind}, nil
	case api.SQL_C_CHAR, api.SQL_C_WCHAR, api.SQL_C_BINARY, api.SQL_C_NUMERIC,
		api.SQL_C_DATE, api.SQL_C_TIME, api.SQL_C_TIMESTAMP,
		api.SQL_C_TYPE_DATE, api.SQL_C_TYPE_TIME, api.SQL_C_TYPE_TIMESTAMP:
		return newStringBuffer(ind, size), nil
	}
	return nil, fmt.Errorf("%w: no buffer for C type %d", ErrNotSupported, ctype)
}

type indicator struct {
	types api.TypeTable
	ctype api.SQLSMALLINT
	ind   api.SQLLEN
}

func (i *indicator) CType() api.SQLSMALLINT { return i.ctype }

func (i *indicator) Indicator() *api.SQLLEN { return &i.ind }

func (i *indicator) length() api.SQLLEN { return i.types.Len(i.ind) }

func (i *indicator) isNull() bool { return i.length() == api.SQL_NULL_DATA }

func (i *indicator) setNull() { i.ind = api.SQL_NULL_DATA }

type number interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// fixedBuffer holds one fixed width numeric value.
type fixedBuffer[T number] struct {
	indicator
	v T
}

func (b *fixedBuffer[T]) Size() int { return int(unsafe.Sizeof(b.v)) }

func (b *fixedBuffer[T]) Ptr() api.SQLPOINTER { return api.SQLPOINTER(unsafe.Pointer(&b.v)) }

func (b *fixedBuffer[T]) SetValue(v interface{}) error {
	if v == nil {
		b.setNull()
		return nil
	}
	x, err := toNumber[T](v)
	if err != nil {
		return err
	}
	b.v = x
	b.ind = api.SQLLEN(b.Size())
	return nil
}

func (b *fixedBuffer[T]) Value() interface{} {
	if b.isNull() {
		return nil
	}
	return b.v
}

func isFloat[T number]() bool {
	half := 0.5
	return T(half) != 0
}

func fromInt[T number](i int64) (T, bool) {
	t := T(i)
	if isFloat[T]() {
		return t, true
	}
	return t, int64(t) == i && (t < 0) == (i < 0)
}

func fromUint[T number](u uint64) (T, bool) {
	t := T(u)
	if isFloat[T]() {
		return t, true
	}
	return t, uint64(t) == u && t >= 0
}

func fromFloat[T number](f float64) (T, bool) {
	if isFloat[T]() {
		t := T(f)
		return t, !math.IsInf(float64(t), 0) || math.IsInf(f, 0)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxUint64 {
		return 0, false
	}
	if f < 0 {
		return fromInt[T](int64(f))
	}
	return fromUint[T](uint64(f))
}

// toNumber converts a Go integer, float, bool or numeric string to T.
func toNumber[T number](v interface{}) (T, error) {
	var (
		t  T
		ok bool
	)
	switch x := v.(type) {
	case int:
		t, ok = fromInt[T](int64(x))
	case int8:
		t, ok = fromInt[T](int64(x))
	case int16:
		t, ok = fromInt[T](int64(x))
	case int32:
		t, ok = fromInt[T](int64(x))
	case int64:
		t, ok = fromInt[T](x)
	case uint:
		t, ok = fromUint[T](uint64(x))
	case uint8:
		t, ok = fromUint[T](uint64(x))
	case uint16:
		t, ok = fromUint[T](uint64(x))
	case uint32:
		t, ok = fromUint[T](uint64(x))
	case uint64:
		t, ok = fromUint[T](x)
	case float32:
		t, ok = fromFloat[T](float64(x))
	case float64:
		t, ok = fromFloat[T](x)
	case bool:
		if x {
			t = 1
		}
		ok = true
	case string:
		if i, err := strconv.ParseInt(x, 10, 64); err == nil {
			t, ok = fromInt[T](i)
		} else if u, err := strconv.ParseUint(x, 10, 64); err == nil {
			t, ok = fromUint[T](u)
		} else if f, err := strconv.ParseFloat(x, 64); err == nil {
			t, ok = fromFloat[T](f)
		} else {
			return t, fmt.Errorf("%w: %q is not a number", ErrProgramming, x)
		}
	default:
		return t, fmt.Errorf("%w: cannot store %T in a %T buffer", ErrProgramming, v, t)
	}
	if !ok {
		return t, fmt.Errorf("%w: %v does not fit a %T buffer", ErrProgramming, v, t)
	}
	return t, nil
}

// bitBuffer holds an SQL_C_BIT byte.
type bitBuffer struct {
	indicator
	v uint8
}

func (b *bitBuffer) Size() int { return 1 }

func (b *bitBuffer) Ptr() api.SQLPOINTER { return api.SQLPOINTER(unsafe.Pointer(&b.v)) }

func (b *bitBuffer) SetValue(v interface{}) error {
	if v == nil {
		b.setNull()
		return nil
	}
	if x, ok := v.(bool); ok {
		b.v = 0
		if x {
			b.v = 1
		}
	} else {
		n, err := toNumber[uint8](v)
		if err != nil {
			return err
		}
		if n > 1 {
			return fmt.Errorf("%w: %v is not a bit", ErrProgramming, v)
		}
		b.v = n
	}
	b.ind = 1
	return nil
}

func (b *bitBuffer) Value() interface{} {
	if b.isNull() {
		return nil
	}
	return b.v != 0
}

// guidBuffer holds an SQLGUID.
type guidBuffer struct {
	indicator
	v api.SQLGUID
}

func (b *guidBuffer) Size() int { return int(unsafe.Sizeof(b.v)) }

func (b *guidBuffer) Ptr() api.SQLPOINTER { return api.SQLPOINTER(unsafe.Pointer(&b.v)) }

func (b *guidBuffer) SetValue(v interface{}) error {
	switch x := v.(type) {
	case nil:
		b.setNull()
		return nil
	case uuid.UUID:
		b.v = api.NewGUID(x)
	case api.SQLGUID:
		b.v = x
	case [16]byte:
		b.v = api.NewGUID(uuid.UUID(x))
	case string:
		u, err := uuid.Parse(x)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrProgramming, err)
		}
		b.v = api.NewGUID(u)
	default:
		return fmt.Errorf("%w: cannot store %T in a GUID buffer", ErrProgramming, v)
	}
	b.ind = api.SQLLEN(b.Size())
	return nil
}

func (b *guidBuffer) Value() interface{} {
	if b.isNull() {
		return nil
	}
	return b.v.UUID()
}

// stringBuffer holds character or binary data. SQL_C_WCHAR data is
// UTF-16, everything else bytes; text is NUL terminated.
type stringBuffer struct {
	indicator
	buf []byte
}

func newStringBuffer(ind indicator, size int) *stringBuffer {
	n := size + 1
	if size < 0 || n > maxStringBuffer {
		n = maxStringBuffer
	}
	if n < minStringBuffer {
		n = minStringBuffer
	}
	if ind.ctype == api.SQL_C_WCHAR {
		n *= 2
	}
	return &stringBuffer{indicator: ind, buf: make([]byte, n)}
}

func (b *stringBuffer) Size() int { return len(b.buf) }

func (b *stringBuffer) Ptr() api.SQLPOINTER { return api.SQLPOINTER(unsafe.Pointer(&b.buf[0])) }

// terminator is the size of the NUL character ending text data.
func (b *stringBuffer) terminator() int {
	switch b.ctype {
	case api.SQL_C_BINARY:
		return 0
	case api.SQL_C_WCHAR:
		return 2
	}
	return 1
}

func (b *stringBuffer) SetValue(v interface{}) error {
	if v == nil {
		b.setNull()
		return nil
	}
	var data []byte
	if x, ok := v.([]byte); ok {
		data = x
	} else {
		data = []byte(stringify(v))
	}
	if b.ctype == api.SQL_C_WCHAR {
		w := utf16.Encode([]rune(string(data)))
		data = unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(w))), 2*len(w))
	}
	if len(data)+b.terminator() > len(b.buf) {
		return fmt.Errorf("%w: value of %d bytes does not fit a %d byte buffer", ErrProgramming, len(data), len(b.buf))
	}
	n := copy(b.buf, data)
	for i := 0; i < b.terminator(); i++ {
		b.buf[n+i] = 0
	}
	b.ind = api.SQLLEN(n)
	return nil
}

// truncated reports whether the driver had more data than fit.
func (b *stringBuffer) truncated() bool {
	n := b.length()
	return n == api.SQL_NO_TOTAL || int(n) > len(b.buf)-b.terminator()
}

func (b *stringBuffer) Value() interface{} {
	if b.isNull() {
		return nil
	}
	n := int(b.length())
	if b.truncated() || n < 0 {
		n = len(b.buf) - b.terminator()
	}
	data := b.buf[:n]
	switch b.ctype {
	case api.SQL_C_BINARY:
		return append([]byte(nil), data...)
	case api.SQL_C_WCHAR:
		w := unsafe.Slice((*uint16)(unsafe.Pointer(unsafe.SliceData(data))), len(data)/2)
		return api.UTF16ToString(w)
	}
	return api.BytesToString(data)
}

// stringify renders v as the text sent for it in a character buffer.
func stringify(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return "0"
	case time.Time:
		return x.Format("2006-01-02 15:04:05.999999999")
	case api.SQL_DATE_STRUCT:
		return fmt.Sprintf("%04d-%02d-%02d", x.Year, x.Month, x.Day)
	case api.SQL_TIME_STRUCT:
		return fmt.Sprintf("%02d:%02d:%02d", x.Hour, x.Minute, x.Second)
	case api.SQL_TIMESTAMP_STRUCT:
		return x.Time(time.UTC).Format("2006-01-02 15:04:05.999999999")
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
