// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbctest

import (
	"encoding/binary"
	"time"
	"unicode/utf16"
	"unsafe"

	"github.com/dlodbc/odbc/api"
)

// The functions below access memory the caller passed by address,
// the same way a native driver manager would.

func mem(p uintptr, n int) []byte {
	if p == 0 || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

func cstringAt(p uintptr, n int) string {
	if p == 0 {
		return ""
	}
	if n >= 0 {
		return string(mem(p, n))
	}
	var b []byte
	for i := 0; ; i++ {
		c := *(*byte)(unsafe.Pointer(p + uintptr(i)))
		if c == 0 {
			break
		}
		b = append(b, c)
	}
	return string(b)
}

func wstringAt(p uintptr, n int) string {
	if p == 0 {
		return ""
	}
	var s []uint16
	for i := 0; n < 0 || i < n; i++ {
		c := *(*uint16)(unsafe.Pointer(p + uintptr(2*i)))
		if n < 0 && c == 0 {
			break
		}
		s = append(s, c)
	}
	return string(utf16.Decode(s))
}

// putString writes s NUL terminated into the buffer of size bytes at
// p, truncating if needed, and returns the full length of s.
func putString(p uintptr, size int, s string) int {
	b := mem(p, size)
	if len(b) > 0 {
		n := copy(b[:len(b)-1], s)
		b[n] = 0
	}
	return len(s)
}

// putWString is putString for UTF-16; size and the result count
// characters.
func putWString(p uintptr, size int, s string) int {
	w := utf16.Encode([]rune(s))
	if p != 0 && size > 0 {
		b := unsafe.Slice((*uint16)(unsafe.Pointer(p)), size)
		n := copy(b[:size-1], w)
		b[n] = 0
	}
	return len(w)
}

func putInt16(p uintptr, v int16) {
	if p != 0 {
		*(*int16)(unsafe.Pointer(p)) = v
	}
}

func putInt32(p uintptr, v int32) {
	if p != 0 {
		*(*int32)(unsafe.Pointer(p)) = v
	}
}

func putUint64(p uintptr, v uint64) {
	if p != 0 {
		*(*uint64)(unsafe.Pointer(p)) = v
	}
}

func putHandle(p uintptr, h uintptr) {
	if p != 0 {
		*(*uintptr)(unsafe.Pointer(p)) = h
	}
}

// putLen writes an SQLLEN cell lenSize bytes wide.
func (l *Library) putLen(p uintptr, v int64) {
	if p == 0 {
		return
	}
	if l.lenSize == 4 {
		*(*int32)(unsafe.Pointer(p)) = int32(v)
		return
	}
	*(*int64)(unsafe.Pointer(p)) = v
}

func (l *Library) getLen(p uintptr) int64 {
	if p == 0 {
		return 0
	}
	if l.lenSize == 4 {
		return int64(*(*int32)(unsafe.Pointer(p)))
	}
	return *(*int64)(unsafe.Pointer(p))
}

// readValue decodes the bound parameter cell as a Go value.
func (l *Library) readValue(b *paramBinding) interface{} {
	n := l.getLen(b.ind)
	if b.ind != 0 && n == api.SQL_NULL_DATA {
		return nil
	}
	switch b.ctype {
	case api.SQL_C_CHAR:
		if n == api.SQL_NTS {
			return cstringAt(b.ptr, -1)
		}
		return cstringAt(b.ptr, int(n))
	case api.SQL_C_WCHAR:
		if n == api.SQL_NTS {
			return wstringAt(b.ptr, -1)
		}
		return wstringAt(b.ptr, int(n)/2)
	case api.SQL_C_BINARY:
		return append([]byte(nil), mem(b.ptr, int(n))...)
	case api.SQL_C_SHORT, api.SQL_C_SSHORT:
		return int64(int16(binary.NativeEndian.Uint16(mem(b.ptr, 2))))
	case api.SQL_C_USHORT:
		return int64(binary.NativeEndian.Uint16(mem(b.ptr, 2)))
	case api.SQL_C_LONG, api.SQL_C_SLONG:
		return int64(int32(binary.NativeEndian.Uint32(mem(b.ptr, 4))))
	case api.SQL_C_ULONG:
		return int64(binary.NativeEndian.Uint32(mem(b.ptr, 4)))
	case api.SQL_C_SBIGINT:
		return int64(binary.NativeEndian.Uint64(mem(b.ptr, 8)))
	case api.SQL_C_UBIGINT:
		return binary.NativeEndian.Uint64(mem(b.ptr, 8))
	case api.SQL_C_TINYINT, api.SQL_C_UTINYINT:
		return int64(mem(b.ptr, 1)[0])
	case api.SQL_C_STINYINT:
		return int64(int8(mem(b.ptr, 1)[0]))
	case api.SQL_C_BIT:
		return mem(b.ptr, 1)[0] != 0
	case api.SQL_C_FLOAT:
		return float64(*(*float32)(unsafe.Pointer(b.ptr)))
	case api.SQL_C_DOUBLE:
		return *(*float64)(unsafe.Pointer(b.ptr))
	case api.SQL_C_GUID:
		return *(*api.SQLGUID)(unsafe.Pointer(b.ptr))
	case api.SQL_C_TYPE_TIMESTAMP, api.SQL_C_TIMESTAMP:
		return (*(*api.SQL_TIMESTAMP_STRUCT)(unsafe.Pointer(b.ptr))).Time(time.UTC)
	case api.SQL_C_TYPE_DATE, api.SQL_C_DATE:
		return (*(*api.SQL_DATE_STRUCT)(unsafe.Pointer(b.ptr))).Time(time.UTC)
	}
	return nil
}
