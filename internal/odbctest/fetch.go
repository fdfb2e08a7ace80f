// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbctest

import (
	"unicode/utf16"
	"unsafe"

	"github.com/dlodbc/odbc/api"
)

func (l *Library) fetchScroll(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	offset := int(l.sqllen(a[2]))
	cur := s.row - 1
	switch int16(a[1]) {
	case api.SQL_FETCH_NEXT:
		return l.fetchRow(s, s.row)
	case api.SQL_FETCH_PRIOR:
		return l.fetchRow(s, cur-1)
	case api.SQL_FETCH_FIRST:
		return l.fetchRow(s, 0)
	case api.SQL_FETCH_LAST:
		if s.cur == nil {
			return fail(s, "24000", "invalid cursor state")
		}
		return l.fetchRow(s, len(s.cur.Rows)-1)
	case api.SQL_FETCH_ABSOLUTE:
		if offset < 1 {
			return l.fetchRow(s, -1)
		}
		return l.fetchRow(s, offset-1)
	case api.SQL_FETCH_RELATIVE:
		return l.fetchRow(s, cur+offset)
	}
	return fail(s, "HY106", "fetch type out of range")
}

// getData returns column data of the current row in pieces, the way
// drivers do for long values.
func (l *Library) getData(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	if s.cur == nil || s.row < 1 || s.row > len(s.cur.Rows) {
		return fail(s, "24000", "invalid cursor state")
	}
	col := int(uint16(a[1]))
	row := s.cur.Rows[s.row-1]
	if col < 1 || col > len(row) {
		return fail(s, "07009", "invalid descriptor index")
	}
	if s.gets == nil {
		s.gets = make(map[int]int)
	}
	done := s.gets[col]
	if done < 0 {
		return api.SQL_NO_DATA
	}
	ctype, ptr, buflen, ind := int16(a[2]), a[3], int(l.sqllen(a[4])), a[5]
	v := row[col-1]
	if v == nil {
		s.gets[col] = -1
		l.putLen(ind, api.SQL_NULL_DATA)
		return api.SQL_SUCCESS
	}

	// unit is the character size in bytes, term the terminator count.
	var data []byte
	unit, term := 1, 1
	switch ctype {
	case api.SQL_C_CHAR:
		data = []byte(toString(v))
	case api.SQL_C_WCHAR:
		w := utf16.Encode([]rune(toString(v)))
		data = unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(w))), 2*len(w))
		unit, term = 2, 1
	case api.SQL_C_BINARY:
		if b, ok := v.([]byte); ok {
			data = b
		} else {
			data = []byte(toString(v))
		}
		term = 0
	default:
		n, _ := writeValue(&colBinding{ctype: ctype, ptr: ptr, buflen: int64(buflen)}, v)
		s.gets[col] = -1
		l.putLen(ind, n)
		return api.SQL_SUCCESS
	}
	rest := data[done:]
	room := (buflen/unit - term) * unit
	if room < 0 {
		room = 0
	}
	n := copy(mem(ptr, room), rest)
	if term > 0 && ptr != 0 && buflen >= unit {
		for i := 0; i < unit; i++ {
			*(*byte)(unsafe.Pointer(ptr + uintptr(n+i))) = 0
		}
	}
	l.putLen(ind, int64(len(rest)))
	if n < len(rest) {
		s.gets[col] = done + n
		return info(s, "01004", "string data, right truncated")
	}
	s.gets[col] = -1
	return api.SQL_SUCCESS
}
