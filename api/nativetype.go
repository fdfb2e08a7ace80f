// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"sort"
	"strings"
	"unsafe"
)

// Kind classifies a native type for argument passing.
type Kind uint8

const (
	Signed Kind = iota
	Unsigned
	Float
	Pointer
)

func (k Kind) String() string {
	switch k {
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	case Float:
		return "float"
	case Pointer:
		return "pointer"
	}
	return "unknown"
}

// NativeType describes how one ODBC type name is laid out in memory
// for the configured ABI.
type NativeType struct {
	Name string
	Size uintptr
	Kind Kind
}

// Encode truncates v to the width of t and extends it back to a full
// machine word, with sign extension for signed types. Pointers and
// word sized values pass through unchanged.
func (t NativeType) Encode(v uintptr) uintptr {
	switch t.Kind {
	case Signed:
		switch t.Size {
		case 1:
			return uintptr(int8(v))
		case 2:
			return uintptr(int16(v))
		case 4:
			return uintptr(int32(v))
		}
	case Unsigned:
		switch t.Size {
		case 1:
			return uintptr(uint8(v))
		case 2:
			return uintptr(uint16(v))
		case 4:
			return uintptr(uint32(v))
		}
	}
	return v
}

const ptrSize = unsafe.Sizeof(uintptr(0))

// C base types.
func cChar() NativeType       { return NativeType{Size: 1, Kind: Signed} }
func cUChar() NativeType      { return NativeType{Size: 1, Kind: Unsigned} }
func cShort() NativeType      { return NativeType{Size: 2, Kind: Signed} }
func cUShort() NativeType     { return NativeType{Size: 2, Kind: Unsigned} }
func cInt() NativeType        { return NativeType{Size: 4, Kind: Signed} }
func cUInt() NativeType       { return NativeType{Size: 4, Kind: Unsigned} }
func cLongLong() NativeType   { return NativeType{Size: 8, Kind: Signed} }
func cULongLong() NativeType  { return NativeType{Size: 8, Kind: Unsigned} }
func cFloat() NativeType      { return NativeType{Size: 4, Kind: Float} }
func cDouble() NativeType     { return NativeType{Size: 8, Kind: Float} }
func cLongDouble() NativeType { return NativeType{Size: 16, Kind: Float} }
func cPointer() NativeType    { return NativeType{Size: ptrSize, Kind: Pointer} }

// TypeTable maps ODBC type names to native types for one Config.
type TypeTable struct {
	types map[string]NativeType
}

// NewTypeTable builds the type table for cfg.
func NewTypeTable(cfg Config) TypeTable {
	long := NativeType{Size: uintptr(cfg.SizeOfLong), Kind: Signed}
	ulong := NativeType{Size: uintptr(cfg.SizeOfLong), Kind: Unsigned}

	integer, uinteger := long, ulong
	if cfg.SizeOfLong == 8 {
		integer, uinteger = cInt(), cUInt()
	}
	sqllen, sqlulen := long, ulong
	if cfg.Legacy {
		sqllen, sqlulen = cInt(), cUInt()
	}
	wchar := cUShort()
	tchar := cUChar()
	if cfg.Unicode {
		tchar = wchar
	}

	t := TypeTable{types: make(map[string]NativeType)}
	add := func(nt NativeType, names ...string) {
		for _, name := range names {
			nt.Name = name
			t.types[name] = nt
		}
	}
	add(cUChar(), "BYTE", "SQLCHAR", "UCHAR", "SQLDATE", "SQLDECIMAL", "SQLNUMERIC", "SQLTIME", "SQLTIMESTAMP", "SQLVARCHAR")
	add(cUShort(), "WORD", "SQLUSMALLINT", "UWORD", "USHORT")
	add(cUInt(), "DWORD")
	add(cInt(), "BOOL")
	add(cChar(), "SQLSCHAR", "SCHAR")
	add(cShort(), "SQLSMALLINT", "SWORD", "SSHORT", "SQLRETURN", "RETCODE")
	add(integer, "SQLINTEGER", "SQLINTERVAL")
	add(uinteger, "SQLUINTEGER", "BOOKMARK")
	add(long, "SDWORD", "SLONG")
	add(ulong, "UDWORD", "ULONG")
	add(sqllen, "SQLLEN", "SQLROWOFFSET")
	add(sqlulen, "SQLULEN", "SQLROWCOUNT", "SQLROWSETSIZE", "SQLTRANSID")
	add(cUShort(), "SQLSETPOSIROW")
	add(cLongLong(), "SQLBIGINT", "ODBCINT64")
	add(cULongLong(), "SQLUBIGINT", "ODBCUINT64")
	add(cDouble(), "SQLDOUBLE", "SQLFLOAT", "SDOUBLE")
	add(cFloat(), "SQLREAL", "SFLOAT")
	add(cLongDouble(), "LDOUBLE")
	add(wchar, "SQLWCHAR")
	add(tchar, "SQLTCHAR")
	add(cPointer(), "SQLPOINTER", "PTR", "SQLHANDLE", "HENV", "HDBC", "HSTMT",
		"SQLHENV", "SQLHDBC", "SQLHSTMT", "SQLHDESC", "HWND", "SQLHWND",
		"LPSTR", "LPCSTR", "LPWSTR", "LPCWSTR", "LPDWORD")
	return t
}

// Lookup returns the native type called name. Names starting with *
// are pointers to the named type.
func (t TypeTable) Lookup(name string) (NativeType, bool) {
	if strings.HasPrefix(name, "*") {
		if _, ok := t.Lookup(name[1:]); !ok {
			return NativeType{}, false
		}
		nt := cPointer()
		nt.Name = name
		return nt, true
	}
	nt, ok := t.types[name]
	return nt, ok
}

// Names returns the sorted list of known type names.
func (t TypeTable) Names() []string {
	names := make([]string, 0, len(t.types))
	for name := range t.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len normalizes an SQLLEN cell written by the driver manager.
// With 4 byte SQLLEN only the low half of the cell is meaningful,
// so 0x00000000ffffffff reads as -1.
func (t TypeTable) Len(v SQLLEN) SQLLEN {
	if t.types["SQLLEN"].Size == 4 {
		return SQLLEN(int32(v))
	}
	return v
}

// ULen normalizes an SQLULEN cell written by the driver manager.
func (t TypeTable) ULen(v SQLULEN) SQLULEN {
	if t.types["SQLULEN"].Size == 4 {
		return SQLULEN(uint32(v))
	}
	return v
}
