// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package api

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/sys/unix"
)

// cstring returns s as a NUL terminated byte slice.
func cstring(s string) ([]byte, error) {
	return unix.ByteSliceFromString(s)
}

// wstring returns s as a NUL terminated UTF-16 slice.
func wstring(s string) ([]uint16, error) {
	if strings.IndexByte(s, 0) != -1 {
		return nil, unix.EINVAL
	}
	return utf16.Encode([]rune(s + "\x00")), nil
}
