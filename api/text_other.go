// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix && !windows

package api

import (
	"errors"
	"strings"
	"unicode/utf16"
)

var errNUL = errors.New("string contains NUL byte")

func cstring(s string) ([]byte, error) {
	if strings.IndexByte(s, 0) != -1 {
		return nil, errNUL
	}
	return append([]byte(s), 0), nil
}

func wstring(s string) ([]uint16, error) {
	if strings.IndexByte(s, 0) != -1 {
		return nil, errNUL
	}
	return utf16.Encode([]rune(s + "\x00")), nil
}
