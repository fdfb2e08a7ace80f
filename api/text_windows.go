// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import "golang.org/x/sys/windows"

// cstring returns s as a NUL terminated byte slice.
func cstring(s string) ([]byte, error) {
	return windows.ByteSliceFromString(s)
}

// wstring returns s as a NUL terminated UTF-16 slice.
func wstring(s string) ([]uint16, error) {
	return windows.UTF16FromString(s)
}
