// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(darwin || freebsd || linux || windows)

package api

import (
	"errors"
	"runtime"
)

// DefaultLibrary is the driver manager loaded by DefaultConfig.
const DefaultLibrary = "libodbc.so"

func loadLibrary(name string) (Library, error) {
	return nil, errors.New("dynamic loading is not supported on " + runtime.GOOS)
}
