// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin || freebsd || linux

package api

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// DefaultLibrary is the driver manager loaded by DefaultConfig.
const DefaultLibrary = "libodbc.so"

// fallbackLibraries are tried when DefaultLibrary cannot be opened,
// as most systems only install the versioned file.
func fallbackLibraries() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"libodbc.2.dylib", "libodbc.dylib", "libiodbc.2.dylib"}
	case "freebsd":
		return []string{"/usr/local/lib/libodbc.so", "libodbc.so.2"}
	}
	return []string{"libodbc.so.2", "libodbc.so.1"}
}

type dynLibrary struct {
	name   string
	handle uintptr
}

func loadLibrary(name string) (Library, error) {
	names := []string{name}
	if name == DefaultLibrary {
		names = append(names, fallbackLibraries()...)
	}
	var firstErr error
	for _, n := range names {
		h, err := purego.Dlopen(n, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return &dynLibrary{name: n, handle: h}, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

func (l *dynLibrary) Name() string { return l.name }

func (l *dynLibrary) Lookup(symbol string) (Proc, error) {
	addr, err := purego.Dlsym(l.handle, symbol)
	if err != nil {
		return nil, err
	}
	return dynProc(addr), nil
}

func (l *dynLibrary) Close() error {
	return purego.Dlclose(l.handle)
}

type dynProc uintptr

//go:uintptrescapes
func (p dynProc) Call(args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(uintptr(p), args...)
	return r1
}
