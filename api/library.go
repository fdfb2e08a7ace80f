// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"fmt"
	"sort"
	"sync"
)

// Proc is a function exported by a Library.
type Proc interface {
	// Call invokes the function with args already converted to
	// machine words and returns the raw result register.
	Call(args ...uintptr) uintptr
}

// Library is a loaded driver manager.
type Library interface {
	Name() string

	// Lookup returns the exported function called symbol, or an
	// error if the library does not export it.
	Lookup(symbol string) (Proc, error)

	Close() error
}

var (
	librariesMu sync.RWMutex
	libraries   = make(map[string]func() (Library, error))
)

// RegisterLibrary makes an in-process library available under name.
// LoadLibrary and Open consult registered libraries before the
// platform loader. If RegisterLibrary is called twice with the same
// name or if open is nil, it panics.
func RegisterLibrary(name string, open func() (Library, error)) {
	librariesMu.Lock()
	defer librariesMu.Unlock()
	if open == nil {
		panic("odbc: RegisterLibrary open function is nil")
	}
	if _, dup := libraries[name]; dup {
		panic("odbc: RegisterLibrary called twice for library " + name)
	}
	libraries[name] = open
}

// Libraries returns the sorted names of the registered libraries.
func Libraries() []string {
	librariesMu.RLock()
	defer librariesMu.RUnlock()
	list := make([]string, 0, len(libraries))
	for name := range libraries {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// LoadLibrary opens the driver manager called name.
func LoadLibrary(name string) (Library, error) {
	librariesMu.RLock()
	open, ok := libraries[name]
	librariesMu.RUnlock()
	if ok {
		return open()
	}
	lib, err := loadLibrary(name)
	if err != nil {
		return nil, fmt.Errorf("odbc: loading driver manager %s: %w", name, err)
	}
	return lib, nil
}
