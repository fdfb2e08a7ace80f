// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"strings"

	"golang.org/x/sys/windows"
)

// DefaultLibrary is the driver manager loaded by DefaultConfig.
const DefaultLibrary = "odbc32.dll"

type dllLibrary struct {
	dll *windows.LazyDLL
}

func loadLibrary(name string) (Library, error) {
	var dll *windows.LazyDLL
	if strings.ContainsAny(name, `\/`) {
		dll = windows.NewLazyDLL(name)
	} else {
		dll = windows.NewLazySystemDLL(name)
	}
	if err := dll.Load(); err != nil {
		return nil, err
	}
	return &dllLibrary{dll: dll}, nil
}

func (l *dllLibrary) Name() string { return l.dll.Name }

func (l *dllLibrary) Lookup(symbol string) (Proc, error) {
	p := l.dll.NewProc(symbol)
	if err := p.Find(); err != nil {
		return nil, err
	}
	return dllProc{p}, nil
}

func (l *dllLibrary) Close() error {
	return windows.FreeLibrary(windows.Handle(l.dll.Handle()))
}

type dllProc struct {
	p *windows.LazyProc
}

//go:uintptrescapes
func (p dllProc) Call(args ...uintptr) uintptr {
	r1, _, _ := p.p.Call(args...)
	return r1
}
