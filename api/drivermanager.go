// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"errors"
	"fmt"
	"log/slog"

	"go.uber.org/atomic"
)

// ErrClosed is returned by calls made after DriverManager.Close.
var ErrClosed = errors.New("odbc: driver manager is closed")

// DriverManager is the ODBC driver manager as seen from this process:
// the loaded library, the native types of its ABI and one EntryPoint
// per ODBC function. Methods named after ODBC functions call them.
type DriverManager struct {
	cfg    Config
	types  TypeTable
	lib    Library
	log    *slog.Logger
	procs  [procCount]EntryPoint
	byName map[string]*EntryPoint
	closed atomic.Bool
}

// Open loads cfg.Library and binds every entry point. It fails only
// if the library cannot be loaded; absent functions are bound to
// stand-ins returning ErrNotImplemented.
func Open(cfg Config) (*DriverManager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	lib, err := LoadLibrary(cfg.Library)
	if err != nil {
		return nil, err
	}
	m, err := New(lib, cfg)
	if err != nil {
		lib.Close()
		return nil, err
	}
	return m, nil
}

// New binds the entry points of an already loaded library.
// cfg.Library is ignored.
func New(lib Library, cfg Config) (*DriverManager, error) {
	if cfg.Library == "" {
		cfg.Library = lib.Name()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	m := &DriverManager{
		cfg:    cfg,
		types:  NewTypeTable(cfg),
		lib:    lib,
		log:    cfg.logger().With("library", lib.Name()),
		byName: make(map[string]*EntryPoint, procCount),
	}
	bound := 0
	for id := range prototypes {
		p := &prototypes[id]
		e := &m.procs[id]
		e.Name = p.name
		e.Params = make([]NativeType, len(p.params))
		for i, name := range p.params {
			t, ok := m.types.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("odbc: %s: unknown parameter type %s", p.name, name)
			}
			if t.Kind == Float || t.Size > ptrSize {
				return nil, fmt.Errorf("odbc: %s: parameter type %s (%d bytes) does not fit a machine word", p.name, name, t.Size)
			}
			e.Params[i] = t
		}
		m.byName[p.name] = e

		proc, err := lib.Lookup(p.name)
		if err != nil || proc == nil {
			m.log.Debug("entry point not exported", "name", p.name, "error", err)
			continue
		}
		e.proc = proc
		bound++
	}
	m.log.Info("bound driver manager", "bound", bound, "total", len(prototypes))
	return m, nil
}

// Config returns the configuration m was opened with.
func (m *DriverManager) Config() Config { return m.cfg }

// Types returns the native type table of m.
func (m *DriverManager) Types() TypeTable { return m.types }

// Logger returns the logger of m.
func (m *DriverManager) Logger() *slog.Logger { return m.log }

// EntryPoint returns the entry point called name. Every ODBC function
// has an entry point whether or not the library exports it.
func (m *DriverManager) EntryPoint(name string) (*EntryPoint, bool) {
	e, ok := m.byName[name]
	return e, ok
}

// EntryPoints returns all entry points in declaration order.
func (m *DriverManager) EntryPoints() []*EntryPoint {
	list := make([]*EntryPoint, len(m.procs))
	for i := range m.procs {
		list[i] = &m.procs[i]
	}
	return list
}

// SQL_C_TCHAR is SQL_C_WCHAR for unicode configurations and
// SQL_C_CHAR otherwise.
func (m *DriverManager) SQL_C_TCHAR() SQLSMALLINT {
	if m.cfg.Unicode {
		return SQL_C_WCHAR
	}
	return SQL_C_CHAR
}

// Close unloads the library. Calls made afterwards fail with ErrClosed.
func (m *DriverManager) Close() error {
	if m.closed.Swap(true) {
		return ErrClosed
	}
	return m.lib.Close()
}

//go:uintptrescapes
func (m *DriverManager) call(id procID, args ...uintptr) (SQLRETURN, error) {
	if m.closed.Load() {
		return SQL_ERROR, ErrClosed
	}
	return m.procs[id].Call(args...)
}

// wide reports whether the wide character variant id should be used.
func (m *DriverManager) wide(id procID) bool {
	return m.cfg.Unicode && m.procs[id].Bound()
}
