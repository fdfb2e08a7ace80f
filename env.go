// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"github.com/dlodbc/odbc/api"
)

var (
	// ErrEnvironmentExists is returned by NewEnvironment when the
	// driver manager already has a live Environment.
	ErrEnvironmentExists = fmt.Errorf("%w: environment already allocated", ErrProgramming)

	// ErrEnvironmentBusy is returned by Environment.Close while
	// connections allocated under it are still open.
	ErrEnvironmentBusy = fmt.Errorf("%w: environment has open connections", ErrProgramming)
)

var (
	environmentsMu sync.Mutex
	environments   = make(map[*api.DriverManager]*Environment)
)

// Environment is the ODBC environment handle of one driver manager,
// negotiated to ODBC 3 behaviour. Only one may exist per driver
// manager; it must outlive every Connection made from it.
type Environment struct {
	dm    *api.DriverManager
	h     api.SQLHENV
	log   *slog.Logger
	freed atomic.Bool

	mu    sync.Mutex
	conns int
}

// NewEnvironment allocates the environment handle of dm.
// Driver managers without SQLAllocHandle get an ODBC 2 SQLAllocEnv
// handle instead.
func NewEnvironment(dm *api.DriverManager) (*Environment, error) {
	environmentsMu.Lock()
	defer environmentsMu.Unlock()
	if _, ok := environments[dm]; ok {
		return nil, ErrEnvironmentExists
	}

	log := dm.Logger()
	out, err := allocHandle(dm, api.SQL_HANDLE_ENV, api.SQLHENV(api.SQL_NULL_HENV))
	if err != nil {
		log.Warn("unable to allocate environment handle", "error", err)
		return nil, interfaceError("unable to alloc environment", err)
	}
	h := api.SQLHENV(out)

	// will use ODBC v3
	ret, err := dm.SQLSetEnvAttr(h, api.SQL_ATTR_ODBC_VERSION, api.SQL_OV_ODBC3, api.SQL_IS_UINTEGER)
	if err := check(dm, "SQLSetEnvAttr", h, ret, err); err != nil {
		if !errors.Is(err, api.ErrNotImplemented) {
			defer releaseHandle(dm, h)
			return nil, err
		}
		log.Debug("SQLSetEnvAttr not implemented, staying with ODBC 2 behaviour")
	}

	e := &Environment{dm: dm, h: h, log: log}
	environments[dm] = e
	return e, nil
}

// DriverManager returns the driver manager e was allocated from.
func (e *Environment) DriverManager() *api.DriverManager { return e.dm }

// acquire registers a new connection and returns the handle to
// allocate it under.
func (e *Environment) acquire() (api.SQLHENV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.freed.Load() {
		return 0, ErrHandleFreed
	}
	e.conns++
	return e.h, nil
}

func (e *Environment) release() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.conns--
}

// Close frees the environment handle. It fails while connections made
// from e are open.
func (e *Environment) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.freed.Load() {
		return ErrHandleFreed
	}
	if e.conns > 0 {
		return ErrEnvironmentBusy
	}
	e.freed.Store(true)

	environmentsMu.Lock()
	delete(environments, e.dm)
	environmentsMu.Unlock()

	h := e.h
	e.h = api.SQLHENV(api.SQL_NULL_HENV)
	return releaseHandle(e.dm, h)
}

// DSN is a data source known to the driver manager.
type DSN struct {
	Name        string
	Description string
}

// DataSources lists the user and system data sources. Driver
// managers without SQLDataSources are answered from the odbc.ini
// files, see ReadDataSources.
func (e *Environment) DataSources() ([]DSN, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.freed.Load() {
		return nil, ErrHandleFreed
	}
	var dsns []DSN
	direction := api.SQLUSMALLINT(api.SQL_FETCH_FIRST)
	for {
		name, desc, ret, err := e.dm.DataSources(e.h, direction)
		if errors.Is(err, api.ErrNotImplemented) {
			e.log.Debug("SQLDataSources not implemented, reading odbc.ini")
			return ReadDataSources(DataSourceFiles()...)
		}
		if ret == api.SQL_NO_DATA {
			break
		}
		if err := check(e.dm, "SQLDataSources", e.h, ret, err); err != nil {
			return dsns, err
		}
		dsns = append(dsns, DSN{Name: name, Description: desc})
		direction = api.SQL_FETCH_NEXT
	}
	return dsns, nil
}

// DriverInfo is an installed driver with its key=value attributes.
type DriverInfo struct {
	Description string
	Attributes  []string
}

// Drivers lists the installed drivers.
func (e *Environment) Drivers() ([]DriverInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.freed.Load() {
		return nil, ErrHandleFreed
	}
	var list []DriverInfo
	direction := api.SQLUSMALLINT(api.SQL_FETCH_FIRST)
	for {
		desc, attrs, ret, err := e.dm.Drivers(e.h, direction)
		if ret == api.SQL_NO_DATA && err == nil {
			break
		}
		if err := check(e.dm, "SQLDrivers", e.h, ret, err); err != nil {
			return list, err
		}
		list = append(list, DriverInfo{Description: desc, Attributes: attrs})
		direction = api.SQL_FETCH_NEXT
	}
	return list, nil
}
