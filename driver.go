// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package odbc implements database/sql driver to access data via odbc interface.
//
// The driver manager is loaded at run time, no cgo is involved. The
// "odbc" driver uses api.DefaultConfig, with the library taken from
// the ODBC_DRIVER_MANAGER environment variable when set. Use
// NewConnector to connect through an Environment of your own.
package odbc

import (
	"database/sql"
	"database/sql/driver"
	"os"
	"sync"

	"github.com/dlodbc/odbc/api"
)

var drv Driver

type Driver struct {
	Stats

	once    sync.Once
	env     *Environment
	initErr error
}

// environment loads the default driver manager on first use. A
// failure is kept and returned by every Open.
func (d *Driver) environment() (*Environment, error) {
	d.once.Do(func() {
		cfg := api.DefaultConfig()
		if lib := os.Getenv("ODBC_DRIVER_MANAGER"); lib != "" {
			cfg.Library = lib
		}
		dm, err := api.Open(cfg)
		if err != nil {
			d.initErr = err
			return
		}
		d.env, d.initErr = NewEnvironment(dm)
	})
	return d.env, d.initErr
}

func (d *Driver) Open(dsn string) (driver.Conn, error) {
	env, err := d.environment()
	if err != nil {
		return nil, err
	}
	return openConn(env, dsn)
}

//implement driver.DriverContext
func (d *Driver) OpenConnector(name string) (driver.Connector, error) {
	env, err := d.environment()
	if err != nil {
		return nil, err
	}
	return &connector{d: d, env: env, name: name}, nil
}

func init() {
	sql.Register("odbc", &drv)
}
