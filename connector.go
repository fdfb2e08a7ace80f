// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"context"
	"database/sql/driver"
)

type connector struct {
	d    *Driver
	env  *Environment
	name string
}

// NewConnector returns a connector for sql.OpenDB that connects with
// connStr under env.
func NewConnector(env *Environment, connStr string) driver.Connector {
	return &connector{d: &drv, env: env, name: connStr}
}

//implement driver.Connector
func (c *connector) Connect(ctx context.Context) (driver.Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return openConn(c.env, c.name)
}

//implement driver.Connector
func (c *connector) Driver() driver.Driver {
	return c.d
}
