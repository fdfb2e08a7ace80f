// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"database/sql/driver"
	"errors"

	"github.com/dlodbc/odbc/api"
)

var ErrTXCompleted = errors.New("transaction already completed")

type Tx struct {
	c    *Conn
	opts driver.TxOptions
}

// implement driver.Tx
func (tx *Tx) Commit() error {
	return tx.endTx(tx.c.conn.Commit)
}

// implement driver.Tx
func (tx *Tx) Rollback() error {
	return tx.endTx(tx.c.conn.Rollback)
}

func (tx *Tx) endTx(end func() error) error {
	if tx.c.tx == nil {
		return ErrTXCompleted
	}
	tx.c.tx = nil
	if err := end(); err != nil {
		tx.c.bad.Store(true)
		return tx.c.newError(err)
	}
	if err := tx.c.conn.SetAutocommit(true); err != nil {
		tx.c.bad.Store(true)
		return tx.c.newError(err)
	}
	if tx.opts.ReadOnly {
		if err := tx.c.setAttr(api.SQL_ATTR_ACCESS_MODE, api.SQL_MODE_READ_WRITE); err != nil {
			return err
		}
	}
	return nil
}
