// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/dlodbc/odbc/api"
)

// Error categories. Use errors.Is to test for them.
var (
	// ErrInterface reports misuse of the interface itself: no
	// environment, failed handle allocation, failed connect.
	ErrInterface = errors.New("odbc: interface error")

	// ErrDatabase matches every *Error built from native diagnostics.
	ErrDatabase = errors.New("odbc: database error")

	ErrNotSupported = errors.New("odbc: not supported")
	ErrProgramming  = errors.New("odbc: programming error")

	// ErrHandleFreed is returned when a closed object is used again.
	ErrHandleFreed = fmt.Errorf("%w: handle already freed", ErrProgramming)
)

func IsError(ret api.SQLRETURN) bool {
	return !api.SQL_SUCCEEDED(ret)
}

type DiagRecord struct {
	State       string
	NativeError int
	Message     string
}

func (r *DiagRecord) String() string {
	return fmt.Sprintf("{%s} %s", r.State, r.Message)
}

type Error struct {
	APIName string
	Ret     api.SQLRETURN
	Diag    []DiagRecord
}

func (e *Error) Error() string {
	ss := make([]string, len(e.Diag))
	for i, r := range e.Diag {
		ss[i] = r.String()
	}
	if len(ss) == 0 {
		return fmt.Sprintf("%s: returned %d", e.APIName, e.Ret)
	}
	return e.APIName + ": " + strings.Join(ss, "\n")
}

func (e *Error) Is(target error) bool {
	return target == ErrDatabase
}

// State returns the SQLSTATE of the first diagnostic record.
func (e *Error) State() string {
	if len(e.Diag) == 0 {
		return ""
	}
	return e.Diag[0].State
}

func diagRecords(dm *api.DriverManager, handle interface{}) ([]DiagRecord, error) {
	h, ht, err := ToHandleAndType(handle)
	if err != nil {
		return nil, err
	}
	var recs []DiagRecord
	for i := 1; ; i++ {
		r, ret, err := dm.GetDiagRec(ht, h, api.SQLSMALLINT(i))
		if err != nil {
			return recs, err
		}
		if ret == api.SQL_NO_DATA {
			break
		}
		if IsError(ret) {
			return recs, fmt.Errorf("SQLGetDiagRec failed: ret=%d", ret)
		}
		recs = append(recs, DiagRecord{
			State:       r.State,
			NativeError: int(r.NativeError),
			Message:     r.Message,
		})
	}
	return recs, nil
}

// NewError builds an *Error from the diagnostic records of handle.
func NewError(dm *api.DriverManager, apiName string, handle interface{}) error {
	recs, err := diagRecords(dm, handle)
	if err != nil && len(recs) == 0 && !errors.Is(err, api.ErrNotImplemented) {
		return err
	}
	return &Error{APIName: apiName, Ret: api.SQL_ERROR, Diag: recs}
}

// check converts the outcome of a native call into an error.
// err is the binding level error (not implemented, closed).
func check(dm *api.DriverManager, apiName string, handle interface{}, ret api.SQLRETURN, err error) error {
	if err != nil {
		return err
	}
	if !IsError(ret) {
		return nil
	}
	e := NewError(dm, apiName, handle)
	var oe *Error
	if errors.As(e, &oe) {
		oe.Ret = ret
	}
	return e
}

func interfaceError(msg string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrInterface, msg)
	}
	return fmt.Errorf("%w: %s: %w", ErrInterface, msg, cause)
}

func notSupported(op string) error {
	return fmt.Errorf("%w: %s", ErrNotSupported, op)
}

// isBadConn reports whether err carries SQLSTATE 08S01
// (communication link failure).
func isBadConn(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	for _, r := range e.Diag {
		if r.State == "08S01" {
			return true
		}
	}
	return false
}

// driverError returns driver.ErrBadConn for communication failures,
// err otherwise.
func driverError(err error) error {
	if isBadConn(err) {
		return driver.ErrBadConn
	}
	return err
}
