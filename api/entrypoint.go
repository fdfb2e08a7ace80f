// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by entry points the driver manager
// library does not export.
var ErrNotImplemented = errors.New("not implemented by driver manager")

// NotImplementedError names the missing entry point.
// It matches ErrNotImplemented with errors.Is.
type NotImplementedError struct {
	Name string
}

func (e *NotImplementedError) Error() string {
	return e.Name + ": " + ErrNotImplemented.Error()
}

func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

type procID int

type prototype struct {
	name   string
	params []string
}

// EntryPoint is one ODBC function as bound from the driver manager.
type EntryPoint struct {
	Name string

	// Params lists the native type of every argument, in order.
	Params []NativeType

	proc Proc
}

// Bound reports whether the library exports the function.
func (e *EntryPoint) Bound() bool {
	return e.proc != nil
}

// Call invokes the entry point. Every argument is converted to the
// width of its declared native type before the call. The stand-in for
// an absent function returns SQL_ERROR and a *NotImplementedError.
//
//go:uintptrescapes
func (e *EntryPoint) Call(args ...uintptr) (SQLRETURN, error) {
	if e.proc == nil {
		return SQL_ERROR, &NotImplementedError{Name: e.Name}
	}
	if len(args) != len(e.Params) {
		return SQL_ERROR, fmt.Errorf("%s: called with %d arguments, %d expected", e.Name, len(args), len(e.Params))
	}
	var buf [16]uintptr
	a := buf[:0]
	for i, t := range e.Params {
		a = append(a, t.Encode(args[i]))
	}
	r := e.proc.Call(a...)
	return SQLRETURN(int16(r)), nil
}

func (e *EntryPoint) String() string {
	s := e.Name + "("
	for i, t := range e.Params {
		if i > 0 {
			s += ", "
		}
		s += t.Name
	}
	s += ")"
	if !e.Bound() {
		s += " [not implemented]"
	}
	return s
}
