// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package odbctest provides an in-process ODBC driver manager for
// tests. It implements api.Library in Go: handles live in maps, and
// bound parameter and column buffers are read and written through the
// addresses passed to it, as a native driver manager would.
//
// Queries starting with SELECT echo their parameters back as a one
// row result unless a result was registered with SetResult. Queries
// starting with FAIL fail with SQLSTATE 42000, connection strings
// containing FAIL fail to connect with SQLSTATE 08001.
package odbctest

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dlodbc/odbc/api"
)

// Name is the library name registered with api.RegisterLibrary.
const Name = "mock_odbc"

func init() {
	api.RegisterLibrary(Name, func() (api.Library, error) {
		return New(), nil
	})
}

// Execution records one statement execution.
type Execution struct {
	Query string
	Args  []interface{}
}

// ParamDesc is what SQLDescribeParam reports for one parameter.
type ParamDesc struct {
	SQLType api.SQLSMALLINT
	Size    api.SQLULEN
	Digits  api.SQLSMALLINT
}

// Error makes a Handler failure report State as its SQLSTATE.
// Other errors are reported as HY000.
type Error struct {
	State   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// DataSource is one entry reported by SQLDataSources.
type DataSource struct {
	Name        string
	Description string
}

// Driver is one entry reported by SQLDrivers.
type Driver struct {
	Description string
	Attributes  []string
}

// Option configures a Library.
type Option func(*Library)

// Without removes the named functions from the export table.
func Without(names ...string) Option {
	return func(l *Library) {
		for _, n := range names {
			delete(l.funcs, n)
		}
	}
}

// WithoutWide removes every wide character (...W) function.
func WithoutWide() Option {
	return func(l *Library) {
		for n := range l.funcs {
			if strings.HasSuffix(n, "W") {
				delete(l.funcs, n)
			}
		}
	}
}

// WithLenSize sets the width in bytes of the SQLLEN cells the library
// reads and writes: 8 (default) or 4 as in legacy driver managers.
func WithLenSize(n int) Option {
	return func(l *Library) { l.lenSize = n }
}

// WithName sets the name reported by Name.
func WithName(name string) Option {
	return func(l *Library) { l.name = name }
}

// Library is an in-process driver manager.
type Library struct {
	mu      sync.Mutex
	name    string
	lenSize int
	funcs   map[string]func(a []uintptr) api.SQLRETURN
	closed  bool

	next    uintptr
	objects map[uintptr]interface{}

	results  map[string][]*ResultSet
	params   map[string][]ParamDesc
	dsns     []DataSource
	drivers  []Driver
	calls    []string
	executed []Execution

	// Handler, if set, produces the results of every execution.
	// It is called with the library locked.
	Handler func(query string, args []interface{}) ([]*ResultSet, error)
}

// New returns a library exporting every function it implements,
// minus those removed by opts.
func New(opts ...Option) *Library {
	l := &Library{
		name:    Name,
		lenSize: 8,
		next:    0x1000,
		objects: make(map[uintptr]interface{}),
		results: make(map[string][]*ResultSet),
		params:  make(map[string][]ParamDesc),
	}
	l.funcs = l.exports()
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *Library) Name() string { return l.name }

func (l *Library) Lookup(symbol string) (api.Proc, error) {
	fn, ok := l.funcs[symbol]
	if !ok {
		return nil, fmt.Errorf("%s: undefined symbol: %s", l.name, symbol)
	}
	return &proc{l: l, name: symbol, fn: fn}, nil
}

func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}

// Exports returns the sorted names of the exported functions.
func (l *Library) Exports() []string {
	names := make([]string, 0, len(l.funcs))
	for n := range l.funcs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type proc struct {
	l    *Library
	name string
	fn   func(a []uintptr) api.SQLRETURN
}

func (p *proc) Call(args ...uintptr) uintptr {
	p.l.mu.Lock()
	defer p.l.mu.Unlock()
	p.l.calls = append(p.l.calls, p.name)
	ret := p.fn(args)
	return uintptr(ret)
}

// SetResult registers the result sets produced by executing query.
func (l *Library) SetResult(query string, rs ...*ResultSet) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results[query] = rs
}

// SetParams registers what SQLDescribeParam reports for query.
func (l *Library) SetParams(query string, ps ...ParamDesc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.params[query] = ps
}

// SetDataSources sets the list reported by SQLDataSources.
func (l *Library) SetDataSources(dsns ...DataSource) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dsns = dsns
}

// SetDrivers sets the list reported by SQLDrivers.
func (l *Library) SetDrivers(drivers ...Driver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.drivers = drivers
}

// Calls returns the names of the functions called so far, in order.
func (l *Library) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// CallCount returns how many times name was called.
func (l *Library) CallCount(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.calls {
		if c == name {
			n++
		}
	}
	return n
}

// Executed returns every statement execution so far.
func (l *Library) Executed() []Execution {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Execution(nil), l.executed...)
}

// Handles returns the number of live environment, connection and
// statement handles.
func (l *Library) Handles() (envs, conns, stmts int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, o := range l.objects {
		switch o.(type) {
		case *env:
			envs++
		case *conn:
			conns++
		case *stmt:
			stmts++
		}
	}
	return envs, conns, stmts
}

// ConnState is the observable state of a connection handle.
type ConnState struct {
	ConnStr    string
	Connected  bool
	Autocommit bool
	Commits    int
	Rollbacks  int
	Attrs      map[int32]uintptr
}

// Conn returns the state of connection handle h.
func (l *Library) Conn(h uintptr) (ConnState, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.objects[h].(*conn)
	if !ok {
		return ConnState{}, false
	}
	attrs := make(map[int32]uintptr, len(c.attrs))
	for k, v := range c.attrs {
		attrs[k] = v
	}
	ac, set := c.attrs[api.SQL_ATTR_AUTOCOMMIT]
	return ConnState{
		ConnStr:    c.connStr,
		Connected:  c.connected,
		Autocommit: !set || ac == api.SQL_AUTOCOMMIT_ON,
		Commits:    c.commits,
		Rollbacks:  c.rollbacks,
		Attrs:      attrs,
	}, true
}

// EnvVersion returns the ODBC version negotiated on environment h.
func (l *Library) EnvVersion(h uintptr) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.objects[h].(*env)
	if !ok {
		return 0, false
	}
	return e.version, true
}

// StmtAttr returns statement attribute attr of statement h.
func (l *Library) StmtAttr(h uintptr, attr int32) (uintptr, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.objects[h].(*stmt)
	if !ok {
		return 0, false
	}
	v, ok := s.attrs[attr]
	return v, ok
}

// Bound returns how many parameters and result columns statement h
// has bound.
func (l *Library) Bound(h uintptr) (params, cols int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.objects[h].(*stmt)
	if !ok {
		return 0, 0
	}
	return len(s.params), len(s.cols)
}
