// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbctest

import (
	"errors"
	"strings"

	"github.com/dlodbc/odbc/api"
)

type diagRec struct {
	state   string
	native  int32
	message string
}

type object struct {
	diag []diagRec
}

func (o *object) base() *object { return o }

type env struct {
	object
	version int
	attrs   map[int32]uintptr
	dsnIdx  int
	drvIdx  int
}

type conn struct {
	object
	env       *env
	connected bool
	connStr   string
	attrs     map[int32]uintptr
	commits   int
	rollbacks int
}

type paramBinding struct {
	ioType  int16
	ctype   int16
	sqltype int16
	size    uint64
	digits  int16
	ptr     uintptr
	buflen  int64
	ind     uintptr
}

type colBinding struct {
	ctype  int16
	ptr    uintptr
	buflen int64
	ind    uintptr
}

type stmt struct {
	object
	conn     *conn
	query    string
	prepared bool
	params   map[int]*paramBinding
	cols     map[int]*colBinding
	cur      *ResultSet
	pending  []*ResultSet
	row      int
	rowCount int64
	attrs    map[int32]uintptr

	// gets holds how much of each column SQLGetData returned for
	// the current row; -1 once the column is exhausted.
	gets map[int]int
}

type diagnoser interface {
	base() *object
}

func (l *Library) alloc(o interface{}) uintptr {
	l.next += 0x10
	l.objects[l.next] = o
	return l.next
}

// fail records a diagnostic record on o and returns SQL_ERROR.
func fail(o diagnoser, state, msg string) api.SQLRETURN {
	b := o.base()
	b.diag = append(b.diag, diagRec{state: state, native: 1, message: "[odbctest] " + msg})
	return api.SQL_ERROR
}

func info(o diagnoser, state, msg string) api.SQLRETURN {
	b := o.base()
	b.diag = append(b.diag, diagRec{state: state, message: "[odbctest] " + msg})
	return api.SQL_SUCCESS_WITH_INFO
}

// clearDiag resets the diagnostics of o, as every ODBC call does for the
// handle it is given.
func clearDiag(o diagnoser) {
	o.base().diag = nil
}

func (l *Library) env(h uintptr) *env {
	e, _ := l.objects[h].(*env)
	if e != nil {
		clearDiag(e)
	}
	return e
}

func (l *Library) conn(h uintptr) *conn {
	c, _ := l.objects[h].(*conn)
	if c != nil {
		clearDiag(c)
	}
	return c
}

func (l *Library) stmt(h uintptr) *stmt {
	s, _ := l.objects[h].(*stmt)
	if s != nil {
		clearDiag(s)
	}
	return s
}

func (l *Library) sqllen(a uintptr) int64 {
	if l.lenSize == 4 {
		return int64(int32(a))
	}
	return int64(a)
}

func (l *Library) exports() map[string]func(a []uintptr) api.SQLRETURN {
	return map[string]func(a []uintptr) api.SQLRETURN{
		"SQLAllocHandle":     l.allocHandle,
		"SQLAllocEnv":        l.allocEnv,
		"SQLAllocConnect":    l.allocConnect,
		"SQLAllocStmt":       l.allocStmt,
		"SQLFreeHandle":      l.freeHandle,
		"SQLFreeEnv":         func(a []uintptr) api.SQLRETURN { return l.freeHandle([]uintptr{api.SQL_HANDLE_ENV, a[0]}) },
		"SQLFreeConnect":     func(a []uintptr) api.SQLRETURN { return l.freeHandle([]uintptr{api.SQL_HANDLE_DBC, a[0]}) },
		"SQLFreeStmt":        l.freeStmt,
		"SQLSetEnvAttr":      l.setEnvAttr,
		"SQLSetConnectAttr":  l.setConnectAttr,
		"SQLSetConnectAttrW": l.setConnectAttr,
		"SQLSetStmtAttr":     l.setStmtAttr,
		"SQLSetStmtAttrW":    l.setStmtAttr,
		"SQLConnect":         l.connect,
		"SQLDriverConnect":   l.driverConnect(false),
		"SQLDriverConnectW":  l.driverConnect(true),
		"SQLDisconnect":      l.disconnect,
		"SQLEndTran":         l.endTran,
		"SQLPrepare":         l.prepare(false),
		"SQLPrepareW":        l.prepare(true),
		"SQLExecute":         l.execute,
		"SQLExecDirect":      l.execDirect(false),
		"SQLExecDirectW":     l.execDirect(true),
		"SQLNumResultCols":   l.numResultCols,
		"SQLDescribeCol":     l.describeCol(false),
		"SQLDescribeColW":    l.describeCol(true),
		"SQLBindCol":         l.bindCol,
		"SQLFetch":           l.fetch,
		"SQLFetchScroll":     l.fetchScroll,
		"SQLGetData":         l.getData,
		"SQLMoreResults":     l.moreResults,
		"SQLRowCount":        l.rowCount,
		"SQLCloseCursor":     l.closeCursor,
		"SQLNumParams":       l.numParams,
		"SQLDescribeParam":   l.describeParam,
		"SQLBindParameter":   l.bindParameter,
		"SQLGetDiagRec":      l.getDiagRec(false),
		"SQLGetDiagRecW":     l.getDiagRec(true),
		"SQLDataSources":     l.dataSources(false),
		"SQLDataSourcesW":    l.dataSources(true),
		"SQLDrivers":         l.listDrivers(false),
		"SQLDriversW":        l.listDrivers(true),
		"SQLCancel":          l.cancel,
	}
}

func (l *Library) allocHandle(a []uintptr) api.SQLRETURN {
	switch int16(a[0]) {
	case api.SQL_HANDLE_ENV:
		if a[1] != 0 {
			return api.SQL_ERROR
		}
		putHandle(a[2], l.alloc(&env{attrs: make(map[int32]uintptr)}))
		return api.SQL_SUCCESS
	case api.SQL_HANDLE_DBC:
		return l.allocConnect([]uintptr{a[1], a[2]})
	case api.SQL_HANDLE_STMT:
		return l.allocStmt([]uintptr{a[1], a[2]})
	}
	return api.SQL_ERROR
}

func (l *Library) allocEnv(a []uintptr) api.SQLRETURN {
	putHandle(a[0], l.alloc(&env{version: api.SQL_OV_ODBC2, attrs: make(map[int32]uintptr)}))
	return api.SQL_SUCCESS
}

func (l *Library) allocConnect(a []uintptr) api.SQLRETURN {
	e := l.env(a[0])
	if e == nil {
		return api.SQL_INVALID_HANDLE
	}
	if e.version == 0 {
		return fail(e, "HY010", "function sequence error: ODBC version not set")
	}
	putHandle(a[1], l.alloc(&conn{env: e, attrs: make(map[int32]uintptr)}))
	return api.SQL_SUCCESS
}

func (l *Library) allocStmt(a []uintptr) api.SQLRETURN {
	c := l.conn(a[0])
	if c == nil {
		return api.SQL_INVALID_HANDLE
	}
	if !c.connected {
		return fail(c, "08003", "connection not open")
	}
	putHandle(a[1], l.alloc(&stmt{
		conn:   c,
		params: make(map[int]*paramBinding),
		cols:   make(map[int]*colBinding),
		attrs:  make(map[int32]uintptr),
	}))
	return api.SQL_SUCCESS
}

func (l *Library) freeHandle(a []uintptr) api.SQLRETURN {
	h := a[1]
	switch o := l.objects[h].(type) {
	case *env:
		if int16(a[0]) != api.SQL_HANDLE_ENV {
			return api.SQL_INVALID_HANDLE
		}
		for _, x := range l.objects {
			if c, ok := x.(*conn); ok && c.env == o {
				return fail(o, "HY010", "function sequence error: connections still allocated")
			}
		}
	case *conn:
		if int16(a[0]) != api.SQL_HANDLE_DBC {
			return api.SQL_INVALID_HANDLE
		}
		if o.connected {
			return fail(o, "HY010", "function sequence error: still connected")
		}
	case *stmt:
		if int16(a[0]) != api.SQL_HANDLE_STMT {
			return api.SQL_INVALID_HANDLE
		}
	default:
		return api.SQL_INVALID_HANDLE
	}
	delete(l.objects, h)
	return api.SQL_SUCCESS
}

func (l *Library) freeStmt(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	switch uint16(a[1]) {
	case api.SQL_CLOSE:
		s.cur, s.pending = nil, nil
	case api.SQL_DROP:
		delete(l.objects, a[0])
	case api.SQL_UNBIND:
		s.cols = make(map[int]*colBinding)
	case api.SQL_RESET_PARAMS:
		s.params = make(map[int]*paramBinding)
	default:
		return fail(s, "HY092", "invalid option")
	}
	return api.SQL_SUCCESS
}

func (l *Library) setEnvAttr(a []uintptr) api.SQLRETURN {
	e := l.env(a[0])
	if e == nil {
		return api.SQL_INVALID_HANDLE
	}
	attr := int32(a[1])
	if attr == api.SQL_ATTR_ODBC_VERSION {
		e.version = int(a[2])
	}
	e.attrs[attr] = a[2]
	return api.SQL_SUCCESS
}

func (l *Library) setConnectAttr(a []uintptr) api.SQLRETURN {
	c := l.conn(a[0])
	if c == nil {
		return api.SQL_INVALID_HANDLE
	}
	c.attrs[int32(a[1])] = a[2]
	return api.SQL_SUCCESS
}

func (l *Library) setStmtAttr(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	s.attrs[int32(a[1])] = a[2]
	return api.SQL_SUCCESS
}

func (l *Library) connect(a []uintptr) api.SQLRETURN {
	c := l.conn(a[0])
	if c == nil {
		return api.SQL_INVALID_HANDLE
	}
	server := cstringAt(a[1], ntsLen(int16(a[2])))
	if strings.Contains(strings.ToUpper(server), "FAIL") {
		return fail(c, "08001", "unable to connect to data source")
	}
	c.connected = true
	c.connStr = "DSN=" + server
	return api.SQL_SUCCESS
}

func ntsLen(n int16) int {
	if n == api.SQL_NTS {
		return -1
	}
	return int(n)
}

func (l *Library) driverConnect(wide bool) func(a []uintptr) api.SQLRETURN {
	return func(a []uintptr) api.SQLRETURN {
		c := l.conn(a[0])
		if c == nil {
			return api.SQL_INVALID_HANDLE
		}
		var s string
		if wide {
			s = wstringAt(a[2], ntsLen(int16(a[3])))
		} else {
			s = cstringAt(a[2], ntsLen(int16(a[3])))
		}
		if strings.Contains(strings.ToUpper(s), "FAIL") {
			return fail(c, "08001", "unable to connect to data source")
		}
		if c.connected {
			return fail(c, "08002", "connection name in use")
		}
		c.connected = true
		c.connStr = s
		return api.SQL_SUCCESS
	}
}

func (l *Library) disconnect(a []uintptr) api.SQLRETURN {
	c := l.conn(a[0])
	if c == nil {
		return api.SQL_INVALID_HANDLE
	}
	if !c.connected {
		return fail(c, "08003", "connection not open")
	}
	for h, o := range l.objects {
		if s, ok := o.(*stmt); ok && s.conn == c {
			delete(l.objects, h)
		}
	}
	c.connected = false
	return api.SQL_SUCCESS
}

func (l *Library) endTran(a []uintptr) api.SQLRETURN {
	if int16(a[0]) != api.SQL_HANDLE_DBC {
		return api.SQL_ERROR
	}
	c := l.conn(a[1])
	if c == nil {
		return api.SQL_INVALID_HANDLE
	}
	if int16(a[2]) == api.SQL_COMMIT {
		c.commits++
	} else {
		c.rollbacks++
	}
	return api.SQL_SUCCESS
}

func (l *Library) readQuery(wide bool, p uintptr, n int32) string {
	size := -1
	if n != api.SQL_NTS {
		size = int(n)
	}
	if wide {
		return wstringAt(p, size)
	}
	return cstringAt(p, size)
}

func (l *Library) prepare(wide bool) func(a []uintptr) api.SQLRETURN {
	return func(a []uintptr) api.SQLRETURN {
		s := l.stmt(a[0])
		if s == nil {
			return api.SQL_INVALID_HANDLE
		}
		if s.cur != nil {
			return fail(s, "24000", "invalid cursor state")
		}
		q := l.readQuery(wide, a[1], int32(a[2]))
		if strings.HasPrefix(strings.ToUpper(q), "BAD") {
			return fail(s, "42000", "syntax error")
		}
		s.query, s.prepared = q, true
		return api.SQL_SUCCESS
	}
}

func (l *Library) execute(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	if !s.prepared {
		return fail(s, "HY010", "function sequence error: statement not prepared")
	}
	return l.run(s)
}

func (l *Library) execDirect(wide bool) func(a []uintptr) api.SQLRETURN {
	return func(a []uintptr) api.SQLRETURN {
		s := l.stmt(a[0])
		if s == nil {
			return api.SQL_INVALID_HANDLE
		}
		if s.cur != nil {
			return fail(s, "24000", "invalid cursor state")
		}
		s.query, s.prepared = l.readQuery(wide, a[1], int32(a[2])), false
		return l.run(s)
	}
}

func countParams(q string) int {
	n := 0
	quoted := false
	for _, c := range q {
		switch {
		case c == '\'':
			quoted = !quoted
		case c == '?' && !quoted:
			n++
		}
	}
	return n
}

func (l *Library) run(s *stmt) api.SQLRETURN {
	if s.cur != nil {
		return fail(s, "24000", "invalid cursor state")
	}
	args := make([]interface{}, countParams(s.query))
	for i := range args {
		b, ok := s.params[i+1]
		if !ok {
			return fail(s, "07002", "COUNT field incorrect")
		}
		args[i] = l.readValue(b)
	}
	l.executed = append(l.executed, Execution{Query: s.query, Args: args})

	upper := strings.ToUpper(strings.TrimSpace(s.query))
	if strings.HasPrefix(upper, "FAIL") {
		return fail(s, "42000", "statement failed")
	}
	var rs []*ResultSet
	if l.Handler != nil {
		var err error
		rs, err = l.Handler(s.query, args)
		if err != nil {
			state := "HY000"
			var se *Error
			if errors.As(err, &se) {
				state = se.State
			}
			return fail(s, state, err.Error())
		}
	} else if canned, ok := l.results[s.query]; ok {
		rs = canned
	} else if strings.HasPrefix(upper, "SELECT") {
		rs = []*ResultSet{echo(args)}
	} else {
		n := int64(0)
		for _, p := range []string{"INSERT", "UPDATE", "DELETE"} {
			if strings.HasPrefix(upper, p) {
				n = 1
			}
		}
		rs = []*ResultSet{{RowCount: n}}
	}
	s.row, s.rowCount, s.cur, s.pending = 0, 0, nil, nil
	if len(rs) > 0 {
		s.cur, s.pending = rs[0], append([]*ResultSet(nil), rs[1:]...)
		s.rowCount = rs[0].RowCount
	}
	return api.SQL_SUCCESS
}

func (l *Library) numResultCols(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	n := 0
	if s.cur != nil {
		n = len(s.cur.Columns)
	}
	putInt16(a[1], int16(n))
	return api.SQL_SUCCESS
}

func (l *Library) describeCol(wide bool) func(a []uintptr) api.SQLRETURN {
	return func(a []uintptr) api.SQLRETURN {
		s := l.stmt(a[0])
		if s == nil {
			return api.SQL_INVALID_HANDLE
		}
		col := int(uint16(a[1]))
		if s.cur == nil || col < 1 || col > len(s.cur.Columns) {
			return fail(s, "07009", "invalid descriptor index")
		}
		c := s.cur.Columns[col-1]
		size := int(int16(a[3]))
		var n int
		if wide {
			n = putWString(a[2], size, c.Name)
		} else {
			n = putString(a[2], size, c.Name)
		}
		putInt16(a[4], int16(n))
		putInt16(a[5], int16(c.SQLType))
		l.putLen(a[6], int64(c.Size))
		putInt16(a[7], int16(c.Digits))
		nullable := int16(api.SQL_NO_NULLS)
		if c.Nullable {
			nullable = api.SQL_NULLABLE
		}
		putInt16(a[8], nullable)
		if n >= size {
			return info(s, "01004", "string data, right truncated")
		}
		return api.SQL_SUCCESS
	}
}

func (l *Library) bindCol(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	col := int(uint16(a[1]))
	if a[3] == 0 && a[5] == 0 {
		delete(s.cols, col)
		return api.SQL_SUCCESS
	}
	s.cols[col] = &colBinding{ctype: int16(a[2]), ptr: a[3], buflen: l.sqllen(a[4]), ind: a[5]}
	return api.SQL_SUCCESS
}

func (l *Library) fetch(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	return l.fetchRow(s, s.row)
}

// fetchRow makes row idx current and writes it to the bound columns.
func (l *Library) fetchRow(s *stmt, idx int) api.SQLRETURN {
	if s.cur == nil || len(s.cur.Columns) == 0 {
		return fail(s, "24000", "invalid cursor state")
	}
	s.gets = nil
	if idx < 0 {
		s.row = 0
		return api.SQL_NO_DATA
	}
	if idx >= len(s.cur.Rows) {
		s.row = len(s.cur.Rows)
		return api.SQL_NO_DATA
	}
	row := s.cur.Rows[idx]
	s.row = idx + 1
	ret := api.SQLRETURN(api.SQL_SUCCESS)
	for col, b := range s.cols {
		if col < 1 || col > len(row) {
			return fail(s, "07009", "invalid descriptor index")
		}
		ind, truncated := writeValue(b, row[col-1])
		l.putLen(b.ind, ind)
		if truncated {
			ret = info(s, "01004", "string data, right truncated")
		}
	}
	return ret
}

func (l *Library) moreResults(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	if len(s.pending) == 0 {
		s.cur = nil
		return api.SQL_NO_DATA
	}
	s.cur, s.pending = s.pending[0], s.pending[1:]
	s.row, s.rowCount = 0, s.cur.RowCount
	return api.SQL_SUCCESS
}

func (l *Library) rowCount(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	l.putLen(a[1], s.rowCount)
	return api.SQL_SUCCESS
}

func (l *Library) closeCursor(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	if s.cur == nil {
		return fail(s, "24000", "invalid cursor state")
	}
	s.cur, s.pending = nil, nil
	return api.SQL_SUCCESS
}

func (l *Library) numParams(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	putInt16(a[1], int16(countParams(s.query)))
	return api.SQL_SUCCESS
}

func (l *Library) describeParam(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	n := int(uint16(a[1]))
	if n < 1 || n > countParams(s.query) {
		return fail(s, "07009", "invalid descriptor index")
	}
	d := ParamDesc{SQLType: api.SQL_VARCHAR, Size: 255}
	if ps, ok := l.params[s.query]; ok && n <= len(ps) {
		d = ps[n-1]
	}
	putInt16(a[2], int16(d.SQLType))
	l.putLen(a[3], int64(d.Size))
	putInt16(a[4], int16(d.Digits))
	putInt16(a[5], api.SQL_NULLABLE)
	return api.SQL_SUCCESS
}

func (l *Library) bindParameter(a []uintptr) api.SQLRETURN {
	s := l.stmt(a[0])
	if s == nil {
		return api.SQL_INVALID_HANDLE
	}
	s.params[int(uint16(a[1]))] = &paramBinding{
		ioType:  int16(a[2]),
		ctype:   int16(a[3]),
		sqltype: int16(a[4]),
		size:    uint64(l.sqllen(a[5])),
		digits:  int16(a[6]),
		ptr:     a[7],
		buflen:  l.sqllen(a[8]),
		ind:     a[9],
	}
	return api.SQL_SUCCESS
}

func (l *Library) getDiagRec(wide bool) func(a []uintptr) api.SQLRETURN {
	return func(a []uintptr) api.SQLRETURN {
		o, ok := l.objects[a[1]].(diagnoser)
		if !ok {
			return api.SQL_INVALID_HANDLE
		}
		diag := o.base().diag
		rec := int(int16(a[2]))
		if rec < 1 {
			return api.SQL_ERROR
		}
		if rec > len(diag) {
			return api.SQL_NO_DATA
		}
		d := diag[rec-1]
		size := int(int16(a[6]))
		var n int
		if wide {
			putWString(a[3], 6, d.state)
			n = putWString(a[5], size, d.message)
		} else {
			putString(a[3], 6, d.state)
			n = putString(a[5], size, d.message)
		}
		putInt32(a[4], d.native)
		putInt16(a[7], int16(n))
		if n >= size {
			return api.SQL_SUCCESS_WITH_INFO
		}
		return api.SQL_SUCCESS
	}
}

func firstDirection(d uint16) bool {
	return d == api.SQL_FETCH_FIRST || d == api.SQL_FETCH_FIRST_USER || d == api.SQL_FETCH_FIRST_SYSTEM
}

func (l *Library) putText(wide bool, p uintptr, size int, s string) int {
	if wide {
		return putWString(p, size, s)
	}
	return putString(p, size, s)
}

func (l *Library) dataSources(wide bool) func(a []uintptr) api.SQLRETURN {
	return func(a []uintptr) api.SQLRETURN {
		e := l.env(a[0])
		if e == nil {
			return api.SQL_INVALID_HANDLE
		}
		if firstDirection(uint16(a[1])) {
			e.dsnIdx = 0
		}
		if e.dsnIdx >= len(l.dsns) {
			return api.SQL_NO_DATA
		}
		d := l.dsns[e.dsnIdx]
		e.dsnIdx++
		putInt16(a[4], int16(l.putText(wide, a[2], int(int16(a[3])), d.Name)))
		putInt16(a[7], int16(l.putText(wide, a[5], int(int16(a[6])), d.Description)))
		return api.SQL_SUCCESS
	}
}

func (l *Library) listDrivers(wide bool) func(a []uintptr) api.SQLRETURN {
	return func(a []uintptr) api.SQLRETURN {
		e := l.env(a[0])
		if e == nil {
			return api.SQL_INVALID_HANDLE
		}
		if firstDirection(uint16(a[1])) {
			e.drvIdx = 0
		}
		if e.drvIdx >= len(l.drivers) {
			return api.SQL_NO_DATA
		}
		d := l.drivers[e.drvIdx]
		e.drvIdx++
		putInt16(a[4], int16(l.putText(wide, a[2], int(int16(a[3])), d.Description)))
		attrs := strings.Join(d.Attributes, "\x00") + "\x00"
		putInt16(a[7], int16(l.putText(wide, a[5], int(int16(a[6])), attrs)))
		return api.SQL_SUCCESS
	}
}

func (l *Library) cancel(a []uintptr) api.SQLRETURN {
	if l.stmt(a[0]) == nil {
		return api.SQL_INVALID_HANDLE
	}
	return api.SQL_SUCCESS
}
