// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/atomic"

	"github.com/dlodbc/odbc/api"
)

// Binding is the buffer bound to one parameter or result column.
type Binding struct {
	CType   api.SQLSMALLINT
	SQLType api.SQLSMALLINT
	Size    api.SQLULEN
	Digits  api.SQLSMALLINT
	Buffer  Buffer
}

// ScrollMode selects how Cursor.Scroll interprets its offset.
type ScrollMode int

const (
	// ScrollRelative moves offset rows from the current row.
	ScrollRelative ScrollMode = iota
	// ScrollAbsolute moves to row offset, counting from 1.
	ScrollAbsolute
)

// Cursor is a statement handle with the buffers bound to it.
// Use Connection.Cursor to get one.
type Cursor struct {
	conn  *Connection
	dm    *api.DriverManager
	h     api.SQLHSTMT
	freed atomic.Bool

	query    string
	prepared bool
	// paramDesc is nil when the driver manager cannot describe the
	// parameters of the prepared query.
	paramDesc []Binding
	params    []Binding

	desc      []api.ColumnDesc
	cols      []Binding
	rowCount  int64
	arraySize int
	messages  []DiagRecord

	row []interface{}
	err error
}

func newCursor(c *Connection, h api.SQLHSTMT) *Cursor {
	return &Cursor{conn: c, dm: c.dm, h: h, arraySize: 1, rowCount: -1}
}

// Handle returns the native statement handle.
func (c *Cursor) Handle() api.SQLHSTMT { return c.h }

// lock takes the connection mutex and checks c is usable.
func (c *Cursor) lock() error {
	c.conn.mu.Lock()
	if c.freed.Load() || c.conn.freed.Load() {
		c.conn.mu.Unlock()
		return ErrHandleFreed
	}
	return nil
}

func (c *Cursor) unlock() { c.conn.mu.Unlock() }

func (c *Cursor) check(apiName string, ret api.SQLRETURN, err error) error {
	if err == nil && ret == api.SQL_SUCCESS_WITH_INFO {
		c.collect()
	}
	return check(c.dm, apiName, c.h, ret, err)
}

// collect saves the diagnostic records of a SQL_SUCCESS_WITH_INFO
// return in Messages.
func (c *Cursor) collect() {
	recs, err := diagRecords(c.dm, c.h)
	if err != nil {
		c.conn.log.Debug("unable to read diagnostics", "error", err)
	}
	c.messages = append(c.messages, recs...)
}

func (c *Cursor) freeStmt(option api.SQLUSMALLINT) error {
	ret, err := c.dm.SQLFreeStmt(c.h, option)
	return c.check("SQLFreeStmt", ret, err)
}

// reset closes the open cursor and drops every binding.
func (c *Cursor) reset() error {
	for _, o := range []api.SQLUSMALLINT{api.SQL_CLOSE, api.SQL_UNBIND, api.SQL_RESET_PARAMS} {
		if err := c.freeStmt(o); err != nil {
			return err
		}
	}
	c.query, c.prepared = "", false
	c.paramDesc, c.params = nil, nil
	c.desc, c.cols = nil, nil
	c.rowCount = -1
	c.messages = nil
	c.row, c.err = nil, nil
	return nil
}

// Prepare prepares query for ExecutePrepared and describes its
// parameters when the driver manager can.
func (c *Cursor) Prepare(query string) error {
	if err := c.lock(); err != nil {
		return err
	}
	defer c.unlock()
	return c.prepare(query)
}

func (c *Cursor) prepare(query string) error {
	if err := c.reset(); err != nil {
		return err
	}
	ret, err := c.dm.Prepare(c.h, query)
	if err := c.check("SQLPrepare", ret, err); err != nil {
		return err
	}
	c.query, c.prepared = query, true
	c.paramDesc = c.describeParams()
	return nil
}

// describeParams returns the server types of the parameters of the
// prepared statement, or nil to use client types.
func (c *Cursor) describeParams() []Binding {
	var n api.SQLSMALLINT
	ret, err := c.dm.SQLNumParams(c.h, &n)
	if err != nil || IsError(ret) {
		c.conn.log.Debug("SQLNumParams failed, using client parameter types", "error", err)
		return nil
	}
	descs := make([]Binding, n)
	for i := range descs {
		var size api.SQLULEN
		var nullable api.SQLSMALLINT
		d := &descs[i]
		ret, err := c.dm.SQLDescribeParam(c.h, api.SQLUSMALLINT(i+1), &d.SQLType, &size, &d.Digits, &nullable)
		if err != nil || IsError(ret) {
			c.conn.log.Debug("SQLDescribeParam failed, using client parameter types", "param", i+1, "error", err)
			return nil
		}
		d.Size = c.dm.Types().ULen(size)
		d.CType = CTypeFor(d.SQLType)
	}
	return descs
}

// clientParam is the binding used when parameter types are unknown:
// text the driver converts to the target type.
func clientParam() Binding {
	return Binding{CType: api.SQL_C_CHAR, SQLType: clientParamSQLType, Size: clientParamSize}
}

// bindParams binds args to the statement, with server types when
// descs is not nil.
func (c *Cursor) bindParams(descs []Binding, args []interface{}) error {
	if descs != nil && len(descs) != len(args) {
		return fmt.Errorf("%w: statement has %d parameters, %d given", ErrProgramming, len(descs), len(args))
	}
	params := make([]Binding, len(args))
	for i, v := range args {
		b := clientParam()
		if descs != nil {
			b = descs[i]
		}
		buf, err := NewBuffer(c.dm.Types(), b.CType, int(b.Size))
		if err != nil {
			return err
		}
		if err := buf.SetValue(v); err != nil {
			return fmt.Errorf("parameter %d: %w", i+1, err)
		}
		b.Buffer = buf
		ret, err := c.dm.SQLBindParameter(c.h, api.SQLUSMALLINT(i+1), api.SQL_PARAM_INPUT,
			b.CType, b.SQLType, b.Size, b.Digits,
			buf.Ptr(), api.SQLLEN(buf.Size()), buf.Indicator())
		if err := c.check("SQLBindParameter", ret, err); err != nil {
			return err
		}
		params[i] = b
	}
	c.params = params
	return nil
}

// Execute executes query directly, binding args as text.
func (c *Cursor) Execute(query string, args ...interface{}) error {
	if err := c.lock(); err != nil {
		return err
	}
	defer c.unlock()
	if err := c.reset(); err != nil {
		return err
	}
	if err := c.bindParams(nil, args); err != nil {
		return err
	}
	c.query = query
	ret, err := c.dm.ExecDirect(c.h, query)
	return c.executed("SQLExecDirect", ret, err)
}

// ExecutePrepared executes the query of the last Prepare with args.
func (c *Cursor) ExecutePrepared(args ...interface{}) error {
	if err := c.lock(); err != nil {
		return err
	}
	defer c.unlock()
	return c.executePrepared(args)
}

func (c *Cursor) executePrepared(args []interface{}) error {
	if !c.prepared {
		return fmt.Errorf("%w: no prepared statement", ErrProgramming)
	}
	for _, o := range []api.SQLUSMALLINT{api.SQL_CLOSE, api.SQL_UNBIND, api.SQL_RESET_PARAMS} {
		if err := c.freeStmt(o); err != nil {
			return err
		}
	}
	c.params = nil
	c.desc, c.cols, c.row, c.err = nil, nil, nil, nil
	c.messages = nil
	if err := c.bindParams(c.paramDesc, args); err != nil {
		return err
	}
	ret, err := c.dm.SQLExecute(c.h)
	return c.executed("SQLExecute", ret, err)
}

// ExecuteMany prepares query once and executes it for every set of
// arguments. RowCount is the total over all executions.
func (c *Cursor) ExecuteMany(query string, argSets [][]interface{}) error {
	if err := c.lock(); err != nil {
		return err
	}
	defer c.unlock()
	if err := c.prepare(query); err != nil {
		return err
	}
	var total int64
	for _, args := range argSets {
		if err := c.executePrepared(args); err != nil {
			return err
		}
		if c.rowCount > 0 {
			total += c.rowCount
		}
	}
	c.rowCount = total
	return nil
}

// executed finishes an execution: row count and result columns.
func (c *Cursor) executed(apiName string, ret api.SQLRETURN, err error) error {
	if err == nil && ret == api.SQL_NO_DATA {
		// searched update or delete touching no rows
		c.rowCount = 0
		return nil
	}
	if err := c.check(apiName, ret, err); err != nil {
		return err
	}
	return c.describeResults()
}

// describeResults reads the row count and binds one buffer per result
// column of the current result set.
func (c *Cursor) describeResults() error {
	var n api.SQLLEN
	ret, err := c.dm.SQLRowCount(c.h, &n)
	if err := c.check("SQLRowCount", ret, err); err != nil {
		return err
	}
	c.rowCount = int64(c.dm.Types().Len(n))

	var ncol api.SQLSMALLINT
	ret, err = c.dm.SQLNumResultCols(c.h, &ncol)
	if err := c.check("SQLNumResultCols", ret, err); err != nil {
		return err
	}
	c.desc = make([]api.ColumnDesc, ncol)
	c.cols = make([]Binding, ncol)
	for i := range c.desc {
		d, ret, err := c.dm.DescribeCol(c.h, api.SQLUSMALLINT(i+1))
		if err := c.check("SQLDescribeCol", ret, err); err != nil {
			return err
		}
		ctype := CTypeFor(d.DataType)
		buf, err := NewBuffer(c.dm.Types(), ctype, int(d.Size))
		if err != nil {
			return err
		}
		ret, err = c.dm.SQLBindCol(c.h, api.SQLUSMALLINT(i+1), ctype,
			buf.Ptr(), api.SQLLEN(buf.Size()), buf.Indicator())
		if err := c.check("SQLBindCol", ret, err); err != nil {
			return err
		}
		c.desc[i] = d
		c.cols[i] = Binding{CType: ctype, SQLType: d.DataType, Size: d.Size, Digits: d.DecimalDigits, Buffer: buf}
	}
	return nil
}

// fetched decodes the bound buffers after a fetch. It returns nil at
// the end of the result set.
func (c *Cursor) fetched(apiName string, ret api.SQLRETURN, err error) ([]interface{}, error) {
	if err == nil && ret == api.SQL_NO_DATA {
		return nil, nil
	}
	if err := c.check(apiName, ret, err); err != nil {
		return nil, err
	}
	row := make([]interface{}, len(c.cols))
	for i, b := range c.cols {
		row[i] = b.Buffer.Value()
	}
	return row, nil
}

func (c *Cursor) fetchOne() ([]interface{}, error) {
	if len(c.cols) == 0 {
		return nil, fmt.Errorf("%w: no result set", ErrProgramming)
	}
	ret, err := c.dm.SQLFetch(c.h)
	return c.fetched("SQLFetch", ret, err)
}

// FetchOne returns the next row, or nil after the last one.
func (c *Cursor) FetchOne() ([]interface{}, error) {
	if err := c.lock(); err != nil {
		return nil, err
	}
	defer c.unlock()
	return c.fetchOne()
}

// FetchMany returns up to n rows; n <= 0 means ArraySize rows.
func (c *Cursor) FetchMany(n int) ([][]interface{}, error) {
	if err := c.lock(); err != nil {
		return nil, err
	}
	defer c.unlock()
	if n <= 0 {
		n = c.arraySize
	}
	var rows [][]interface{}
	for len(rows) < n {
		row, err := c.fetchOne()
		if err != nil {
			return rows, err
		}
		if row == nil {
			break
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FetchAll returns the remaining rows of the result set.
func (c *Cursor) FetchAll() ([][]interface{}, error) {
	if err := c.lock(); err != nil {
		return nil, err
	}
	defer c.unlock()
	var rows [][]interface{}
	for {
		row, err := c.fetchOne()
		if err != nil {
			return rows, err
		}
		if row == nil {
			return rows, nil
		}
		rows = append(rows, row)
	}
}

// Next fetches the next row for Row. It returns false at the end of
// the result set or on error, see Err.
func (c *Cursor) Next() bool {
	c.row, c.err = c.FetchOne()
	return c.row != nil
}

// Row returns the row fetched by the last Next.
func (c *Cursor) Row() []interface{} { return c.row }

// Err returns the error that stopped Next, if any.
func (c *Cursor) Err() error { return c.err }

// Scroll moves the cursor with SQLFetchScroll and returns the row it
// lands on, or nil outside the result set. The driver must support
// scrollable cursors for anything but ScrollRelative by 1.
func (c *Cursor) Scroll(offset int, mode ScrollMode) ([]interface{}, error) {
	if err := c.lock(); err != nil {
		return nil, err
	}
	defer c.unlock()
	if len(c.cols) == 0 {
		return nil, fmt.Errorf("%w: no result set", ErrProgramming)
	}
	var orientation api.SQLSMALLINT
	switch mode {
	case ScrollRelative:
		orientation = api.SQL_FETCH_RELATIVE
	case ScrollAbsolute:
		orientation = api.SQL_FETCH_ABSOLUTE
	default:
		return nil, fmt.Errorf("%w: unknown scroll mode %d", ErrProgramming, mode)
	}
	ret, err := c.dm.SQLFetchScroll(c.h, orientation, api.SQLLEN(offset))
	if errors.Is(err, api.ErrNotImplemented) {
		return nil, notSupported("scroll")
	}
	return c.fetched("SQLFetchScroll", ret, err)
}

// NextSet moves to the next result set. It returns false when there
// are no more.
func (c *Cursor) NextSet() (bool, error) {
	if err := c.lock(); err != nil {
		return false, err
	}
	defer c.unlock()
	if err := c.freeStmt(api.SQL_UNBIND); err != nil {
		return false, err
	}
	c.desc, c.cols = nil, nil
	ret, err := c.dm.SQLMoreResults(c.h)
	if err == nil && ret == api.SQL_NO_DATA {
		return false, nil
	}
	if err := c.check("SQLMoreResults", ret, err); err != nil {
		return false, err
	}
	if err := c.describeResults(); err != nil {
		return false, err
	}
	return true, nil
}

// Description describes the columns of the current result set.
// It is empty when the last statement produced no result set.
func (c *Cursor) Description() []api.ColumnDesc {
	c.conn.mu.Lock()
	defer c.conn.mu.Unlock()
	return append([]api.ColumnDesc(nil), c.desc...)
}

// RowCount returns the number of rows the last execution affected,
// or -1 when unknown.
func (c *Cursor) RowCount() int64 {
	c.conn.mu.Lock()
	defer c.conn.mu.Unlock()
	return c.rowCount
}

// ArraySize is the default number of rows FetchMany returns.
func (c *Cursor) ArraySize() int {
	c.conn.mu.Lock()
	defer c.conn.mu.Unlock()
	return c.arraySize
}

// SetArraySize sets ArraySize; values below 1 become 1.
func (c *Cursor) SetArraySize(n int) {
	c.conn.mu.Lock()
	defer c.conn.mu.Unlock()
	if n < 1 {
		n = 1
	}
	c.arraySize = n
}

// Messages returns the warnings reported since the last execution,
// such as truncated character data.
func (c *Cursor) Messages() []DiagRecord {
	c.conn.mu.Lock()
	defer c.conn.mu.Unlock()
	return append([]DiagRecord(nil), c.messages...)
}

// SetQueryTimeout sets SQL_ATTR_QUERY_TIMEOUT in whole seconds;
// 0 disables it.
func (c *Cursor) SetQueryTimeout(d time.Duration) error {
	if err := c.lock(); err != nil {
		return err
	}
	defer c.unlock()
	return c.setQueryTimeout(d)
}

func (c *Cursor) setQueryTimeout(d time.Duration) error {
	secs := d / time.Second
	if d > 0 && secs == 0 {
		secs = 1
	}
	ret, err := c.dm.SQLSetStmtAttr(c.h, api.SQL_ATTR_QUERY_TIMEOUT, api.SQLPOINTER(secs), api.SQL_IS_UINTEGER)
	return c.check("SQLSetStmtAttr", ret, err)
}

// CallProc is not supported; it returns ErrNotSupported.
func (c *Cursor) CallProc(name string, args ...interface{}) error { return notSupported("callproc") }
// SetInputSizes is not supported; it returns ErrNotSupported.
func (c *Cursor) SetInputSizes(sizes ...int) error                 { return notSupported("setinputsizes") }
// SetOutputSize is not supported; it returns ErrNotSupported.
func (c *Cursor) SetOutputSize(size int, column int) error         { return notSupported("setoutputsize") }

// Close frees the statement handle.
func (c *Cursor) Close() error {
	c.conn.mu.Lock()
	defer c.conn.mu.Unlock()
	if c.conn.freed.Load() {
		return ErrHandleFreed
	}
	delete(c.conn.cursors, c)
	return c.free()
}

// free releases the statement handle. The connection mutex is held.
func (c *Cursor) free() error {
	if c.freed.Swap(true) {
		return ErrHandleFreed
	}
	c.dm.SQLFreeStmt(c.h, api.SQL_CLOSE)
	c.params, c.cols = nil, nil
	return releaseHandle(c.dm, c.h)
}
