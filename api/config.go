// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"fmt"
	"log/slog"

	"github.com/dlodbc/odbc/internal/logger"
)

// Config selects the driver manager library and the ABI it was built
// with. It must not be changed after it is passed to Open.
type Config struct {
	// Library is the driver manager to load: a name registered with
	// RegisterLibrary, a file name, or a path.
	Library string

	// SizeOfLong is the width of C long in bytes, 4 or 8.
	SizeOfLong int

	// Unicode prefers the wide character entry points (SQLPrepareW
	// and friends) when the library exports them.
	Unicode bool

	// Legacy makes SQLLEN and SQLULEN 4 bytes wide, as in driver
	// managers built in 32-bit compatible mode.
	Legacy bool

	// Logger receives binding diagnostics. Nil means logger.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by the database/sql
// driver.
func DefaultConfig() Config {
	return Config{
		Library:    DefaultLibrary,
		SizeOfLong: 8,
		Unicode:    true,
		Legacy:     true,
	}
}

func (c Config) validate() error {
	if c.Library == "" {
		return fmt.Errorf("odbc: no driver manager library configured")
	}
	if c.SizeOfLong != 4 && c.SizeOfLong != 8 {
		return fmt.Errorf("odbc: size of long must be 4 or 8, not %d", c.SizeOfLong)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logger.Default()
}
