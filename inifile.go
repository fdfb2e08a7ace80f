// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odbc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// odbc.ini sections that do not define a data source.
const (
	dataSourcesSection = "ODBC Data Sources"
	odbcSection        = "ODBC"
)

// DataSourceFiles returns the odbc.ini files read by unixODBC, the
// user file first. ODBCINI and ODBCSYSINI override the defaults.
func DataSourceFiles() []string {
	var files []string
	if f := os.Getenv("ODBCINI"); f != "" {
		files = append(files, f)
	} else if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".odbc.ini"))
	}
	dir := os.Getenv("ODBCSYSINI")
	if dir == "" {
		dir = "/etc"
	}
	return append(files, filepath.Join(dir, "odbc.ini"))
}

// ReadDataSources returns the data sources defined in files. Missing
// files are skipped; a name defined in more than one file is reported
// once, from the first file defining it.
func ReadDataSources(files ...string) ([]DSN, error) {
	var dsns []DSN
	seen := make(map[string]bool)
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, f)
		if err != nil {
			return dsns, fmt.Errorf("odbc: reading %s: %w", f, err)
		}
		listed := cfg.Section(dataSourcesSection)
		for _, sec := range cfg.Sections() {
			name := sec.Name()
			switch {
			case name == ini.DefaultSection, name == dataSourcesSection, name == odbcSection, seen[name]:
				continue
			}
			seen[name] = true
			desc := sec.Key("Description").String()
			if desc == "" {
				desc = listed.Key(name).String()
			}
			if desc == "" {
				desc = sec.Key("Driver").String()
			}
			dsns = append(dsns, DSN{Name: name, Description: desc})
		}
	}
	return dsns, nil
}
