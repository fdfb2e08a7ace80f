// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/dlodbc/odbc/api"
)

// profile is one named entry of the profiles file:
//
//	default:
//	  library: libodbc.so.2
//	  size_of_long: 8
//	  unicode: true
//	  legacy: false
//	  connection: DSN=warehouse;UID=report
type profile struct {
	Library    string `yaml:"library"`
	SizeOfLong int    `yaml:"size_of_long"`
	Unicode    *bool  `yaml:"unicode"`
	Legacy     *bool  `yaml:"legacy"`
	Connection string `yaml:"connection"`
}

func loadProfiles(path string) (map[string]profile, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var profiles map[string]profile
	if err := yaml.Unmarshal(bs, &profiles); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return profiles, nil
}

// apply overrides the fields of cfg that p sets.
func (p profile) apply(cfg *api.Config) {
	if p.Library != "" {
		cfg.Library = p.Library
	}
	if p.SizeOfLong != 0 {
		cfg.SizeOfLong = p.SizeOfLong
	}
	if p.Unicode != nil {
		cfg.Unicode = *p.Unicode
	}
	if p.Legacy != nil {
		cfg.Legacy = *p.Legacy
	}
}
