// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProfiles = `
default:
  library: libodbc.so.2
  connection: DSN=warehouse
ansi:
  library: libiodbc.so.2
  size_of_long: 4
  unicode: false
  legacy: true
`

func withOptions(t *testing.T, o options) {
	t.Helper()
	saved := opts
	opts = o
	t.Cleanup(func() {
		opts = saved
		selected.connection = ""
	})
}

func writeProfiles(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testProfiles), 0o600))
	return path
}

func TestConfigSelectsProfile(t *testing.T) {
	withOptions(t, options{Config: writeProfiles(t), Profile: "default"})

	cfg, err := config()
	require.NoError(t, err)
	assert.Equal(t, "libodbc.so.2", cfg.Library)
	assert.True(t, cfg.Unicode)
	assert.False(t, cfg.Legacy)
	assert.Equal(t, "DSN=warehouse", selected.connection)
}

func TestConfigFlagsOverrideProfile(t *testing.T) {
	withOptions(t, options{Config: writeProfiles(t), Profile: "ansi", SizeOfLong: 8, Library: "libodbc.so"})

	cfg, err := config()
	require.NoError(t, err)
	assert.Equal(t, "libodbc.so", cfg.Library)
	assert.Equal(t, 8, cfg.SizeOfLong)
	assert.False(t, cfg.Unicode)
	assert.True(t, cfg.Legacy)
	assert.Empty(t, selected.connection)
}

func TestConfigMissingProfile(t *testing.T) {
	withOptions(t, options{Config: writeProfiles(t), Profile: "nope"})
	_, err := config()
	assert.ErrorContains(t, err, `no profile "nope"`)

	withOptions(t, options{Config: filepath.Join(t.TempDir(), "missing.yaml")})
	_, err = config()
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "NULL", format(nil))
	assert.Equal(t, "abc", format([]byte("abc")))
	assert.Equal(t, "42", format(int64(42)))
}
