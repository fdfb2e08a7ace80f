// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelSetByName(t *testing.T) {
	defer Level.Set(Level.lvl.Level())

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			Level.SetByName(name)
			assert.Equal(t, want, Level.lvl.Level())
		})
	}
}

func TestNewTextOutput(t *testing.T) {
	defer Level.Set(Level.lvl.Level())
	Level.Set(slog.LevelInfo)

	var buf bytes.Buffer
	New(&buf).Info("bound entry points", "bound", 3)

	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "bound=3")
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}
