/*
Copyright 2025 The Emerald Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithoutFormatFlagIsNoop(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	require.NoError(t, Init(fs))
	assert.False(t, structuredLoggingEnabled.Load())
}

func TestInitRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"--log-fmt=xml"}},
		{"bad level", []string{"--log-fmt=json", "--log-level=loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			RegisterFlags(fs)
			require.NoError(t, fs.Parse(tt.args))

			assert.Error(t, Init(fs))
		})
	}
}

func TestStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	restore := SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer restore()

	InfoS("encoding registered", "name", "UTF-8", "index", 0)

	out := buf.String()
	assert.True(t, strings.Contains(out, "encoding registered"), "missing message: %q", out)
	assert.True(t, strings.Contains(out, "name=UTF-8"), "missing attribute: %q", out)
}

func TestSlogLevelMapping(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"Info":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"ERROR": slog.LevelError,
	} {
		got, err := slogLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := slogLevel("verbose")
	assert.Error(t, err)
}
