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

// Package log is a thin adapter around glog with optional structured output
// via slog.
//
// By default all calls go through glog and its flags. Structured logging is
// enabled only when the --log-fmt flag is explicitly set.
package log

import (
	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

// Level is the glog verbosity level.
type Level = glog.Level

var (
	// V reports whether verbosity at the call site is at least the requested level.
	V = glog.V

	// Flush ensures any pending I/O is written.
	Flush = glog.Flush

	// Info logs to the INFO log.
	Info = glog.Info
	// Infof logs to the INFO log with formatting.
	Infof = glog.Infof
	// InfoDepth logs to the INFO log, using depth to determine which call frame to report.
	InfoDepth = glog.InfoDepth

	// Warning logs to the WARNING and INFO logs.
	Warning = glog.Warning
	// Warningf logs to the WARNING and INFO logs with formatting.
	Warningf = glog.Warningf
	// WarningDepth logs to the WARNING and INFO logs, using depth for the call frame.
	WarningDepth = glog.WarningDepth

	// Error logs to the ERROR, WARNING, and INFO logs.
	Error = glog.Error
	// Errorf logs to the ERROR, WARNING, and INFO logs with formatting.
	Errorf = glog.Errorf
	// ErrorDepth logs to the ERROR, WARNING, and INFO logs, using depth for the call frame.
	ErrorDepth = glog.ErrorDepth

	// Exit logs to the FATAL, ERROR, WARNING, and INFO logs, then calls os.Exit(1).
	Exit = glog.Exit
	// Exitf logs with formatting, then calls os.Exit(1).
	Exitf = glog.Exitf

	// Fatal logs to the FATAL, ERROR, WARNING, and INFO logs, including a stack trace
	// of all running goroutines, then calls os.Exit(255).
	Fatal = glog.Fatal
	// Fatalf logs with formatting as Fatal does.
	Fatalf = glog.Fatalf
)

var (
	// logFormat is the configured structured log format.
	logFormat string

	// logLevel is the configured minimum structured log level.
	logLevel string
)

// RegisterFlags installs log flags on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&logFormat, "log-fmt", "json", "format for structured logging output: json or logfmt")
	fs.StringVar(&logLevel, "log-level", "info", "minimum structured logging level: info, warn, debug, or error")
}
