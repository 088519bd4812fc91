// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package diag holds the trampoline's diagnostic sink: one writable
// destination, selected once at process start, receiving at most one line
// per failure point.
package diag

import (
	"fmt"
	"io"
	"os"
)

// LogFileEnv names the environment variable selecting the diagnostic log
// file. The same variable is honored by the tracers that spawn the
// trampoline, so failures of both land in one place.
const LogFileEnv = "DD_TRACE_LOG_FILE"

// Sink is a single writable diagnostic destination. Writes are never retried
// and the underlying file is never reopened or rotated.
type Sink struct {
	w    io.Writer
	file *os.File
}

// NewSinkFromEnv selects the sink for this process: the file named by
// LogFileEnv opened in append mode (created if missing), or stderr when the
// variable is unset or the file cannot be opened.
func NewSinkFromEnv() *Sink {
	if path := os.Getenv(LogFileEnv); path != "" {
		if file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644); err == nil {
			return &Sink{w: file, file: file}
		}
	}
	return &Sink{w: os.Stderr}
}

// NewSink returns a sink writing to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Reportf writes a single diagnostic line.
func (s *Sink) Reportf(format string, args ...any) {
	fmt.Fprintf(s.w, format+"\n", args...)
}

// Close releases the log file if the sink owns one. Closing a stderr-backed
// sink is a no-op.
func (s *Sink) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}
