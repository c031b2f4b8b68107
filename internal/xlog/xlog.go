// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog provides a Logger interface and helper functions that allow
output to be switched on and off without checks at every call site.

The Logger interface is supported by the log.Logger type. All functions
accept a nil Logger and do nothing in that case, so a command can keep a
nil logger for the quiet mode and a real one for the verbose mode.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
)

// Logger is the interface the functions of the package require. The
// log.Logger type supports it.
type Logger interface {
	Output(calldepth int, s string) error
}

// New returns a logger writing to w with the given prefix and without any
// time stamps. If w is nil, New returns nil, which disables the output.
func New(w io.Writer, prefix string) Logger {
	if w == nil {
		return nil
	}
	return log.New(w, prefix, 0)
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Lines prints every line of s as a separate log entry. It is used for
// multi-line dumps that should carry the prefix on every line.
func Lines(l Logger, s string) {
	if l == nil {
		return
	}
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			l.Output(2, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		l.Output(2, s[start:])
	}
}
