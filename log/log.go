// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log is a thin convenience wrapper over go-ethereum/log, the exact
// structured logging library the teacher module's node process imports
// directly (cmd/thor/app/app.go). It exists only to give subsystems a short
// way to attach static context fields, mirroring the teacher's
// builtin/staker package convention of a package-level
// `logger = log.WithContext("pkg", "staker")`.
package log

import (
	gethlog "github.com/ethereum/go-ethereum/log"
)

// Logger is re-exported so callers don't need to import go-ethereum/log
// directly.
type Logger = gethlog.Logger

// WithContext returns a Logger with the given key/value pairs attached to
// every subsequent log line.
func WithContext(ctx ...interface{}) Logger {
	return gethlog.Root().With(ctx...)
}

// Root returns the root logger, for callers that want to configure handlers
// (verbosity, output format) at process startup.
func Root() Logger {
	return gethlog.Root()
}
