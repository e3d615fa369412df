//
// chesscore - a move generation and search engine core in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
// Copyright (c) 2026 chesscore contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging is a thin helper over "github.com/op/go-logging" so that
// every package that needs a logger gets one preconfigured the same way,
// following the teacher's logging/log.go (itself trimmed here to the two
// loggers this core actually uses: a standard logger for engine-lifecycle
// messages, and a search logger for per-search tracing).
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/dkeller/chesscore/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
}

// GetLog returns the standard Logger, preconfigured with an os.Stdout
// backend at config.Settings.Log's configured level.
func GetLog() *logging.Logger {
	return configured(standardLog, config.LogLevel)
}

// GetSearchLog returns the Logger used for per-search tracing, at its own
// independently configurable level.
func GetSearchLog() *logging.Logger {
	return configured(searchLog, config.SearchLogLevel)
}

func configured(l *logging.Logger, level int) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	levelled := logging.AddModuleLevel(formatted)
	levelled.SetLevel(logging.Level(level), "")
	l.SetBackend(levelled)
	return l
}
