// Copyright (C) 2019-2022  Ambassador Labs
// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: Apache-2.0
//
// Contains code based on:
// https://github.com/datawire/dlib/blob/b09ab2e017e16d261f05fff5b3b860d645e774d4/dlog/logger_logrus.go
// https://github.com/datawire/dlib/blob/b09ab2e017e16d261f05fff5b3b860d645e774d4/dlog/logger_testing.go

package textui

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"git.lukeshu.com/go/typedsync"
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/pflag"
)

// LogLevelFlag is a pflag.Value for selecting a dlog.LogLevel by
// name.
type LogLevelFlag struct {
	Level dlog.LogLevel
}

var _ pflag.Value = (*LogLevelFlag)(nil)

var logLevelNames = []struct {
	Level dlog.LogLevel
	Name  string
	Abbr  string
}{
	{dlog.LogLevelError, "error", "ERR"},
	{dlog.LogLevelWarn, "warn", "WRN"},
	{dlog.LogLevelInfo, "info", "INF"},
	{dlog.LogLevelDebug, "debug", "DBG"},
	{dlog.LogLevelTrace, "trace", "TRC"},
}

// Type implements pflag.Value.
func (lvl *LogLevelFlag) Type() string { return "loglevel" }

// Set implements pflag.Value.
func (lvl *LogLevelFlag) Set(str string) error {
	str = strings.ToLower(str)
	if str == "warning" {
		str = "warn"
	}
	for _, ent := range logLevelNames {
		if ent.Name == str {
			lvl.Level = ent.Level
			return nil
		}
	}
	return fmt.Errorf("invalid log level: %q", str)
}

// String implements pflag.Value.
func (lvl *LogLevelFlag) String() string {
	for _, ent := range logLevelNames {
		if ent.Level == lvl.Level {
			return ent.Name
		}
	}
	panic(fmt.Errorf("invalid log level: %#v", lvl.Level))
}

type logger struct {
	parent *logger
	out    io.Writer
	lvl    dlog.LogLevel

	// only valid if parent is non-nil
	fieldKey string
	fieldVal any
}

var _ dlog.OptimizedLogger = (*logger)(nil)

// NewLogger returns a dlog.Logger that writes one line per message to
// out, dropping messages less severe than lvl.  Lines look like
//
//	15:04:05.0000 INF cmd=render : message : field=val (from cmd/bintree/main.go:123)
func NewLogger(out io.Writer, lvl dlog.LogLevel) dlog.Logger {
	return &logger{
		out: out,
		lvl: lvl,
	}
}

// Helper implements dlog.Logger.
func (l *logger) Helper() {}

// WithField implements dlog.Logger.
func (l *logger) WithField(key string, value any) dlog.Logger {
	return &logger{
		parent: l,
		out:    l.out,
		lvl:    l.lvl,

		fieldKey: key,
		fieldVal: value,
	}
}

type logWriter struct {
	log *logger
	lvl dlog.LogLevel
}

// Write implements io.Writer.
func (lw logWriter) Write(data []byte) (int, error) {
	lw.log.log(lw.lvl, func(w io.Writer) {
		_, _ = w.Write(bytes.TrimSuffix(data, []byte("\n")))
	})
	return len(data), nil
}

// StdLogger implements dlog.Logger.
func (l *logger) StdLogger(lvl dlog.LogLevel) *log.Logger {
	return log.New(logWriter{log: l, lvl: lvl}, "", 0)
}

// Log implements dlog.Logger.
func (l *logger) Log(lvl dlog.LogLevel, msg string) {
	panic("should not happen: optimized log methods should be used instead")
}

// UnformattedLog implements dlog.OptimizedLogger.
func (l *logger) UnformattedLog(lvl dlog.LogLevel, args ...any) {
	l.log(lvl, func(w io.Writer) {
		_, _ = printer.Fprint(w, args...)
	})
}

// UnformattedLogln implements dlog.OptimizedLogger.
func (l *logger) UnformattedLogln(lvl dlog.LogLevel, args ...any) {
	l.log(lvl, func(w io.Writer) {
		_, _ = printer.Fprint(w, strings.TrimSuffix(printer.Sprintln(args...), "\n"))
	})
}

// UnformattedLogf implements dlog.OptimizedLogger.
func (l *logger) UnformattedLogf(lvl dlog.LogLevel, format string, args ...any) {
	l.log(lvl, func(w io.Writer) {
		_, _ = printer.Fprintf(w, format, args...)
	})
}

var (
	logBufPool = typedsync.Pool[*bytes.Buffer]{
		New: func() *bytes.Buffer {
			return new(bytes.Buffer)
		},
	}
	logMu      sync.Mutex
	thisModDir string
)

func init() {
	//nolint:dogsled // I can't change the signature of the stdlib.
	_, file, _, _ := runtime.Caller(0)
	thisModDir = filepath.Dir(filepath.Dir(filepath.Dir(file)))
}

// fields returns the log fields attached to l, sorted by fieldOrd;
// where a key was set more than once, the innermost value wins.
func (l *logger) fields() (keys []string, vals map[string]any) {
	vals = make(map[string]any)
	for f := l; f.parent != nil; f = f.parent {
		if _, exists := vals[f.fieldKey]; exists {
			continue
		}
		vals[f.fieldKey] = f.fieldVal
		keys = append(keys, f.fieldKey)
	}
	sort.Slice(keys, func(i, j int) bool {
		iOrd, jOrd := fieldOrd(keys[i]), fieldOrd(keys[j])
		if iOrd != jOrd {
			return iOrd < jOrd
		}
		return keys[i] < keys[j]
	})
	return keys, vals
}

func (l *logger) log(lvl dlog.LogLevel, writeMsg func(io.Writer)) {
	if lvl > l.lvl {
		return
	}
	buf, _ := logBufPool.Get()
	defer logBufPool.Put(buf)
	defer buf.Reset()

	// Reserve the space, then format the time in-place.
	const timeFmt = "15:04:05.0000"
	buf.WriteString(timeFmt)
	time.Now().AppendFormat(buf.Bytes()[:0], timeFmt)
	for _, ent := range logLevelNames {
		if ent.Level == lvl {
			buf.WriteString(" " + ent.Abbr)
		}
	}

	keys, vals := l.fields()
	split := sort.Search(len(keys), func(i int) bool {
		return fieldOrd(keys[i]) >= 0
	})
	for _, key := range keys[:split] {
		writeField(buf, key, vals[key])
	}

	buf.WriteString(" : ")
	writeMsg(buf)

	caller, haveCaller := callerLocation()
	if split < len(keys) || haveCaller {
		buf.WriteString(" :")
	}
	for _, key := range keys[split:] {
		writeField(buf, key, vals[key])
	}
	if haveCaller {
		fmt.Fprintf(buf, " (from %s)", caller)
	}
	buf.WriteByte('\n')

	logMu.Lock()
	defer logMu.Unlock()
	_, _ = l.out.Write(buf.Bytes())
}

// callerLocation returns the "file:line" of the innermost stack frame
// that is inside of this module but outside of this package.
func callerLocation() (string, bool) {
	const (
		thisModule             = "git.lukeshu.com/bintree-ng"
		thisPackage            = "git.lukeshu.com/bintree-ng/lib/textui"
		maximumCallerDepth int = 25
		minimumCallerDepth int = 4 // runtime.Callers + callerLocation + .log + .Unformatted*
	)
	var pcs [maximumCallerDepth]uintptr
	depth := runtime.Callers(minimumCallerDepth, pcs[:])
	frames := runtime.CallersFrames(pcs[:depth])
	for f, again := frames.Next(); again; f, again = frames.Next() {
		if !strings.HasPrefix(f.Function, thisModule+"/") || strings.HasPrefix(f.Function, thisPackage+".") {
			continue
		}
		file := strings.TrimPrefix(f.File, thisModDir+"/")
		return fmt.Sprintf("%s:%d", file, f.Line), true
	}
	return "", false
}

// fieldOrd returns the sort-position for a given log-field-key.  Lower
// values are positioned further left; values <0 are written before
// the log message, and values ≥0 after it.
func fieldOrd(key string) int {
	switch key {
	// dlib ////////////////////////////////////////////////////////////////
	case "THREAD": // dgroup
		return -99

	// bintree CLI /////////////////////////////////////////////////////////
	case "bintree.cmd":
		return -3
	case "bintree.op":
		return -2
	case "bintree.value":
		return -1

	default:
		return 1
	}
}

func writeField(w io.Writer, key string, val any) {
	str := printer.Sprint(val)
	needsQuote := strings.HasPrefix(str, `"`)
	for _, r := range str {
		if !unicode.IsPrint(r) || r == ' ' {
			needsQuote = true
			break
		}
	}
	if needsQuote {
		str = fmt.Sprintf("%q", str)
	}

	name := key
	switch {
	case name == "THREAD":
		name = "thread"
		switch {
		case str == "" || str == "/main":
			return
		case strings.HasPrefix(str, "/main/"):
			str = strings.TrimPrefix(str, "/main/")
		default:
			str = strings.TrimPrefix(str, "/")
		}
	case strings.HasPrefix(name, "bintree."):
		name = strings.TrimPrefix(name, "bintree.")
	}

	fmt.Fprintf(w, " %s=%s", name, str)
}
