// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger hands out named loggers that share a single level and
// output.
package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Module names.
const (
	ModuleCLI     = "[Cli]"
	ModuleConfig  = "[Config]"
	ModuleHarness = "[Harness]"
)

var (
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
	out   = &output{w: zapcore.AddSync(os.Stderr)}

	// map[name]*zap.SugaredLogger
	loggers = sync.Map{}
)

// output is a WriteSyncer whose destination can be swapped after loggers have
// been created.
type output struct {
	mu sync.Mutex
	w  zapcore.WriteSyncer
}

func (o *output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

func (o *output) Sync() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Sync()
}

func (o *output) set(w io.Writer) {
	o.mu.Lock()
	o.w = zapcore.AddSync(w)
	o.mu.Unlock()
}

// GetLogger finds or creates the logger with the given module name.
func GetLogger(name string) *zap.SugaredLogger {
	if l, ok := loggers.Load(name); ok {
		return l.(*zap.SugaredLogger)
	}
	l, _ := loggers.LoadOrStore(name, newLogger(name))
	return l.(*zap.SugaredLogger)
}

func newLogger(name string) *zap.SugaredLogger {
	cfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), out, level)
	return zap.New(core).Named(name).Sugar()
}

// SetLevel sets the level of all loggers. s is parsed with zapcore.ParseLevel.
func SetLevel(s string) error {
	l, err := zapcore.ParseLevel(s)
	if err != nil {
		return err
	}
	level.SetLevel(l)
	return nil
}

// Level returns the current level.
func Level() zapcore.Level {
	return level.Level()
}

// SetOutput redirects all loggers to w.
func SetOutput(w io.Writer) {
	out.set(w)
}

// Sync flushes buffered log entries.
func Sync() error {
	return out.Sync()
}
