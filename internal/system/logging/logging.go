// Released under an MIT license. See LICENSE.

// Package logging builds the logger nemo uses to trace evaluation.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger that writes to w at Debug level when debug
// is true. Otherwise it returns a logger that discards everything.
func New(w io.Writer, debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	al := zap.NewAtomicLevelAt(zap.DebugLevel)

	ec := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), al)

	return zap.New(core).Named("nemo")
}
