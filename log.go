package blueberry

import "go.uber.org/zap"

// logger is shared by every package-level operation. blueberry is
// single-threaded, so swapping it needs no synchronisation.
var logger = zap.NewNop()

// SetLogger installs l as the package logger. Passing nil restores the
// no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *zap.Logger {
	return logger
}
