package lazy

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger replaces the package logger used by this package and the proxy packages.
// A nil logger disables logging. The returned function restores the previous logger.
//
// Outside tests, install zaplog.NewProduction():
//
//	defer lazy.SetLogger(zaplog.NewProduction())()
func SetLogger(l *zap.Logger) func() {
	if l == nil {
		l = zap.NewNop()
	}
	prev := logger.Swap(l)
	return func() {
		logger.Store(prev)
	}
}

// Logger returns the current package logger.
func Logger() *zap.Logger {
	return logger.Load()
}
