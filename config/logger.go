package config

import (
	"go.uber.org/zap"
)

var logger *zap.Logger

func InitLogger() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger = l
}

// Logger returns the process logger, or a no-op logger before InitLogger
// runs (keeps tests quiet without any setup).
func Logger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
