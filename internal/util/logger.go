package util

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the application logger. When logFile is not empty every
// entry is also written as json to a size-rotated file.
func NewLogger(env string, logFile string) *zap.SugaredLogger {
	var logger *zap.Logger
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)

	if strings.EqualFold(env, "production") {
		logger = zap.Must(zap.NewProduction())
		level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	} else {
		logger = zap.Must(zap.NewDevelopment())
	}

	if logFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			level,
		)
		logger = logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, fileCore)
		}))
	}

	defer logger.Sync()

	return logger.Sugar()
}
