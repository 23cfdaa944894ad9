// log package provides the logger used by jarrange. Debug messages are only
// shown in verbose mode, use the -v flag.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger *zap.SugaredLogger
)

func init() {
	// log to stderr, stdout is for arranged sources and diffs
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)
	logger = zap.New(core).Sugar()
}

// GetLogger returns the shared logger.
func GetLogger() *zap.SugaredLogger {
	return logger
}

// SetVerbose sets the verbose mode.
func SetVerbose(v bool) {
	if v {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}
