package zapx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DumpLimit is the longest heap dump the command loggers print in full.
const DumpLimit = 256

// NewLogger builds the logger used by the commands: a development logger when
// debug is set, a production one otherwise. Heap dumps are truncated.
func NewLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return NewTruncateCore(core, DumpLimit, "heap")
	}))
}
