package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a zap.Logger for env. Production gets JSON output at info
// level; anything else gets the colored development console.
func New(env string, level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if env != "production" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}

		cfg.Level = lvl
	}

	// Office output goes to stdout; keep logs off it.
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
