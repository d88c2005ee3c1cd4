package folio

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the process logger: JSON at the configured level, or a
// console encoder in development.
func NewLogger(cfg SiteConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Dev {
		zc = zap.NewDevelopmentConfig()
	}
	level := cfg.LogLevel
	if level == "" {
		level = "info"
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc.Level = lvl
	return zc.Build()
}
