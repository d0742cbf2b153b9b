package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// New builds the process logger. Development mode (APP_ENV=development) uses
// the human-readable console encoder; everything else gets production JSON.
func New() *zap.Logger {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))
	if env == "" {
		env = strings.ToLower(strings.TrimSpace(os.Getenv("ENV")))
	}

	if env == "development" || env == "dev" {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
