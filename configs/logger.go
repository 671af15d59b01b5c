package configs

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger. Development encoding when
// APP_ENV is not "production".
func NewLogger() *zap.Logger {
	var logger *zap.Logger
	var err error
	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
