package logger

import (
	"go.uber.org/zap"
)

// Init builds the process logger and installs it as the zap global, so
// handlers can use zap.L() the same way they use database.DB.
func Init(env string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if env == "dev" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}
