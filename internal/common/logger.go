package common

import (
	"go.uber.org/zap"
)

// NewLogger builds the process-wide sugared logger. Development builds get
// the console encoder, everything else the production JSON encoder.
func NewLogger(environment string) (*zap.SugaredLogger, error) {
	var l *zap.Logger
	var err error
	if environment == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
