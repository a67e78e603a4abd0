// Package logger installs the process-wide zap logger. Everything else
// logs through zap.L().
package logger

import "go.uber.org/zap"

func Init() (*zap.Logger, error) {
	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}
