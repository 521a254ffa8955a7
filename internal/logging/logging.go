// Package logging builds the zap logger used by the bot and CLI layers. The
// core generation packages stay log-free.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a logger that writes to the console at the configured
// verbosity and, when logfile is set, records everything there at debug
// level regardless of verbosity.
func New(verbosity, logfile string) (*zap.Logger, error) {
	level, err := parseVerbosity(verbosity)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), level),
	}

	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening logfile: %w", err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

func parseVerbosity(v string) (zapcore.Level, error) {
	switch v {
	case "quiet":
		return zapcore.ErrorLevel, nil
	case "", "normal":
		return zapcore.WarnLevel, nil
	case "verbose":
		return zapcore.InfoLevel, nil
	case "deafening":
		return zapcore.DebugLevel, nil
	}
	return 0, fmt.Errorf("unknown verbosity %q", v)
}
