// Package logging builds the zap loggers used by the binaries.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jrick/logrotate/rotator"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	rotateThresholdKB = 10 * 1024
	rotateMaxRolls    = 3
)

// Env selects the logger flavour.
type Env string

const (
	EnvDev  Env = "dev"
	EnvUAT  Env = "uat"
	EnvProd Env = "prod"
)

// ParseEnv validates an environment name.
func ParseEnv(s string) (Env, error) {
	switch env := Env(s); env {
	case EnvDev, EnvUAT, EnvProd:
		return env, nil
	default:
		return "", fmt.Errorf("unknown env %q, expected dev, uat or prod", s)
	}
}

// New returns a development logger for dev and a JSON production logger otherwise.
// When logFile is set, output is also written to a rotated file. The returned
// func flushes the logger and closes the file.
func New(env Env, logFile string) (*zap.Logger, func(), error) {
	cfg := zap.NewProductionConfig()
	if env == EnvDev {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	if logFile == "" {
		return logger, func() { _ = logger.Sync() }, nil
	}

	r, err := newRotator(logFile)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(r), cfg.Level)

	logger = logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	}))

	return logger, func() {
		_ = logger.Sync()
		_ = r.Close()
	}, nil
}

func newRotator(logFile string) (*rotator.Rotator, error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0o700); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	r, err := rotator.New(logFile, rotateThresholdKB, false, rotateMaxRolls)
	if err != nil {
		return nil, fmt.Errorf("create log rotator: %w", err)
	}
	return r, nil
}
