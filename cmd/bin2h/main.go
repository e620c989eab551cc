// Package main is the entry point for bin2h.
// It converts one binary file into a C header declaring its bytes as a
// const unsigned char array. The input path is the first argument, or the
// configured default when none is given.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Guliveer/bin2h/internal/config"
	"github.com/Guliveer/bin2h/internal/converter"
	"github.com/Guliveer/bin2h/internal/platform"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run performs one conversion. Arguments after the first are ignored.
func run(outW io.Writer, args []string) error {
	cfg, err := config.LoadLayered(embeddedConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog := initLogger(cfg)
	defer closeLog()

	input := cfg.Input.DefaultPath
	if len(args) > 0 {
		input = args[0]
	}
	logger.Debug("Starting bin2h",
		zap.String("version", version),
		zap.String("input", input))

	res, err := converter.New(logger).Convert(input)
	if err != nil {
		return err
	}

	return platform.NewConsole(outW).Success(
		fmt.Sprintf("Conversion successful. C header file '%s' created.", res.OutputPath))
}

// initLogger creates a zap logger based on the configuration.
// It writes human-readable entries to stderr and, when configured, JSON
// entries to a log file. The returned func flushes and closes both.
func initLogger(cfg *config.Config) (*zap.Logger, func()) {
	var level zapcore.Level
	switch cfg.Logging.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// stdout carries the confirmation message only
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	cores := []zapcore.Core{consoleCore}

	var file *os.File
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err == nil {
			file = f
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(file),
				level,
			))
		}
	}

	logger := zap.New(zapcore.NewTee(cores...))
	return logger, func() {
		_ = logger.Sync()
		if file != nil {
			file.Close()
		}
	}
}
