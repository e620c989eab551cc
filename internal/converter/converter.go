// Package converter turns a binary file into a C header that declares the
// file's bytes as a const unsigned char array, for compiling blobs such as
// option-byte-key images into firmware.
package converter

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Guliveer/bin2h/internal/platform"
)

// Result describes a completed conversion.
type Result struct {
	Identifier string
	InputPath  string
	OutputPath string
	Size       int
}

// Converter reads binary inputs and writes the generated headers.
type Converter struct {
	logger    *zap.Logger
	platform  platform.Platform
	outputDir string
}

// Option configures a Converter.
type Option func(*Converter)

// WithOutputDir writes headers into dir instead of the working directory.
func WithOutputDir(dir string) Option {
	return func(c *Converter) { c.outputDir = dir }
}

// WithPlatform overrides the platform used to classify I/O errors.
func WithPlatform(p platform.Platform) Option {
	return func(c *Converter) { c.platform = p }
}

// New creates a converter that writes into the working directory.
func New(logger *zap.Logger, opts ...Option) *Converter {
	c := &Converter{
		logger:   logger.Named("converter"),
		platform: platform.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert reads inputPath and writes <identifier>.h, overwriting any existing
// file of that name. Nothing is written when the input cannot be read.
func (c *Converter) Convert(inputPath string) (*Result, error) {
	identifier := Identifier(inputPath)

	data, err := readInput(inputPath)
	if err != nil {
		rerr := &InputReadError{Path: inputPath, Cause: c.platform.Cause(err), Err: err}
		c.logger.Error("Failed to read input",
			zap.String("input", inputPath),
			zap.String("cause", rerr.Cause),
			zap.Error(err))
		return nil, rerr
	}
	c.logger.Debug("Read input",
		zap.String("input", inputPath),
		zap.Int("bytes", len(data)))

	outputPath := OutputName(inputPath)
	if c.outputDir != "" {
		outputPath = filepath.Join(c.outputDir, outputPath)
	}

	text := Render(identifier, data)
	if err := writeOutput(outputPath, text); err != nil {
		werr := &OutputWriteError{Path: outputPath, Cause: c.platform.Cause(err), Err: err}
		fields := []zap.Field{
			zap.String("output", outputPath),
			zap.String("cause", werr.Cause),
			zap.Error(err),
		}
		if free, ferr := platform.FreeBytes(c.outputDir); ferr == nil {
			fields = append(fields, zap.Uint64("free_bytes", free))
		}
		c.logger.Error("Failed to write header", fields...)
		return nil, werr
	}

	c.logger.Info("Header written",
		zap.String("identifier", identifier),
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int("bytes", len(data)))

	return &Result{
		Identifier: identifier,
		InputPath:  inputPath,
		OutputPath: outputPath,
		Size:       len(data),
	}, nil
}

// readInput reads the whole file; the handle is closed before returning.
func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// writeOutput creates or truncates path and writes text in one call.
// A failed close is reported alongside any write failure.
func writeOutput(path, text string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	_, err = io.WriteString(f, text)
	return err
}
