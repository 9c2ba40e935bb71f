package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logFileName = "rampage.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a nop logger unless debug is set
// Debug output goes to JSON lines under dir, never to the terminal the UI owns
// The returned file is nil when logging is off
func setupLogging(debug bool, dir string) (*zap.Logger, *os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("rampage-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	encoder := zap.NewProductionEncoderConfig()
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoder), zapcore.AddSync(f), zap.DebugLevel)
	logger := zap.New(core, zap.AddCaller())

	// stray standard library logging lands in the same file
	zap.RedirectStdLog(logger)
	return logger, f, nil
}
