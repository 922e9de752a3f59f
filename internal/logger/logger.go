// Package logger builds the logrus logger used by every component.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects level and optional file output.
type Config struct {
	Level      string // debug, info, warn, error
	OutputFile string // empty means stdout only
	MaxSize    int    // MB
	MaxBackups int
	MaxAge     int // days
}

// New returns a logger writing to stdout and, when configured, to a rotating file.
func New(cfg Config) (*logrus.Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	writers := []io.Writer{os.Stdout}
	if cfg.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0755); err != nil {
			return nil, err
		}
		if cfg.MaxSize == 0 {
			cfg.MaxSize = 10
		}
		if cfg.MaxBackups == 0 {
			cfg.MaxBackups = 5
		}
		if cfg.MaxAge == 0 {
			cfg.MaxAge = 30
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.OutputFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   true,
		})
	}
	log.SetOutput(io.MultiWriter(writers...))
	return log, nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
