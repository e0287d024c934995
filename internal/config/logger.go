package config

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds a logrus logger writing to out and, when File is set, to a
// rotated file as well. The returned closer releases the file.
func (c LogConfig) NewLogger(out io.Writer) (*log.Logger, io.Closer, error) {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(level)

	if c.File == "" {
		logger.SetOutput(out)
		return logger, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(c.File), 0o755); err != nil {
		return nil, nil, err
	}
	fileLogger := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
		Compress:   c.Compress,
	}
	logger.SetOutput(io.MultiWriter(out, fileLogger))
	logger.Debugf("Logging initialized: file=%s", c.File)

	return logger, fileLogger, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
