// Package logging sets up the rotating file logger. The terminal host owns
// stdout, so log output always goes to a file.
package logging

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jask/cwmkit/internal/config"
)

// New returns a logger writing to the rotating file described by cfg. The
// returned closer flushes and closes the file.
func New(cfg config.LogConfig) (*log.Logger, io.Closer) {
	if cfg.Path == "" {
		return log.New(io.Discard, "", 0), io.NopCloser(nil)
	}
	file := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     28, // days
		Compress:   true,
	}
	return log.New(file, "cwmkit ", log.LstdFlags), file
}
