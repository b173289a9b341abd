// Package logging points the standard logger at stdout and, optionally, a
// rotating log file.
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the log file. An empty File logs to stdout only.
type Options struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Setup configures the standard logger and returns the rotating file writer,
// or nil when no file is configured.
func Setup(opts Options) *lumberjack.Logger {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if opts.File == "" {
		log.SetOutput(os.Stdout)
		return nil
	}
	lj := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, lj))
	return lj
}
