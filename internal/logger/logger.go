// Package logger holds the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvFile names the env var holding the log file path. The terminal UI
// owns stdout, so interactive runs log to a file or nowhere.
const EnvFile = "TREASUREHUNT_LOG"

// Log is the global logger. It writes to stderr until Init is called.
var Log = logrus.New()

// Init configures Log from LOG_LEVEL, LOG_FORMAT and TREASUREHUNT_LOG.
// When interactive is true and no log file is set, output is discarded.
// The returned closer releases the log file, if one was opened.
func Init(interactive bool) (io.Closer, error) {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	path := os.Getenv(EnvFile)
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nopCloser{}, err
		}
		Log.SetOutput(f)
		return f, nil
	case interactive:
		Log.SetOutput(io.Discard)
	default:
		Log.SetOutput(os.Stderr)
	}
	return nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
