// Package log wraps logrus with a switch so that disabled logging costs nothing.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/where"
)

// enabled gates every wrapper below. Nothing is emitted until Setup turns it on.
var enabled bool

var discard = &logrus.Logger{Out: io.Discard, Formatter: new(logrus.TextFormatter), Hooks: make(logrus.LevelHooks), Level: logrus.PanicLevel}

// Setup configures logrus from the logs.* keys. With cli.verbose set, entries also go to stderr at debug level.
func Setup() error {
	verbose := viper.GetBool(key.CliVerbose)
	enabled = viper.GetBool(key.LogsWrite) || verbose
	if !enabled {
		return nil
	}

	var writers []io.Writer
	if viper.GetBool(key.LogsWrite) {
		f, err := openLogFile()
		if err != nil {
			return err
		}
		writers = append(writers, f)
	}
	if verbose {
		writers = append(writers, os.Stderr)
	}
	logrus.SetOutput(io.MultiWriter(writers...))

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	if verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	return nil
}

func openLogFile() (io.Writer, error) {
	dir := where.Logs()
	if dir == "" {
		return nil, errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return f, nil
}

// WithFields returns an entry carrying structured fields, or a discarding entry when logging is off.
func WithFields(fields logrus.Fields) *logrus.Entry {
	if !enabled {
		return discard.WithFields(fields)
	}
	return logrus.WithFields(fields)
}

// The wrappers below forward to logrus only when logging is enabled.

func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logrus.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		logrus.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}

func Debug(args ...any) {
	if enabled {
		logrus.Debug(args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
