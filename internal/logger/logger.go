package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var defaultLogger = &logrus.Logger{
	Out:       os.Stdout,
	Formatter: new(logrus.JSONFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
	ExitFunc:  os.Exit,
}

// shared by every Writer caller so only one pipe is ever open
var accessWriter = defaultLogger.Writer()

// Configure sets the level and the output format ("json" or "text").
func Configure(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	switch format {
	case "", "json":
		defaultLogger.SetFormatter(new(logrus.JSONFormatter))
	case "text":
		defaultLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	defaultLogger.SetLevel(lvl)

	return nil
}

// SetOutput redirects log output.
func SetOutput(out io.Writer) {
	defaultLogger.SetOutput(out)
}

// Writer returns the writer that logs every line at Info level.
func Writer() io.Writer {
	return accessWriter
}

// Info logs message at Info level.
func Info(msg string) {
	defaultLogger.Infoln(msg)
}

// Warn logs message at Warn level.
func Warn(msg string) {
	defaultLogger.Warnln(msg)
}

// Error logs errors at Error level.
func Error(err error) {
	defaultLogger.Errorln(err)
}

// Fatal logs errors at Fatal level.
func Fatal(err error) {
	defaultLogger.Fatalln(err)
}
