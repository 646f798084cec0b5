// Package logging configures logrus for the command line tools.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "15:04:05.000000"

type Options struct {
	Level   string
	Verbose bool
	JSON    bool
}

// Setup configures l to write to out. Verbose forces the debug level unless
// a more detailed level was requested.
func Setup(l *logrus.Logger, out io.Writer, o Options) error {
	level, err := logrus.ParseLevel(o.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.Level, err)
	}
	if o.Verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}

	l.SetOutput(out)
	l.SetLevel(level)
	if o.JSON {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timestampFormat})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: timestampFormat})
	}
	return nil
}
