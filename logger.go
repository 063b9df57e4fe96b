package canaries

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LoggerName tags every line canaries logs.
const LoggerName = "canaries"

// NewLogger builds the logger handed to every step of a run. Quiet keeps
// errors and drops informational lines.
func NewLogger(out io.Writer, quiet bool) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if quiet {
		logger.SetLevel(logrus.ErrorLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger.WithField("logger", LoggerName)
}
