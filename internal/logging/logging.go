// Package logging wires up structured logging that never touches the
// alternate screen. A full-screen terminal program cannot write to stdout
// or stderr while it owns the display, so by default every log record is
// discarded; setting JSONVIEW_LOG_FILE redirects them to a file as JSON
// lines, tagged per component.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once   sync.Once
	logger *logrus.Logger
)

func root() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)

		path := os.Getenv("JSONVIEW_LOG_FILE")
		if path == "" {
			logger.SetOutput(io.Discard)
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.SetOutput(io.Discard)
			return
		}
		logger.SetOutput(f)
	})
	return logger
}

// For returns a logger entry tagged with the given component name.
func For(component string) *logrus.Entry {
	return root().WithField("component", component)
}
