package log

import (
	"github.com/sirupsen/logrus"
)

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// NewLogger returns a logger tagged with the given module name.
func NewLogger(name string) *logrus.Entry {
	return logrus.WithField("module", name)
}
