package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging writes JSON entries to out. The CLI passes stderr so stdout
// carries only console output.
func SetupLogging(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:      out,
		Hooks:    make(logrus.LevelHooks),
		Level:    level,
		ExitFunc: os.Exit,
	}

	return &logger
}
