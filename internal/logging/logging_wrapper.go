package logging

import (
	"context"
	"io"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// HandlerFunc handles one console command. fields are the whitespace
// separated tokens of the input line.
type HandlerFunc func(ctx context.Context, w io.Writer, fields []string, logData *LogData) error

// ConsoleFunc is a HandlerFunc with logging already attached.
type ConsoleFunc func(ctx context.Context, w io.Writer, fields []string)

func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler HandlerFunc,
) ConsoleFunc {
	return func(ctx context.Context, w io.Writer, fields []string) {
		logData := NewLogData(log)
		logData.AddData("requestID", uuid.Must(uuid.NewV4()).String())

		log.Debugf("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(ctx, w, fields, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Warnf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}
