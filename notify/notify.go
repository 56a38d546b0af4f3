package notify

import "github.com/sirupsen/logrus"

// Sink receives the human-readable outcome messages the workflows
// produce for display to the user after an action.
type Sink interface {
	Success(msg string)
	Failure(msg string)
}

type logSink struct{ logger *logrus.Logger }

// NewLogSink returns a Sink that publishes messages through the shared
// structured logger.
func NewLogSink(logger *logrus.Logger) Sink {
	return &logSink{logger: logger}
}

func (s *logSink) Success(msg string) {
	s.logger.WithField("notice", "success").Info(msg)
}

func (s *logSink) Failure(msg string) {
	s.logger.WithField("notice", "failure").Warn(msg)
}
