package service

import (
	"context"
	"encoding/json"
	"time"

	"quiz-form/internal/domain"
	"quiz-form/internal/logger"

	"go.uber.org/zap"
)

// Completion is handed to a CompletionSink once a valid submission finishes.
type Completion struct {
	FormID      string
	Values      domain.FormValues
	Payload     string
	CompletedAt time.Time
}

// CompletionSink receives completed submissions.
type CompletionSink interface {
	Complete(ctx context.Context, c Completion)
}

// SinkFunc adapts a function to CompletionSink.
type SinkFunc func(ctx context.Context, c Completion)

func (f SinkFunc) Complete(ctx context.Context, c Completion) {
	f(ctx, c)
}

// LoggingSink writes each completion to the application log.
type LoggingSink struct{}

func (LoggingSink) Complete(_ context.Context, c Completion) {
	logger.Get().Info("Quiz form submitted",
		zap.String("form_id", c.FormID),
		zap.String("quiz_title", c.Values.QuizTitle),
		zap.String("payload", c.Payload),
	)
}

// MultiSink fans a completion out to several sinks in order.
type MultiSink []CompletionSink

func (m MultiSink) Complete(ctx context.Context, c Completion) {
	for _, sink := range m {
		if sink != nil {
			sink.Complete(ctx, c)
		}
	}
}

// EncodePayload serializes values the way they are reported to the user:
// indented JSON keyed by field name.
func EncodePayload(values domain.FormValues) (string, error) {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return "", domain.NewInternalError("failed to serialize form values", err)
	}
	return string(data), nil
}
