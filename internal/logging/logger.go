package logging

import (
	"log/slog"
	"os"
)

// NewLogger returns a slog logger configured for structured JSON output.
func NewLogger(service string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true})
	return slog.New(handler).With(slog.String("service", service))
}

// WithRequestID attaches a request identifier to the logger context.
func WithRequestID(logger *slog.Logger, requestID string) *slog.Logger {
	return logger.With(slog.String("requestId", requestID))
}

// WithConversation attaches a conversation identifier so every pipeline stage
// logs under the same key.
func WithConversation(logger *slog.Logger, conversationID string) *slog.Logger {
	return logger.With(slog.String("conversationId", conversationID))
}
