package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type requestIDKey struct{}

// HeaderRequestID заголовок, через который клиенты могут передать свой request id.
const HeaderRequestID = "X-Request-ID"

// NewRequestIDContext сохраняет request id в context, генерируя новый при пустом значении.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = GenerateRequestID()
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestID извлекает request id.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// GenerateRequestID возвращает новый UUIDv4.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID возвращает копию логгера с полем request_id, если оно есть в context.
func (l *Logger) WithRequestID(ctx context.Context) *Logger {
	if id, ok := GetRequestID(ctx); ok {
		return l.With(zap.String(RequestID, id))
	}
	return l
}
