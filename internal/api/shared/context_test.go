package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetTraceID(ctx), "no trace ID before SetTraceID")

	ctxWithTrace := SetTraceID(ctx)

	traceID := GetTraceID(ctxWithTrace)
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "trace ID should be a valid UUID")

	assert.Empty(t, GetTraceID(ctx), "original context remains unchanged")
}

func TestTraceIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GetTraceID(SetTraceID(context.Background()))
		assert.False(t, seen[id], "trace IDs must be unique")
		seen[id] = true
	}
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123)
	assert.Empty(t, GetTraceID(ctx))
}
