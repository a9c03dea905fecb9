package ctxutil

import (
	"context"
	"testing"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"set", WithRequestID(context.Background(), "req-123"), "req-123"},
		{"absent", context.Background(), ""},
		{"wrong type", context.WithValue(context.Background(), requestIDKey, 12345), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RequestIDFromCtx(tt.ctx); got != tt.want {
				t.Fatalf("RequestIDFromCtx = %q, want %q", got, tt.want)
			}
		})
	}
}
