package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/corporate-ask/internal/infra/http/handlers"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }
func (p stubPinger) Ping(context.Context) error        { return p.err }

type stubBroker bool

func (b stubBroker) Healthy() bool { return bool(b) }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name     string
		handler  *handlers.HealthHandler
		wantCode int
		wantDeps map[string]string
	}{
		{
			name:     "all healthy",
			handler:  handlers.NewHealthHandler(stubPinger{}, stubPinger{}, stubBroker(true), "1.0.0"),
			wantCode: http.StatusOK,
			wantDeps: map[string]string{"database": "healthy", "sessions": "healthy", "rabbitmq": "healthy"},
		},
		{
			name:     "broker not configured",
			handler:  handlers.NewHealthHandler(stubPinger{}, stubPinger{}, nil, "1.0.0"),
			wantCode: http.StatusOK,
			wantDeps: map[string]string{"database": "healthy", "sessions": "healthy", "rabbitmq": "not configured"},
		},
		{
			name:     "database down",
			handler:  handlers.NewHealthHandler(stubPinger{err: errors.New("refused")}, stubPinger{}, stubBroker(true), "1.0.0"),
			wantCode: http.StatusServiceUnavailable,
			wantDeps: map[string]string{"database": "unhealthy: refused", "sessions": "healthy", "rabbitmq": "healthy"},
		},
		{
			name:     "broker connection closed",
			handler:  handlers.NewHealthHandler(stubPinger{}, stubPinger{}, stubBroker(false), "1.0.0"),
			wantCode: http.StatusServiceUnavailable,
			wantDeps: map[string]string{"database": "healthy", "sessions": "healthy", "rabbitmq": "unhealthy: connection closed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler.Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decode[handlers.HealthResponse](t, rec)
			assert.Equal(t, "1.0.0", body.Version)
			assert.Equal(t, tt.wantDeps, body.Dependencies)
		})
	}
}
