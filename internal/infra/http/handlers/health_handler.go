package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type SessionPinger interface {
	Ping(ctx context.Context) error
}

type BrokerStatus interface {
	Healthy() bool
}

type HealthHandler struct {
	DB        Pinger
	Sessions  SessionPinger
	RabbitMQ  BrokerStatus
	Version   string
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewHealthHandler takes nil for any dependency that is not configured.
func NewHealthHandler(db Pinger, sessions SessionPinger, rabbitMQ BrokerStatus, version string) *HealthHandler {
	return &HealthHandler{
		DB:        db,
		Sessions:  sessions,
		RabbitMQ:  rabbitMQ,
		Version:   version,
		StartTime: time.Now(),
	}
}

// Handle (GET /health)
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string)

	if h.DB != nil {
		deps["database"] = pingStatus(h.DB.PingContext(ctx))
	} else {
		deps["database"] = "not configured"
	}

	if h.Sessions != nil {
		deps["sessions"] = pingStatus(h.Sessions.Ping(ctx))
	} else {
		deps["sessions"] = "not configured"
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.Healthy() {
			deps["rabbitmq"] = "healthy"
		} else {
			deps["rabbitmq"] = "unhealthy: connection closed"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:       status,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}

func pingStatus(err error) string {
	if err != nil {
		return fmt.Sprintf("unhealthy: %v", err)
	}
	return "healthy"
}
