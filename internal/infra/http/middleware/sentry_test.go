package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteNameUsesPattern(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req)
			got = routeName(req)
		})
	})
	r.Get("/api/bookings/{id}", func(w http.ResponseWriter, _ *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/bookings/3f1c", nil))
	assert.Equal(t, "/api/bookings/{id}", got)

	assert.Equal(t, "/plain", routeName(httptest.NewRequest(http.MethodGet, "/plain", nil)))
}

func TestSentryNamesTransactionByRoute(t *testing.T) {
	var sent []*sentry.Event
	require.NoError(t, sentry.Init(sentry.ClientOptions{
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		BeforeSendTransaction: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			sent = append(sent, event)
			return nil
		},
	}))
	t.Cleanup(func() { sentry.CurrentHub().BindClient(nil) })

	r := chi.NewRouter()
	r.Use(Sentry)
	r.Post("/api/bookings/{id}/payment", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings/3f1c/payment", nil))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	require.Len(t, sent, 1)
	assert.Equal(t, "POST /api/bookings/{id}/payment", sent[0].Transaction)
	assert.Equal(t, "/api/bookings/{id}/payment", sent[0].Tags["http.route"])
}
