package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	bookingSteps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_steps_total",
			Help: "Booking wizard transitions by resulting step",
		},
		[]string{"step"},
	)

	paymentsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_payments_submitted_total",
			Help: "Payment submissions by outcome",
		},
		[]string{"status"},
	)

	couponRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coupon_rejections_total",
			Help: "Coupons refused at pricing or redemption",
		},
		[]string{"reason"},
	)

	rateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests refused by the per-IP rate limiter",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Metrics records request counts and latency labelled by the chi route
// pattern, so ids in the path do not create new series.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		path := routeName(r)
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

func RecordBookingStep(step string) {
	bookingSteps.WithLabelValues(step).Inc()
}

func RecordPayment(status string) {
	paymentsSubmitted.WithLabelValues(status).Inc()
}

func RecordCouponRejection(reason string) {
	couponRejections.WithLabelValues(reason).Inc()
}

func RecordRateLimited() {
	rateLimited.Inc()
}

// routeName is the chi route pattern matched for r, or its raw path when
// nothing was routed. Only meaningful once the router has run.
func routeName(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
