package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Sentry starts a transaction per request and attaches a request scope to a
// hub cloned for this request. The transaction is named after the matched
// route once routing is done. Without an initialised client it is a no-op.
func Sentry(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sentry.CurrentHub().Client() == nil {
			next.ServeHTTP(w, r)
			return
		}

		hub := sentry.CurrentHub().Clone()
		ctx := sentry.SetHubOnContext(r.Context(), hub)

		transaction := sentry.StartTransaction(ctx,
			fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			sentry.ContinueFromRequest(r),
		)

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			route := routeName(r)
			transaction.Name = fmt.Sprintf("%s %s", r.Method, route)
			transaction.SetTag("http.route", route)
			transaction.Status = sentry.HTTPtoSpanStatus(ww.Status())
			transaction.Finish()
		}()

		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetRequest(r)
			scope.SetContext("Request", map[string]interface{}{
				"Method":  r.Method,
				"URL":     r.URL.String(),
				"Headers": safeHeaders(r.Header),
			})
			scope.SetTag("http.method", r.Method)
		})

		next.ServeHTTP(ww, r.WithContext(transaction.Context()))
	})
}

// CaptureError reports err with extra context on the request's hub.
func CaptureError(r *http.Request, err error, extra map[string]interface{}) {
	hub := sentry.GetHubFromContext(r.Context())
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range extra {
			scope.SetExtra(k, v)
		}
		hub.CaptureException(err)
	})
}

func safeHeaders(h http.Header) map[string]interface{} {
	safe := make(map[string]interface{})
	for k, v := range h {
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Cookie") {
			safe[k] = "[FILTERED]"
		} else {
			safe[k] = v
		}
	}
	return safe
}
