package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/corporate-ask/internal/entity"
	"github.com/xavierca1/corporate-ask/internal/infra/http/middleware"
)

// Router groups every handler the API serves.
type Router struct {
	Landing        *LandingHandler
	Health         *HealthHandler
	Booking        *BookingHandler
	Auth           *AuthHandler
	Admin          *AdminHandler
	Authenticator  *middleware.Authenticator
	Limiter        *RateLimiter
	AllowedOrigins []string
}

func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Sentry)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/", rt.Landing.Index)
	r.Get("/health", rt.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/bookings", func(r chi.Router) {
			r.Use(rt.Limiter.Limit)
			r.Post("/", rt.Booking.Start)
			r.Get("/{id}", rt.Booking.Get)
			r.Delete("/{id}", rt.Booking.Close)
			r.Post("/{id}/details", rt.Booking.SubmitDetails)
			r.Post("/{id}/proceed", rt.Booking.Proceed)
			r.Post("/{id}/back", rt.Booking.Back)
			r.Post("/{id}/payment", rt.Booking.SubmitPayment)
		})
		r.With(rt.Limiter.Limit).Post("/coupons/validate", rt.Booking.PreviewCoupon)

		r.Route("/auth", func(r chi.Router) {
			r.With(rt.Limiter.Limit).Post("/login", rt.Auth.Login)
			r.With(rt.Limiter.Limit).Post("/signup", rt.Auth.SignUp)
			r.Group(func(r chi.Router) {
				r.Use(rt.Authenticator.Authenticate)
				r.Post("/logout", rt.Auth.Logout)
				r.Get("/me", rt.Auth.Me)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(rt.Authenticator.Authenticate)
			r.Use(middleware.RequireRole(entity.RoleAdmin))

			r.Post("/coupons", rt.Admin.CreateCoupon)
			r.Post("/admins", rt.Admin.AddAdmin)
			r.Patch("/paidcustomer/{id}", rt.Admin.UpdatePaidCustomer)
			r.Patch("/coupons/{id}", rt.Admin.UpdateCoupon)
			r.Patch("/users/{id}", rt.Admin.UpdateUser)
			r.Get("/{table}", rt.Admin.List)
			r.Get("/{table}/export.csv", rt.Admin.Export)
			r.Delete("/{table}/{id}", rt.Admin.Delete)
		})
	})

	return r
}
