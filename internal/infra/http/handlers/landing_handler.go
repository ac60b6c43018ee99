package handlers

import (
	"bytes"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/xavierca1/corporate-ask/internal/landing"
)

type LandingHandler struct {
	Page landing.Page
}

func NewLandingHandler(paymentNumber string) *LandingHandler {
	page := landing.DefaultPage()
	page.PaymentNumber = paymentNumber
	return &LandingHandler{Page: page}
}

// Index (GET /)
func (h *LandingHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := landing.Render(&buf, h.Page); err != nil {
		log.WithError(err).Error("❌ failed to render landing page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
