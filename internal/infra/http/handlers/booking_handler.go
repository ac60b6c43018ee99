package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/corporate-ask/internal/infra/http/middleware"
	"github.com/xavierca1/corporate-ask/internal/usecase"
)

type BookingHandler struct {
	UC *usecase.BookingUseCase
}

func NewBookingHandler(uc *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{UC: uc}
}

// Start (POST /api/bookings)
func (h *BookingHandler) Start(w http.ResponseWriter, r *http.Request) {
	view, err := h.UC.Start(r.Context())
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	middleware.RecordBookingStep(string(view.Step))
	writeJSON(w, http.StatusCreated, view)
}

// Get (GET /api/bookings/{id})
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.UC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SubmitDetails (POST /api/bookings/{id}/details)
func (h *BookingHandler) SubmitDetails(w http.ResponseWriter, r *http.Request) {
	var input usecase.BookingDetailsInput
	if !decodeJSON(w, r, &input) {
		return
	}

	view, err := h.UC.SubmitDetails(r.Context(), chi.URLParam(r, "id"), input)
	recordCouponRejection(err)
	h.respond(w, r, view, err)
}

// Proceed (POST /api/bookings/{id}/proceed)
func (h *BookingHandler) Proceed(w http.ResponseWriter, r *http.Request) {
	view, err := h.UC.ProceedToPayment(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, view, err)
}

// Back (POST /api/bookings/{id}/back)
func (h *BookingHandler) Back(w http.ResponseWriter, r *http.Request) {
	view, err := h.UC.Back(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, view, err)
}

// SubmitPayment (POST /api/bookings/{id}/payment)
func (h *BookingHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var input usecase.PaymentInput
	if !decodeJSON(w, r, &input) {
		return
	}

	view, err := h.UC.SubmitPayment(r.Context(), chi.URLParam(r, "id"), input)
	switch {
	case err == nil:
		middleware.RecordPayment("confirmed")
	case usecase.IsDomainError(err):
		middleware.RecordPayment("rejected")
	default:
		middleware.RecordPayment("failed")
	}
	recordCouponRejection(err)
	h.respond(w, r, view, err)
}

// Close (DELETE /api/bookings/{id})
func (h *BookingHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Close(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PreviewCoupon (POST /api/coupons/validate)
func (h *BookingHandler) PreviewCoupon(w http.ResponseWriter, r *http.Request) {
	var input usecase.CouponPreviewInput
	if !decodeJSON(w, r, &input) {
		return
	}

	quote, err := h.UC.PreviewCoupon(r.Context(), input)
	if err != nil {
		recordCouponRejection(err)
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// respond writes the view of a completed transition and counts its step.
func (h *BookingHandler) respond(w http.ResponseWriter, r *http.Request, view *usecase.BookingView, err error) {
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	middleware.RecordBookingStep(string(view.Step))
	writeJSON(w, http.StatusOK, view)
}

func recordCouponRejection(err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) && strings.HasPrefix(de.Code, "COUPON_") {
		middleware.RecordCouponRejection(strings.ToLower(strings.TrimPrefix(de.Code, "COUPON_")))
	}
}
