package handlers_test

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/corporate-ask/internal/entity"
	"github.com/xavierca1/corporate-ask/internal/infra/http/handlers"
	"github.com/xavierca1/corporate-ask/internal/usecase"
)

func startBooking(t *testing.T, s *testServer) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/bookings", nil, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	view := decode[usecase.BookingView](t, rec)
	assert.Equal(t, usecase.StepDetails, view.Step)
	require.NotEmpty(t, view.BookingID)
	return view.BookingID
}

func details(name, phone string, years int, coupon string) map[string]any {
	return map[string]any{"name": name, "phone": phone, "experience": years, "coupon_code": coupon}
}

func TestBookingHandler_FullFlow(t *testing.T) {
	s := newTestServer(t)
	s.leads.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.leads.On("Delete", mock.Anything, mock.Anything).Return(nil)
	s.customers.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.PaidCustomer) bool {
		return c.Price == 3500 && c.Phone == "01712345678" && c.TransID == "TRX123"
	})).Return(nil)

	id := startBooking(t, s)

	rec := s.do(t, http.MethodPost, "/api/bookings/"+id+"/details", details("Rahim", "+8801712345678", 5, ""), "")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[usecase.BookingView](t, rec)
	assert.Equal(t, usecase.StepPriced, view.Step)
	require.NotNil(t, view.Quote)
	assert.Equal(t, 3500, view.Quote.Final)
	assert.Equal(t, "3000 + (100 × 5 Years)", view.Quote.Breakdown)
	assert.Empty(t, view.PaymentNumber)

	rec = s.do(t, http.MethodPost, "/api/bookings/"+id+"/proceed", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[usecase.BookingView](t, rec)
	assert.Equal(t, usecase.StepPaymentInfo, view.Step)
	assert.Equal(t, "01681742043", view.PaymentNumber)

	rec = s.do(t, http.MethodPost, "/api/bookings/"+id+"/payment", map[string]string{
		"sender_number": "01812345678",
		"trans_id":      "TRX123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[usecase.BookingView](t, rec)
	assert.Equal(t, usecase.StepConfirmed, view.Step)
	assert.Equal(t, usecase.ConfirmationMessage, view.Message)
	assert.NotEmpty(t, view.CustomerID)

	s.customers.AssertExpectations(t)
	s.leads.AssertExpectations(t)
}

func TestBookingHandler_InvalidPhoneReturnsFields(t *testing.T) {
	s := newTestServer(t)
	id := startBooking(t, s)

	rec := s.do(t, http.MethodPost, "/api/bookings/"+id+"/details", details("Rahim", "12345", 2, ""), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[handlers.ErrorResponse](t, rec)
	assert.Equal(t, usecase.CodeValidation, body.Error)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "phone", body.Fields[0].Field)
	assert.Equal(t, usecase.MsgInvalidPhone, body.Fields[0].Message)
	s.leads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingHandler_UnknownCouponKeepsDetailsStep(t *testing.T) {
	s := newTestServer(t)
	s.coupons.On("FindByCode", mock.Anything, "NOPE").Return(nil, entity.ErrCouponNotFound)
	id := startBooking(t, s)

	rec := s.do(t, http.MethodPost, "/api/bookings/"+id+"/details", details("Rahim", "01712345678", 2, " nope "), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, usecase.CodeCouponNotFound, decode[handlers.ErrorResponse](t, rec).Error)

	rec = s.do(t, http.MethodGet, "/api/bookings/"+id, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.StepDetails, decode[usecase.BookingView](t, rec).Step)
}

func TestBookingHandler_InvalidTransitionIsConflict(t *testing.T) {
	s := newTestServer(t)
	id := startBooking(t, s)

	rec := s.do(t, http.MethodPost, "/api/bookings/"+id+"/proceed", nil, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, usecase.CodeInvalidTransition, decode[handlers.ErrorResponse](t, rec).Error)
}

// stepCount reads booking_steps_total for step from the /metrics endpoint.
func stepCount(t *testing.T, s *testServer, step string) float64 {
	t.Helper()
	rec := s.do(t, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	prefix := `booking_steps_total{step="` + step + `"} `
	for _, line := range strings.Split(rec.Body.String(), "\n") {
		if strings.HasPrefix(line, prefix) {
			v, err := strconv.ParseFloat(strings.TrimPrefix(line, prefix), 64)
			require.NoError(t, err)
			return v
		}
	}
	return 0
}

func TestBookingHandler_GetDoesNotCountStep(t *testing.T) {
	s := newTestServer(t)
	s.leads.On("Create", mock.Anything, mock.Anything).Return(nil)
	id := startBooking(t, s)

	before := stepCount(t, s, string(usecase.StepDetails))
	rec := s.do(t, http.MethodGet, "/api/bookings/"+id, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before, stepCount(t, s, string(usecase.StepDetails)))

	pricedBefore := stepCount(t, s, string(usecase.StepPriced))
	rec = s.do(t, http.MethodPost, "/api/bookings/"+id+"/details", details("Rahim", "01712345678", 1, ""), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pricedBefore+1, stepCount(t, s, string(usecase.StepPriced)))
}

func TestBookingHandler_BackFromPriced(t *testing.T) {
	s := newTestServer(t)
	s.leads.On("Create", mock.Anything, mock.Anything).Return(nil)
	id := startBooking(t, s)

	rec := s.do(t, http.MethodPost, "/api/bookings/"+id+"/details", details("Rahim", "01712345678", 0, ""), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/bookings/"+id+"/back", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.StepDetails, decode[usecase.BookingView](t, rec).Step)
}

func TestBookingHandler_PaymentSaveFailure(t *testing.T) {
	s := newTestServer(t)
	s.leads.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.customers.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	id := startBooking(t, s)

	s.do(t, http.MethodPost, "/api/bookings/"+id+"/details", details("Rahim", "01712345678", 1, ""), "")
	s.do(t, http.MethodPost, "/api/bookings/"+id+"/proceed", nil, "")
	rec := s.do(t, http.MethodPost, "/api/bookings/"+id+"/payment", map[string]string{
		"sender_number": "01812345678",
		"trans_id":      "TRX9",
	}, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, usecase.CodePaymentSaveFailed, decode[handlers.ErrorResponse](t, rec).Error)

	rec = s.do(t, http.MethodGet, "/api/bookings/"+id, nil, "")
	assert.Equal(t, usecase.StepPaymentInfo, decode[usecase.BookingView](t, rec).Step)
}

func TestBookingHandler_CloseDiscardsWizard(t *testing.T) {
	s := newTestServer(t)
	id := startBooking(t, s)

	rec := s.do(t, http.MethodDelete, "/api/bookings/"+id, nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/bookings/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, usecase.CodeBookingNotFound, decode[handlers.ErrorResponse](t, rec).Error)
}

func TestBookingHandler_InvalidJSON(t *testing.T) {
	s := newTestServer(t)
	id := startBooking(t, s)

	rec := s.do(t, http.MethodPost, "/api/bookings/"+id+"/details", "not an object", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_JSON", decode[handlers.ErrorResponse](t, rec).Error)
}

func TestBookingHandler_PreviewCoupon(t *testing.T) {
	s := newTestServer(t)
	s.coupons.On("FindByCode", mock.Anything, "SAVE500").Return(&entity.Coupon{
		ID:             "c-1",
		Code:           "SAVE500",
		DiscountAmount: 500,
		UsageLimit:     10,
		ExpiryDate:     time.Now().Add(24 * time.Hour),
		IsActive:       true,
	}, nil)

	rec := s.do(t, http.MethodPost, "/api/coupons/validate", map[string]any{"code": "save500", "experience": 2}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	quote := decode[usecase.QuoteView](t, rec)
	assert.Equal(t, 3200, quote.Base)
	assert.Equal(t, 500, quote.Discount)
	assert.Equal(t, 2700, quote.Final)
	assert.Equal(t, "SAVE500", quote.CouponCode)
}

func TestBookingHandler_PreviewExpiredCoupon(t *testing.T) {
	s := newTestServer(t)
	s.coupons.On("FindByCode", mock.Anything, "OLD").Return(&entity.Coupon{
		ID:             "c-2",
		Code:           "OLD",
		DiscountAmount: 200,
		UsageLimit:     10,
		ExpiryDate:     time.Now().Add(-time.Hour),
		IsActive:       true,
	}, nil)

	rec := s.do(t, http.MethodPost, "/api/coupons/validate", map[string]any{"code": "old", "experience": 2}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, usecase.CodeCouponExpired, decode[handlers.ErrorResponse](t, rec).Error)
}
