package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/xavierca1/corporate-ask/internal/infra/http/middleware"
	"github.com/xavierca1/corporate-ask/internal/usecase"
)

type ErrorResponse struct {
	Error   string                    `json:"error"`
	Message string                    `json:"message"`
	Fields  []usecase.ValidationError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return false
	}
	return true
}

// writeUseCaseError maps use-case errors to status codes. Technical errors
// are logged and sent to Sentry.
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		writeJSON(w, domainStatus(de.Code), ErrorResponse{Error: de.Code, Message: de.Message, Fields: de.Fields})
		return
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		log.WithError(err).WithField("path", r.URL.Path).Error("❌ request failed")
		middleware.CaptureError(r, err, map[string]interface{}{"code": te.Code, "path": r.URL.Path})
		writeError(w, http.StatusInternalServerError, te.Code, te.Message)
		return
	}

	log.WithError(err).WithField("path", r.URL.Path).Error("❌ unexpected error")
	middleware.CaptureError(r, err, map[string]interface{}{"path": r.URL.Path})
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func domainStatus(code string) int {
	switch code {
	case usecase.CodeBookingNotFound, usecase.CodeNotFound, usecase.CodeUnknownTable:
		return http.StatusNotFound
	case usecase.CodeInvalidTransition, usecase.CodeUsernameTaken, usecase.CodeCouponCodeTaken:
		return http.StatusConflict
	case usecase.CodeInvalidCredentials:
		return http.StatusUnauthorized
	}
	return http.StatusBadRequest
}
