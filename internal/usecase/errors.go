package usecase

import "errors"

// DomainError is a failure the caller can fix: bad input, a business rule,
// a missing record. Message is safe to show to the customer.
type DomainError struct {
	Code    string
	Message string
	Fields  []ValidationError
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError is an infrastructure failure (database, broker, store).
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidTransition  = "INVALID_TRANSITION"
	CodeBookingNotFound    = "BOOKING_NOT_FOUND"
	CodeCouponNotFound     = "COUPON_NOT_FOUND"
	CodeCouponExpired      = "COUPON_EXPIRED"
	CodeCouponExhausted    = "COUPON_EXHAUSTED"
	CodeCouponInactive     = "COUPON_INACTIVE"
	CodeCouponCodeTaken    = "COUPON_CODE_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUsernameTaken      = "USERNAME_TAKEN"
	CodeNotFound           = "NOT_FOUND"
	CodeUnknownTable       = "UNKNOWN_TABLE"
	CodeInvalidQuery       = "INVALID_QUERY"
	CodeDatabase           = "DATABASE_ERROR"
	CodeSessionStore       = "SESSION_STORE_ERROR"
	CodePaymentSaveFailed  = "PAYMENT_SAVE_FAILED"
	CodeToken              = "TOKEN_ERROR"
)

func validationError(errs []ValidationError) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: errs[0].Message,
		Fields:  errs,
	}
}

func databaseError(msg string, err error) *TechnicalError {
	return &TechnicalError{Code: CodeDatabase, Message: msg, Err: err}
}
