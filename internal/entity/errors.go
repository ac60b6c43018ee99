package entity

import "errors"

var (
	ErrLeadNotFound         = errors.New("lead not found")
	ErrPaidCustomerNotFound = errors.New("paid customer not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrCouponCodeTaken      = errors.New("coupon code already exists")
	ErrCouponExpired        = errors.New("coupon expired")
	ErrCouponExhausted      = errors.New("coupon usage limit reached")
	ErrCouponInactive       = errors.New("coupon is not active")
	ErrUnknownTable         = errors.New("unknown table")
	ErrInvalidWorkStatus    = errors.New("invalid work status")
	ErrInvalidRole          = errors.New("invalid role")
	ErrEmptyUpdate          = errors.New("nothing to update")
)
