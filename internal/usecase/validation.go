package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Customer-facing messages, Bangla first with the English hint in brackets.
const (
	MsgNameRequired      = "আপনার নাম লিখুন (Enter your name)"
	MsgInvalidPhone      = "সঠিক বাংলাদেশি মোবাইল নম্বর দিন (Enter valid BD number: 01xxxxxxxxx)"
	MsgInvalidExperience = "কাজের অভিজ্ঞতা সংখ্যায় লিখুন (Enter valid years of experience)"
	MsgInvalidSender     = "সঠিক সেন্ডার নম্বর দিন (Enter valid sender number)"
	MsgTransIDRequired   = "ট্রানজেকশন আইডি দিন (Enter Transaction ID)"
	MsgPaymentSaveFailed = "ডাটা সেভ করতে সমস্যা হয়েছে। দয়া করে আবার চেষ্টা করুন।"
	MsgCouponNotFound    = "কুপন কোডটি সঠিক নয় (Invalid coupon code)"
	MsgCouponExpired     = "কুপনের মেয়াদ শেষ হয়ে গেছে (Coupon has expired)"
	MsgCouponExhausted   = "কুপনের ব্যবহার সীমা শেষ (Coupon usage limit reached)"
	MsgCouponInactive    = "কুপনটি এখন সক্রিয় নয় (Coupon is not active)"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	// 01, operator digit 3-9, eight more digits; optional +88/88 country prefix.
	bdPhoneRegex  = regexp.MustCompile(`^(?:\+88|88)?(01[3-9]\d{8})$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

func IsValidBDPhone(phone string) bool {
	return bdPhoneRegex.MatchString(strings.TrimSpace(phone))
}

// NormalizePhone returns the 11-digit local form of a Bangladeshi number.
// Input that is not a recognisable BD number comes back as its bare digits.
func NormalizePhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if strings.HasPrefix(digits, "8801") && len(digits) == 13 {
		return digits[2:]
	}
	return digits
}

func ValidateBookingDetails(input BookingDetailsInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", MsgNameRequired})
	} else if utf8.RuneCountInString(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "name must not exceed 200 characters"})
	}

	if !IsValidBDPhone(input.Phone) {
		errors = append(errors, ValidationError{"phone", MsgInvalidPhone})
	}

	if input.Experience == nil || *input.Experience < 0 {
		errors = append(errors, ValidationError{"experience", MsgInvalidExperience})
	}

	return errors
}

func ValidatePaymentDetails(input PaymentInput) []ValidationError {
	var errors []ValidationError

	if !IsValidBDPhone(input.SenderNumber) {
		errors = append(errors, ValidationError{"sender_number", MsgInvalidSender})
	}
	if strings.TrimSpace(input.TransID) == "" {
		errors = append(errors, ValidationError{"trans_id", MsgTransIDRequired})
	}

	return errors
}

func ValidateCredentials(input Credentials) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Username) == "" {
		errors = append(errors, ValidationError{"username", "username is required"})
	} else if len(input.Username) > 64 {
		errors = append(errors, ValidationError{"username", "username must not exceed 64 characters"})
	}
	if input.Password == "" {
		errors = append(errors, ValidationError{"password", "password is required"})
	}

	return errors
}
