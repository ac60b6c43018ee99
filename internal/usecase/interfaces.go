package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/corporate-ask/internal/entity"
	"github.com/xavierca1/corporate-ask/internal/infra/queue"
)

// WizardStore keeps booking wizards between requests.
type WizardStore interface {
	SaveWizard(ctx context.Context, w *BookingWizard) error
	// LoadWizard returns ErrBookingNotFound when the id is unknown or expired.
	LoadWizard(ctx context.Context, id string) (*BookingWizard, error)
	DeleteWizard(ctx context.Context, id string) error
}

type QueueProducerInterface interface {
	PublishPaymentSubmitted(ctx context.Context, payload queue.PaymentSubmittedPayload) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(username string, role entity.Role) (token string, expiresAt time.Time, err error)
}

type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
}

// RowDeleter removes a row from any admin-visible table.
type RowDeleter interface {
	DeleteRow(ctx context.Context, table entity.Table, id string) error
}

type BookingDetailsInput struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Experience *int   `json:"experience"`
	CouponCode string `json:"coupon_code"`
}

type PaymentInput struct {
	SenderNumber string `json:"sender_number"`
	TransID      string `json:"trans_id"`
}

type CouponPreviewInput struct {
	Code       string `json:"code"`
	Experience *int   `json:"experience"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateCouponInput struct {
	Code           string    `json:"code"`
	DiscountAmount int       `json:"discount_amount"`
	UsageLimit     int       `json:"usage_limit"`
	ExpiryDate     time.Time `json:"expiry_date"`
}
