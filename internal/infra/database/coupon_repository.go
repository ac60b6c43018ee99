package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xavierca1/corporate-ask/internal/entity"
)

const couponColumns = `id, code, discount_amount, usage_count, usage_limit, expiry_date, is_active, created_at`

type CouponRepository struct {
	DB *sql.DB
}

func NewCouponRepository(db *sql.DB) *CouponRepository {
	return &CouponRepository{DB: db}
}

func (r *CouponRepository) Create(ctx context.Context, c *entity.Coupon) error {
	query := `INSERT INTO coupons (` + couponColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.Code,
		c.DiscountAmount,
		c.UsageCount,
		c.UsageLimit,
		c.ExpiryDate,
		c.IsActive,
		c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrCouponCodeTaken
		}
		return fmt.Errorf("insert coupon: %w", err)
	}
	return nil
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	return r.findOne(ctx, `SELECT `+couponColumns+` FROM coupons WHERE code = $1`, entity.NormalizeCouponCode(code))
}

func (r *CouponRepository) findByID(ctx context.Context, id string) (*entity.Coupon, error) {
	return r.findOne(ctx, `SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id)
}

func (r *CouponRepository) findOne(ctx context.Context, query string, arg any) (*entity.Coupon, error) {
	c, err := scanCoupon(r.DB.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
		return nil, entity.ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find coupon: %w", err)
	}
	return c, nil
}

func (r *CouponRepository) List(ctx context.Context) ([]*entity.Coupon, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()

	var coupons []*entity.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func (r *CouponRepository) Update(ctx context.Context, id string, u entity.CouponUpdate) (*entity.Coupon, error) {
	query := `
		UPDATE coupons
		SET is_active = COALESCE($2, is_active),
		    usage_limit = COALESCE($3, usage_limit),
		    discount_amount = COALESCE($4, discount_amount),
		    expiry_date = COALESCE($5, expiry_date)
		WHERE id = $1
		RETURNING ` + couponColumns

	c, err := scanCoupon(r.DB.QueryRowContext(ctx, query, id, u.IsActive, u.UsageLimit, u.DiscountAmount, u.ExpiryDate))
	if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
		return nil, entity.ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update coupon: %w", err)
	}
	return c, nil
}

// Redeem bumps usage_count in a single conditional UPDATE, so two customers
// can never both take the last use. When nothing is updated the current row
// is read back to report why.
func (r *CouponRepository) Redeem(ctx context.Context, id string) (*entity.Coupon, error) {
	query := `
		UPDATE coupons
		SET usage_count = usage_count + 1
		WHERE id = $1
		  AND is_active
		  AND usage_count < usage_limit
		  AND expiry_date >= NOW()
		RETURNING ` + couponColumns

	c, err := scanCoupon(r.DB.QueryRowContext(ctx, query, id))
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) && !isInvalidID(err) {
		return nil, fmt.Errorf("redeem coupon: %w", err)
	}

	current, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reason := current.CheckRedeemable(time.Now()); reason != nil {
		return nil, reason
	}
	return nil, entity.ErrCouponExhausted
}

func (r *CouponRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE coupons SET is_active = FALSE WHERE is_active AND expiry_date < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired coupons: %w", err)
	}
	return res.RowsAffected()
}

func scanCoupon(s scanner) (*entity.Coupon, error) {
	var c entity.Coupon
	err := s.Scan(
		&c.ID,
		&c.Code,
		&c.DiscountAmount,
		&c.UsageCount,
		&c.UsageLimit,
		&c.ExpiryDate,
		&c.IsActive,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
