package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xavierca1/corporate-ask/internal/entity"
)

const paidCustomerColumns = `id, name, phone, experience, price, sender_number, trans_id,
	payment_verified, work_status, coupon_code, discount, created_at`

type PaidCustomerRepository struct {
	DB *sql.DB
}

func NewPaidCustomerRepository(db *sql.DB) *PaidCustomerRepository {
	return &PaidCustomerRepository{DB: db}
}

func (r *PaidCustomerRepository) Create(ctx context.Context, c *entity.PaidCustomer) error {
	query := `
		INSERT INTO paidcustomer (` + paidCustomerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Phone,
		c.Experience,
		c.Price,
		c.SenderNumber,
		c.TransID,
		c.PaymentVerified,
		string(c.WorkStatus),
		nullString(c.CouponCode),
		c.Discount,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert paid customer: %w", err)
	}
	return nil
}

func (r *PaidCustomerRepository) List(ctx context.Context) ([]*entity.PaidCustomer, error) {
	query := `SELECT ` + paidCustomerColumns + ` FROM paidcustomer ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list paid customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.PaidCustomer
	for rows.Next() {
		c, err := scanPaidCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan paid customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Update sets only the columns present in u. Both columns fall back to
// their current value through COALESCE.
func (r *PaidCustomerRepository) Update(ctx context.Context, id string, u entity.PaidCustomerUpdate) (*entity.PaidCustomer, error) {
	var status *string
	if u.WorkStatus != nil {
		s := string(*u.WorkStatus)
		status = &s
	}

	query := `
		UPDATE paidcustomer
		SET payment_verified = COALESCE($2, payment_verified),
		    work_status = COALESCE($3, work_status)
		WHERE id = $1
		RETURNING ` + paidCustomerColumns

	c, err := scanPaidCustomer(r.DB.QueryRowContext(ctx, query, id, u.PaymentVerified, status))
	if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
		return nil, entity.ErrPaidCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update paid customer: %w", err)
	}
	return c, nil
}

func (r *PaidCustomerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM paidcustomer WHERE id = $1`, id)
	if isInvalidID(err) {
		return entity.ErrPaidCustomerNotFound
	}
	if err != nil {
		return fmt.Errorf("delete paid customer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrPaidCustomerNotFound
	}
	return nil
}

func scanPaidCustomer(s scanner) (*entity.PaidCustomer, error) {
	var (
		c      entity.PaidCustomer
		status string
		coupon sql.NullString
	)
	err := s.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Experience,
		&c.Price,
		&c.SenderNumber,
		&c.TransID,
		&c.PaymentVerified,
		&status,
		&coupon,
		&c.Discount,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.WorkStatus = entity.WorkStatus(status)
	c.CouponCode = fromNull(coupon)
	return &c, nil
}
