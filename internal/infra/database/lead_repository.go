package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/corporate-ask/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	query := `
		INSERT INTO hot_leads (id, name, phone, experience, price, coupon_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		l.ID,
		l.Name,
		l.Phone,
		l.Experience,
		l.Price,
		nullString(l.CouponCode),
		l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, phone, experience, price, coupon_code, created_at
		FROM hot_leads
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		var (
			l      entity.Lead
			coupon sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.Name, &l.Phone, &l.Experience, &l.Price, &coupon, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		l.CouponCode = fromNull(coupon)
		leads = append(leads, &l)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM hot_leads WHERE id = $1`, id)
	if isInvalidID(err) {
		return entity.ErrLeadNotFound
	}
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}
