package usecase

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/xavierca1/corporate-ask/internal/entity"
)

// ListResult is one admin tab after filtering and sorting.
type ListResult struct {
	Table      entity.Table    `json:"table"`
	Count      int             `json:"count"`
	Rows       []entity.Record `json:"rows"`
	TotalSales *int            `json:"total_sales,omitempty"`
}

type AdminUseCase struct {
	Leads     entity.LeadRepositoryInterface
	Customers entity.PaidCustomerRepositoryInterface
	Users     entity.UserRepositoryInterface
	Coupons   entity.CouponRepositoryInterface
	Deleter   RowDeleter
	Now       func() time.Time
}

func NewAdminUseCase(
	leads entity.LeadRepositoryInterface,
	customers entity.PaidCustomerRepositoryInterface,
	users entity.UserRepositoryInterface,
	coupons entity.CouponRepositoryInterface,
	deleter RowDeleter,
) *AdminUseCase {
	return &AdminUseCase{
		Leads:     leads,
		Customers: customers,
		Users:     users,
		Coupons:   coupons,
		Deleter:   deleter,
		Now:       time.Now,
	}
}

// Rows fetches a whole table newest first and runs it through q.
func (uc *AdminUseCase) Rows(ctx context.Context, table entity.Table, q ListQuery) ([]entity.Record, error) {
	all, err := uc.fetch(ctx, table)
	if err != nil {
		return nil, err
	}

	rows, err := ApplyListQuery(table, all, q, uc.Now())
	if err != nil {
		return nil, &DomainError{Code: CodeInvalidQuery, Message: err.Error(), Err: err}
	}
	return rows, nil
}

func (uc *AdminUseCase) List(ctx context.Context, table entity.Table, q ListQuery) (*ListResult, error) {
	rows, err := uc.Rows(ctx, table, q)
	if err != nil {
		return nil, err
	}

	result := &ListResult{Table: table, Count: len(rows), Rows: rows}
	if table == entity.TablePaidCustomers {
		total := TotalSales(rows)
		result.TotalSales = &total
	}
	return result, nil
}

// TotalSales sums the price column of the given rows.
func TotalSales(rows []entity.Record) int {
	total := 0
	for _, r := range rows {
		if v, ok := entity.FieldValue(r, "price"); ok {
			if price, ok := v.(int); ok {
				total += price
			}
		}
	}
	return total
}

func (uc *AdminUseCase) UpdatePaidCustomer(ctx context.Context, id string, u entity.PaidCustomerUpdate) (*entity.PaidCustomer, error) {
	if err := u.Validate(); err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}
	c, err := uc.Customers.Update(ctx, id, u)
	if err != nil {
		return nil, notFoundOr(err, entity.ErrPaidCustomerNotFound, "could not update customer")
	}
	log.WithFields(log.Fields{"customer_id": id, "work_status": c.WorkStatus, "verified": c.PaymentVerified}).
		Info("📝 paid customer updated")
	return c, nil
}

func (uc *AdminUseCase) UpdateCoupon(ctx context.Context, id string, u entity.CouponUpdate) (*entity.Coupon, error) {
	if err := u.Validate(); err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}
	c, err := uc.Coupons.Update(ctx, id, u)
	if err != nil {
		return nil, notFoundOr(err, entity.ErrCouponNotFound, "could not update coupon")
	}
	return c, nil
}

func (uc *AdminUseCase) UpdateUser(ctx context.Context, id string, u entity.UserUpdate) (*entity.User, error) {
	if err := u.Validate(); err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}
	user, err := uc.Users.Update(ctx, id, u)
	if err != nil {
		return nil, notFoundOr(err, entity.ErrUserNotFound, "could not update user")
	}
	return user, nil
}

func (uc *AdminUseCase) Delete(ctx context.Context, table entity.Table, id string) error {
	if err := uc.Deleter.DeleteRow(ctx, table, id); err != nil {
		return notFoundOr(err, table.NotFound(), "could not delete row")
	}
	log.WithFields(log.Fields{"table": table, "id": id}).Info("🗑️ row deleted")
	return nil
}

func (uc *AdminUseCase) CreateCoupon(ctx context.Context, input CreateCouponInput) (*entity.Coupon, error) {
	coupon, err := entity.NewCoupon(input.Code, input.DiscountAmount, input.UsageLimit, input.ExpiryDate)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}

	if err := uc.Coupons.Create(ctx, coupon); err != nil {
		if errors.Is(err, entity.ErrCouponCodeTaken) {
			return nil, &DomainError{Code: CodeCouponCodeTaken, Message: "coupon code already exists", Err: err}
		}
		return nil, databaseError("could not create coupon", err)
	}

	log.WithFields(log.Fields{"code": coupon.Code, "discount": coupon.DiscountAmount}).Info("🎟️ coupon created")
	return coupon, nil
}

func (uc *AdminUseCase) fetch(ctx context.Context, table entity.Table) ([]entity.Record, error) {
	var (
		rows []entity.Record
		err  error
	)

	switch table {
	case entity.TableLeads:
		var leads []*entity.Lead
		if leads, err = uc.Leads.List(ctx); err == nil {
			rows = records(leads)
		}
	case entity.TablePaidCustomers:
		var customers []*entity.PaidCustomer
		if customers, err = uc.Customers.List(ctx); err == nil {
			rows = records(customers)
		}
	case entity.TableUsers:
		var users []*entity.User
		if users, err = uc.Users.List(ctx); err == nil {
			rows = records(users)
		}
	case entity.TableCoupons:
		var coupons []*entity.Coupon
		if coupons, err = uc.Coupons.List(ctx); err == nil {
			rows = records(coupons)
		}
	default:
		return nil, &DomainError{Code: CodeUnknownTable, Message: "unknown table", Err: entity.ErrUnknownTable}
	}

	if err != nil {
		return nil, databaseError("could not load "+string(table), err)
	}
	return rows, nil
}

func records[T entity.Record](items []T) []entity.Record {
	out := make([]entity.Record, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func notFoundOr(err, notFound error, msg string) error {
	if errors.Is(err, notFound) {
		return &DomainError{Code: CodeNotFound, Message: notFound.Error(), Err: err}
	}
	return databaseError(msg, err)
}
