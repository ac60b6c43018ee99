package entity

import "time"

// Table is the name of one of the four tables the admin panel can browse.
type Table string

const (
	TableLeads         Table = "hot_leads"
	TablePaidCustomers Table = "paidcustomer"
	TableUsers         Table = "users"
	TableCoupons       Table = "coupons"
)

var Tables = []Table{TableLeads, TablePaidCustomers, TableUsers, TableCoupons}

func ParseTable(s string) (Table, error) {
	for _, t := range Tables {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrUnknownTable
}

// Field is a single named column of a row. Value is nil when the column is NULL.
type Field struct {
	Name  string
	Value any
}

// Record is a row of any table, viewed as an ordered list of fields.
type Record interface {
	RecordID() string
	Created() time.Time
	Fields() []Field
}

func FieldValue(r Record, name string) (any, bool) {
	for _, f := range r.Fields() {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NotFound returns the sentinel for a missing row of t.
func (t Table) NotFound() error {
	switch t {
	case TableLeads:
		return ErrLeadNotFound
	case TablePaidCustomers:
		return ErrPaidCustomerNotFound
	case TableUsers:
		return ErrUserNotFound
	case TableCoupons:
		return ErrCouponNotFound
	}
	return ErrUnknownTable
}

// Columns lists the field names every row of t exposes, in order.
func (t Table) Columns() []string {
	var zero Record
	switch t {
	case TableLeads:
		zero = &Lead{}
	case TablePaidCustomers:
		zero = &PaidCustomer{}
	case TableUsers:
		zero = &User{}
	case TableCoupons:
		zero = &Coupon{}
	default:
		return nil
	}
	fields := zero.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns() {
		if c == name {
			return true
		}
	}
	return false
}
