package usecase

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/xavierca1/corporate-ask/internal/entity"
)

type Period string

const (
	PeriodAll   Period = "all"
	PeriodYear  Period = "year"
	PeriodMonth Period = "month"
	PeriodWeek  Period = "week"
	PeriodToday Period = "today"
)

var ErrInvalidPeriod = errors.New("invalid period")

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return PeriodAll, nil
	case PeriodAll, PeriodYear, PeriodMonth, PeriodWeek, PeriodToday:
		return Period(s), nil
	}
	return "", ErrInvalidPeriod
}

// Since returns the earliest created_at the period keeps, in now's location.
// The zero time means no lower bound.
func (p Period) Since(now time.Time) time.Time {
	y, m, d := now.Date()
	loc := now.Location()
	switch p {
	case PeriodToday:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case PeriodYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	}
	return time.Time{}
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ListQuery is the search, period and sort state of one admin tab.
type ListQuery struct {
	Search string
	Period Period
	SortBy string
	Order  SortOrder
}

func NewListQuery(search, period, sortBy, order string) (ListQuery, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return ListQuery{}, err
	}
	o := SortOrder(strings.ToLower(order))
	switch o {
	case "":
		o = OrderAsc
	case OrderAsc, OrderDesc:
	default:
		return ListQuery{}, fmt.Errorf("invalid sort order %q", order)
	}
	return ListQuery{
		Search: strings.TrimSpace(search),
		Period: p,
		SortBy: strings.TrimSpace(sortBy),
		Order:  o,
	}, nil
}

var ErrUnknownColumn = errors.New("unknown sort column")

// ApplyListQuery filters by search text, then by period, then sorts.
// Rows are expected newest first; without a sort column that order is kept.
func ApplyListQuery(table entity.Table, rows []entity.Record, q ListQuery, now time.Time) ([]entity.Record, error) {
	if q.SortBy != "" && !table.HasColumn(q.SortBy) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, q.SortBy)
	}

	out := make([]entity.Record, 0, len(rows))

	needle := strings.ToLower(q.Search)
	since := q.Period.Since(now)

	for _, r := range rows {
		if needle != "" && !matchesSearch(r, needle) {
			continue
		}
		if !since.IsZero() && r.Created().Before(since) {
			continue
		}
		out = append(out, r)
	}

	if q.SortBy == "" {
		return out, nil
	}

	slices.SortStableFunc(out, func(a, b entity.Record) int {
		av, _ := entity.FieldValue(a, q.SortBy)
		bv, _ := entity.FieldValue(b, q.SortBy)
		c := compareValues(av, bv)
		if q.Order == OrderDesc {
			return -c
		}
		return c
	})
	return out, nil
}

func matchesSearch(r entity.Record, needle string) bool {
	for _, f := range r.Fields() {
		if strings.Contains(strings.ToLower(Stringify(f.Value)), needle) {
			return true
		}
	}
	return false
}

// Stringify renders a field value the way it is searched and exported.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// compareValues orders nil first, then numbers, times and bools by value and
// everything else as case-insensitive text.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch x := a.(type) {
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			}
			return 1
		}
	}
	return strings.Compare(strings.ToLower(Stringify(a)), strings.ToLower(Stringify(b)))
}
