// Package queries contains the read models. Handlers read straight from the
// database through GORM and never load aggregates.
package queries

import (
	"rfidship/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	MaxPageLimit        = 100
	DefaultPageLimit    = 20
	DefaultLogPageLimit = 50
)

// Page is a validated page request.
type Page struct {
	Number int
	Limit  int
}

// newStrictPage rejects page < 1 and limits outside 1..MaxPageLimit.
func newStrictPage(number, limit int) (Page, error) {
	if number < 1 {
		return Page{}, errs.NewValueIsOutOfRangeError("page", number, 1, "unbounded")
	}
	if limit < 1 || limit > MaxPageLimit {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}
	return Page{Number: number, Limit: limit}, nil
}

// newLenientPage falls back to page 1 and defaultLimit for unset values and
// caps the limit at MaxPageLimit.
func newLenientPage(number, limit, defaultLimit int) Page {
	if number < 1 {
		number = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return Page{Number: number, Limit: min(limit, MaxPageLimit)}
}

func (p Page) offset() int {
	return (p.Number - 1) * p.Limit
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	return db.Limit(p.Limit).Offset(p.offset())
}

// PageResult is the paginated envelope of every list query.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func newPageResult[T any](items []T, total int64, page Page) PageResult[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return PageResult[T]{
		Items:      items,
		Total:      total,
		Page:       page.Number,
		Limit:      page.Limit,
		TotalPages: int((total + int64(page.Limit) - 1) / int64(page.Limit)),
	}
}
