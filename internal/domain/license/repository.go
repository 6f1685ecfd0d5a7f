package license

import (
	"context"
	"time"
)

// ListFilter narrows List results. Zero values mean "no restriction".
type ListFilter struct {
	CompanyID *uint
	Status    string
	Query     string // matches number, type or company name
	Horizon   *int   // only licenses expiring within this many days
}

// Repository defines the interface for license persistence. The monitoring
// core only consumes the read side; the write side serves the CRUD API.
type Repository interface {
	// Create persists a new license and assigns its ID
	Create(ctx context.Context, lic *License) error

	// Update persists changes to an existing license
	Update(ctx context.Context, lic *License) error

	// Delete removes a license by ID
	Delete(ctx context.Context, id uint) error

	// FindByID retrieves a license by ID
	FindByID(ctx context.Context, id uint) (*License, error)

	// List retrieves licenses matching the filter, ordered by expiry ascending
	List(ctx context.Context, filter ListFilter) ([]*License, error)

	// FindByExpiryRange retrieves licenses with from <= expiry <= to,
	// optionally restricted to one company, in repository default order.
	FindByExpiryRange(ctx context.Context, companyID *uint, from, to time.Time) ([]*License, error)

	// FindUpcoming retrieves the next licenses expiring on or after today,
	// ordered by expiry ascending, capped at limit.
	FindUpcoming(ctx context.Context, today time.Time, limit int) ([]*License, error)

	// Count returns the total number of licenses
	Count(ctx context.Context) (int64, error)

	// CountExpiryBefore counts licenses with expiry <= date
	CountExpiryBefore(ctx context.Context, date time.Time) (int64, error)

	// CountExpiryBetween counts licenses with after < expiry <= upTo
	CountExpiryBetween(ctx context.Context, after, upTo time.Time) (int64, error)

	// CountExpired counts licenses with expiry < today
	CountExpired(ctx context.Context, today time.Time) (int64, error)
}
