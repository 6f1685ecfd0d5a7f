package company

import "context"

// Repository defines the interface for company persistence
type Repository interface {
	// Create persists a new company and assigns its ID
	Create(ctx context.Context, company *Company) error

	// Update persists changes to an existing company
	Update(ctx context.Context, company *Company) error

	// Delete removes a company together with its licenses in one transaction
	Delete(ctx context.Context, id uint) error

	// FindByID retrieves a company by ID
	FindByID(ctx context.Context, id uint) (*Company, error)

	// Search retrieves companies matching the query across name, tax id and
	// city, newest first. An empty query returns all companies.
	Search(ctx context.Context, query string) ([]*Company, error)

	// Count returns the total number of companies
	Count(ctx context.Context) (int64, error)
}
