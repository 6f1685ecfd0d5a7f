package company

import (
	"fmt"
	"strings"
	"time"

	"licenza/internal/shared/biztime"
)

// Company groups the licenses held by a single organization.
type Company struct {
	id           uint
	name         string
	taxID        string // CNPJ or equivalent registration number
	sector       string
	state        string
	city         string
	contactEmail string
	contactPhone string
	createdAt    time.Time
}

// NewCompany creates a new company
func NewCompany(name, taxID, sector, state, city, contactEmail, contactPhone string) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("company name is required")
	}

	return &Company{
		name:         name,
		taxID:        strings.TrimSpace(taxID),
		sector:       sector,
		state:        state,
		city:         city,
		contactEmail: contactEmail,
		contactPhone: contactPhone,
		createdAt:    biztime.NowUTC(),
	}, nil
}

// ReconstructCompany reconstructs a Company from the persistence layer
func ReconstructCompany(
	id uint,
	name string,
	taxID string,
	sector string,
	state string,
	city string,
	contactEmail string,
	contactPhone string,
	createdAt time.Time,
) *Company {
	return &Company{
		id:           id,
		name:         name,
		taxID:        taxID,
		sector:       sector,
		state:        state,
		city:         city,
		contactEmail: contactEmail,
		contactPhone: contactPhone,
		createdAt:    createdAt,
	}
}

// Getters
func (c *Company) ID() uint             { return c.id }
func (c *Company) Name() string         { return c.name }
func (c *Company) TaxID() string        { return c.taxID }
func (c *Company) Sector() string       { return c.sector }
func (c *Company) State() string        { return c.state }
func (c *Company) City() string         { return c.city }
func (c *Company) ContactEmail() string { return c.contactEmail }
func (c *Company) ContactPhone() string { return c.contactPhone }
func (c *Company) CreatedAt() time.Time { return c.createdAt }

// SetID sets the company ID (only for persistence layer use)
func (c *Company) SetID(id uint) {
	c.id = id
}

// Update replaces the descriptive fields in place.
func (c *Company) Update(name, taxID, sector, state, city, contactEmail, contactPhone string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("company name is required")
	}

	c.name = name
	c.taxID = strings.TrimSpace(taxID)
	c.sector = sector
	c.state = state
	c.city = city
	c.contactEmail = contactEmail
	c.contactPhone = contactPhone
	return nil
}
