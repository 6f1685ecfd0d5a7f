package license

import (
	"fmt"
	"strings"
	"time"

	"licenza/internal/shared/biztime"
)

// Conventional status values. Status is stored as free text so that legacy
// records with other values still group correctly in statistics.
const (
	StatusActive    = "Active"
	StatusPending   = "Pending"
	StatusSuspended = "Suspended"
	StatusExpired   = "Expired"
)

// TypeOther is the grouping bucket for licenses with a blank type.
const TypeOther = "OTHER"

// License represents one regulatory authorization held by a company.
type License struct {
	id          uint
	companyID   uint
	companyName string // denormalized for display, loaded with the record
	authority   string
	licenseType string
	number      string
	issueDate   *time.Time
	expiryDate  time.Time
	status      string
	notes       string
	createdAt   time.Time
}

// NewLicense creates a new license. The expiry date is mandatory; a zero
// value is a validation failure, never a runtime state.
func NewLicense(
	companyID uint,
	authority string,
	licenseType string,
	number string,
	issueDate *time.Time,
	expiryDate time.Time,
	status string,
	notes string,
) (*License, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company reference is required")
	}
	if strings.TrimSpace(authority) == "" {
		return nil, fmt.Errorf("issuing authority is required")
	}
	if strings.TrimSpace(licenseType) == "" {
		return nil, fmt.Errorf("license type is required")
	}
	if expiryDate.IsZero() {
		return nil, fmt.Errorf("expiry date is required")
	}
	if status == "" {
		status = StatusActive
	}

	return &License{
		companyID:   companyID,
		authority:   strings.TrimSpace(authority),
		licenseType: strings.TrimSpace(licenseType),
		number:      strings.TrimSpace(number),
		issueDate:   issueDate,
		expiryDate:  biztime.DateOf(expiryDate),
		status:      status,
		notes:       notes,
		createdAt:   biztime.NowUTC(),
	}, nil
}

// ReconstructLicense reconstructs a License from the persistence layer
func ReconstructLicense(
	id uint,
	companyID uint,
	companyName string,
	authority string,
	licenseType string,
	number string,
	issueDate *time.Time,
	expiryDate time.Time,
	status string,
	notes string,
	createdAt time.Time,
) *License {
	return &License{
		id:          id,
		companyID:   companyID,
		companyName: companyName,
		authority:   authority,
		licenseType: licenseType,
		number:      number,
		issueDate:   issueDate,
		expiryDate:  expiryDate,
		status:      status,
		notes:       notes,
		createdAt:   createdAt,
	}
}

// Getters
func (l *License) ID() uint              { return l.id }
func (l *License) CompanyID() uint       { return l.companyID }
func (l *License) CompanyName() string   { return l.companyName }
func (l *License) Authority() string     { return l.authority }
func (l *License) LicenseType() string   { return l.licenseType }
func (l *License) Number() string        { return l.number }
func (l *License) IssueDate() *time.Time { return l.issueDate }
func (l *License) ExpiryDate() time.Time { return l.expiryDate }
func (l *License) Status() string        { return l.status }
func (l *License) Notes() string         { return l.notes }
func (l *License) CreatedAt() time.Time  { return l.createdAt }

// SetID sets the license ID (only for persistence layer use)
func (l *License) SetID(id uint) {
	l.id = id
}

// Update replaces the mutable fields in place, enforcing the same rules as
// NewLicense.
func (l *License) Update(
	companyID uint,
	authority string,
	licenseType string,
	number string,
	issueDate *time.Time,
	expiryDate time.Time,
	status string,
	notes string,
) error {
	if companyID == 0 {
		return fmt.Errorf("company reference is required")
	}
	if strings.TrimSpace(authority) == "" {
		return fmt.Errorf("issuing authority is required")
	}
	if strings.TrimSpace(licenseType) == "" {
		return fmt.Errorf("license type is required")
	}
	if expiryDate.IsZero() {
		return fmt.Errorf("expiry date is required")
	}
	if status == "" {
		status = StatusActive
	}

	l.companyID = companyID
	l.authority = strings.TrimSpace(authority)
	l.licenseType = strings.TrimSpace(licenseType)
	l.number = strings.TrimSpace(number)
	l.issueDate = issueDate
	l.expiryDate = biztime.DateOf(expiryDate)
	l.status = status
	l.notes = notes
	return nil
}

// NormalizedType returns the upper-cased trimmed license type used for
// grouping, with blank types bucketed under TypeOther.
func (l *License) NormalizedType() string {
	return NormalizeType(l.licenseType)
}

// NormalizeType upper-cases and trims a raw license type, mapping the empty
// result to TypeOther.
func NormalizeType(raw string) string {
	t := strings.ToUpper(strings.TrimSpace(raw))
	if t == "" {
		return TypeOther
	}
	return t
}

// DaysUntilExpiry returns the number of whole days between today and the
// expiry date. Negative for already-expired licenses.
func (l *License) DaysUntilExpiry(today time.Time) int {
	return int(l.expiryDate.Sub(biztime.DateOf(today)).Hours() / 24)
}
