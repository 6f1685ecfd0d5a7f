package stats

import (
	"context"
	"errors"

	"licenza/internal/domain/company"
	"licenza/internal/domain/license"
	"licenza/internal/shared/biztime"
	appErrors "licenza/internal/shared/errors"
	"licenza/internal/shared/logger"
)

const fleetCacheKey = "fleet"

// SummaryCache is the optional read-through cache in front of fleet stats.
type SummaryCache interface {
	Get(ctx context.Context, key string, target interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// Service computes dashboard statistics over the license repository.
type Service struct {
	licenseRepo license.Repository
	companyRepo company.Repository
	cache       SummaryCache // nil when caching is disabled
	logger      logger.Interface
}

// NewService creates a new stats service. cache may be nil.
func NewService(
	licenseRepo license.Repository,
	companyRepo company.Repository,
	cache SummaryCache,
	logger logger.Interface,
) *Service {
	return &Service{
		licenseRepo: licenseRepo,
		companyRepo: companyRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Fleet computes the summary over every license. Cache failures degrade to a
// recompute, never to an error.
func (s *Service) Fleet(ctx context.Context) (*Summary, error) {
	if s.cache != nil {
		var cached Summary
		hit, err := s.cache.Get(ctx, fleetCacheKey, &cached)
		if err != nil {
			s.logger.Warnw("stats cache read failed", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	licenses, err := s.licenseRepo.List(ctx, license.ListFilter{})
	if err != nil {
		return nil, appErrors.NewInternalError("failed to load licenses", err.Error())
	}

	summary := Compute(licenses, biztime.Today())

	if s.cache != nil {
		if err := s.cache.Set(ctx, fleetCacheKey, summary); err != nil {
			s.logger.Warnw("stats cache write failed", "error", err)
		}
	}

	return summary, nil
}

// Company computes the summary over a single company's licenses.
func (s *Service) Company(ctx context.Context, companyID uint) (*Summary, error) {
	if _, err := s.companyRepo.FindByID(ctx, companyID); err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return nil, appErrors.NewNotFoundError("company not found")
		}
		return nil, appErrors.NewInternalError("failed to load company", err.Error())
	}

	licenses, err := s.licenseRepo.List(ctx, license.ListFilter{CompanyID: &companyID})
	if err != nil {
		return nil, appErrors.NewInternalError("failed to load licenses", err.Error())
	}

	return Compute(licenses, biztime.Today()), nil
}

// Dashboard holds the headline counters for the landing page.
type Dashboard struct {
	TotalCompanies int64             `json:"total_companies"`
	TotalLicenses  int64             `json:"total_licenses"`
	DueIn30Days    int64             `json:"due_30"`
	DueIn60Days    int64             `json:"due_60"`
	Expired        int64             `json:"expired"`
	Upcoming       []UpcomingLicense `json:"upcoming"`
}

// UpcomingLicense is one row of the "next expiries" table.
type UpcomingLicense struct {
	ID          uint   `json:"id"`
	CompanyName string `json:"company_name"`
	LicenseType string `json:"license_type"`
	Authority   string `json:"authority"`
	Number      string `json:"number,omitempty"`
	ExpiryDate  string `json:"expiry_date"`
	Status      string `json:"status"`
}

// GetDashboard computes the landing page counters.
func (s *Service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	today := biztime.Today()
	in30 := biztime.AddDays(today, 30)
	in60 := biztime.AddDays(today, 60)

	totalCompanies, err := s.companyRepo.Count(ctx)
	if err != nil {
		return nil, appErrors.NewInternalError("failed to count companies", err.Error())
	}
	totalLicenses, err := s.licenseRepo.Count(ctx)
	if err != nil {
		return nil, appErrors.NewInternalError("failed to count licenses", err.Error())
	}
	due30, err := s.licenseRepo.CountExpiryBefore(ctx, in30)
	if err != nil {
		return nil, appErrors.NewInternalError("failed to count licenses", err.Error())
	}
	due60, err := s.licenseRepo.CountExpiryBetween(ctx, in30, in60)
	if err != nil {
		return nil, appErrors.NewInternalError("failed to count licenses", err.Error())
	}
	expired, err := s.licenseRepo.CountExpired(ctx, today)
	if err != nil {
		return nil, appErrors.NewInternalError("failed to count licenses", err.Error())
	}

	upcoming, err := s.licenseRepo.FindUpcoming(ctx, today, 10)
	if err != nil {
		return nil, appErrors.NewInternalError("failed to load upcoming licenses", err.Error())
	}

	dashboard := &Dashboard{
		TotalCompanies: totalCompanies,
		TotalLicenses:  totalLicenses,
		DueIn30Days:    due30,
		DueIn60Days:    due60,
		Expired:        expired,
		Upcoming:       make([]UpcomingLicense, 0, len(upcoming)),
	}
	for _, lic := range upcoming {
		dashboard.Upcoming = append(dashboard.Upcoming, UpcomingLicense{
			ID:          lic.ID(),
			CompanyName: lic.CompanyName(),
			LicenseType: lic.LicenseType(),
			Authority:   lic.Authority(),
			Number:      lic.Number(),
			ExpiryDate:  lic.ExpiryDate().Format("2006-01-02"),
			Status:      lic.Status(),
		})
	}

	return dashboard, nil
}
