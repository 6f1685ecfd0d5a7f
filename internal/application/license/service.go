package license

import (
	"context"
	"errors"
	"time"

	"licenza/internal/domain/company"
	"licenza/internal/domain/license"
	appErrors "licenza/internal/shared/errors"
	"licenza/internal/shared/logger"
	"licenza/internal/shared/utils"
)

const dateFormat = "2006-01-02"

// StatsInvalidator drops cached statistics after a write. May be nil.
type StatsInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Service implements license management on top of the repositories.
type Service struct {
	repo        license.Repository
	companyRepo company.Repository
	invalidator StatsInvalidator
	logger      logger.Interface
}

// NewService creates a new license service. invalidator may be nil.
func NewService(
	repo license.Repository,
	companyRepo company.Repository,
	invalidator StatsInvalidator,
	logger logger.Interface,
) *Service {
	return &Service{
		repo:        repo,
		companyRepo: companyRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Create registers a new license for an existing company
func (s *Service) Create(ctx context.Context, req Request) (*Response, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.companyRepo.FindByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return nil, appErrors.NewValidationError("company does not exist")
		}
		return nil, appErrors.NewInternalError("failed to load company", err.Error())
	}

	issueDate, expiryDate, err := parseDates(req.IssueDate, req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	lic, err := license.NewLicense(req.CompanyID, req.Authority, req.LicenseType, req.Number, issueDate, expiryDate, req.Status, req.Notes)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, lic); err != nil {
		return nil, appErrors.NewInternalError("failed to create license", err.Error())
	}

	s.invalidateStats(ctx)
	s.logger.Infow("license created", "id", lic.ID(), "company_id", lic.CompanyID(), "expiry", lic.ExpiryDate().Format(dateFormat))
	return toResponse(lic), nil
}

// Update edits an existing license
func (s *Service) Update(ctx context.Context, id uint, req Request) (*Response, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	lic, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	issueDate, expiryDate, err := parseDates(req.IssueDate, req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	if err := lic.Update(req.CompanyID, req.Authority, req.LicenseType, req.Number, issueDate, expiryDate, req.Status, req.Notes); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, lic); err != nil {
		return nil, mapNotFound(err)
	}

	s.invalidateStats(ctx)
	return toResponse(lic), nil
}

// Delete removes a license
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	s.invalidateStats(ctx)
	s.logger.Infow("license deleted", "id", id)
	return nil
}

// Get retrieves one license
func (s *Service) Get(ctx context.Context, id uint) (*Response, error) {
	lic, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toResponse(lic), nil
}

// List retrieves licenses matching the query, ordered by expiry ascending
func (s *Service) List(ctx context.Context, query ListQuery) ([]*Response, error) {
	licenses, err := s.repo.List(ctx, license.ListFilter{
		CompanyID: query.CompanyID,
		Status:    query.Status,
		Query:     query.Query,
		Horizon:   query.Horizon,
	})
	if err != nil {
		return nil, appErrors.NewInternalError("failed to list licenses", err.Error())
	}

	out := make([]*Response, 0, len(licenses))
	for _, lic := range licenses {
		out = append(out, toResponse(lic))
	}
	return out, nil
}

func (s *Service) invalidateStats(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx); err != nil {
		s.logger.Warnw("failed to invalidate stats cache", "error", err)
	}
}

func parseDates(issue, expiry string) (*time.Time, time.Time, error) {
	var issueDate *time.Time
	if issue != "" {
		parsed, err := time.ParseInLocation(dateFormat, issue, time.UTC)
		if err != nil {
			return nil, time.Time{}, appErrors.NewValidationError("issue_date must be formatted as YYYY-MM-DD")
		}
		issueDate = &parsed
	}

	expiryDate, err := time.ParseInLocation(dateFormat, expiry, time.UTC)
	if err != nil {
		return nil, time.Time{}, appErrors.NewValidationError("expiry_date must be formatted as YYYY-MM-DD")
	}

	return issueDate, expiryDate, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, license.ErrLicenseNotFound) {
		return appErrors.NewNotFoundError("license not found")
	}
	if appErrors.IsAppError(err) {
		return err
	}
	return appErrors.NewInternalError("license operation failed", err.Error())
}

func toResponse(lic *license.License) *Response {
	resp := &Response{
		ID:          lic.ID(),
		CompanyID:   lic.CompanyID(),
		CompanyName: lic.CompanyName(),
		Authority:   lic.Authority(),
		LicenseType: lic.LicenseType(),
		Number:      lic.Number(),
		ExpiryDate:  lic.ExpiryDate().Format(dateFormat),
		Status:      lic.Status(),
		Notes:       lic.Notes(),
	}
	if lic.IssueDate() != nil {
		resp.IssueDate = lic.IssueDate().Format(dateFormat)
	}
	return resp
}
