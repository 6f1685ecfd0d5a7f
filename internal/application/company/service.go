package company

import (
	"context"
	"errors"
	"time"

	"licenza/internal/domain/company"
	appErrors "licenza/internal/shared/errors"
	"licenza/internal/shared/logger"
	"licenza/internal/shared/utils"
)

// StatsInvalidator drops cached statistics after a write. May be nil.
type StatsInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Service implements company management on top of the repository.
type Service struct {
	repo        company.Repository
	invalidator StatsInvalidator
	logger      logger.Interface
}

// NewService creates a new company service. invalidator may be nil.
func NewService(repo company.Repository, invalidator StatsInvalidator, logger logger.Interface) *Service {
	return &Service{
		repo:        repo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Create registers a new company
func (s *Service) Create(ctx context.Context, req Request) (*Response, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	c, err := company.NewCompany(req.Name, req.TaxID, req.Sector, req.State, req.City, req.ContactEmail, req.ContactPhone)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, appErrors.NewInternalError("failed to create company", err.Error())
	}

	s.invalidateStats(ctx)
	s.logger.Infow("company created", "id", c.ID(), "name", c.Name())
	return toResponse(c), nil
}

// Update edits an existing company
func (s *Service) Update(ctx context.Context, id uint, req Request) (*Response, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if err := c.Update(req.Name, req.TaxID, req.Sector, req.State, req.City, req.ContactEmail, req.ContactPhone); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, mapNotFound(err)
	}

	s.invalidateStats(ctx)
	return toResponse(c), nil
}

// Delete removes a company together with its licenses
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	s.invalidateStats(ctx)
	s.logger.Infow("company deleted", "id", id)
	return nil
}

// Get retrieves one company
func (s *Service) Get(ctx context.Context, id uint) (*Response, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toResponse(c), nil
}

// Search lists companies matching the query, newest first
func (s *Service) Search(ctx context.Context, query string) ([]*Response, error) {
	companies, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, appErrors.NewInternalError("failed to search companies", err.Error())
	}

	out := make([]*Response, 0, len(companies))
	for _, c := range companies {
		out = append(out, toResponse(c))
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

func mapNotFound(err error) error {
	if errors.Is(err, company.ErrCompanyNotFound) {
		return appErrors.NewNotFoundError("company not found")
	}
	if appErrors.IsAppError(err) {
		return err
	}
	return appErrors.NewInternalError("company operation failed", err.Error())
}

func toResponse(c *company.Company) *Response {
	return &Response{
		ID:           c.ID(),
		Name:         c.Name(),
		TaxID:        c.TaxID(),
		Sector:       c.Sector(),
		State:        c.State(),
		City:         c.City(),
		ContactEmail: c.ContactEmail(),
		ContactPhone: c.ContactPhone(),
		CreatedAt:    c.CreatedAt().Format(time.RFC3339),
	}
}
