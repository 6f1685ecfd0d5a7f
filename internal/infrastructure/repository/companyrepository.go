package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"licenza/internal/domain/company"
	"licenza/internal/infrastructure/persistence/mappers"
	"licenza/internal/infrastructure/persistence/models"
	"licenza/internal/shared/logger"
)

// CompanyRepository implements company.Repository
type CompanyRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.CompanyMapper
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *gorm.DB, logger logger.Interface) company.Repository {
	return &CompanyRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewCompanyMapper(),
	}
}

// Create persists a new company and assigns its ID
func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create company", "name", c.Name(), "error", err)
		return fmt.Errorf("failed to create company: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

// Update persists changes to an existing company
func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)

	result := r.db.WithContext(ctx).Model(&models.CompanyModel{}).
		Where("id = ?", c.ID()).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"tax_id":        model.TaxID,
			"sector":        model.Sector,
			"state":         model.State,
			"city":          model.City,
			"contact_email": model.ContactEmail,
			"contact_phone": model.ContactPhone,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update company", "id", c.ID(), "error", result.Error)
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}

// Delete removes a company and all of its licenses in one transaction.
// The cascade is explicit here; the domain never relies on FK behavior.
func (r *CompanyRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", id).Delete(&models.LicenseModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.CompanyModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return company.ErrCompanyNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return err
		}
		r.logger.Errorw("failed to delete company", "id", id, "error", err)
		return fmt.Errorf("failed to delete company: %w", err)
	}

	return nil
}

// FindByID retrieves a company by ID
func (r *CompanyRepository) FindByID(ctx context.Context, id uint) (*company.Company, error) {
	var model models.CompanyModel

	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, company.ErrCompanyNotFound
		}
		r.logger.Errorw("failed to find company", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// Search retrieves companies matching the query, newest first
func (r *CompanyRepository) Search(ctx context.Context, query string) ([]*company.Company, error) {
	var modelList []*models.CompanyModel

	q := r.db.WithContext(ctx).Model(&models.CompanyModel{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name LIKE ? OR tax_id LIKE ? OR city LIKE ?", like, like, like)
	}

	if err := q.Order("created_at DESC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to search companies", "query", query, "error", err)
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// Count returns the total number of companies
func (r *CompanyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CompanyModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count companies", "error", err)
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return count, nil
}
