package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"licenza/internal/domain/license"
	"licenza/internal/infrastructure/persistence/mappers"
	"licenza/internal/infrastructure/persistence/models"
	"licenza/internal/shared/logger"
)

// LicenseRepository implements license.Repository
type LicenseRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.LicenseMapper
}

// NewLicenseRepository creates a new LicenseRepository
func NewLicenseRepository(db *gorm.DB, logger logger.Interface) license.Repository {
	return &LicenseRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewLicenseMapper(),
	}
}

// Create persists a new license and assigns its ID
func (r *LicenseRepository) Create(ctx context.Context, lic *license.License) error {
	model := r.mapper.ToModel(lic)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create license", "company_id", lic.CompanyID(), "error", err)
		return fmt.Errorf("failed to create license: %w", err)
	}

	lic.SetID(model.ID)
	return nil
}

// Update persists changes to an existing license
func (r *LicenseRepository) Update(ctx context.Context, lic *license.License) error {
	model := r.mapper.ToModel(lic)

	result := r.db.WithContext(ctx).Model(&models.LicenseModel{}).
		Where("id = ?", lic.ID()).
		Updates(map[string]interface{}{
			"company_id":   model.CompanyID,
			"authority":    model.Authority,
			"license_type": model.LicenseType,
			"number":       model.Number,
			"issue_date":   model.IssueDate,
			"expiry_date":  model.ExpiryDate,
			"status":       model.Status,
			"notes":        model.Notes,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update license", "id", lic.ID(), "error", result.Error)
		return fmt.Errorf("failed to update license: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return license.ErrLicenseNotFound
	}

	return nil
}

// Delete removes a license by ID. Ledger rows referencing it are kept; stale
// entries are harmless and never re-read outside the dedup check.
func (r *LicenseRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.LicenseModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete license", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete license: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return license.ErrLicenseNotFound
	}
	return nil
}

// FindByID retrieves a license by ID
func (r *LicenseRepository) FindByID(ctx context.Context, id uint) (*license.License, error) {
	var model models.LicenseModel

	err := r.db.WithContext(ctx).Preload("Company").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, license.ErrLicenseNotFound
		}
		r.logger.Errorw("failed to find license", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find license: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// List retrieves licenses matching the filter, ordered by expiry ascending
func (r *LicenseRepository) List(ctx context.Context, filter license.ListFilter) ([]*license.License, error) {
	var modelList []*models.LicenseModel

	q := r.db.WithContext(ctx).Model(&models.LicenseModel{}).Preload("Company")

	if filter.CompanyID != nil {
		q = q.Where("licenses.company_id = ?", *filter.CompanyID)
	}
	if filter.Status != "" {
		q = q.Where("licenses.status = ?", filter.Status)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Joins("JOIN companies ON companies.id = licenses.company_id").
			Where("licenses.number LIKE ? OR licenses.license_type LIKE ? OR companies.name LIKE ?", like, like, like)
	}
	if filter.Horizon != nil {
		limit := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, *filter.Horizon)
		q = q.Where("licenses.expiry_date <= ?", limit)
	}

	if err := q.Order("licenses.expiry_date ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list licenses", "error", err)
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// FindByExpiryRange retrieves licenses with from <= expiry <= to
func (r *LicenseRepository) FindByExpiryRange(ctx context.Context, companyID *uint, from, to time.Time) ([]*license.License, error) {
	var modelList []*models.LicenseModel

	q := r.db.WithContext(ctx).Preload("Company").
		Where("expiry_date >= ? AND expiry_date <= ?", from, to)
	if companyID != nil {
		q = q.Where("company_id = ?", *companyID)
	}

	if err := q.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to find licenses by expiry range", "from", from, "to", to, "error", err)
		return nil, fmt.Errorf("failed to find licenses by expiry range: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// FindUpcoming retrieves the next licenses expiring on or after today
func (r *LicenseRepository) FindUpcoming(ctx context.Context, today time.Time, limit int) ([]*license.License, error) {
	var modelList []*models.LicenseModel

	err := r.db.WithContext(ctx).Preload("Company").
		Where("expiry_date >= ?", today).
		Order("expiry_date ASC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to find upcoming licenses", "error", err)
		return nil, fmt.Errorf("failed to find upcoming licenses: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// Count returns the total number of licenses
func (r *LicenseRepository) Count(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, nil)
}

// CountExpiryBefore counts licenses with expiry <= date
func (r *LicenseRepository) CountExpiryBefore(ctx context.Context, date time.Time) (int64, error) {
	return r.countWhere(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("expiry_date <= ?", date)
	})
}

// CountExpiryBetween counts licenses with after < expiry <= upTo
func (r *LicenseRepository) CountExpiryBetween(ctx context.Context, after, upTo time.Time) (int64, error) {
	return r.countWhere(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("expiry_date > ? AND expiry_date <= ?", after, upTo)
	})
}

// CountExpired counts licenses with expiry < today
func (r *LicenseRepository) CountExpired(ctx context.Context, today time.Time) (int64, error) {
	return r.countWhere(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("expiry_date < ?", today)
	})
}

func (r *LicenseRepository) countWhere(ctx context.Context, scope func(*gorm.DB) *gorm.DB) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.LicenseModel{})
	if scope != nil {
		q = scope(q)
	}
	if err := q.Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count licenses", "error", err)
		return 0, fmt.Errorf("failed to count licenses: %w", err)
	}
	return count, nil
}
