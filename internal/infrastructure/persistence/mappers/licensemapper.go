package mappers

import (
	"licenza/internal/domain/license"
	"licenza/internal/infrastructure/persistence/models"
)

// LicenseMapper provides methods for converting between domain and model
type LicenseMapper interface {
	ToDomain(model *models.LicenseModel) *license.License
	ToModel(domain *license.License) *models.LicenseModel
	ToDomainList(modelList []*models.LicenseModel) []*license.License
}

type licenseMapper struct{}

// NewLicenseMapper creates a new LicenseMapper
func NewLicenseMapper() LicenseMapper {
	return &licenseMapper{}
}

// ToDomain converts a LicenseModel to a License domain entity. The company
// name is carried over when the association was preloaded.
func (m *licenseMapper) ToDomain(model *models.LicenseModel) *license.License {
	if model == nil {
		return nil
	}

	companyName := ""
	if model.Company != nil {
		companyName = model.Company.Name
	}

	return license.ReconstructLicense(
		model.ID,
		model.CompanyID,
		companyName,
		model.Authority,
		model.LicenseType,
		model.Number,
		model.IssueDate,
		model.ExpiryDate,
		model.Status,
		model.Notes,
		model.CreatedAt,
	)
}

// ToModel converts a License domain entity to a LicenseModel
func (m *licenseMapper) ToModel(domain *license.License) *models.LicenseModel {
	if domain == nil {
		return nil
	}

	return &models.LicenseModel{
		ID:          domain.ID(),
		CompanyID:   domain.CompanyID(),
		Authority:   domain.Authority(),
		LicenseType: domain.LicenseType(),
		Number:      domain.Number(),
		IssueDate:   domain.IssueDate(),
		ExpiryDate:  domain.ExpiryDate(),
		Status:      domain.Status(),
		Notes:       domain.Notes(),
		CreatedAt:   domain.CreatedAt(),
	}
}

// ToDomainList converts a list of LicenseModel to domain entities
func (m *licenseMapper) ToDomainList(modelList []*models.LicenseModel) []*license.License {
	if modelList == nil {
		return nil
	}

	domains := make([]*license.License, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains
}
