package mappers

import (
	"licenza/internal/domain/company"
	"licenza/internal/infrastructure/persistence/models"
)

// CompanyMapper provides methods for converting between domain and model
type CompanyMapper interface {
	ToDomain(model *models.CompanyModel) *company.Company
	ToModel(domain *company.Company) *models.CompanyModel
	ToDomainList(modelList []*models.CompanyModel) []*company.Company
}

type companyMapper struct{}

// NewCompanyMapper creates a new CompanyMapper
func NewCompanyMapper() CompanyMapper {
	return &companyMapper{}
}

// ToDomain converts a CompanyModel to a Company domain entity
func (m *companyMapper) ToDomain(model *models.CompanyModel) *company.Company {
	if model == nil {
		return nil
	}

	return company.ReconstructCompany(
		model.ID,
		model.Name,
		model.TaxID,
		model.Sector,
		model.State,
		model.City,
		model.ContactEmail,
		model.ContactPhone,
		model.CreatedAt,
	)
}

// ToModel converts a Company domain entity to a CompanyModel
func (m *companyMapper) ToModel(domain *company.Company) *models.CompanyModel {
	if domain == nil {
		return nil
	}

	return &models.CompanyModel{
		ID:           domain.ID(),
		Name:         domain.Name(),
		TaxID:        domain.TaxID(),
		Sector:       domain.Sector(),
		State:        domain.State(),
		City:         domain.City(),
		ContactEmail: domain.ContactEmail(),
		ContactPhone: domain.ContactPhone(),
		CreatedAt:    domain.CreatedAt(),
	}
}

// ToDomainList converts a list of CompanyModel to domain entities
func (m *companyMapper) ToDomainList(modelList []*models.CompanyModel) []*company.Company {
	if modelList == nil {
		return nil
	}

	domains := make([]*company.Company, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains
}
