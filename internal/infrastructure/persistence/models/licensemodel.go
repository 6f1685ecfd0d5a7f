package models

import (
	"time"
)

// LicenseModel is the GORM model for the licenses table
type LicenseModel struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	CompanyID   uint       `gorm:"column:company_id;not null;index"`
	Authority   string     `gorm:"column:authority;type:varchar(200);not null"`
	LicenseType string     `gorm:"column:license_type;type:varchar(200);not null"`
	Number      string     `gorm:"column:number;type:varchar(200)"`
	IssueDate   *time.Time `gorm:"column:issue_date"`
	ExpiryDate  time.Time  `gorm:"column:expiry_date;not null;index"`
	Status      string     `gorm:"column:status;type:varchar(50);not null;default:'Active'"`
	Notes       string     `gorm:"column:notes;type:text"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`

	Company *CompanyModel `gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for GORM
func (LicenseModel) TableName() string {
	return "licenses"
}
