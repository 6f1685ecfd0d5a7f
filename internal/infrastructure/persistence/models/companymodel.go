package models

import (
	"time"
)

// CompanyModel is the GORM model for the companies table
type CompanyModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;type:varchar(200);not null;index"`
	TaxID        string    `gorm:"column:tax_id;type:varchar(50);index"`
	Sector       string    `gorm:"column:sector;type:varchar(120)"`
	State        string    `gorm:"column:state;type:varchar(2)"`
	City         string    `gorm:"column:city;type:varchar(120)"`
	ContactEmail string    `gorm:"column:contact_email;type:varchar(200)"`
	ContactPhone string    `gorm:"column:contact_phone;type:varchar(50)"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}
