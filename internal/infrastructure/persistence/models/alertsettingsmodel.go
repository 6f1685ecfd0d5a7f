package models

// AlertSettingsModel is the GORM model for the alert_settings table.
// The table holds a single row created at startup.
type AlertSettingsModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	SMTPHost     string `gorm:"column:smtp_host;type:varchar(200);not null;default:'smtp.example.com'"`
	SMTPPort     int    `gorm:"column:smtp_port;not null;default:587"`
	Security     string `gorm:"column:security;type:varchar(20);not null;default:'starttls'"`
	SMTPUser     string `gorm:"column:smtp_user;type:varchar(200)"`
	SMTPPassword string `gorm:"column:smtp_pass;type:varchar(200)"`
	FromAddress  string `gorm:"column:from_email;type:varchar(200);not null;default:'alerts@example.com'"`
	Recipients   string `gorm:"column:recipients;type:text;not null"`
	Thresholds   string `gorm:"column:thresholds;type:varchar(100);not null;default:'15,30,60'"`
}

// TableName returns the table name for GORM
func (AlertSettingsModel) TableName() string {
	return "alert_settings"
}
