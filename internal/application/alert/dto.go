package alert

// SettingsResponse is the API view of the alert configuration. The SMTP
// password is never echoed back.
type SettingsResponse struct {
	SMTPHost    string `json:"smtp_host"`
	SMTPPort    int    `json:"smtp_port"`
	Security    string `json:"security"`
	SMTPUser    string `json:"smtp_user,omitempty"`
	HasPassword bool   `json:"has_password"`
	FromAddress string `json:"from_email"`
	Recipients  string `json:"recipients"`
	Thresholds  string `json:"thresholds"`
}

// UpdateSettingsRequest carries a settings edit. A blank password keeps the
// stored credential.
type UpdateSettingsRequest struct {
	SMTPHost    string `json:"smtp_host" validate:"required"`
	SMTPPort    int    `json:"smtp_port" validate:"required,min=1,max=65535"`
	Security    string `json:"security" validate:"omitempty,oneof=starttls ssl none"`
	SMTPUser    string `json:"smtp_user"`
	SMTPPass    string `json:"smtp_pass"`
	FromAddress string `json:"from_email" validate:"required,email"`
	Recipients  string `json:"recipients" validate:"required"`
	Thresholds  string `json:"thresholds"`
}

// RunResult reports the outcome of one alert run.
type RunResult struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}
