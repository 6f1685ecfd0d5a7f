package license

// Request carries a license create or update. Dates use the "2006-01-02"
// wire format; expiry_date is mandatory.
type Request struct {
	CompanyID   uint   `json:"company_id" validate:"required"`
	Authority   string `json:"authority" validate:"required"`
	LicenseType string `json:"license_type" validate:"required"`
	Number      string `json:"number"`
	IssueDate   string `json:"issue_date"`
	ExpiryDate  string `json:"expiry_date" validate:"required"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// Response is the API view of a license.
type Response struct {
	ID          uint   `json:"id"`
	CompanyID   uint   `json:"company_id"`
	CompanyName string `json:"company_name,omitempty"`
	Authority   string `json:"authority"`
	LicenseType string `json:"license_type"`
	Number      string `json:"number,omitempty"`
	IssueDate   string `json:"issue_date,omitempty"`
	ExpiryDate  string `json:"expiry_date"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
}

// ListQuery narrows license listings.
type ListQuery struct {
	CompanyID *uint
	Status    string
	Query     string
	Horizon   *int
}
