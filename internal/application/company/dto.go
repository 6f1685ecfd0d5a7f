package company

// Request carries a company create or update.
type Request struct {
	Name         string `json:"name" validate:"required"`
	TaxID        string `json:"tax_id"`
	Sector       string `json:"sector"`
	State        string `json:"state" validate:"omitempty,len=2"`
	City         string `json:"city"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
}

// Response is the API view of a company.
type Response struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	TaxID        string `json:"tax_id,omitempty"`
	Sector       string `json:"sector,omitempty"`
	State        string `json:"state,omitempty"`
	City         string `json:"city,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	CreatedAt    string `json:"created_at"`
}
