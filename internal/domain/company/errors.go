package company

import "errors"

var (
	// ErrCompanyNotFound is returned when a company does not exist
	ErrCompanyNotFound = errors.New("company not found")
)
