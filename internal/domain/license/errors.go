package license

import "errors"

var (
	// ErrLicenseNotFound is returned when a license does not exist
	ErrLicenseNotFound = errors.New("license not found")
)
