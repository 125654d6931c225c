package validators

import "errors"

// Field-level validation failures for the property form. These are UI-local:
// a request failing validation is rejected before any network call is made.
var (
	ErrInvalidBedrooms      = errors.New("Bedrooms must be between 1 and 7")
	ErrInvalidBathrooms     = errors.New("Bathrooms must be between 1 and 5")
	ErrInvalidFloorArea     = errors.New("Floor area must be between 1 and 1000")
	ErrInvalidPropertyAge   = errors.New("Property age must be between 0 and 120")
	ErrInvalidLocationIndex = errors.New("Location index must be between 0 and 10")
)

// ValidationError wraps a field-level failure so callers can both display the
// message and branch on the underlying sentinel with errors.Is.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }
