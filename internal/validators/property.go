// Package validators holds the client-side input checks for the property
// form. The ranges mirror the backend's request constraints so that obviously
// bad input never leaves the process.
package validators

import "github.com/houseiq/houseiq-client/models"

// ValidatePredictPayload checks a canonical prediction request against the
// backend's accepted ranges. Returns the first *ValidationError encountered,
// or nil when the payload is acceptable.
func ValidatePredictPayload(p models.PredictPayload) error {
	if p.Bedrooms < 1 || p.Bedrooms > 7 {
		return &ValidationError{Field: "bedrooms", Err: ErrInvalidBedrooms}
	}
	if p.Bathrooms < 1 || p.Bathrooms > 5 {
		return &ValidationError{Field: "bathrooms", Err: ErrInvalidBathrooms}
	}
	if p.AreaSqm < 1 || p.AreaSqm > 1000 {
		return &ValidationError{Field: "area_sqm", Err: ErrInvalidFloorArea}
	}
	if p.AgeYears < 0 || p.AgeYears > 120 {
		return &ValidationError{Field: "age_years", Err: ErrInvalidPropertyAge}
	}
	if p.LocIndex < 0 || p.LocIndex > 10 {
		return &ValidationError{Field: "location_index", Err: ErrInvalidLocationIndex}
	}
	return nil
}
