package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houseiq/houseiq-client/models"
)

func validPayload() models.PredictPayload {
	return models.PredictPayload{
		Bedrooms:  3,
		Bathrooms: 2,
		AreaSqm:   120.5,
		AgeYears:  8,
		LocIndex:  4,
	}
}

func TestValidatePredictPayload_Valid(t *testing.T) {
	require.NoError(t, ValidatePredictPayload(validPayload()))
}

func TestValidatePredictPayload_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.PredictPayload)
		wantErr error
	}{
		{"zero bedrooms", func(p *models.PredictPayload) { p.Bedrooms = 0 }, ErrInvalidBedrooms},
		{"too many bedrooms", func(p *models.PredictPayload) { p.Bedrooms = 8 }, ErrInvalidBedrooms},
		{"zero bathrooms", func(p *models.PredictPayload) { p.Bathrooms = 0 }, ErrInvalidBathrooms},
		{"zero area", func(p *models.PredictPayload) { p.AreaSqm = 0 }, ErrInvalidFloorArea},
		{"oversized area", func(p *models.PredictPayload) { p.AreaSqm = 1000.5 }, ErrInvalidFloorArea},
		{"negative age", func(p *models.PredictPayload) { p.AgeYears = -1 }, ErrInvalidPropertyAge},
		{"ancient property", func(p *models.PredictPayload) { p.AgeYears = 121 }, ErrInvalidPropertyAge},
		{"location index too high", func(p *models.PredictPayload) { p.LocIndex = 11 }, ErrInvalidLocationIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(&p)

			err := ValidatePredictPayload(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.NotEmpty(t, vErr.Field)
		})
	}
}
