package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houseiq/houseiq-client/internal/guard"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{285000.5, "$285,000.50"},
		{0, "$0.00"},
		{999.99, "$999.99"},
		{1000, "$1,000.00"},
		{1234567.891, "$1,234,567.89"},
		{-2500, "-$2,500.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatPrice(tt.in), "formatPrice(%v)", tt.in)
	}
}

func TestFeatureValue(t *testing.T) {
	// JSON numbers always decode as float64
	features := map[string]any{
		"bedrooms": float64(3),
		"area_sqm": 120.5,
	}

	assert.Equal(t, "3", featureValue(features, "bedrooms"))
	assert.Equal(t, "120.5", featureValue(features, "area_sqm"))
	assert.Equal(t, "-", featureValue(features, "location_index"))
	assert.Equal(t, "-", featureValue(nil, "bedrooms"))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "long-id...", fitText("long-identifier", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}

func TestPredictionForm_ToRequest(t *testing.T) {
	m := newPredictionFormModel()
	values := []string{"3", "2", "120.5", "8", "4"}
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}

	req, err := m.toRequest()
	require.NoError(t, err)
	assert.Equal(t, 3, req.Bedrooms)
	assert.Equal(t, 2, req.Bathrooms)
	assert.Equal(t, 120.5, req.AreaSqm)
	assert.Equal(t, 8, req.AgeYears)
	assert.Equal(t, 4, req.LocIndex)
}

func TestPredictionForm_ToRequest_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		field   int
		value   string
		wantMsg string
	}{
		{"non-numeric bedrooms", 0, "three", "Bedrooms must be a whole number"},
		{"fractional bathrooms", 1, "1.5", "Bathrooms must be a whole number"},
		{"non-numeric area", 2, "big", "Floor area must be a number"},
		{"non-numeric age", 3, "old", "Property age must be a whole number"},
		{"non-numeric location", 4, "here", "Location index must be a whole number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPredictionFormModel()
			values := []string{"3", "2", "120.5", "8", "4"}
			values[tt.field] = tt.value
			for i, v := range values {
				m.inputs[i].SetValue(v)
			}

			_, err := m.toRequest()
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestScreenRequirement(t *testing.T) {
	public := []screen{screenWelcome, screenLogin, screenRegister}
	for _, s := range public {
		assert.Equal(t, guard.Public, screenRequirement(s), "screen %d", s)
	}

	protected := []screen{screenDashboard, screenForm, screenResult, screenHistory, screenDetail}
	for _, s := range protected {
		assert.Equal(t, guard.Protected, screenRequirement(s), "screen %d", s)
	}
}
