package tui

import (
	"fmt"

	"github.com/houseiq/houseiq-client/models"
)

type detailModel struct {
	item   models.Prediction
	status string
}

func (m detailModel) View() string {
	out := priceStyle.Render(formatPrice(m.item.PredictedPrice)) + "\n\n"

	out += fmt.Sprintf("Bedrooms:        %s\n", featureValue(m.item.Features, "bedrooms"))
	out += fmt.Sprintf("Bathrooms:       %s\n", featureValue(m.item.Features, "bathrooms"))
	out += fmt.Sprintf("Floor area:      %s m²\n", featureValue(m.item.Features, "area_sqm"))
	out += fmt.Sprintf("Property age:    %s years\n", featureValue(m.item.Features, "age_years"))
	out += fmt.Sprintf("Location index:  %s\n", featureValue(m.item.Features, "location_index"))
	out += "\n"
	if m.item.ModelVersion != "" {
		out += fmt.Sprintf("Model version:   %s\n", m.item.ModelVersion)
	}
	if !m.item.CreatedAt.IsZero() {
		out += fmt.Sprintf("Created:         %s\n", m.item.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	out += fmt.Sprintf("ID:              %s\n", m.item.ID)

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	return renderPage("PREDICTION DETAIL", out, "c: copy price │ d: delete │ esc: back")
}
