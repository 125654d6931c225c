package tui

import (
	"fmt"

	"github.com/houseiq/houseiq-client/models"
)

type resultModel struct {
	prediction models.Prediction
	status     string
}

func (m resultModel) View() string {
	out := "Estimated price\n\n"
	out += "  " + priceStyle.Render(formatPrice(m.prediction.PredictedPrice)) + "\n\n"
	if m.prediction.ModelVersion != "" {
		out += fmt.Sprintf("Model version: %s\n", m.prediction.ModelVersion)
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	return renderPage("PREDICTION", out, "c: copy price │ n: another one │ s: history │ esc: dashboard")
}
