package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/houseiq/houseiq-client/models"
)

type predictionFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newPredictionFormModel() predictionFormModel {
	labels := []string{"bedrooms", "bathrooms", "floor area (m²)", "property age (years)", "location index (0-10)"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		in.CharLimit = 10
		in.Width = 20
		inputs[i] = in
	}
	inputs[0].Focus()

	return predictionFormModel{inputs: inputs}
}

// toRequest parses the form into a prediction request. Numeric parse failures
// come back as user-facing errors; range checks happen in the service layer.
func (m predictionFormModel) toRequest() (models.PredictRequest, error) {
	bedrooms, err := strconv.Atoi(strings.TrimSpace(m.inputs[0].Value()))
	if err != nil {
		return models.PredictRequest{}, errors.New("Bedrooms must be a whole number")
	}
	bathrooms, err := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
	if err != nil {
		return models.PredictRequest{}, errors.New("Bathrooms must be a whole number")
	}
	area, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[2].Value()), 64)
	if err != nil {
		return models.PredictRequest{}, errors.New("Floor area must be a number")
	}
	age, err := strconv.Atoi(strings.TrimSpace(m.inputs[3].Value()))
	if err != nil {
		return models.PredictRequest{}, errors.New("Property age must be a whole number")
	}
	loc, err := strconv.Atoi(strings.TrimSpace(m.inputs[4].Value()))
	if err != nil {
		return models.PredictRequest{}, errors.New("Location index must be a whole number")
	}

	return models.PredictRequest{
		Bedrooms:  bedrooms,
		Bathrooms: bathrooms,
		AreaSqm:   area,
		AgeYears:  age,
		LocIndex:  loc,
	}, nil
}

func (m predictionFormModel) View() string {
	rows := []string{"Bedrooms      ", "Bathrooms     ", "Floor area    ", "Property age  ", "Location index"}

	var b strings.Builder
	for i, label := range rows {
		b.WriteString(label)
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Predicting...]\n")
	} else {
		b.WriteString("\n[Predict price]\n")
	}

	return renderPage("NEW PREDICTION", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
