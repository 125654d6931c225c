package tui

import (
	"github.com/houseiq/houseiq-client/models"
)

type authDoneMsg struct {
	user models.User
	err  error
}

type predictionDoneMsg struct {
	prediction models.Prediction
	err        error
}

type historyLoadedMsg struct {
	items []models.Prediction
	err   error
}

type predictionDeletedMsg struct {
	err error
}

type loggedOutMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}

type healthTickMsg struct{}
