package service

import (
	"github.com/houseiq/houseiq-client/internal/adapter"
	"github.com/houseiq/houseiq-client/internal/logger"
	"github.com/houseiq/houseiq-client/internal/store"
)

// ClientServices bundles the application services behind one constructor so
// the composition root wires them in a single call.
type ClientServices struct {
	Session     SessionController
	Predictions PredictionService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, creds *store.CredentialStore, log *logger.Logger) *ClientServices {
	session := NewSessionController(serverAdapter, creds, log)
	return &ClientServices{
		Session:     session,
		Predictions: NewPredictionService(serverAdapter, session, log),
	}
}
