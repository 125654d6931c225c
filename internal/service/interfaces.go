// SPDX-License-Identifier: Apache-2.0

// Package service implements the client's application logic on top of the
// server adapter: session lifecycle (hydration, login, logout, implicit
// logout on credential rejection) and the prediction workflows.
package service

import (
	"context"

	"github.com/houseiq/houseiq-client/models"
)

// State describes the session lifecycle. A freshly constructed controller is
// in StateUnknown until Hydrate has run; after that the state is always
// either StateAnonymous or StateAuthenticated.
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// SessionController owns the authenticated-user state of the client. It is
// the single writer of the credential store: the adapter only ever holds the
// token in memory.
type SessionController interface {
	// Hydrate restores the session from the credential store, exactly once
	// per process. A complete, unexpired record moves the session to
	// StateAuthenticated and seeds the adapter's token; anything else —
	// empty store, half a record, corrupt or expired token — wipes the
	// store and lands in StateAnonymous. Hydrate never performs a network
	// call, so a revoked-but-unexpired token is only discovered when the
	// first authenticated request bounces.
	Hydrate()

	// State returns the current session state.
	State() State

	// User returns a copy of the authenticated user's profile, or nil when
	// the session is not authenticated.
	User() *models.User

	// Login authenticates against the server and, on success, persists the
	// token and profile as one atomic credential record.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Register creates an account and establishes the session the same way
	// Login does.
	Register(ctx context.Context, email, password, name string) (models.User, error)

	// Logout drops the adapter token, clears the credential store and moves
	// the session to StateAnonymous. Safe to call in any state.
	Logout()

	// Observe inspects an error from any server call and performs an
	// implicit logout when it is a 401 rejection. All other errors,
	// including nil, are ignored.
	Observe(err error)
}

// PredictionService wraps the prediction endpoints with client-side
// validation and session observation. Every server error passes through
// SessionController.Observe before being returned to the caller.
type PredictionService interface {
	// Predict validates req against the backend's accepted ranges and, if it
	// passes, submits it for a price prediction. Validation failures return
	// a *validators.ValidationError without touching the network.
	Predict(ctx context.Context, req models.PredictRequest) (models.Prediction, error)

	// History fetches a page of the user's past predictions.
	History(ctx context.Context, page, size int) ([]models.Prediction, error)

	// Get fetches a single prediction record by id.
	Get(ctx context.Context, id string) (models.Prediction, error)

	// Delete removes a prediction record by id.
	Delete(ctx context.Context, id string) error
}
