// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// HouseIQ backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Failures are classified into three kinds so that callers can phrase them
// differently for the user: [NetworkError] when no HTTP response was obtained
// at all, [AuthError] for non-2xx responses from the auth endpoints, and
// [RequestError] for non-2xx responses from everything else. Use [errors.As]
// (or [IsAuthRejected] for the 401 case) to branch on them.
package adapter

import (
	"context"

	"github.com/houseiq/houseiq-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the HouseIQ
// backend. Implementations are responsible for serialisation, authentication
// header management, and classifying transport-level failures into the error
// kinds defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. Called by the session controller
	// after hydration and after a successful Login or Register.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set yet.
	Token() string

	// Login sends the credentials to POST /auth/login. On success the
	// returned token is stored via SetToken; persisting it is the caller's
	// job. A non-2xx response yields an *AuthError whose message is resolved
	// from the structured {code,message} body, the raw body text, or a
	// generic fallback, in that order. A transport failure yields a
	// *NetworkError.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Register creates an account via POST /auth/register. Same contract as
	// Login; a duplicate-email rejection surfaces through the same
	// *AuthError message path.
	Register(ctx context.Context, email, password, name string) (models.AuthResponse, error)

	// Logout drops the in-memory bearer token. It performs no network call:
	// the backend issues stateless JWTs and has no revocation endpoint.
	Logout()

	// CreatePrediction normalizes req to the canonical backend shape and
	// POSTs it to /predictions. If no token is set the request is still sent
	// without an Authorization header; authorization enforcement stays
	// single-sourced at the server. A non-2xx response yields a
	// *RequestError carrying the raw body text.
	CreatePrediction(ctx context.Context, req models.PredictRequest) (models.Prediction, error)

	// ListPredictions fetches a page of the caller's prediction records from
	// GET /predictions. Read-only and idempotent.
	ListPredictions(ctx context.Context, page, size int) ([]models.Prediction, error)

	// GetPrediction fetches a single record by id. Read-only and idempotent.
	GetPrediction(ctx context.Context, id string) (models.Prediction, error)

	// DeletePrediction removes the record with the given id. Deleting an
	// already-deleted id surfaces as a *RequestError, mirroring the
	// server's 404; it does not silently succeed.
	DeletePrediction(ctx context.Context, id string) error

	// Health checks GET /health without authentication.
	Health(ctx context.Context) (models.HealthStatus, error)
}
