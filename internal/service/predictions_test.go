package service

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/houseiq/houseiq-client/internal/adapter"
	"github.com/houseiq/houseiq-client/internal/logger"
	"github.com/houseiq/houseiq-client/internal/mock"
	"github.com/houseiq/houseiq-client/internal/store"
	"github.com/houseiq/houseiq-client/internal/validators"
	"github.com/houseiq/houseiq-client/models"
)

func newTestPredictionSvc(t *testing.T, ctrl *gomock.Controller) (*predictionService, *mock.MockServerAdapter, SessionController, *store.CredentialStore) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	creds := store.NewCredentialStore(filepath.Join(t.TempDir(), "credentials.json"), logger.Nop())
	session := NewSessionController(mockAdapter, creds, logger.Nop())

	svc := NewPredictionService(mockAdapter, session, logger.Nop()).(*predictionService)
	return svc, mockAdapter, session, creds
}

func authenticate(t *testing.T, session SessionController, mockAdapter *mock.MockServerAdapter, creds *store.CredentialStore) {
	t.Helper()
	token := signedToken(t, time.Now().Add(time.Hour))
	creds.Write(token, models.User{ID: "u-1", Email: "alice@example.com"})
	mockAdapter.EXPECT().SetToken(token)
	session.Hydrate()
	require.Equal(t, StateAuthenticated, session.State())
}

// ── Predict ──────────────────────────────────────────────────────────────────

func TestPredictionService_Predict_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestPredictionSvc(t, ctrl)
	ctx := context.Background()

	req := models.PredictRequest{Bedrooms: 3, Bathrooms: 2, AreaSqm: 120.5, AgeYears: 8, LocIndex: 4}
	want := models.Prediction{ID: "p-1", PredictedPrice: 285000, ModelVersion: "v1.0"}
	mockAdapter.EXPECT().CreatePrediction(ctx, req).Return(want, nil)

	got, err := svc.Predict(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPredictionService_Predict_SynonymFieldsPassValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestPredictionSvc(t, ctrl)
	ctx := context.Background()

	// canonical numeric fields are zero; the synonyms carry the values
	req := models.PredictRequest{Bedrooms: 3, Bathrooms: 2, FloorArea: 120.5, PropertyAge: 8, LocationIdx: 4}
	mockAdapter.EXPECT().CreatePrediction(ctx, req).Return(models.Prediction{ID: "p-1"}, nil)

	_, err := svc.Predict(ctx, req)
	require.NoError(t, err)
}

func TestPredictionService_Predict_ValidationFailureSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestPredictionSvc(t, ctrl)

	// no CreatePrediction expectation: the request must never reach the adapter
	_, err := svc.Predict(context.Background(), models.PredictRequest{Bedrooms: 9, Bathrooms: 2, AreaSqm: 120})
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrInvalidBedrooms)
}

func TestPredictionService_Predict_AuthRejectionResetsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, creds := newTestPredictionSvc(t, ctrl)
	authenticate(t, session, mockAdapter, creds)
	ctx := context.Background()

	req := models.PredictRequest{Bedrooms: 3, Bathrooms: 2, AreaSqm: 120.5, AgeYears: 8, LocIndex: 4}
	mockAdapter.EXPECT().CreatePrediction(ctx, req).
		Return(models.Prediction{}, &adapter.RequestError{StatusCode: http.StatusUnauthorized, Message: "unauthorized"})
	mockAdapter.EXPECT().Logout()

	_, err := svc.Predict(ctx, req)
	require.Error(t, err)

	assert.Equal(t, StateAnonymous, session.State())
	assert.Empty(t, creds.Token())
}

// ── History / Get / Delete ───────────────────────────────────────────────────

func TestPredictionService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestPredictionSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Prediction{{ID: "p-1"}, {ID: "p-2"}}
	mockAdapter.EXPECT().ListPredictions(ctx, 0, 20).Return(want, nil)

	got, err := svc.History(ctx, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPredictionService_History_AuthRejectionResetsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, creds := newTestPredictionSvc(t, ctrl)
	authenticate(t, session, mockAdapter, creds)
	ctx := context.Background()

	mockAdapter.EXPECT().ListPredictions(ctx, 0, 20).
		Return(nil, &adapter.RequestError{StatusCode: http.StatusUnauthorized, Message: "unauthorized"})
	mockAdapter.EXPECT().Logout()

	_, err := svc.History(ctx, 0, 20)
	require.Error(t, err)
	assert.Equal(t, StateAnonymous, session.State())
}

func TestPredictionService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestPredictionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetPrediction(ctx, "p-1").Return(models.Prediction{ID: "p-1"}, nil)

	got, err := svc.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "p-1", got.ID)
}

func TestPredictionService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestPredictionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeletePrediction(ctx, "p-1").Return(nil)

	require.NoError(t, svc.Delete(ctx, "p-1"))
}

func TestPredictionService_Delete_NotFoundDoesNotResetSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, session, creds := newTestPredictionSvc(t, ctrl)
	authenticate(t, session, mockAdapter, creds)
	ctx := context.Background()

	mockAdapter.EXPECT().DeletePrediction(ctx, "p-404").
		Return(&adapter.RequestError{StatusCode: http.StatusNotFound, Message: "prediction not found"})

	err := svc.Delete(ctx, "p-404")
	require.Error(t, err)
	assert.Equal(t, StateAuthenticated, session.State())
}
