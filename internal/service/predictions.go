package service

import (
	"context"

	"github.com/houseiq/houseiq-client/internal/adapter"
	"github.com/houseiq/houseiq-client/internal/logger"
	"github.com/houseiq/houseiq-client/internal/validators"
	"github.com/houseiq/houseiq-client/models"
)

type predictionService struct {
	adapter adapter.ServerAdapter
	session SessionController
	logger  *logger.Logger
}

func NewPredictionService(serverAdapter adapter.ServerAdapter, session SessionController, log *logger.Logger) PredictionService {
	return &predictionService{adapter: serverAdapter, session: session, logger: log}
}

func (p *predictionService) Predict(ctx context.Context, req models.PredictRequest) (models.Prediction, error) {
	if err := validators.ValidatePredictPayload(req.Canonical()); err != nil {
		return models.Prediction{}, err
	}

	prediction, err := p.adapter.CreatePrediction(ctx, req)
	if err != nil {
		p.session.Observe(err)
		return models.Prediction{}, err
	}

	p.logger.Info().
		Str("id", prediction.ID).
		Float64("price", prediction.PredictedPrice).
		Msg("prediction created")
	return prediction, nil
}

func (p *predictionService) History(ctx context.Context, page, size int) ([]models.Prediction, error) {
	predictions, err := p.adapter.ListPredictions(ctx, page, size)
	if err != nil {
		p.session.Observe(err)
		return nil, err
	}
	return predictions, nil
}

func (p *predictionService) Get(ctx context.Context, id string) (models.Prediction, error) {
	prediction, err := p.adapter.GetPrediction(ctx, id)
	if err != nil {
		p.session.Observe(err)
		return models.Prediction{}, err
	}
	return prediction, nil
}

func (p *predictionService) Delete(ctx context.Context, id string) error {
	if err := p.adapter.DeletePrediction(ctx, id); err != nil {
		p.session.Observe(err)
		return err
	}
	p.logger.Info().Str("id", id).Msg("prediction deleted")
	return nil
}
