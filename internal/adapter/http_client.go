package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/houseiq/houseiq-client/internal/config"
	"github.com/houseiq/houseiq-client/internal/logger"
	"github.com/houseiq/houseiq-client/models"
)

// Generic fallbacks used when an error response carries no usable body.
const (
	msgLoginFailed        = "Login failed"
	msgRegistrationFailed = "Registration failed"
	msgPredictionFailed   = "Prediction failed"
	msgListFailed         = "Failed to fetch predictions"
	msgGetFailed          = "Failed to fetch prediction"
	msgDeleteFailed       = "Failed to delete prediction"
	msgHealthFailed       = "Health check failed"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL, configures the underlying resty client with the
// resolved base URL and request timeout, and attaches an X-Request-Id to
// every outbound request.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	cli.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", newRequestID())
		return nil
	})

	return &httpServerAdapter{client: cli, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Logout implements [ServerAdapter]. Local only; see the interface note on
// the missing revocation endpoint.
func (h *httpServerAdapter) Logout() {
	h.SetToken("")
}

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		SetResult(&authResp).
		Post("/auth/login")
	if err != nil {
		h.logger.Warn().Err(err).Msg("login request failed before reaching the server")
		return models.AuthResponse{}, &NetworkError{Err: err}
	}
	if err = mapAuthError(resp, msgLoginFailed); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResp.Token)
	return authResp, nil
}

func (h *httpServerAdapter) Register(ctx context.Context, email, password, name string) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterRequest{Email: email, Password: password, Name: name}).
		SetResult(&authResp).
		Post("/auth/register")
	if err != nil {
		h.logger.Warn().Err(err).Msg("register request failed before reaching the server")
		return models.AuthResponse{}, &NetworkError{Err: err}
	}
	if err = mapAuthError(resp, msgRegistrationFailed); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResp.Token)
	return authResp, nil
}

func (h *httpServerAdapter) CreatePrediction(ctx context.Context, req models.PredictRequest) (models.Prediction, error) {
	var record models.Prediction

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req.Canonical()).
		SetResult(&record).
		Post("/predictions")
	if err != nil {
		return models.Prediction{}, &NetworkError{Err: err}
	}
	if err = mapRequestError(resp, msgPredictionFailed); err != nil {
		return models.Prediction{}, err
	}

	return record, nil
}

func (h *httpServerAdapter) ListPredictions(ctx context.Context, page, size int) ([]models.Prediction, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"page": strconv.Itoa(page),
			"size": strconv.Itoa(size),
		}).
		Get("/predictions")
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if err = mapRequestError(resp, msgListFailed); err != nil {
		return nil, err
	}

	var items []models.Prediction
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode predictions response: %w", err)
	}

	return items, nil
}

func (h *httpServerAdapter) GetPrediction(ctx context.Context, id string) (models.Prediction, error) {
	var record models.Prediction

	resp, err := h.authedRequest(ctx).
		SetResult(&record).
		Get("/predictions/" + url.PathEscape(id))
	if err != nil {
		return models.Prediction{}, &NetworkError{Err: err}
	}
	if err = mapRequestError(resp, msgGetFailed); err != nil {
		return models.Prediction{}, err
	}

	return record, nil
}

func (h *httpServerAdapter) DeletePrediction(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/predictions/" + url.PathEscape(id))
	if err != nil {
		return &NetworkError{Err: err}
	}

	return mapRequestError(resp, msgDeleteFailed)
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/health")
	if err != nil {
		return models.HealthStatus{}, &NetworkError{Err: err}
	}
	if err = mapRequestError(resp, msgHealthFailed); err != nil {
		return models.HealthStatus{}, err
	}

	return status, nil
}

// authedRequest builds a request carrying the JSON content type and, when a
// token is held, the bearer Authorization header. A tokenless request is
// still sent; the server is the single source of authorization decisions.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapAuthError(resp *resty.Response, fallback string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &AuthError{
		StatusCode: resp.StatusCode(),
		Message:    resolveErrorMessage(resp.Body(), fallback),
	}
}

func mapRequestError(resp *resty.Response, fallback string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	if message == "" {
		message = fallback
	}

	return &RequestError{StatusCode: resp.StatusCode(), Message: message}
}

func newRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
