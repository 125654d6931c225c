package adapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/houseiq/houseiq-client/models"
)

// NetworkError reports a transport-level failure: no HTTP response was
// obtained at all (DNS failure, connection refused, timeout). It must stay
// distinguishable from a credential rejection so the UI can phrase it
// differently.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "unable to connect to the server, please check if the backend is running"
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError reports a non-2xx response from an auth endpoint. Message holds
// the most specific text the response allowed.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string { return e.Message }

// RequestError reports a non-2xx response from any non-auth endpoint.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string { return e.Message }

// IsAuthRejected reports whether err represents a 401-class outcome. The
// session controller uses this for its implicit-logout rule.
func IsAuthRejected(err error) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.StatusCode == http.StatusUnauthorized
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// resolveErrorMessage picks the most specific message available from an
// error response body: the structured {code,message} form first, then the
// raw body text, then the generic fallback.
func resolveErrorMessage(body []byte, fallback string) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return fallback
	}

	var apiErr models.APIError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.Code != "" {
			return apiErr.Code
		}
	}

	return text
}
