package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse is the success payload of both auth endpoints: an opaque
// bearer token plus the authenticated user's profile.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// APIError is the structured error body the backend returns on auth
// failures, e.g. {"code":"BAD_CREDENTIALS","message":"Invalid email or password"}.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CredentialRecord is the pair persisted by the credential store. The two
// fields are only ever written and removed together.
type CredentialRecord struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
