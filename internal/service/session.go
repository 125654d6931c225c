package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/houseiq/houseiq-client/internal/adapter"
	"github.com/houseiq/houseiq-client/internal/logger"
	"github.com/houseiq/houseiq-client/internal/store"
	"github.com/houseiq/houseiq-client/models"
)

type sessionController struct {
	mu       sync.RWMutex
	state    State
	user     *models.User
	hydrated bool

	adapter adapter.ServerAdapter
	creds   *store.CredentialStore
	logger  *logger.Logger
}

func NewSessionController(serverAdapter adapter.ServerAdapter, creds *store.CredentialStore, log *logger.Logger) SessionController {
	return &sessionController{adapter: serverAdapter, creds: creds, logger: log}
}

func (s *sessionController) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}
	s.hydrated = true

	token := s.creds.Token()
	user := s.creds.User()

	if token == "" || !userPresent(user) {
		// Half a record means a past write went wrong; wipe rather than
		// guess which half to trust.
		if token != "" || userPresent(user) {
			s.logger.Warn().Msg("incomplete credential record, clearing store")
			s.creds.Clear()
		}
		s.state = StateAnonymous
		return
	}

	if tokenExpired(token) {
		s.logger.Info().Msg("stored token expired, clearing store")
		s.creds.Clear()
		s.state = StateAnonymous
		return
	}

	s.adapter.SetToken(token)
	s.user = user
	s.state = StateAuthenticated
	s.logger.Info().Str("email", user.Email).Msg("session restored")
}

func (s *sessionController) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *sessionController) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *sessionController) Login(ctx context.Context, email, password string) (models.User, error) {
	resp, err := s.adapter.Login(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	s.establish(resp)
	return resp.User, nil
}

func (s *sessionController) Register(ctx context.Context, email, password, name string) (models.User, error) {
	resp, err := s.adapter.Register(ctx, email, password, name)
	if err != nil {
		return models.User{}, err
	}
	s.establish(resp)
	return resp.User, nil
}

// establish commits a successful auth response: the token and profile are
// persisted as one atomic record, then the in-memory state flips. The adapter
// already holds the token at this point.
func (s *sessionController) establish(resp models.AuthResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds.Write(resp.Token, resp.User)
	user := resp.User
	s.user = &user
	s.state = StateAuthenticated
	s.logger.Info().Str("email", user.Email).Msg("session established")
}

func (s *sessionController) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.adapter.Logout()
	s.creds.Clear()
	s.user = nil
	s.state = StateAnonymous
	s.logger.Info().Msg("session cleared")
}

func (s *sessionController) Observe(err error) {
	if err == nil || !adapter.IsAuthRejected(err) {
		return
	}
	s.logger.Info().Msg("server rejected credentials, logging out")
	s.Logout()
}

func userPresent(u *models.User) bool {
	return u != nil && (u.ID != "" || u.Email != "")
}

// tokenExpired inspects the exp claim without verifying the signature: the
// client holds no signing key, and the check only avoids a doomed first
// request. A malformed token counts as expired; a token without exp is
// trusted until the server says otherwise.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
