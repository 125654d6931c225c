// SPDX-License-Identifier: Apache-2.0

// Package store persists the client's credentials — a bearer token and the
// cached user profile — as a single JSON file on disk.
//
// The two fields are written and removed only together, so no observer can
// ever see a token with a mismatched or absent user. Storage failures are
// deliberately swallowed: an unreadable or corrupt file is treated as an
// empty store (and wiped), never as a crash.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/houseiq/houseiq-client/internal/logger"
	"github.com/houseiq/houseiq-client/models"
)

const defaultFileName = "credentials.json"

// CredentialStore is a file-backed key-value store for the credential record.
// All operations are synchronous and never return storage errors to callers.
type CredentialStore struct {
	path   string
	logger *logger.Logger
}

// NewCredentialStore creates a store persisting at path. When path is empty a
// default under the user config directory is used
// (e.g. ~/.config/houseiq/credentials.json).
func NewCredentialStore(path string, log *logger.Logger) *CredentialStore {
	if path == "" {
		path = defaultPath()
	}
	return &CredentialStore{path: path, logger: log}
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "houseiq", defaultFileName)
}

// Token returns the persisted bearer token, or an empty string when the
// store is empty, unreadable, or corrupt.
func (s *CredentialStore) Token() string {
	record, ok := s.read()
	if !ok {
		return ""
	}
	return record.Token
}

// User returns the persisted user profile, or nil when absent. A record that
// cannot be deserialized wipes the store: corruption is treated as absence.
func (s *CredentialStore) User() *models.User {
	record, ok := s.read()
	if !ok {
		return nil
	}
	user := record.User
	return &user
}

// Write atomically replaces both fields of the credential record. The record
// is written to a temporary file and renamed into place, so a crash mid-write
// never leaves a token without its user or vice versa. Failures are logged
// and swallowed; the next read simply sees an empty store.
func (s *CredentialStore) Write(token string, user models.User) {
	payload, err := json.Marshal(models.CredentialRecord{Token: token, User: user})
	if err != nil {
		s.logger.Warn().Err(err).Msg("marshal credential record")
		return
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.logger.Warn().Err(err).Msg("create credential store directory")
		return
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		s.logger.Warn().Err(err).Msg("write credential record")
		return
	}
	if err = os.Rename(tmp, s.path); err != nil {
		s.logger.Warn().Err(err).Msg("commit credential record")
		_ = os.Remove(tmp)
	}
}

// Clear removes the credential record. Missing files are not an error.
func (s *CredentialStore) Clear() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn().Err(err).Msg("clear credential store")
	}
}

func (s *CredentialStore) read() (models.CredentialRecord, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Err(err).Msg("read credential store")
		}
		return models.CredentialRecord{}, false
	}

	var record models.CredentialRecord
	if err = json.Unmarshal(data, &record); err != nil {
		s.logger.Warn().Err(err).Msg("malformed credential record, wiping store")
		s.Clear()
		return models.CredentialRecord{}, false
	}

	return record, true
}
