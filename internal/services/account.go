// Package services contains the application services of CapitalChronicles.
// This file defines the account service: sign-up, login and write-back of
// per-user data against a credential store.
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/capitalchronicles/internal/common"
	"github.com/dmitrijs2005/capitalchronicles/internal/cryptox"
	"github.com/dmitrijs2005/capitalchronicles/internal/logging"
	"github.com/dmitrijs2005/capitalchronicles/internal/models"
	"github.com/dmitrijs2005/capitalchronicles/internal/store"
)

// AccountService defines account operations for the CLI.
//
// Contract:
//   - SignUp: create an account with empty data; fails with common.ErrUsernameTaken
//     if the name exists, or common.ErrInvalidInput for blank credentials.
//   - Login: return the user's data; any mismatch wraps common.ErrInvalidCredentials.
//   - SaveUserData: replace the stored data of an existing user and persist.
//   - Accounts: snapshot of the in-memory account document.
//
// Every successful mutation rewrites the whole document through the store.
type AccountService interface {
	SignUp(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) (models.UserData, error)
	SaveUserData(ctx context.Context, username string, data models.UserData) error
	Accounts() models.Accounts
}

type accountService struct {
	mu       sync.Mutex
	accounts models.Accounts
	store    store.Store
	hasher   cryptox.Hasher
	logger   logging.Logger
}

// NewAccountService loads the account document from st. A load failure is
// logged and the service starts with whatever the store returned (possibly
// nothing), so an unreadable file never blocks startup.
func NewAccountService(ctx context.Context, st store.Store, hasher cryptox.Hasher, logger logging.Logger) AccountService {
	accounts, err := st.Load(ctx)
	if err != nil {
		logger.Warn(ctx, "loading accounts failed, starting empty", "error", err)
	}
	if accounts == nil {
		accounts = models.Accounts{}
	}
	return &accountService{
		accounts: accounts,
		store:    st,
		hasher:   hasher,
		logger:   logger,
	}
}

// SignUp stores usernames without surrounding whitespace; Login trims the
// same way, so " bob" and "bob" name one account.
func (s *accountService) SignUp(ctx context.Context, username string, password []byte) error {
	username = strings.TrimSpace(username)
	if username == "" || len(password) == 0 {
		return fmt.Errorf("%w: username and password are required", common.ErrInvalidInput)
	}
	if strings.ContainsAny(username, "\r\n") {
		return fmt.Errorf("%w: username must be a single line", common.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[username]; ok {
		return fmt.Errorf("%w: %s", common.ErrUsernameTaken, username)
	}

	s.accounts[username] = models.Account{
		PasswordHash: s.hasher.Hash(password),
		Data:         models.UserData{Goals: []models.Quest{}},
	}
	if err := s.store.Save(ctx, s.accounts); err != nil {
		delete(s.accounts, username)
		return fmt.Errorf("sign up: %w", err)
	}

	s.logger.Info(ctx, "account created", "username", username)
	return nil
}

func (s *accountService) Login(ctx context.Context, username string, password []byte) (models.UserData, error) {
	username = strings.TrimSpace(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		s.logger.Debug(ctx, "login failed", "username", username, "reason", common.ErrUserNotFound)
		return models.UserData{}, fmt.Errorf("%w: %w", common.ErrInvalidCredentials, common.ErrUserNotFound)
	}
	if !s.hasher.Verify(password, acc.PasswordHash) {
		s.logger.Debug(ctx, "login failed", "username", username, "reason", common.ErrWrongPassword)
		return models.UserData{}, fmt.Errorf("%w: %w", common.ErrInvalidCredentials, common.ErrWrongPassword)
	}

	data := acc.Data.Clone()
	if data.Goals == nil {
		data.Goals = []models.Quest{}
	}
	return data, nil
}

// SaveUserData stores data for username and persists the whole document. On
// a persistence failure the in-memory copy keeps the new data.
func (s *accountService) SaveUserData(ctx context.Context, username string, data models.UserData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return fmt.Errorf("save user data: %w", common.ErrUserNotFound)
	}
	acc.Data = data.Clone()
	s.accounts[username] = acc

	if err := s.store.Save(ctx, s.accounts); err != nil {
		return fmt.Errorf("save user data: %w", err)
	}
	return nil
}

func (s *accountService) Accounts() models.Accounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts.Clone()
}
